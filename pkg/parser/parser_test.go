package parser

import (
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestExtractSingleLine(t *testing.T) {
	p := New(log.Default())
	pages := []string{"03/14/2024  STARBUCKS COFFEE   $5.75"}

	txns := p.Extract(pages, testNow)
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	got := txns[0]
	if !got.PostedAt.Equal(time.Date(2024, time.March, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("posted at: got %v", got.PostedAt)
	}
	if got.Description != "STARBUCKS COFFEE" {
		t.Errorf("description: got %q", got.Description)
	}
	if !got.Amount.Equal(decimal.RequireFromString("5.75")) {
		t.Errorf("amount: got %s", got.Amount)
	}
}

func TestExtractDefaultYearFromDocument(t *testing.T) {
	p := New(log.Default())
	pages := []string{
		"Statement for 2023",
		"12/31  YEAR END FEE  10.00",
	}

	txns := p.Extract(pages, testNow)
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if txns[0].PostedAt.Year() != 2023 {
		t.Errorf("expected document year 2023, got %d", txns[0].PostedAt.Year())
	}
}

func TestExtractDefaultYearFallsBackToNow(t *testing.T) {
	p := New(log.Default())
	pages := []string{"12/31  YEAR END FEE  10.00"}

	txns := p.Extract(pages, testNow)
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if txns[0].PostedAt.Year() != testNow.Year() {
		t.Errorf("expected year %d, got %d", testNow.Year(), txns[0].PostedAt.Year())
	}
}

func TestExtractSkipsNonTransactionLines(t *testing.T) {
	p := New(log.Default())
	pages := []string{
		"ACCOUNT SUMMARY",
		"",
		"Balance forward 1,200.00",  // no date prefix
		"03/01/2024  MYSTERY ITEM",  // no amount anywhere
		"99/99/2024  BAD DATE 5.00", // unparseable date
		"03/02/2024  COFFEE 4.50",
	}

	txns := p.Extract(pages, testNow)
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if txns[0].Description != "COFFEE" {
		t.Errorf("description: got %q", txns[0].Description)
	}
}

func TestExtractAmountFoundOnWholeLine(t *testing.T) {
	// The amount sits inside the date remainder here either way, but a
	// debit-suffix line exercises the trailing-minus rule end to end.
	p := New(log.Default())
	pages := []string{"04/10/2024  UTILITY PAYMENT 75.00-"}

	txns := p.Extract(pages, testNow)
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if !txns[0].Amount.Equal(decimal.RequireFromString("-75")) {
		t.Errorf("amount: got %s, want -75", txns[0].Amount)
	}
}

func TestExtractEmptyDescriptionDefaults(t *testing.T) {
	p := New(log.Default())
	pages := []string{"03/14/2024  $5.75"}

	txns := p.Extract(pages, testNow)
	if len(txns) != 1 {
		t.Fatalf("expected 1 transaction, got %d", len(txns))
	}
	if txns[0].Description != "Transaction" {
		t.Errorf("description: got %q, want Transaction", txns[0].Description)
	}
}

func TestExtractPreservesPageOrder(t *testing.T) {
	p := New(log.Default())
	pages := []string{
		"03/01/2024  FIRST 1.00",
		"03/02/2024  SECOND 2.00\n03/03/2024  THIRD 3.00",
	}

	txns := p.Extract(pages, testNow)
	if len(txns) != 3 {
		t.Fatalf("expected 3 transactions, got %d", len(txns))
	}
	want := []string{"FIRST", "SECOND", "THIRD"}
	for i, w := range want {
		if txns[i].Description != w {
			t.Errorf("transaction %d: got %q, want %q", i, txns[i].Description, w)
		}
	}
}
