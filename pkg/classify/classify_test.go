package classify

import (
	"testing"

	"pfimport/pkg/models"
)

func TestClassifyNoCues(t *testing.T) {
	got := Classify("hello world, nothing financial here")
	if got.Confidence != 0.0 {
		t.Errorf("expected confidence 0.0, got %v", got.Confidence)
	}
}

func TestClassifyEmptyText(t *testing.T) {
	got := Classify("")
	if got.Confidence != 0.0 {
		t.Errorf("expected confidence 0.0 on empty text, got %v", got.Confidence)
	}
}

func TestClassifyMortgage(t *testing.T) {
	text := "Your ESCROW balance and Principal. Interest charged. Mortgage statement."
	got := Classify(text)
	if got.Type != models.StatementMortgage {
		t.Errorf("expected mortgage, got %s", got.Type)
	}
	if got.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %v", got.Confidence)
	}
}

func TestClassifyCreditCard(t *testing.T) {
	text := "minimum payment due. payment due date 04/15. new balance $250.00. credit card account"
	got := Classify(text)
	if got.Type != models.StatementCreditCard {
		t.Errorf("expected credit_card, got %s", got.Type)
	}
}

func TestClassifyRepeatedCueCountsOnce(t *testing.T) {
	// One bank cue repeated three times versus two brokerage cues.
	text := "deposit deposit deposit ... positions and dividends"
	got := Classify(text)
	if got.Type != models.StatementBrokerage {
		t.Errorf("expected brokerage to win with two distinct cues, got %s", got.Type)
	}
}

func TestClassifyTieGoesToFirstType(t *testing.T) {
	// "mortgage" and "credit card" each score exactly one cue.
	got := Classify("mortgage credit card")
	if got.Type != models.StatementMortgage {
		t.Errorf("expected mortgage on tie, got %s", got.Type)
	}
	if got.Confidence != 1.0 {
		t.Errorf("expected confidence 1.0, got %v", got.Confidence)
	}
}

func TestExtractInstitution(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		inst    string
		account string
	}{
		{"chase with ending-in", "Chase Bank. Account ending in 1234", "Chase", "****1234"},
		{"american express before amex", "AMERICAN EXPRESS statement", "American Express", ""},
		{"amex alone", "your amex card", "Amex", ""},
		{"star mask", "Account No. ****5678", "", "****5678"},
		{"xxxx mask", "card xxxx 987", "", "****987"},
		{"nothing", "no institution here", "", ""},
		{"order prefers first pattern", "account ending in 4321 also **9999", "", "****4321"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractInstitution(tt.text)
			if got.Institution != tt.inst {
				t.Errorf("institution: got %q, want %q", got.Institution, tt.inst)
			}
			if got.MaskedAccount != tt.account {
				t.Errorf("masked account: got %q, want %q", got.MaskedAccount, tt.account)
			}
		})
	}
}

func TestMaskedAccountNeverExceedsFourDigits(t *testing.T) {
	got := ExtractInstitution("Account No. ****123456789")
	if len(got.MaskedAccount) > len("****")+4 {
		t.Errorf("masked account %q keeps more than 4 digits", got.MaskedAccount)
	}
}
