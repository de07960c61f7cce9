package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"pfimport/pkg/models"
)

var (
	// A transaction row starts with a date token, with the year optional,
	// followed by whitespace and the rest of the line.
	dateLineRe = regexp.MustCompile(`^(\d{1,2}[\-/]\d{1,2}(?:[\-/]\d{2,4})?)\s+(.+)$`)

	yearRe     = regexp.MustCompile(`\b(20\d{2})\b`)
	spaceRunRe = regexp.MustCompile(`\s{2,}`)
)

// Parser turns per-page statement text into transactions using the
// date-prefix line heuristic.
type Parser struct {
	logger *log.Logger
}

func New(logger *log.Logger) *Parser {
	return &Parser{logger: logger}
}

// Extract scans every non-blank line across the pages, in page order, and
// emits one transaction per line that carries a date prefix and an amount.
// Lines that fail either check are skipped; rows are independent and no
// cross-line merging happens.
func (p *Parser) Extract(pages []string, now time.Time) []models.Transaction {
	var lines []string
	for _, page := range pages {
		for _, ln := range strings.Split(page, "\n") {
			if trimmed := strings.TrimSpace(ln); trimmed != "" {
				lines = append(lines, trimmed)
			}
		}
	}

	defaultYear := inferDefaultYear(lines, now)

	var txns []models.Transaction
	for _, ln := range lines {
		m := dateLineRe.FindStringSubmatch(ln)
		if m == nil {
			continue
		}
		datePart, rest := m[1], m[2]

		amount, ok := ParseAmount(rest)
		if !ok {
			amount, ok = ParseAmount(ln)
		}
		if !ok {
			continue
		}

		postedAt, err := ParseDateFragment(datePart, defaultYear)
		if err != nil {
			p.logger.Debug("skipping line with unparseable date", "fragment", datePart)
			continue
		}

		description := strings.TrimSpace(stripAmounts(rest))
		description = spaceRunRe.ReplaceAllString(description, " ")
		if description == "" {
			description = "Transaction"
		}

		txns = append(txns, models.Transaction{
			PostedAt:    postedAt,
			Description: description,
			Amount:      amount,
		})
	}
	return txns
}

// inferDefaultYear picks the year for date fragments that lack one: the
// first bare 2000-2099 token anywhere in the document, else today's year.
func inferDefaultYear(lines []string, now time.Time) int {
	if m := yearRe.FindString(strings.Join(lines, "\n")); m != "" {
		year, err := strconv.Atoi(m)
		if err == nil {
			return year
		}
	}
	return now.Year()
}
