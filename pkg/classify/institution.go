package classify

import (
	"regexp"
	"strings"

	"pfimport/pkg/models"
)

// institutionTable is scanned top to bottom and the first substring match
// wins, so both forms of a name ("american express", "amex") can coexist
// with a fixed priority. Keep the declared order.
var institutionTable = []struct {
	Match   string
	Display string
}{
	{"chase", "Chase"},
	{"wells fargo", "Wells Fargo"},
	{"bank of america", "Bank of America"},
	{"american express", "American Express"},
	{"amex", "Amex"},
	{"citi", "Citi"},
	{"fidelity", "Fidelity"},
	{"vanguard", "Vanguard"},
	{"charles schwab", "Charles Schwab"},
}

// maskedAccountPatterns are tried in priority order; each captures the 3-4
// trailing digits only. Full account numbers are never extracted.
var maskedAccountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`account ending in\s*(\d{3,4})`),
	regexp.MustCompile(`account\s*no\.?\s*\*+\s*(\d{3,4})`),
	regexp.MustCompile(`\*{2,}(\d{3,4})`),
	regexp.MustCompile(`xxxx\s*(\d{3,4})`),
}

// ExtractInstitution finds the issuing institution and a masked account
// number in the document text. The two lookups are independent; either
// field may come back empty.
func ExtractInstitution(text string) models.InstitutionInfo {
	low := strings.ToLower(text)

	var info models.InstitutionInfo
	for _, entry := range institutionTable {
		if strings.Contains(low, entry.Match) {
			info.Institution = entry.Display
			break
		}
	}

	for _, pattern := range maskedAccountPatterns {
		if m := pattern.FindStringSubmatch(low); m != nil {
			info.MaskedAccount = "****" + m[1]
			break
		}
	}
	return info
}
