package classify

import (
	"strings"

	"pfimport/pkg/models"
)

// cueTable lists, in tie-break order, the phrases that vote for each
// statement type. A cue counts once no matter how often it repeats.
var cueTable = []struct {
	Type models.StatementType
	Cues []string
}{
	{models.StatementMortgage, []string{"escrow", "principal", "interest", "mortgage", "loan number"}},
	{models.StatementCreditCard, []string{"minimum payment", "payment due date", "new balance", "credit card"}},
	{models.StatementBrokerage, []string{"positions", "dividends", "trade date", "gain", "brokerage"}},
	{models.StatementBank, []string{"checking", "savings", "withdrawal", "deposit", "account summary"}},
}

// Classify scores the document text against every cue list and picks the
// statement type with the most hits. Confidence is the winning count divided
// by the highest count across all types, so it is 0.0 when nothing matched
// and never divides by zero. Exact ties go to the type declared first.
func Classify(text string) models.Classification {
	low := strings.ToLower(text)

	best := cueTable[0].Type
	bestScore := 0
	maxScore := 0
	for _, entry := range cueTable {
		score := 0
		for _, cue := range entry.Cues {
			if strings.Contains(low, cue) {
				score++
			}
		}
		if score > bestScore {
			best = entry.Type
			bestScore = score
		}
		if score > maxScore {
			maxScore = score
		}
	}

	confidence := 0.0
	if maxScore > 0 {
		confidence = float64(bestScore) / float64(maxScore)
	}
	return models.Classification{Type: best, Confidence: confidence}
}
