package categorize

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"pfimport/pkg/models"
)

// Rule maps a description keyword to a category. Rules are evaluated in
// declaration order and the first matching keyword wins.
type Rule struct {
	Keyword  string              `yaml:"keyword"`
	Category string              `yaml:"category"`
	Kind     models.CategoryKind `yaml:"kind"`
}

// defaultRules is the built-in keyword table. Order is significant: more
// specific merchants come before broader ones, and "mortgage" stays
// independent of the income keywords below it.
var defaultRules = []Rule{
	{"amazon", "Shopping", models.KindExpense},
	{"target", "Shopping", models.KindExpense},
	{"walmart", "Shopping", models.KindExpense},
	{"whole foods", "Groceries", models.KindExpense},
	{"trader joe", "Groceries", models.KindExpense},
	{"costco", "Groceries", models.KindExpense},
	{"uber", "Transport", models.KindExpense},
	{"lyft", "Transport", models.KindExpense},
	{"shell", "Transport", models.KindExpense},
	{"exxon", "Transport", models.KindExpense},
	{"starbucks", "Dining", models.KindExpense},
	{"restaurant", "Dining", models.KindExpense},
	{"mcdonald", "Dining", models.KindExpense},
	{"mortgage", "Mortgage", models.KindExpense},
	{"payroll", "Income:Salary", models.KindIncome},
	{"salary", "Income:Salary", models.KindIncome},
	{"dividend", "Income:Dividend", models.KindIncome},
	{"interest", "Income:Dividend", models.KindIncome},
}

// Categorizer assigns categories by ordered keyword match.
type Categorizer struct {
	rules []Rule
}

func New() *Categorizer {
	return &Categorizer{rules: defaultRules}
}

// NewFromFile builds a categorizer from a YAML rules file, replacing the
// built-in table. The file holds a list of {keyword, category, kind}
// entries evaluated in file order.
func NewFromFile(path string) (*Categorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file: %w", err)
	}
	var rules []Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parsing rules file: %w", err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("rules file %s has no rules", path)
	}
	for i, r := range rules {
		if r.Kind != models.KindIncome && r.Kind != models.KindExpense {
			return nil, fmt.Errorf("rule %d: kind must be income or expense, got %q", i, r.Kind)
		}
	}
	return &Categorizer{rules: rules}, nil
}

// Categorize picks a category for the transaction. The income/expense flags
// derive from the amount sign alone (zero counts as expense) and are
// deliberately independent of the keyword match, so a positive "uber"
// amount still lands in Transport while being flagged income.
func (c *Categorizer) Categorize(txn models.Transaction) models.CategoryAssignment {
	isIncome := txn.Amount.IsPositive()
	isExpense := txn.Amount.IsNegative() || txn.Amount.Equal(decimal.Zero)

	desc := strings.ToLower(txn.Description)
	for _, rule := range c.rules {
		if strings.Contains(desc, rule.Keyword) {
			return models.CategoryAssignment{
				Name:      rule.Category,
				Kind:      rule.Kind,
				IsIncome:  isIncome,
				IsExpense: isExpense,
			}
		}
	}

	kind := models.KindIncome
	if isExpense {
		kind = models.KindExpense
	}
	return models.CategoryAssignment{
		Name:      "Uncategorized",
		Kind:      kind,
		IsIncome:  isIncome,
		IsExpense: isExpense,
	}
}
