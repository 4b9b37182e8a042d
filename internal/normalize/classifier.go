package normalize

import (
	"strings"

	"github.com/finscore-dev/finscore/internal/model"
)

// inferenceRule maps description keywords to a category. Rules are evaluated
// in slice order and the first rule with a matching keyword wins.
type inferenceRule struct {
	category model.Category
	keywords []string
}

// inferenceRules is the fixed, priority-ordered keyword dispatch used when a
// statement row carries no explicit category.
var inferenceRules = []inferenceRule{
	{model.CategoryAirtime, []string{"airtime"}},
	{model.CategorySend, []string{"send", "sent", "transfer"}},
	{model.CategoryWithdraw, []string{"withdraw", "cash"}},
	{model.CategoryPayment, []string{"pay", "payment", "till"}},
	{model.CategoryIncome, []string{"salary", "income", "deposit"}},
}

// InferCategory derives a category from a free-text transaction description
// using case-insensitive substring matching. An empty or unrecognized
// description yields CategoryUnknown.
func InferCategory(description string) model.Category {
	desc := strings.ToLower(description)
	if desc == "" {
		return model.CategoryUnknown
	}

	for _, rule := range inferenceRules {
		for _, kw := range rule.keywords {
			if strings.Contains(desc, kw) {
				return rule.category
			}
		}
	}

	return model.CategoryUnknown
}
