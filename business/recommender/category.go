package recommender

import "strings"

// keywordGroup pairs a category with the name fragments that imply it.
// Evaluation order matters: the first group with a match wins, so a name like
// "milk bread" classifies as dairy, not bakery.
type keywordGroup struct {
	category string
	keywords []string
}

var categoryGroups = []keywordGroup{
	{"snacks", []string{"biscuit", "cookie", "chips", "namkeen", "snack"}},
	{"dairy", []string{"milk", "curd", "butter", "cheese", "paneer", "dairy"}},
	{"bakery", []string{"bread", "pav", "roti", "chapati"}},
	{"grains", []string{"rice", "wheat", "atta", "dal", "pulses"}},
	{"cooking", []string{"oil", "ghee", "masala", "spice"}},
	{"hygiene", []string{"soap", "shampoo", "detergent", "paste"}},
	{"beverages", []string{"tea", "coffee", "juice", "drink"}},
}

// DetectCategory classifies a product by name. Best-effort heuristic only;
// unmatched names fall through to "other".
func DetectCategory(name string) string {
	lower := strings.ToLower(name)

	for _, group := range categoryGroups {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.category
			}
		}
	}

	return "other"
}
