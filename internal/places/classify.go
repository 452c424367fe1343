package places

import (
	"strings"

	"places-api/internal/models"
)

type categoryRule struct {
	match    func(name string) bool
	category models.Category
}

func containsAny(words ...string) func(string) bool {
	return func(name string) bool {
		for _, w := range words {
			if strings.Contains(name, w) {
				return true
			}
		}
		return false
	}
}

// Keyword rules are case-sensitive and evaluated top to bottom.
var categoryRules = []categoryRule{
	{match: containsAny("Park", "Garden"), category: models.CategoryNature},
	{match: containsAny("Museum", "Historic"), category: models.CategoryHistorical},
	{match: containsAny("Monument", "Tower"), category: models.CategoryLandmark},
}

var categoryByName = map[string]models.Category{
	"Monument":      models.CategoryLandmark,
	"Historic Site": models.CategoryHistorical,
	"Museum":        models.CategoryHistorical,
	"Park":          models.CategoryNature,
	"Mountain":      models.CategoryNature,
	"Beach":         models.CategoryNature,
	"City":          models.CategoryCity,
	"Town":          models.CategoryCity,
}

// Classify maps the first provider category of a record to a place category.
func Classify(categories []models.RawCategory) models.Category {
	if len(categories) == 0 {
		return models.CategoryLandmark
	}
	name := categories[0].Name
	for _, rule := range categoryRules {
		if rule.match(name) {
			return rule.category
		}
	}
	if c, ok := categoryByName[name]; ok {
		return c
	}
	return models.CategoryLandmark
}
