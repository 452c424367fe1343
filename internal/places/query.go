package places

import (
	"cmp"
	"slices"
	"strings"

	"places-api/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultSuggestLimit caps quick-search suggestions.
const DefaultSuggestLimit = 6

// Engine filters and orders canonical places. It holds no per-query state
// and is safe for concurrent use.
type Engine struct {
	locale language.Tag
}

// NewEngine returns an engine whose name ordering follows the given BCP 47
// locale. An unparsable locale falls back to English.
func NewEngine(locale string) *Engine {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Engine{locale: tag}
}

var defaultEngine = NewEngine("en")

// Query runs spec over records with the default English engine.
func Query(records []models.Place, spec models.QuerySpec) []models.Place {
	return defaultEngine.Query(records, spec)
}

// Run is Query with the result count attached.
func (e *Engine) Run(records []models.Place, spec models.QuerySpec) models.QueryResult {
	out := e.Query(records, spec)
	return models.QueryResult{Places: out, Total: len(out)}
}

// Query returns the records that pass every filter in spec, ordered by
// spec.SortBy. The input slice is never modified.
func (e *Engine) Query(records []models.Place, spec models.QuerySpec) []models.Place {
	spec = Sanitize(spec)
	text := strings.ToLower(strings.TrimSpace(spec.Text))

	out := make([]models.Place, 0, len(records))
	for _, p := range records {
		if matches(p, spec, text) {
			out = append(out, p)
		}
	}

	e.sort(out, spec.SortBy)
	return out
}

// Suggest returns up to limit text matches in relevance order. Blank text
// suggests nothing.
func (e *Engine) Suggest(records []models.Place, text string, limit int) []models.Place {
	if strings.TrimSpace(text) == "" {
		return []models.Place{}
	}
	if limit <= 0 {
		limit = DefaultSuggestLimit
	}
	out := e.Query(records, models.QuerySpec{Text: text})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Sanitize clamps out-of-range filter values and resolves unknown sort keys
// to relevance.
func Sanitize(spec models.QuerySpec) models.QuerySpec {
	spec.MinRating = ClampRating(spec.MinRating)
	spec.SortBy = ParseSortKey(string(spec.SortBy))
	if spec.Type == "" {
		spec.Type = models.CategoryAll
	}
	if spec.Continent == "" {
		spec.Continent = string(models.CategoryAll)
	}
	return spec
}

// ParseSortKey maps user input to a sort key; anything unknown is relevance.
func ParseSortKey(s string) models.SortKey {
	switch k := models.SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case models.SortRating, models.SortViews, models.SortName:
		return k
	}
	return models.SortRelevance
}

// matches applies the filters cheapest first.
func matches(p models.Place, spec models.QuerySpec, text string) bool {
	if spec.Type != models.CategoryAll && p.Category != spec.Type {
		return false
	}
	if spec.Continent != string(models.CategoryAll) && p.Continent != spec.Continent {
		return false
	}
	if spec.MinRating > 0 && p.Rating < spec.MinRating {
		return false
	}
	if spec.FeaturedOnly && !p.Featured {
		return false
	}
	if text == "" {
		return true
	}
	for _, field := range []string{p.Name, p.Description, p.Country, p.Location} {
		if strings.Contains(strings.ToLower(field), text) {
			return true
		}
	}
	return false
}

func (e *Engine) sort(out []models.Place, key models.SortKey) {
	switch key {
	case models.SortRating:
		slices.SortStableFunc(out, func(a, b models.Place) int {
			return cmp.Compare(b.Rating, a.Rating)
		})
	case models.SortViews:
		slices.SortStableFunc(out, compareViews)
	case models.SortName:
		// Collators keep internal buffers, so each sort gets its own.
		c := collate.New(e.locale)
		slices.SortStableFunc(out, func(a, b models.Place) int {
			return c.CompareString(a.Name, b.Name)
		})
	}
}

// compareViews orders by descending view count. Places without a parsable
// count keep their relative order after every counted place.
func compareViews(a, b models.Place) int {
	av, aok := ParseViews(a.Views)
	bv, bok := ParseViews(b.Views)
	switch {
	case aok && bok:
		return cmp.Compare(bv, av)
	case aok:
		return -1
	case bok:
		return 1
	}
	return 0
}
