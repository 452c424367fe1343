package places

import (
	"testing"

	"places-api/internal/models"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func catalog() []models.Place {
	return []models.Place{
		{ID: "1", Name: "Eiffel Tower", Description: "Iconic iron tower", Location: "Paris, France", Country: "France", Continent: "Europe", Category: models.CategoryLandmark, Rating: 4.8, Featured: true, Views: "1.2M"},
		{ID: "2", Name: "Kyoto", Description: "Temples and gardens", Location: "Kyoto, Japan", Country: "Japan", Continent: "Asia", Category: models.CategoryCity, Rating: 4.9, Views: "850K"},
		{ID: "3", Name: "Machu Picchu", Description: "Incan citadel", Location: "Cusco Region, Peru", Country: "Peru", Continent: "South America", Category: models.CategoryHistorical, Rating: 4.7, Featured: true, Views: "2.1M"},
		{ID: "4", Name: "Grand Canyon", Description: "Layered red rock", Location: "Arizona, USA", Country: "USA", Continent: "North America", Category: models.CategoryNature, Rating: 4.4},
		{ID: "5", Name: "Colosseum", Description: "Roman amphitheater", Location: "Rome, Italy", Country: "Italy", Continent: "Europe", Category: models.CategoryHistorical, Rating: 4.8, Views: "980K"},
	}
}

func ids(places []models.Place) []string {
	out := make([]string, 0, len(places))
	for _, p := range places {
		out = append(out, p.ID)
	}
	return out
}

func TestQuery_NoopSpecKeepsOrder(t *testing.T) {
	records := catalog()
	got := Query(records, models.QuerySpec{
		Type:      models.CategoryAll,
		Continent: "all",
		SortBy:    models.SortRelevance,
	})

	if diff := cmp.Diff(records, got); diff != "" {
		t.Errorf("Query() mismatch (-want +got):\n%s", diff)
	}
}

func TestQuery_Filters(t *testing.T) {
	tests := []struct {
		name     string
		spec     models.QuerySpec
		expected []string
	}{
		{name: "type", spec: models.QuerySpec{Type: models.CategoryHistorical}, expected: []string{"3", "5"}},
		{name: "continent", spec: models.QuerySpec{Continent: "Europe"}, expected: []string{"1", "5"}},
		{name: "min rating", spec: models.QuerySpec{MinRating: 4.8}, expected: []string{"1", "2", "5"}},
		{name: "featured only", spec: models.QuerySpec{FeaturedOnly: true}, expected: []string{"1", "3"}},
		{name: "text matches name case-insensitively", spec: models.QuerySpec{Text: "KYOTO"}, expected: []string{"2"}},
		{name: "text matches description", spec: models.QuerySpec{Text: "iron"}, expected: []string{"1"}},
		{name: "text matches country", spec: models.QuerySpec{Text: "italy"}, expected: []string{"5"}},
		{name: "text matches location", spec: models.QuerySpec{Text: "arizona"}, expected: []string{"4"}},
		{name: "whitespace text matches all", spec: models.QuerySpec{Text: "   "}, expected: []string{"1", "2", "3", "4", "5"}},
		{name: "combined filters", spec: models.QuerySpec{Continent: "Europe", Type: models.CategoryHistorical, MinRating: 4.5}, expected: []string{"5"}},
		{name: "negative min rating is clamped", spec: models.QuerySpec{MinRating: -2}, expected: []string{"1", "2", "3", "4", "5"}},
		{name: "min rating above scale is clamped", spec: models.QuerySpec{MinRating: 9}, expected: []string{}},
		{name: "unknown continent", spec: models.QuerySpec{Continent: "Antarctica"}, expected: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(Query(catalog(), tt.spec)))
		})
	}
}

func TestQuery_FilterIsIdempotent(t *testing.T) {
	spec := models.QuerySpec{MinRating: 4.8}
	once := Query(catalog(), spec)
	twice := Query(once, spec)

	assert.Equal(t, once, twice)
	for _, p := range once {
		assert.GreaterOrEqual(t, p.Rating, 4.8)
	}
}

func TestQuery_DoesNotMutateInput(t *testing.T) {
	records := catalog()
	before := catalog()

	Query(records, models.QuerySpec{SortBy: models.SortName})
	Query(records, models.QuerySpec{SortBy: models.SortRating})

	assert.Equal(t, before, records)
}

func TestQuery_Sorting(t *testing.T) {
	tests := []struct {
		name     string
		sortBy   models.SortKey
		expected []string
	}{
		{name: "relevance", sortBy: models.SortRelevance, expected: []string{"1", "2", "3", "4", "5"}},
		{name: "rating descending, ties stable", sortBy: models.SortRating, expected: []string{"2", "1", "5", "3", "4"}},
		{name: "views descending, missing last", sortBy: models.SortViews, expected: []string{"3", "1", "5", "2", "4"}},
		{name: "name ascending", sortBy: models.SortName, expected: []string{"5", "1", "4", "2", "3"}},
		{name: "unknown key falls back to relevance", sortBy: "popularity", expected: []string{"1", "2", "3", "4", "5"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(Query(catalog(), models.QuerySpec{SortBy: tt.sortBy})))
		})
	}
}

func TestQuery_ViewsSuffixes(t *testing.T) {
	records := []models.Place{
		{ID: "rome", Name: "Rome", Views: "850K"},
		{ID: "tokyo", Name: "Tokyo", Views: "1.2M"},
	}

	got := Query(records, models.QuerySpec{SortBy: models.SortViews})
	assert.Equal(t, []string{"tokyo", "rome"}, ids(got))
}

func TestQuery_ViewsAbsentEverywhereKeepsOrder(t *testing.T) {
	records := []models.Place{{ID: "a", Name: "B"}, {ID: "b", Name: "A"}}

	got := Query(records, models.QuerySpec{SortBy: models.SortViews})
	assert.Equal(t, []string{"a", "b"}, ids(got))
}

func TestQuery_NameSortIsStableAndLocaleAware(t *testing.T) {
	records := []models.Place{
		{ID: "1", Name: "zurich"},
		{ID: "2", Name: "Zürich"},
		{ID: "3", Name: "Athens"},
		{ID: "4", Name: "athens"},
		{ID: "5", Name: "Athens"},
	}

	got := ids(Query(records, models.QuerySpec{SortBy: models.SortName}))

	assert.Less(t, indexOf(got, "3"), indexOf(got, "5"), "equal names keep input order")
	assert.Greater(t, indexOf(got, "1"), indexOf(got, "4"), "case does not push lower-case names after upper-case ones")
	assert.Greater(t, indexOf(got, "2"), indexOf(got, "5"))
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func TestEngine_Run(t *testing.T) {
	res := NewEngine("en-GB").Run(catalog(), models.QuerySpec{Continent: "Europe"})
	assert.Equal(t, 2, res.Total)
	assert.Len(t, res.Places, 2)
}

func TestEngine_Suggest(t *testing.T) {
	var records []models.Place
	for i := 0; i < 10; i++ {
		records = append(records, models.Place{ID: string(rune('a' + i)), Name: "Rome Tour"})
	}
	e := NewEngine("not a locale")

	assert.Len(t, e.Suggest(records, "rome", 0), DefaultSuggestLimit)
	assert.Len(t, e.Suggest(records, "rome", 3), 3)
	assert.Empty(t, e.Suggest(records, "  ", 0))
	assert.Empty(t, e.Suggest(records, "paris", 0))
}

func TestParseSortKey(t *testing.T) {
	assert.Equal(t, models.SortRating, ParseSortKey("Rating"))
	assert.Equal(t, models.SortViews, ParseSortKey(" views "))
	assert.Equal(t, models.SortName, ParseSortKey("name"))
	assert.Equal(t, models.SortRelevance, ParseSortKey(""))
	assert.Equal(t, models.SortRelevance, ParseSortKey("distance"))
}

func TestParseViews(t *testing.T) {
	tests := []struct {
		in       string
		expected float64
		ok       bool
	}{
		{in: "1.2M", expected: 1_200_000, ok: true},
		{in: "850K", expected: 850_000, ok: true},
		{in: "2.1m", expected: 2_100_000, ok: true},
		{in: "12,400", expected: 12_400, ok: true},
		{in: "3B", expected: 3_000_000_000, ok: true},
		{in: "640", expected: 640, ok: true},
		{in: "", ok: false},
		{in: "K", ok: false},
		{in: "lots", ok: false},
		{in: "-5K", ok: false},
		{in: "NaN", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseViews(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.InDelta(t, tt.expected, got, 1e-6)
			}
		})
	}
}
