package products

import (
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func catalog() []Product {
	return []Product{
		{ID: "1", Name: "Laptop Pro", Category: "Electronics"},
		{ID: "2", Name: "Coffee Mug", Category: "Kitchen"},
		{ID: "3", Name: "Phone", Category: "electronics"},
		{ID: "4", Name: "Headphones", Category: "ELECTRONICS"},
		{ID: "5", Name: "Laptop Stand", Category: "Office"},
	}
}

func ids(ps []Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.ID)
	}
	return out
}

func TestParsePaging(t *testing.T) {
	cases := []struct {
		page, limit         string
		wantPage, wantLimit int
	}{
		{"", "", 1, 5},
		{"2", "10", 2, 10},
		{"abc", "x", 1, 5},
		{"0", "0", 1, 5},
		{"-3", "-1", 1, 5},
		{"2.5", "3abc", 1, 5},
		{"7", "", 7, 5},
	}

	for _, tc := range cases {
		page, limit := ParsePaging(tc.page, tc.limit)
		assert.Equal(t, tc.wantPage, page, "page=%q", tc.page)
		assert.Equal(t, tc.wantLimit, limit, "limit=%q", tc.limit)
	}
}

func TestFilterByCategory_CaseInsensitive(t *testing.T) {
	assert.Equal(t, []string{"1", "3", "4"}, ids(FilterByCategory(catalog(), "Electronics")))
	assert.Equal(t, []string{"2"}, ids(FilterByCategory(catalog(), "kitchen")))
	assert.Empty(t, FilterByCategory(catalog(), "Garden"))
}

func TestFilterByCategory_EmptyKeepsAll(t *testing.T) {
	assert.Len(t, FilterByCategory(catalog(), ""), 5)
}

func TestPaginate(t *testing.T) {
	ps := catalog()[:3]

	assert.Equal(t, []string{"2"}, ids(Paginate(ps, 2, 1)))
	assert.Equal(t, []string{"1", "2"}, ids(Paginate(ps, 1, 2)))
	assert.Equal(t, []string{"3"}, ids(Paginate(ps, 2, 2)))
	assert.Equal(t, []string{"1", "2", "3"}, ids(Paginate(ps, 1, 5)))

	out := Paginate(ps, 10, 1)
	assert.NotNil(t, out)
	assert.Empty(t, out)

	assert.Empty(t, Paginate(nil, 1, 5))
}

func TestPaginate_HugeValuesDoNotOverflow(t *testing.T) {
	ps := catalog()

	assert.Empty(t, Paginate(ps, math.MaxInt, math.MaxInt))
	assert.Equal(t, ids(ps), ids(Paginate(ps, 1, math.MaxInt)))
	assert.Empty(t, Paginate(ps, math.MaxInt, 2))

	page, limit := ParsePaging(strconv.Itoa(math.MaxInt), "99999999999999999999999")
	assert.Equal(t, math.MaxInt, page)
	assert.Equal(t, DefaultLimit, limit)
}

func TestList_TotalIsFilteredCount(t *testing.T) {
	res := List(catalog(), "electronics", 2, 1)

	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 1, res.Limit)
	assert.Equal(t, []string{"3"}, ids(res.Products))

	res = List(catalog(), "electronics", 10, 1)
	assert.Equal(t, 3, res.Total)
	assert.Empty(t, res.Products)
}

func TestSearchByName(t *testing.T) {
	assert.Equal(t, []string{"1", "5"}, ids(SearchByName(catalog(), "laptop")))
	assert.Equal(t, []string{"2"}, ids(SearchByName(catalog(), "MUG")))
	assert.Equal(t, []string{"4"}, ids(SearchByName(catalog(), "phones")))

	none := SearchByName(catalog(), "tractor")
	assert.NotNil(t, none)
	assert.Empty(t, none)
}

func TestCountByCategory(t *testing.T) {
	assert.Equal(t, map[string]int{
		"Electronics": 1,
		"electronics": 1,
		"ELECTRONICS": 1,
		"Kitchen":     1,
		"Office":      1,
	}, CountByCategory(catalog()))

	empty := CountByCategory(nil)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
