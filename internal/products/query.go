package products

import (
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 5
)

type ListResult struct {
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
	Products []Product `json:"products"`
}

// ParsePaging reads page and limit query values. Anything that is not a
// positive base-10 integer falls back to the default.
func ParsePaging(page, limit string) (int, int) {
	return positiveOr(page, DefaultPage), positiveOr(limit, DefaultLimit)
}

func positiveOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// FilterByCategory keeps products whose category equals category ignoring
// case. An empty category keeps everything.
func FilterByCategory(ps []Product, category string) []Product {
	if category == "" {
		return ps
	}

	out := make([]Product, 0, len(ps))
	for _, p := range ps {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Paginate returns the 1-based page of size limit. Pages past the end are
// empty. page and limit must be positive.
func Paginate(ps []Product, page, limit int) []Product {
	total := len(ps)

	// (page-1)*limit can overflow for absurd inputs; anything past the end is empty anyway.
	if page-1 > total/limit {
		return []Product{}
	}
	start := (page - 1) * limit
	if start >= total {
		return []Product{}
	}

	end := total
	if limit < total-start {
		end = start + limit
	}
	return ps[start:end]
}

func List(ps []Product, category string, page, limit int) ListResult {
	filtered := FilterByCategory(ps, category)
	return ListResult{
		Total:    len(filtered),
		Page:     page,
		Limit:    limit,
		Products: Paginate(filtered, page, limit),
	}
}

// SearchByName returns every product whose name contains q, ignoring case.
func SearchByName(ps []Product, q string) []Product {
	q = strings.ToLower(q)

	out := make([]Product, 0)
	for _, p := range ps {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// CountByCategory counts products per category. Keys are compared
// case-sensitively, as stored.
func CountByCategory(ps []Product) map[string]int {
	out := make(map[string]int)
	for _, p := range ps {
		out[p.Category]++
	}
	return out
}
