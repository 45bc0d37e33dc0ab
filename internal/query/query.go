// Package query decides how a product listing is answered: which access
// path fetches the candidate set (index lookup or full scan) and which
// predicates are then applied in memory.
package query

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/Vini9-9/api-quanto-foi/internal/models"
	"github.com/Vini9-9/api-quanto-foi/internal/store"
)

const (
	// DefaultLimit applies when the caller sends no limit.
	DefaultLimit = 100
	// MaxLimit is the hard ceiling on any single listing.
	MaxLimit = 1000
)

// Filter is the optional-field query specification. Zero values mean "not
// set". Dates use the YYYY-MM-DD layout.
type Filter struct {
	Location    string
	Description string
	SKU         string
	DateFrom    string
	DateTo      string
	PriceMin    *float64
	PriceMax    *float64
	Limit       int
}

// Source is the slice of the store the engine reads from.
type Source interface {
	FetchAll(ctx context.Context) (map[string]models.Product, error)
	FetchByIndex(ctx context.Context, index, key string) ([]models.Product, error)
}

// Engine executes filters against a Source.
type Engine struct {
	src Source
}

func NewEngine(src Source) *Engine {
	return &Engine{src: src}
}

// accessRule maps a filter shape to the cheapest way of fetching candidate
// records. Rules are tried in order; the first applicable one wins.
type accessRule struct {
	name    string
	applies func(f Filter) bool
	fetch   func(ctx context.Context, src Source, f Filter) ([]models.Product, error)
}

var accessRules = []accessRule{
	{
		name:    "sku-index",
		applies: func(f Filter) bool { return f.SKU != "" },
		fetch: func(ctx context.Context, src Source, f Filter) ([]models.Product, error) {
			return src.FetchByIndex(ctx, store.IndexSKU, f.SKU)
		},
	},
	{
		// The date index only answers exact-date lookups; any open or
		// multi-day range has to scan.
		name:    "date-index",
		applies: func(f Filter) bool { return f.DateFrom != "" && f.DateFrom == f.DateTo },
		fetch: func(ctx context.Context, src Source, f Filter) ([]models.Product, error) {
			return src.FetchByIndex(ctx, store.IndexDate, f.DateFrom)
		},
	},
	{
		name:    "full-scan",
		applies: func(f Filter) bool { return true },
		fetch: func(ctx context.Context, src Source, f Filter) ([]models.Product, error) {
			all, err := src.FetchAll(ctx)
			if err != nil {
				return nil, err
			}
			// Enumerate in key order, matching how the remote tree
			// orders children. No further ordering is promised to
			// callers.
			ids := make([]string, 0, len(all))
			for id := range all {
				ids = append(ids, id)
			}
			sort.Strings(ids)
			products := make([]models.Product, 0, len(all))
			for _, id := range ids {
				products = append(products, all[id])
			}
			return products, nil
		},
	},
}

// Run fetches candidates via the first applicable access rule, applies the
// remaining predicates in memory and truncates at the limit. Matches keep
// the candidate order; scanning stops the moment the limit is reached.
func (e *Engine) Run(ctx context.Context, f Filter) ([]models.Product, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	var candidates []models.Product
	for _, rule := range accessRules {
		if !rule.applies(f) {
			continue
		}
		var err error
		candidates, err = rule.fetch(ctx, e.src, f)
		if err != nil {
			return nil, err
		}
		break
	}

	results := make([]models.Product, 0, limit)
	for _, p := range candidates {
		if !matches(p, f) {
			continue
		}
		results = append(results, p)
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

// matches applies every field predicate, short-circuiting on the first miss.
// A record whose date field cannot be parsed fails the date predicates and
// is excluded on its own; it never fails the whole query.
func matches(p models.Product, f Filter) bool {
	if f.Location != "" && p.Location != f.Location {
		return false
	}
	if f.SKU != "" && p.SKU != f.SKU {
		return false
	}
	if f.PriceMin != nil && p.Price < *f.PriceMin {
		return false
	}
	if f.PriceMax != nil && p.Price > *f.PriceMax {
		return false
	}
	if f.DateFrom != "" {
		d, from, ok := parseDates(p.PurchaseDate, f.DateFrom)
		if !ok || d.Before(from) {
			return false
		}
	}
	if f.DateTo != "" {
		d, to, ok := parseDates(p.PurchaseDate, f.DateTo)
		if !ok || d.After(to) {
			return false
		}
	}
	if f.Description != "" &&
		!strings.Contains(strings.ToLower(p.Description), strings.ToLower(f.Description)) {
		return false
	}
	return true
}

func parseDates(recordDate, filterDate string) (time.Time, time.Time, bool) {
	d, err := time.Parse("2006-01-02", recordDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	fd, err := time.Parse("2006-01-02", filterDate)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	return d, fd, true
}
