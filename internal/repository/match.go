package repository

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/agrover-luv/SlashAlert-API/internal/model"
)

// In-memory threshold and date filters shared by the providers. The
// flat-file provider has nothing but in-memory evaluation; the document
// providers use these for filters that must coerce string-stored values,
// so that "150" and a native 150 are treated the same. A record whose
// value does not parse is excluded, never an error.

// ProductsInPriceRange keeps products whose current_price parses and
// falls within [min, max].
func ProductsInPriceRange(products []model.Product, min, max decimal.Decimal) []model.Product {
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		price, ok := p.CurrentPrice.Decimal()
		if !ok {
			continue
		}
		if price.GreaterThanOrEqual(min) && price.LessThanOrEqual(max) {
			out = append(out, p)
		}
	}
	return out
}

// RetailersWithGuaranteeDays keeps retailers whose price_guarantee_days
// parses to at least minDays.
func RetailersWithGuaranteeDays(retailers []model.Retailer, minDays int) []model.Retailer {
	out := make([]model.Retailer, 0, len(retailers))
	for _, r := range retailers {
		if days, ok := r.PriceGuaranteeDays.Int(); ok && days >= minDays {
			out = append(out, r)
		}
	}
	return out
}

// ReviewsWithMinRating keeps reviews whose rating parses to at least
// minRating.
func ReviewsWithMinRating(reviews []model.Review, minRating int) []model.Review {
	out := make([]model.Review, 0, len(reviews))
	for _, r := range reviews {
		if rating, ok := r.Rating.Int(); ok && rating >= minRating {
			out = append(out, r)
		}
	}
	return out
}

// HistoriesInDateRange keeps price points whose date parses and falls
// within [start, end].
func HistoriesInDateRange(histories []model.PriceHistory, start, end time.Time) []model.PriceHistory {
	out := make([]model.PriceHistory, 0, len(histories))
	for _, h := range histories {
		t, ok := h.Date.Time()
		if !ok {
			continue
		}
		if !t.Before(start) && !t.After(end) {
			out = append(out, h)
		}
	}
	return out
}

// HistoriesWithPriceDrop keeps price points whose change_percentage marks
// a drop (leading minus sign, per the source data convention).
func HistoriesWithPriceDrop(histories []model.PriceHistory) []model.PriceHistory {
	out := make([]model.PriceHistory, 0, len(histories))
	for _, h := range histories {
		if strings.HasPrefix(strings.TrimSpace(h.ChangePercentage.String()), "-") {
			out = append(out, h)
		}
	}
	return out
}

// SortHistoriesNewestFirst orders price points by their parsed date,
// newest first. Unparsable dates sort last.
func SortHistoriesNewestFirst(histories []model.PriceHistory) {
	sort.SliceStable(histories, func(i, j int) bool {
		ti, iok := histories[i].Date.Time()
		tj, jok := histories[j].Date.Time()
		if iok != jok {
			return iok
		}
		return ti.After(tj)
	})
}

// CachesCheckedSince keeps cache rows whose last_checked parses to a time
// at or after cutoff.
func CachesCheckedSince(caches []model.PriceCache, cutoff time.Time) []model.PriceCache {
	out := make([]model.PriceCache, 0, len(caches))
	for _, c := range caches {
		if t, ok := c.LastChecked.Time(); ok && !t.Before(cutoff) {
			out = append(out, c)
		}
	}
	return out
}

// CachesWithDiscount keeps cache rows carrying a non-empty, non-zero
// discount amount.
func CachesWithDiscount(caches []model.PriceCache) []model.PriceCache {
	out := make([]model.PriceCache, 0, len(caches))
	for _, c := range caches {
		v := strings.TrimSpace(c.DiscountAmount.String())
		if v != "" && v != "0" {
			out = append(out, c)
		}
	}
	return out
}
