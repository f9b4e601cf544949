package view

import (
	"reflect"
)

const AllOption = "all"

var (
	BrandOptions      = []string{AllOption, "apple", "samsung", "sony", "nike", "adidas", "canon", "dell"}
	PriceRangeOptions = []string{AllOption, "0-10000", "10000-50000", "50000-100000", "100000+"}
	RatingOptions     = []string{AllOption, "4.5+", "4.0+", "3.5+"}
)

// Filters are the brand, price range and rating selections. They are kept
// in state and shown back to the user, but they are not applied to the
// product list: only the server-side name search narrows results.
type Filters struct {
	Brand      string `filter:"brand"`
	PriceRange string `filter:"price"`
	Rating     string `filter:"rating"`
}

func DefaultFilters() Filters {
	return Filters{Brand: AllOption, PriceRange: AllOption, Rating: AllOption}
}

// Applied reports whether the filters take part in selecting rows. It is
// always false; whether they should narrow server or client results is
// still open.
func (Filters) Applied() bool {
	return false
}

// Tags returns the selections keyed by their filter tag, in field order.
func (f Filters) Tags() []FilterSelection {
	v := reflect.ValueOf(f)
	t := v.Type()
	out := make([]FilterSelection, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		out = append(out, FilterSelection{
			Tag:   t.Field(i).Tag.Get("filter"),
			Value: v.Field(i).String(),
		})
	}
	return out
}

type FilterSelection struct {
	Tag   string
	Value string
}
