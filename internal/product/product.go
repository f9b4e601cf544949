package product

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Vendor identifies one of the three stores every product is offered by.
type Vendor string

const (
	Amazon   Vendor = "amazon"
	Flipkart Vendor = "flipkart"
	Myntra   Vendor = "myntra"
)

var vendors = [...]Vendor{Amazon, Flipkart, Myntra}

// Vendors returns the vendors in their fixed comparison order.
func Vendors() []Vendor {
	out := make([]Vendor, len(vendors))
	copy(out, vendors[:])
	return out
}

func (v Vendor) DisplayName() string {
	switch v {
	case Amazon:
		return "Amazon"
	case Flipkart:
		return "Flipkart"
	case Myntra:
		return "Myntra"
	}
	return string(v)
}

const MaxRating = 5.0

var ErrInvalidProduct = errors.New("invalid product")

type Offer struct {
	Price  int64   `json:"price" validate:"gte=0"`
	Rating float64 `json:"rating" validate:"gte=0,lte=5"`
	URL    string  `json:"url"`
}

type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name" validate:"notblank"`
	Amazon   Offer  `json:"amazon"`
	Flipkart Offer  `json:"flipkart"`
	Myntra   Offer  `json:"myntra"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// Offer returns the product's offer for v. Unknown vendors yield the zero Offer.
func (p Product) Offer(v Vendor) Offer {
	switch v {
	case Amazon:
		return p.Amazon
	case Flipkart:
		return p.Flipkart
	case Myntra:
		return p.Myntra
	}
	return Offer{}
}

// Validate reports the first field that breaks the product invariants.
func (p Product) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: id %d: %v", ErrInvalidProduct, p.ID, err)
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "notblank":
		return fmt.Errorf("%w: id %d has an empty name", ErrInvalidProduct, p.ID)
	case "gte", "lte":
		return fmt.Errorf("%w: id %d %s is %v, must be %s %s", ErrInvalidProduct, p.ID, strings.ToLower(strings.TrimPrefix(fe.Namespace(), "Product.")), fe.Value(), fe.Tag(), fe.Param())
	default:
		return fmt.Errorf("%w: id %d %s is invalid", ErrInvalidProduct, p.ID, fe.Field())
	}
}
