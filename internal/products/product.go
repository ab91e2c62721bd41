// Package products serves the product catalog API: an in-memory store, the
// query helpers behind listing/search/stats, and the HTTP handlers.
package products

import (
	"github.com/go-playground/validator/v10"
)

type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"inStock"`
}

// Fields is everything about a product except its id.
type Fields struct {
	Name        string
	Description string
	Price       float64
	Category    string
	InStock     bool
}

// Input is the create/update request body. Pointers distinguish an absent
// (or null) field from its zero value.
type Input struct {
	// ID is accepted so a fetched product can be sent back as-is, but it is
	// never stored: ids are server-assigned.
	ID *string `json:"id,omitempty"`

	Name        *string  `json:"name" validate:"required"`
	Description *string  `json:"description" validate:"required"`
	Price       *float64 `json:"price" validate:"required"`
	Category    *string  `json:"category" validate:"required"`
	InStock     *bool    `json:"inStock" validate:"required"`
}

var validate = validator.New()

// Validate checks presence only: 0, false and "" are valid values, a missing
// or null field is not.
func (in Input) Validate() error {
	if err := validate.Struct(in); err != nil {
		return ErrMissingFields
	}
	return nil
}

// Fields must only be called after Validate succeeded.
func (in Input) Fields() Fields {
	return Fields{
		Name:        *in.Name,
		Description: *in.Description,
		Price:       *in.Price,
		Category:    *in.Category,
		InStock:     *in.InStock,
	}
}

func (f Fields) withID(id string) Product {
	return Product{
		ID:          id,
		Name:        f.Name,
		Description: f.Description,
		Price:       f.Price,
		Category:    f.Category,
		InStock:     f.InStock,
	}
}
