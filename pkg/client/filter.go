package client

import (
	"errors"
	"strconv"
	"strings"

	"go-stockdocs/internal/model"

	"github.com/shopspring/decimal"
)

var (
	ErrFileMissing = errors.New("an attached file is required before submitting")
	ErrNoMatch     = errors.New("no matching record")
)

// FilterSuppliers narrows an already-fetched list by a case-insensitive
// substring across name, email and phone number.
func FilterSuppliers(suppliers []model.Supplier, term string) []model.Supplier {
	if term == "" {
		return suppliers
	}

	needle := strings.ToLower(term)
	var matched []model.Supplier
	for _, s := range suppliers {
		if strings.Contains(strings.ToLower(s.Name), needle) ||
			strings.Contains(strings.ToLower(s.Email), needle) ||
			strings.Contains(s.PhoneNumber, needle) {
			matched = append(matched, s)
		}
	}
	return matched
}

// FilterEntries narrows a fetched entry list by product name, supplier name
// or invoice number.
func FilterEntries(entries []model.EntryResponse, term string) []model.EntryResponse {
	if term == "" {
		return entries
	}

	needle := strings.ToLower(term)
	var matched []model.EntryResponse
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.InvoiceNumber), needle) {
			matched = append(matched, e)
			continue
		}
		if e.Product != nil && strings.Contains(strings.ToLower(e.Product.Name), needle) {
			matched = append(matched, e)
			continue
		}
		if e.Supplier != nil && strings.Contains(strings.ToLower(e.Supplier.Name), needle) {
			matched = append(matched, e)
		}
	}
	return matched
}

// ResolveProduct picks a product from a loaded list by numeric id or by
// free-text name match. A numeric input that matches no id is invalid.
func ResolveProduct(products []model.Product, input string) (*model.Product, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrNoMatch
	}

	if id, err := strconv.ParseUint(input, 10, 32); err == nil {
		for i := range products {
			if products[i].ID == uint(id) {
				return &products[i], nil
			}
		}
		return nil, ErrNoMatch
	}

	needle := strings.ToLower(input)
	for i := range products {
		if strings.ToLower(products[i].Name) == needle {
			return &products[i], nil
		}
	}
	for i := range products {
		if strings.Contains(strings.ToLower(products[i].Name), needle) {
			return &products[i], nil
		}
	}
	return nil, ErrNoMatch
}

// ResolveSupplier is the supplier counterpart of ResolveProduct.
func ResolveSupplier(suppliers []model.Supplier, input string) (*model.Supplier, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, ErrNoMatch
	}

	if id, err := strconv.ParseUint(input, 10, 32); err == nil {
		for i := range suppliers {
			if suppliers[i].ID == uint(id) {
				return &suppliers[i], nil
			}
		}
		return nil, ErrNoMatch
	}

	needle := strings.ToLower(input)
	for i := range suppliers {
		if strings.ToLower(suppliers[i].Name) == needle {
			return &suppliers[i], nil
		}
	}
	for i := range suppliers {
		if strings.Contains(strings.ToLower(suppliers[i].Name), needle) {
			return &suppliers[i], nil
		}
	}
	return nil, ErrNoMatch
}

// EntryTotal recomputes the derived total from current form state.
func EntryTotal(quantity int, unitValue decimal.Decimal) decimal.Decimal {
	return unitValue.Mul(decimal.NewFromInt(int64(quantity)))
}
