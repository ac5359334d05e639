package client

import (
	"testing"

	"go-stockdocs/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSuppliers() []model.Supplier {
	acme := model.Supplier{Name: "Acme Fasteners", Email: "sales@acme.test", PhoneNumber: "555-0100"}
	acme.ID = 1
	bolts := model.Supplier{Name: "Bolts R Us", Email: "hello@bolts.test", PhoneNumber: "555-0200"}
	bolts.ID = 2
	return []model.Supplier{acme, bolts}
}

func sampleProducts() []model.Product {
	bolt := model.Product{Name: "Hex Bolt M8"}
	bolt.ID = 10
	washer := model.Product{Name: "Washer Pack"}
	washer.ID = 11
	return []model.Product{bolt, washer}
}

func TestFilterSuppliers(t *testing.T) {
	suppliers := sampleSuppliers()

	assert.Len(t, FilterSuppliers(suppliers, ""), 2, "empty term keeps everything")
	assert.Len(t, FilterSuppliers(suppliers, "ACME"), 1)
	assert.Len(t, FilterSuppliers(suppliers, "bolts.test"), 1)
	assert.Len(t, FilterSuppliers(suppliers, "555-0"), 2)
	assert.Empty(t, FilterSuppliers(suppliers, "zzz"))
}

func TestFilterEntries(t *testing.T) {
	product := &model.Product{Name: "Hex Bolt M8"}
	supplier := &model.Supplier{Name: "Acme Fasteners"}

	entries := []model.EntryResponse{
		{InvoiceNumber: "NF-100", Product: product, Supplier: supplier},
		{InvoiceNumber: "NF-200", Product: &model.Product{Name: "Washer Pack"}},
	}

	assert.Len(t, FilterEntries(entries, ""), 2)
	assert.Len(t, FilterEntries(entries, "nf-1"), 1)
	assert.Len(t, FilterEntries(entries, "hex"), 1)
	assert.Len(t, FilterEntries(entries, "acme"), 1)
	assert.Empty(t, FilterEntries(entries, "missing"))
}

func TestResolveProduct(t *testing.T) {
	products := sampleProducts()

	byID, err := ResolveProduct(products, "10")
	require.NoError(t, err)
	assert.Equal(t, "Hex Bolt M8", byID.Name)

	// A numeric input matching no id is invalid, not a name search
	_, err = ResolveProduct(products, "99")
	assert.ErrorIs(t, err, ErrNoMatch)

	byName, err := ResolveProduct(products, "washer pack")
	require.NoError(t, err)
	assert.Equal(t, uint(11), byName.ID)

	byPartial, err := ResolveProduct(products, "bolt")
	require.NoError(t, err)
	assert.Equal(t, uint(10), byPartial.ID)

	_, err = ResolveProduct(products, "")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestResolveSupplier(t *testing.T) {
	suppliers := sampleSuppliers()

	byID, err := ResolveSupplier(suppliers, "2")
	require.NoError(t, err)
	assert.Equal(t, "Bolts R Us", byID.Name)

	byName, err := ResolveSupplier(suppliers, "acme fasteners")
	require.NoError(t, err)
	assert.Equal(t, uint(1), byName.ID)

	_, err = ResolveSupplier(suppliers, "7")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestEntryTotal(t *testing.T) {
	total := EntryTotal(2, decimal.RequireFromString("10.5"))
	assert.True(t, total.Equal(decimal.RequireFromString("21.00")))

	assert.True(t, EntryTotal(0, decimal.RequireFromString("10.5")).IsZero())
	assert.True(t, EntryTotal(3, decimal.RequireFromString("0.10")).Equal(decimal.RequireFromString("0.3")))
}
