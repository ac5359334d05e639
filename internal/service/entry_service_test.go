package service

import (
	"testing"

	"go-stockdocs/internal/model"
	"go-stockdocs/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newEntryService(t *testing.T) (EntryService, *gorm.DB) {
	t.Helper()
	db := setupTestDB()

	svc := NewEntryService(
		repository.NewEntryRepo(db),
		repository.NewProductRepo(db),
		repository.NewSupplierRepo(db),
		setupTestHub(),
	)
	return svc, db
}

func seedCatalog(t *testing.T, db *gorm.DB) (model.Product, model.Supplier) {
	t.Helper()

	product := model.Product{Name: "Hex Bolt M8"}
	require.NoError(t, db.Create(&product).Error)

	supplier := model.Supplier{Name: "Acme Fasteners", Email: "sales@acme.test"}
	require.NoError(t, db.Create(&supplier).Error)

	return product, supplier
}

func pdfUpload() *FileUpload {
	return &FileUpload{
		Name:        "invoice-001.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-1.4 fake"),
	}
}

func TestGenerateEntryCode(t *testing.T) {
	names := []string{
		"Hex Bolt M8",
		"a",
		"Stainless Steel Washer Pack Large",
		"3m tape",
		"  spaced   words  ",
		"ação especial", // non-ASCII initials are skipped, digits pad the rest
	}

	for _, name := range names {
		for i := 0; i < 50; i++ {
			code := GenerateEntryCode(name)
			assert.Len(t, code, 6, "name %q", name)
			for _, r := range code {
				isUpper := r >= 'A' && r <= 'Z'
				isDigit := r >= '0' && r <= '9'
				assert.True(t, isUpper || isDigit, "name %q produced char %q", name, r)
			}
		}
	}
}

func TestCreateEntry(t *testing.T) {
	svc, db := newEntryService(t)
	product, supplier := seedCatalog(t, db)

	entry, err := svc.CreateEntry(&CreateEntryRequest{
		ProductID:     product.ID,
		SupplierID:    supplier.ID,
		EntryDate:     "2026-08-20",
		Quantity:      2,
		UnitValue:     "10.5",
		TotalValue:    "21.00",
		InvoiceNumber: "NF-123",
		Batch:         "L-7",
	}, pdfUpload(), "tester")
	require.NoError(t, err)

	assert.Len(t, entry.EntryCode, 6)
	assert.Equal(t, 2, entry.Quantity)
	// Total is stored exactly as submitted
	assert.True(t, entry.TotalValue.Equal(decimal.RequireFromString("21.00")))
	assert.True(t, entry.TotalValue.Equal(entry.UnitValue.Mul(decimal.NewFromInt(int64(entry.Quantity)))))
	assert.Equal(t, "invoice-001.pdf", entry.FileName)
	assert.NotEmpty(t, entry.FileData)
}

func TestCreateEntryFileValidation(t *testing.T) {
	svc, db := newEntryService(t)
	product, supplier := seedCatalog(t, db)

	req := func() *CreateEntryRequest {
		return &CreateEntryRequest{
			ProductID:     product.ID,
			SupplierID:    supplier.ID,
			EntryDate:     "2026-08-20",
			Quantity:      1,
			UnitValue:     "5.00",
			TotalValue:    "5.00",
			InvoiceNumber: "NF-1",
		}
	}

	_, err := svc.CreateEntry(req(), nil, "tester")
	assert.ErrorIs(t, err, ErrFileRequired)

	_, err = svc.CreateEntry(req(), &FileUpload{Name: "empty.pdf", ContentType: "application/pdf"}, "tester")
	assert.ErrorIs(t, err, ErrFileRequired)

	_, err = svc.CreateEntry(req(), &FileUpload{
		Name:        "photo.png",
		ContentType: "image/png",
		Data:        []byte("not a pdf"),
	}, "tester")
	assert.ErrorIs(t, err, ErrFileNotPDF)

	_, err = svc.CreateEntry(req(), &FileUpload{
		Name:        "huge.pdf",
		ContentType: "application/pdf",
		Data:        make([]byte, maxFileSize+1),
	}, "tester")
	assert.ErrorIs(t, err, ErrFileTooLarge)
}

func TestCreateEntryValueValidation(t *testing.T) {
	svc, db := newEntryService(t)
	product, supplier := seedCatalog(t, db)

	base := CreateEntryRequest{
		ProductID:     product.ID,
		SupplierID:    supplier.ID,
		EntryDate:     "2026-08-20",
		Quantity:      1,
		UnitValue:     "5.00",
		TotalValue:    "5.00",
		InvoiceNumber: "NF-1",
	}

	neg := base
	neg.Quantity = -3
	_, err := svc.CreateEntry(&neg, pdfUpload(), "tester")
	assert.Error(t, err)

	zeroUnit := base
	zeroUnit.UnitValue = "0"
	_, err = svc.CreateEntry(&zeroUnit, pdfUpload(), "tester")
	assert.ErrorIs(t, err, ErrNonPositiveUnit)

	badUnit := base
	badUnit.UnitValue = "abc"
	_, err = svc.CreateEntry(&badUnit, pdfUpload(), "tester")
	assert.ErrorIs(t, err, ErrNonPositiveUnit)

	badDate := base
	badDate.EntryDate = "20/08/2026"
	_, err = svc.CreateEntry(&badDate, pdfUpload(), "tester")
	assert.Error(t, err)
}

func TestCreateEntryUnknownReferences(t *testing.T) {
	svc, db := newEntryService(t)
	product, supplier := seedCatalog(t, db)

	noProduct := &CreateEntryRequest{
		ProductID:     9999,
		SupplierID:    supplier.ID,
		EntryDate:     "2026-08-20",
		Quantity:      1,
		UnitValue:     "5.00",
		TotalValue:    "5.00",
		InvoiceNumber: "NF-1",
	}
	_, err := svc.CreateEntry(noProduct, pdfUpload(), "tester")
	assert.ErrorIs(t, err, ErrProductNotFound)

	noSupplier := &CreateEntryRequest{
		ProductID:     product.ID,
		SupplierID:    9999,
		EntryDate:     "2026-08-20",
		Quantity:      1,
		UnitValue:     "5.00",
		TotalValue:    "5.00",
		InvoiceNumber: "NF-1",
	}
	_, err = svc.CreateEntry(noSupplier, pdfUpload(), "tester")
	assert.ErrorIs(t, err, ErrSupplierNotFound)
}

func TestDeleteEntry(t *testing.T) {
	svc, db := newEntryService(t)
	product, supplier := seedCatalog(t, db)

	entry, err := svc.CreateEntry(&CreateEntryRequest{
		ProductID:     product.ID,
		SupplierID:    supplier.ID,
		EntryDate:     "2026-08-20",
		Quantity:      1,
		UnitValue:     "5.00",
		TotalValue:    "5.00",
		InvoiceNumber: "NF-1",
	}, pdfUpload(), "tester")
	require.NoError(t, err)

	assert.NoError(t, svc.DeleteEntry(entry.ID, "tester"))
	assert.ErrorIs(t, svc.DeleteEntry(entry.ID, "tester"), ErrEntryNotFound)
	assert.ErrorIs(t, svc.DeleteEntry(9999, "tester"), ErrEntryNotFound)
}

func TestGetAllEntries(t *testing.T) {
	svc, db := newEntryService(t)
	product, supplier := seedCatalog(t, db)

	for _, invoice := range []string{"NF-1", "NF-2"} {
		_, err := svc.CreateEntry(&CreateEntryRequest{
			ProductID:     product.ID,
			SupplierID:    supplier.ID,
			EntryDate:     "2026-08-20",
			Quantity:      1,
			UnitValue:     "5.00",
			TotalValue:    "5.00",
			InvoiceNumber: invoice,
		}, pdfUpload(), "tester")
		require.NoError(t, err)
	}

	entries, err := svc.GetAllEntries()
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	require.NotNil(t, entries[0].Product)
	assert.Equal(t, product.Name, entries[0].Product.Name)
}
