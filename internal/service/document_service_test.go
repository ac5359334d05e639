package service

import (
	"testing"
	"time"

	"go-stockdocs/internal/model"
	"go-stockdocs/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDocumentService(t *testing.T) (DocumentService, *gorm.DB) {
	t.Helper()
	db := setupTestDB()

	svc := NewDocumentService(
		repository.NewDocumentRepo(db),
		repository.NewUserRepo(db),
		repository.NewProductRepo(db),
		setupTestHub(),
	)
	return svc, db
}

func seedOwner(t *testing.T, db *gorm.DB, email string) model.User {
	t.Helper()
	user := model.User{UID: "uid-" + email, FullName: "Owner", Email: email, Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestUploadDocument(t *testing.T) {
	svc, db := newDocumentService(t)
	owner := seedOwner(t, db, "owner@example.com")

	document, err := svc.Upload(&UploadDocumentRequest{UserID: owner.ID}, &FileUpload{
		Name:        "invoice-42.pdf",
		ContentType: "application/pdf",
		Data:        []byte("content"),
	}, "tester")
	require.NoError(t, err)

	assert.Equal(t, owner.ID, document.UserID)
	assert.Equal(t, []byte("content"), document.Content)
	assert.False(t, document.UploadDate.IsZero())
}

func TestUploadDocumentDuplicate(t *testing.T) {
	svc, db := newDocumentService(t)
	owner := seedOwner(t, db, "owner@example.com")
	other := seedOwner(t, db, "other@example.com")

	file := func() *FileUpload {
		return &FileUpload{Name: "report.pdf", ContentType: "application/pdf", Data: []byte("x")}
	}

	_, err := svc.Upload(&UploadDocumentRequest{UserID: owner.ID}, file(), "tester")
	require.NoError(t, err)

	// Same filename for the same owner is rejected
	_, err = svc.Upload(&UploadDocumentRequest{UserID: owner.ID}, file(), "tester")
	assert.ErrorIs(t, err, ErrDocumentExists)

	// Same filename for a different owner is fine
	_, err = svc.Upload(&UploadDocumentRequest{UserID: other.ID}, file(), "tester")
	assert.NoError(t, err)
}

func TestUploadDocumentUnknownReferences(t *testing.T) {
	svc, db := newDocumentService(t)
	owner := seedOwner(t, db, "owner@example.com")

	file := &FileUpload{Name: "a.pdf", ContentType: "application/pdf", Data: []byte("x")}

	_, err := svc.Upload(&UploadDocumentRequest{UserID: 9999}, file, "tester")
	assert.ErrorIs(t, err, ErrUserNotFound)

	missing := uint(9999)
	_, err = svc.Upload(&UploadDocumentRequest{UserID: owner.ID, ProductID: &missing}, file, "tester")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFindDocumentsWithFilters(t *testing.T) {
	svc, db := newDocumentService(t)
	owner := seedOwner(t, db, "owner@example.com")
	other := seedOwner(t, db, "other@example.com")

	may5 := time.Date(2026, 5, 5, 0, 0, 0, 0, time.UTC)
	may6 := time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC)

	seed := []model.Document{
		{FileName: "Invoice-2026.pdf", FileType: "application/pdf", UploadDate: may5, UserID: owner.ID, Content: []byte("a")},
		{FileName: "receipt.png", FileType: "image/png", UploadDate: may5, UserID: owner.ID, Content: []byte("b")},
		{FileName: "inventory-report.pdf", FileType: "application/pdf", UploadDate: may6, UserID: other.ID, Content: []byte("c")},
	}
	for i := range seed {
		require.NoError(t, db.Create(&seed[i]).Error)
	}

	// No filters returns the full set
	all, err := svc.Find(repository.DocumentFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Case-insensitive filename substring
	name := "inv"
	matched, err := svc.Find(repository.DocumentFilter{FileName: &name})
	require.NoError(t, err)
	require.Len(t, matched, 2)
	for _, d := range matched {
		assert.Contains(t, []string{"Invoice-2026.pdf", "inventory-report.pdf"}, d.FileName)
	}

	// File type
	pdf := "application/pdf"
	matched, err = svc.Find(repository.DocumentFilter{FileType: &pdf})
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	// Owner
	matched, err = svc.Find(repository.DocumentFilter{UserID: &owner.ID})
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	// Exact upload date
	matched, err = svc.Find(repository.DocumentFilter{UploadDate: &may6})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "inventory-report.pdf", matched[0].FileName)

	// Conjunction of filters
	matched, err = svc.Find(repository.DocumentFilter{FileName: &name, UserID: &owner.ID})
	require.NoError(t, err)
	require.Len(t, matched, 1)
	assert.Equal(t, "Invoice-2026.pdf", matched[0].FileName)

	// A filter matching nothing
	missing := uint(9999)
	matched, err = svc.Find(repository.DocumentFilter{ID: &missing})
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestDownloadDocument(t *testing.T) {
	svc, db := newDocumentService(t)
	owner := seedOwner(t, db, "owner@example.com")

	uploaded, err := svc.Upload(&UploadDocumentRequest{UserID: owner.ID}, &FileUpload{
		Name:        "raw.bin",
		ContentType: "application/octet-stream",
		Data:        []byte{0x00, 0x01, 0xFF},
	}, "tester")
	require.NoError(t, err)

	document, err := svc.Download(uploaded.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x01, 0xFF}, document.Content)

	_, err = svc.Download(9999)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDeleteDocument(t *testing.T) {
	svc, db := newDocumentService(t)
	owner := seedOwner(t, db, "owner@example.com")

	uploaded, err := svc.Upload(&UploadDocumentRequest{UserID: owner.ID}, &FileUpload{
		Name:        "gone.pdf",
		ContentType: "application/pdf",
		Data:        []byte("x"),
	}, "tester")
	require.NoError(t, err)

	assert.NoError(t, svc.Delete(uploaded.ID, "tester"))
	assert.ErrorIs(t, svc.Delete(uploaded.ID, "tester"), ErrDocumentNotFound)
	assert.ErrorIs(t, svc.Delete(9999, "tester"), ErrDocumentNotFound)
}
