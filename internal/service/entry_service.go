package service

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode"

	"go-stockdocs/internal/model"
	"go-stockdocs/internal/repository"
	"go-stockdocs/internal/ws"
	"go-stockdocs/pkg/validator"

	"github.com/shopspring/decimal"
)

const (
	entryCodeLength = 6
	maxFileSize     = 5 * 1024 * 1024
)

var (
	ErrEntryNotFound   = errors.New("entry not found")
	ErrFileRequired    = errors.New("an invoice file is required")
	ErrFileTooLarge    = errors.New("file exceeds the 5MB limit")
	ErrFileNotPDF      = errors.New("only PDF files are accepted")
	ErrNonPositiveQty  = errors.New("quantity must be greater than zero")
	ErrNonPositiveUnit = errors.New("unit value must be greater than zero")
)

type EntryService interface {
	CreateEntry(req *CreateEntryRequest, file *FileUpload, creatorID string) (*model.ProductEntry, error)
	DeleteEntry(id uint, deleterID string) error
	GetAllEntries() ([]model.EntryResponse, error)
	GetEntryByID(id uint) (*model.EntryResponse, error)
}

// CreateEntryRequest carries the scalar multipart form fields of a stock
// receipt. Monetary values arrive as strings and are parsed into decimals.
type CreateEntryRequest struct {
	ProductID     uint   `json:"product_id" validate:"required"`
	SupplierID    uint   `json:"supplier_id" validate:"required"`
	EntryDate     string `json:"entry_date" validate:"required,dateformat"`
	Quantity      int    `json:"quantity" validate:"required,gt=0"`
	UnitValue     string `json:"unit_value" validate:"required"`
	TotalValue    string `json:"total_value" validate:"required"`
	InvoiceNumber string `json:"invoice_number" validate:"required"`
	Batch         string `json:"batch"`
}

// FileUpload is the single binary part of the multipart payload.
type FileUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

type entryService struct {
	entryRepo    repository.EntryRepository
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	wsHub        *ws.Hub
}

func NewEntryService(entryRepo repository.EntryRepository, productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository, hub *ws.Hub) EntryService {
	return &entryService{
		entryRepo:    entryRepo,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
		wsHub:        hub,
	}
}

// GenerateEntryCode derives a 6-character display label from a name: the
// uppercase initials of each word plus a zero-padded random 4-digit number,
// shuffled together and truncated. It is a convenience label, not a key;
// no collision check is performed.
func GenerateEntryCode(name string) string {
	var chars []rune
	for _, word := range strings.Fields(name) {
		initial := unicode.ToUpper([]rune(word)[0])
		if (initial >= 'A' && initial <= 'Z') || (initial >= '0' && initial <= '9') {
			chars = append(chars, initial)
		}
	}

	chars = append(chars, []rune(fmt.Sprintf("%04d", rand.Intn(10000)))...)

	rand.Shuffle(len(chars), func(i, j int) {
		chars[i], chars[j] = chars[j], chars[i]
	})

	for len(chars) < entryCodeLength {
		chars = append(chars, rune('0'+rand.Intn(10)))
	}

	return string(chars[:entryCodeLength])
}

func (s *entryService) CreateEntry(req *CreateEntryRequest, file *FileUpload, creatorID string) (*model.ProductEntry, error) {
	// 1. Validate scalar fields
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// 2. Validate the attached file
	if file == nil || len(file.Data) == 0 {
		return nil, ErrFileRequired
	}
	if len(file.Data) > maxFileSize {
		return nil, ErrFileTooLarge
	}
	if file.ContentType != "application/pdf" {
		return nil, ErrFileNotPDF
	}

	// 3. Parse monetary values
	unitValue, err := decimal.NewFromString(req.UnitValue)
	if err != nil || !unitValue.IsPositive() {
		return nil, ErrNonPositiveUnit
	}
	if req.Quantity <= 0 {
		return nil, ErrNonPositiveQty
	}
	// The total is precomputed by the client and stored as submitted
	totalValue, err := decimal.NewFromString(req.TotalValue)
	if err != nil {
		return nil, errors.New("invalid total value")
	}

	// 4. Resolve references
	product, err := s.productRepo.FindByID(req.ProductID)
	if err != nil {
		return nil, ErrProductNotFound
	}
	supplier, err := s.supplierRepo.FindByID(req.SupplierID)
	if err != nil {
		return nil, ErrSupplierNotFound
	}

	entryDate, err := time.Parse("2006-01-02", req.EntryDate)
	if err != nil {
		return nil, errors.New("invalid entry_date format, use YYYY-MM-DD")
	}

	// 5. Build and persist the entry
	entry := &model.ProductEntry{
		EntryCode:     GenerateEntryCode(product.Name),
		ProductID:     product.ID,
		SupplierID:    supplier.ID,
		EntryDate:     entryDate,
		Quantity:      req.Quantity,
		UnitValue:     unitValue,
		TotalValue:    totalValue,
		InvoiceNumber: req.InvoiceNumber,
		Batch:         req.Batch,
		FileName:      file.Name,
		FileType:      file.ContentType,
		FileData:      file.Data,
	}
	entry.CreatedBy = creatorID
	entry.UpdatedBy = creatorID

	if err := s.entryRepo.Create(entry); err != nil {
		return nil, err
	}

	entry.Product = product
	entry.Supplier = supplier

	s.wsHub.Notify(ws.Event{
		Type:     "entry_activity",
		Action:   "entry_created",
		Resource: entry.ToResponse(),
		Actor:    creatorID,
		Message:  fmt.Sprintf("entry %s recorded for product '%s'", entry.EntryCode, product.Name),
	})

	return entry, nil
}

func (s *entryService) DeleteEntry(id uint, deleterID string) error {
	entry, err := s.entryRepo.FindByID(id)
	if err != nil {
		return ErrEntryNotFound
	}

	if err := s.entryRepo.Delete(id); err != nil {
		return err
	}

	s.wsHub.Notify(ws.Event{
		Type:    "entry_activity",
		Action:  "entry_deleted",
		Actor:   deleterID,
		Message: fmt.Sprintf("entry %s deleted", entry.EntryCode),
	})

	return nil
}

func (s *entryService) GetAllEntries() ([]model.EntryResponse, error) {
	entries, err := s.entryRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.EntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = entry.ToResponse()
	}
	return responses, nil
}

func (s *entryService) GetEntryByID(id uint) (*model.EntryResponse, error) {
	entry, err := s.entryRepo.FindByID(id)
	if err != nil {
		return nil, ErrEntryNotFound
	}
	response := entry.ToResponse()
	return &response, nil
}
