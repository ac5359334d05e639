package service

import (
	"errors"
	"fmt"
	"time"

	"go-stockdocs/internal/model"
	"go-stockdocs/internal/repository"
	"go-stockdocs/internal/ws"
)

var (
	ErrDocumentNotFound = errors.New("document not found")
	ErrDocumentExists   = errors.New("a document with this filename already exists for this user")
)

type DocumentService interface {
	Upload(req *UploadDocumentRequest, file *FileUpload, creatorID string) (*model.Document, error)
	Find(filter repository.DocumentFilter) ([]model.DocumentResponse, error)
	GetByID(id uint) (*model.DocumentResponse, error)
	Download(id uint) (*model.Document, error)
	Delete(id uint, deleterID string) error
}

type UploadDocumentRequest struct {
	UserID    uint  `json:"user_id" validate:"required"`
	ProductID *uint `json:"product_id,omitempty"`
}

type documentService struct {
	documentRepo repository.DocumentRepository
	userRepo     repository.UserRepository
	productRepo  repository.ProductRepository
	wsHub        *ws.Hub
}

func NewDocumentService(documentRepo repository.DocumentRepository, userRepo repository.UserRepository,
	productRepo repository.ProductRepository, hub *ws.Hub) DocumentService {
	return &documentService{
		documentRepo: documentRepo,
		userRepo:     userRepo,
		productRepo:  productRepo,
		wsHub:        hub,
	}
}

func (s *documentService) Upload(req *UploadDocumentRequest, file *FileUpload, creatorID string) (*model.Document, error) {
	// 1. Validate the file
	if file == nil || len(file.Data) == 0 {
		return nil, ErrFileRequired
	}
	if len(file.Data) > maxFileSize {
		return nil, ErrFileTooLarge
	}

	// 2. Resolve the owner
	user, err := s.userRepo.FindByID(req.UserID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// 3. Resolve the optional product reference
	if req.ProductID != nil {
		if _, err := s.productRepo.FindByID(*req.ProductID); err != nil {
			return nil, ErrProductNotFound
		}
	}

	// 4. The filename+owner combination must not duplicate
	if existing, _ := s.documentRepo.FindByFileNameAndUser(file.Name, user.ID); existing != nil {
		return nil, ErrDocumentExists
	}

	// 5. Persist. Upload date keeps day precision so the exact-date filter matches
	document := &model.Document{
		FileName:   file.Name,
		FileType:   file.ContentType,
		UploadDate: time.Now().Truncate(24 * time.Hour),
		UserID:     user.ID,
		ProductID:  req.ProductID,
		Content:    file.Data,
	}
	document.CreatedBy = creatorID
	document.UpdatedBy = creatorID

	if err := s.documentRepo.Create(document); err != nil {
		return nil, err
	}

	document.User = user

	s.wsHub.Notify(ws.Event{
		Type:     "document_activity",
		Action:   "document_uploaded",
		Resource: document.ToResponse(),
		Actor:    creatorID,
		Message:  fmt.Sprintf("document '%s' uploaded", document.FileName),
	})

	return document, nil
}

func (s *documentService) Find(filter repository.DocumentFilter) ([]model.DocumentResponse, error) {
	documents, err := s.documentRepo.FindWithFilters(filter)
	if err != nil {
		return nil, err
	}

	responses := make([]model.DocumentResponse, len(documents))
	for i, document := range documents {
		responses[i] = document.ToResponse()
	}
	return responses, nil
}

func (s *documentService) GetByID(id uint) (*model.DocumentResponse, error) {
	document, err := s.documentRepo.FindByID(id)
	if err != nil {
		return nil, ErrDocumentNotFound
	}
	response := document.ToResponse()
	return &response, nil
}

// Download returns the full record including stored content.
func (s *documentService) Download(id uint) (*model.Document, error) {
	document, err := s.documentRepo.FindByID(id)
	if err != nil {
		return nil, ErrDocumentNotFound
	}
	return document, nil
}

func (s *documentService) Delete(id uint, deleterID string) error {
	document, err := s.documentRepo.FindByID(id)
	if err != nil {
		return ErrDocumentNotFound
	}

	if err := s.documentRepo.Delete(id); err != nil {
		return err
	}

	s.wsHub.Notify(ws.Event{
		Type:    "document_activity",
		Action:  "document_deleted",
		Actor:   deleterID,
		Message: fmt.Sprintf("document '%s' deleted", document.FileName),
	})

	return nil
}
