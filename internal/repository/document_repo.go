package repository

import (
	"strings"
	"time"

	"go-stockdocs/internal/model"

	"gorm.io/gorm"
)

// DocumentFilter holds the optional predicates of a document query.
// Nil fields impose no constraint; set fields are ANDed together.
type DocumentFilter struct {
	ID         *uint
	UserID     *uint
	FileType   *string
	FileName   *string // case-insensitive substring match
	UploadDate *time.Time
}

type DocumentRepository interface {
	Create(document *model.Document) error
	FindByID(id uint) (*model.Document, error)
	FindByFileNameAndUser(fileName string, userID uint) (*model.Document, error)
	FindWithFilters(filter DocumentFilter) ([]model.Document, error)
	Delete(id uint) error
}

type documentRepo struct {
	db *gorm.DB
}

func NewDocumentRepo(db *gorm.DB) DocumentRepository {
	return &documentRepo{db}
}

func (r *documentRepo) Create(document *model.Document) error {
	return r.db.Create(document).Error
}

func (r *documentRepo) FindByID(id uint) (*model.Document, error) {
	var document model.Document
	err := r.db.Preload("User").Preload("Product").First(&document, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &document, nil
}

func (r *documentRepo) FindByFileNameAndUser(fileName string, userID uint) (*model.Document, error) {
	var document model.Document
	err := r.db.Where("file_name = ? AND user_id = ?", fileName, userID).First(&document).Error
	if err != nil {
		return nil, err
	}
	return &document, nil
}

// FindWithFilters builds the query by conditionally chaining predicates.
// LOWER/LIKE is used instead of ILIKE so the same clause runs on every dialect.
func (r *documentRepo) FindWithFilters(filter DocumentFilter) ([]model.Document, error) {
	query := r.db.Preload("User").Preload("Product")

	if filter.ID != nil {
		query = query.Where("id = ?", *filter.ID)
	}
	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.FileType != nil {
		query = query.Where("file_type = ?", *filter.FileType)
	}
	if filter.FileName != nil {
		query = query.Where("LOWER(file_name) LIKE ?", "%"+strings.ToLower(*filter.FileName)+"%")
	}
	if filter.UploadDate != nil {
		query = query.Where("upload_date = ?", *filter.UploadDate)
	}

	var documents []model.Document
	err := query.Order("upload_date DESC, id DESC").Find(&documents).Error
	return documents, err
}

func (r *documentRepo) Delete(id uint) error {
	return r.db.Delete(&model.Document{}, "id = ?", id).Error
}
