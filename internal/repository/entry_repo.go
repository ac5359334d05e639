package repository

import (
	"go-stockdocs/internal/model"

	"gorm.io/gorm"
)

type EntryRepository interface {
	Create(entry *model.ProductEntry) error
	FindAll() ([]model.ProductEntry, error)
	FindByID(id uint) (*model.ProductEntry, error)
	Delete(id uint) error
}

type entryRepo struct {
	db *gorm.DB
}

func NewEntryRepo(db *gorm.DB) EntryRepository {
	return &entryRepo{db}
}

func (r *entryRepo) Create(entry *model.ProductEntry) error {
	return r.db.Create(entry).Error
}

func (r *entryRepo) FindAll() ([]model.ProductEntry, error) {
	var entries []model.ProductEntry
	err := r.db.Preload("Product").Preload("Supplier").
		Order("entry_date DESC, created_at DESC").
		Find(&entries).Error
	return entries, err
}

func (r *entryRepo) FindByID(id uint) (*model.ProductEntry, error) {
	var entry model.ProductEntry
	err := r.db.Preload("Product").Preload("Supplier").First(&entry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *entryRepo) Delete(id uint) error {
	return r.db.Delete(&model.ProductEntry{}, "id = ?", id).Error
}
