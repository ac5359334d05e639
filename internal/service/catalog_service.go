package service

import (
	"errors"
	"fmt"

	"go-stockdocs/internal/model"
	"go-stockdocs/internal/repository"
	"go-stockdocs/pkg/validator"
)

var (
	ErrSupplierNotFound = errors.New("supplier not found")
	ErrProductNotFound  = errors.New("product not found")
)

// CatalogService covers the supplier and product resources. Both follow the
// same uniform CRUD semantics, so they share a service.
type CatalogService interface {
	CreateSupplier(supplier *model.Supplier, creatorID string) error
	UpdateSupplier(id uint, supplier *model.Supplier, updaterID string) (*model.Supplier, error)
	DeleteSupplier(id uint) error
	GetAllSuppliers() ([]model.Supplier, error)
	GetSupplierByID(id uint) (*model.Supplier, error)

	CreateProduct(product *model.Product, creatorID string) error
	UpdateProduct(id uint, product *model.Product, updaterID string) (*model.Product, error)
	DeleteProduct(id uint) error
	GetAllProducts() ([]model.Product, error)
	GetProductByID(id uint) (*model.Product, error)
}

type catalogService struct {
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
}

func NewCatalogService(supplierRepo repository.SupplierRepository, productRepo repository.ProductRepository) CatalogService {
	return &catalogService{
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
	}
}

func (s *catalogService) CreateSupplier(supplier *model.Supplier, creatorID string) error {
	if errs := validator.ValidateStruct(supplier); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	supplier.CreatedBy = creatorID
	supplier.UpdatedBy = creatorID
	return s.supplierRepo.Create(supplier)
}

func (s *catalogService) UpdateSupplier(id uint, req *model.Supplier, updaterID string) (*model.Supplier, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	existing, err := s.supplierRepo.FindByID(id)
	if err != nil {
		return nil, ErrSupplierNotFound
	}

	existing.Name = req.Name
	existing.Email = req.Email
	existing.PhoneNumber = req.PhoneNumber
	existing.Address = req.Address
	existing.UpdatedBy = updaterID

	if err := s.supplierRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *catalogService) DeleteSupplier(id uint) error {
	if _, err := s.supplierRepo.FindByID(id); err != nil {
		return ErrSupplierNotFound
	}
	return s.supplierRepo.Delete(id)
}

func (s *catalogService) GetAllSuppliers() ([]model.Supplier, error) {
	return s.supplierRepo.FindAll()
}

func (s *catalogService) GetSupplierByID(id uint) (*model.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(id)
	if err != nil {
		return nil, ErrSupplierNotFound
	}
	return supplier, nil
}

func (s *catalogService) CreateProduct(product *model.Product, creatorID string) error {
	if errs := validator.ValidateStruct(product); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	product.CreatedBy = creatorID
	product.UpdatedBy = creatorID
	return s.productRepo.Create(product)
}

func (s *catalogService) UpdateProduct(id uint, req *model.Product, updaterID string) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}

	existing.Name = req.Name
	existing.UpdatedBy = updaterID

	if err := s.productRepo.Update(existing); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *catalogService) DeleteProduct(id uint) error {
	if _, err := s.productRepo.FindByID(id); err != nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(id)
}

func (s *catalogService) GetAllProducts() ([]model.Product, error) {
	return s.productRepo.FindAll()
}

func (s *catalogService) GetProductByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		return nil, ErrProductNotFound
	}
	return product, nil
}
