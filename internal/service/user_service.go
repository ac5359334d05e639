package service

import (
	"errors"
	"fmt"

	"go-stockdocs/internal/model"
	"go-stockdocs/internal/repository"
	"go-stockdocs/pkg/validator"

	"github.com/google/uuid"
)

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserService interface {
	CreateUser(req *CreateUserRequest, creatorID string) (*model.User, error)
	UpdateUser(id uint, req *UpdateUserRequest, updaterID string) (*model.User, error)
	DeleteUser(id uint) error
	GetAllUsers() ([]model.UserResponse, error)
	GetUserByID(id uint) (*model.UserResponse, error)
	FindByCredentials(email, password string) (*model.User, error)
	FindByUID(uid string) (*model.User, error)
}

type CreateUserRequest struct {
	FullName   string `json:"full_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=6"`
	NationalID string `json:"national_id"`
}

type UpdateUserRequest struct {
	FullName   string  `json:"full_name" validate:"required"`
	Email      string  `json:"email" validate:"required,email"`
	Password   *string `json:"password,omitempty" validate:"omitempty,min=6"` // Optional
	NationalID string  `json:"national_id"`
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) CreateUser(req *CreateUserRequest, creatorID string) (*model.User, error) {
	// 1. Validate request
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// 2. Check if email already exists
	existing, _ := s.userRepo.FindByEmail(req.Email)
	if existing != nil {
		return nil, ErrEmailExists
	}

	// 3. Create user with a fresh external identifier
	user := &model.User{
		UID:        uuid.New().String(),
		FullName:   req.FullName,
		Email:      req.Email,
		NationalID: model.NormalizeNationalID(req.NationalID),
	}
	user.CreatedBy = creatorID
	user.UpdatedBy = creatorID

	// 4. Set password
	if err := user.SetPassword(req.Password); err != nil {
		return nil, errors.New("failed to hash password")
	}

	// 5. Save to database
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) UpdateUser(id uint, req *UpdateUserRequest, updaterID string) (*model.User, error) {
	// 1. Validate request
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	// 2. Find existing user
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// 3. Check if email is being changed and already exists
	if req.Email != user.Email {
		existing, _ := s.userRepo.FindByEmail(req.Email)
		if existing != nil {
			return nil, ErrEmailExists
		}
	}

	// 4. Merge fields; UID never changes after creation
	user.FullName = req.FullName
	user.Email = req.Email
	user.NationalID = model.NormalizeNationalID(req.NationalID)
	user.UpdatedBy = updaterID

	// 5. Update password if provided
	if req.Password != nil && *req.Password != "" {
		if err := user.SetPassword(*req.Password); err != nil {
			return nil, errors.New("failed to hash password")
		}
	}

	// 6. Save to database
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) DeleteUser(id uint) error {
	if _, err := s.userRepo.FindByID(id); err != nil {
		return ErrUserNotFound
	}
	return s.userRepo.Delete(id)
}

func (s *userService) GetAllUsers() ([]model.UserResponse, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, err
	}

	responses := make([]model.UserResponse, len(users))
	for i, user := range users {
		responses[i] = user.ToResponse()
	}
	return responses, nil
}

func (s *userService) GetUserByID(id uint) (*model.UserResponse, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	response := user.ToResponse()
	return &response, nil
}

// FindByCredentials resolves a user for login. An unknown email and a wrong
// password are distinct failures so callers can map them to different statuses.
func (s *userService) FindByCredentials(email, password string) (*model.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// FindByUID resolves the subject of a verified token.
func (s *userService) FindByUID(uid string) (*model.User, error) {
	user, err := s.userRepo.FindByUID(uid)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
