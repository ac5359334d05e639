package service

import (
	"errors"
	"time"

	"go-stockdocs/internal/model"
	"go-stockdocs/pkg/token"
)

var ErrUnauthorized = errors.New("unauthorized")

type AuthService interface {
	Register(req *CreateUserRequest) *RegisterResult
	Login(email, password string) (*LoginResponse, error)
	Validate(uid string) (*model.UserResponse, error)
}

// RegisterResult normalizes every registration outcome into a structured
// success/failure payload instead of propagating errors to the caller.
type RegisterResult struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	User    *model.UserResponse `json:"user,omitempty"`
}

type LoginResponse struct {
	Token     string             `json:"token"`
	ExpiresAt time.Time          `json:"expires_at"`
	UID       string             `json:"uid"`
	User      model.UserResponse `json:"user"`
}

type authService struct {
	userService UserService
	tokens      *token.Manager
}

func NewAuthService(userService UserService, tokens *token.Manager) AuthService {
	return &authService{
		userService: userService,
		tokens:      tokens,
	}
}

func (s *authService) Register(req *CreateUserRequest) *RegisterResult {
	user, err := s.userService.CreateUser(req, "self-registration")
	if err != nil {
		return &RegisterResult{Success: false, Message: err.Error()}
	}

	resp := user.ToResponse()
	return &RegisterResult{
		Success: true,
		Message: "user registered successfully",
		User:    &resp,
	}
}

func (s *authService) Login(email, password string) (*LoginResponse, error) {
	// 1. Resolve user by credentials
	user, err := s.userService.FindByCredentials(email, password)
	if err != nil {
		return nil, err
	}

	// 2. Sign a token embedding the external uid
	signed, expiresAt, err := s.tokens.Generate(user.UID, user.Email, user.FullName)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:     signed,
		ExpiresAt: expiresAt,
		UID:       user.UID,
		User:      user.ToResponse(),
	}, nil
}

// Validate resolves the subject of an already-verified token. Signature and
// expiry checks happen in the middleware before this is reached.
func (s *authService) Validate(uid string) (*model.UserResponse, error) {
	user, err := s.userService.FindByUID(uid)
	if err != nil {
		return nil, ErrUnauthorized
	}

	resp := user.ToResponse()
	return &resp, nil
}
