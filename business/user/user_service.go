package user

import (
	"context"
	"errors"
	"strconv"
	"time"

	"smartShop/domain"
	"smartShop/pkg/logger"
	"smartShop/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
}

// TokenStore keeps issued sessions so logout and validation work server-side.
type TokenStore interface {
	StoreToken(ctx context.Context, userID, role, token string, ttl time.Duration) error
}

const (
	RoleOwner = "owner"
	RoleStaff = "staff"

	tokenTTL = 24 * time.Hour
)

var validRoles = map[string]bool{
	RoleOwner: true,
	RoleStaff: true,
}

type userService struct {
	userRepo   UserRepository
	validate   *validator.Validate
	tokenStore TokenStore
}

func NewUserService(userRepo UserRepository, validate *validator.Validate, tokenStore TokenStore) *userService {
	return &userService{
		userRepo:   userRepo,
		validate:   validate,
		tokenStore: tokenStore,
	}
}

func (s *userService) Register(ctx context.Context, user *domain.User) (domain.User, error) {
	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		logger.Error("Invalid email format", err)
		return domain.User{}, errors.New("invalid email format")
	}

	if err := s.validate.Var(user.Password, "required,min=6"); err != nil {
		logger.Error("Invalid user password", err)
		return domain.User{}, errors.New("password must be at least 6 characters")
	}

	role := user.Role
	if role == "" {
		role = RoleOwner
	}
	if !validRoles[role] {
		return domain.User{}, errors.New("invalid role")
	}

	existingUser, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existingUser.ID > 0 {
		logger.Error("Email already exists")
		return domain.User{}, errors.New("email already exists")
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, errors.New("failed to hash password")
	}

	newUser := domain.User{
		FullName: user.FullName,
		Email:    user.Email,
		Password: string(passwordHash),
		Role:     role,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return domain.User{}, err
	}

	newUser.Password = ""
	return newUser, nil
}

func (s *userService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		logger.Error("Invalid user credentials", err)
		return "", domain.User{}, errors.New("invalid credentials")
	}

	if ok := utils.CheckPassword(password, user.Password); !ok {
		logger.Error("User password incorrect")
		return "", domain.User{}, errors.New("invalid credentials")
	}

	userIDStr := strconv.FormatUint(uint64(user.ID), 10)
	token, err := utils.GenerateJWT(userIDStr, user.Role, tokenTTL)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", domain.User{}, errors.New("failed to generate token")
	}

	if s.tokenStore != nil {
		if err := s.tokenStore.StoreToken(ctx, userIDStr, user.Role, token, tokenTTL); err != nil {
			logger.Warn("Failed to store session token", err)
		}
	}

	user.Password = ""
	return token, user, nil
}

// GetUserByID retrieves a user by ID
func (s *userService) GetUserByID(ctx context.Context, id uint) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to get user by ID", err)
		return domain.User{}, err
	}

	user.Password = ""
	return user, nil
}
