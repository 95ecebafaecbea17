package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/umarhameed12/ghani-glass-backend-repo/internal/apperror"
	"github.com/umarhameed12/ghani-glass-backend-repo/internal/auth"
	"github.com/umarhameed12/ghani-glass-backend-repo/internal/models"
)

const bcryptCost = 14

type AuthService struct {
	db     *gorm.DB
	tokens *auth.Tokens
}

func NewAuthService(db *gorm.DB, tokens *auth.Tokens) *AuthService {
	return &AuthService{db: db, tokens: tokens}
}

func (s *AuthService) Signup(ctx context.Context, input SignupInput) (AuthResult, error) {
	name, err := normalizeRequiredString(input.Name, "name")
	if err != nil {
		return AuthResult{}, err
	}
	username, err := normalizeRequiredString(input.Username, "username")
	if err != nil {
		return AuthResult{}, err
	}
	email, err := normalizeRequiredString(input.Email, "email")
	if err != nil {
		return AuthResult{}, err
	}
	if len(input.Password) < 6 {
		return AuthResult{}, apperror.New(apperror.CodeValidation, "password must be at least 6 characters")
	}

	email = strings.ToLower(email)

	if err := s.ensureNotTaken(ctx, "email", email, "Email is already in use"); err != nil {
		return AuthResult{}, err
	}
	if err := s.ensureNotTaken(ctx, "username", username, "Username is already in use"); err != nil {
		return AuthResult{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Name:     name,
		Username: username,
		Email:    email,
		Mobile:   strings.TrimSpace(input.Mobile),
		Password: string(hash),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return AuthResult{}, mapDatabaseError(err)
	}

	token, err := s.tokens.Generate(user.ID, user.Username)
	if err != nil {
		return AuthResult{}, fmt.Errorf("generate token: %w", err)
	}

	return AuthResult{User: userToDTO(user), Token: token}, nil
}

func (s *AuthService) Signin(ctx context.Context, input SigninInput) (AuthResult, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || input.Password == "" {
		return AuthResult{}, apperror.New(apperror.CodeValidation, "username and password are required")
	}

	var user models.User
	err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", username, strings.ToLower(username)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AuthResult{}, apperror.New(apperror.CodeValidation, "invalid credentials")
		}
		return AuthResult{}, fmt.Errorf("load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		return AuthResult{}, apperror.New(apperror.CodeValidation, "invalid credentials")
	}

	token, err := s.tokens.Generate(user.ID, user.Username)
	if err != nil {
		return AuthResult{}, fmt.Errorf("generate token: %w", err)
	}

	return AuthResult{User: userToDTO(user), Token: token}, nil
}

func (s *AuthService) Me(ctx context.Context, userID uint) (UserDTO, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserDTO{}, apperror.New(apperror.CodeNotFound, "User not found")
		}
		return UserDTO{}, fmt.Errorf("load user: %w", err)
	}

	return userToDTO(user), nil
}

func (s *AuthService) ensureNotTaken(ctx context.Context, column, value, message string) error {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Where(fmt.Sprintf("%s = ?", column), value).
		Count(&count).Error; err != nil {
		return fmt.Errorf("check %s uniqueness: %w", column, err)
	}
	if count > 0 {
		return apperror.New(apperror.CodeConflict, message)
	}
	return nil
}
