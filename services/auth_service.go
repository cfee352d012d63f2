package services

import (
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"newshub-cms/clients"
	"newshub-cms/config"
	"newshub-cms/models"
	"newshub-cms/repositories"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const resetTokenTTL = 30 * time.Minute

type AuthService interface {
	Register(req models.RegisterRequest) (*models.AuthResponse, error)
	Login(req models.LoginRequest) (*models.AuthResponse, error)
	GetUserByID(id uint) (*models.User, error)
	RequestReset(email string) error
	ConsumeReset(req models.ConsumeResetRequest) error
}

type authService struct {
	userRepo  repositories.UserRepository
	tokenRepo repositories.ResetTokenRepository
	mailer    clients.Mailer
	resetCfg  config.ResetConfig
}

func NewAuthService(userRepo repositories.UserRepository, tokenRepo repositories.ResetTokenRepository, mailer clients.Mailer, resetCfg config.ResetConfig) AuthService {
	return &authService{
		userRepo:  userRepo,
		tokenRepo: tokenRepo,
		mailer:    mailer,
		resetCfg:  resetCfg,
	}
}

func (s *authService) Register(req models.RegisterRequest) (*models.AuthResponse, error) {
	if !req.Role.Valid() {
		return nil, models.ErrorValidation{Message: "role must be reader, editor or journalist"}
	}

	// Check if username is taken
	existingUser, err := s.userRepo.GetByUsername(req.Username)
	if err == nil && existingUser.ID != 0 {
		return nil, models.ErrorValidation{Message: "username already exists"}
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Role:     req.Role,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) Login(req models.LoginRequest) (*models.AuthResponse, error) {
	user, err := s.userRepo.GetByUsername(req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorAuthentication{Message: "invalid credentials"}
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, models.ErrorAuthentication{Message: "invalid credentials"}
	}

	token, err := s.generateToken(user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Token: token,
		User:  *user,
	}, nil
}

func (s *authService) GetUserByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrorNotFound{Message: "user not found"}
		}
		return nil, err
	}
	return user, nil
}

// RequestReset issues a single-use reset token and mails the plaintext token
// to the account's address. Only the sha1 of the token is stored.
func (s *authService) RequestReset(email string) error {
	user, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "no account with that email"}
		}
		return err
	}

	plaintext := uuid.NewString()

	resetToken := &models.ResetToken{
		UserID:    user.ID,
		Token:     hashToken(plaintext),
		ExpiresAt: time.Now().Add(resetTokenTTL),
	}

	if err := s.tokenRepo.Create(resetToken); err != nil {
		return err
	}

	subject := "Password Reset"
	body := fmt.Sprintf("Hi %s, here is the link to reset your password:\n%s/%s",
		user.Username, s.resetCfg.BaseURL, plaintext)

	if err := s.mailer.Send(subject, body, []string{user.Email}); err != nil {
		log.Printf("Failed to send reset email to user %d: %v", user.ID, err)
		return models.ErrorExternalService{Message: "failed to send reset email", Err: err}
	}

	return nil
}

// ConsumeReset sets a new password against a valid token. The token row is
// deleted on success and on failed expiry check, so consumption happens at
// most once.
func (s *authService) ConsumeReset(req models.ConsumeResetRequest) error {
	if req.Password != req.PasswordConfirm {
		return models.ErrorValidation{Message: "passwords don't match"}
	}

	token, err := s.tokenRepo.GetByHash(hashToken(req.Token))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrorNotFound{Message: "invalid token"}
		}
		return err
	}

	if token.Expired(time.Now()) {
		if err := s.tokenRepo.Delete(token.ID); err != nil {
			return err
		}
		return models.ErrorExpiredToken{Message: "token has expired"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(token.UserID, string(hashedPassword)); err != nil {
		return err
	}

	return s.tokenRepo.Delete(token.ID)
}

func hashToken(plaintext string) string {
	sum := sha1.Sum([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"role":     user.Role,
		"exp":      now.Add(config.JWTExpiration).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(config.JWTSecret)
	if err != nil {
		return "", err
	}

	return signedToken, nil
}
