package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/annotatehub/annotation-backend/internal/logger"
	"github.com/annotatehub/annotation-backend/internal/models"
)

// Error variables
var (
	ErrUsernameTaken = errors.New("username is already taken")
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so a caller cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("email or password is incorrect")
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, skip, limit int) ([]models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user models.User) error
	Update(ctx context.Context, username string, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, username string) error
}

// TokenIssuer defines an interface for generating access tokens.
type TokenIssuer interface {
	Generate(ctx context.Context, username string, isAdmin bool) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	reader UserReader
	writer UserWriter
	jwt    TokenIssuer
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, jwt TokenIssuer) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		jwt:    jwt,
	}
}

// Register creates a new user with a hashed password and returns the stored
// record.
func (svc *AuthService) Register(ctx context.Context, user models.User, password string) (*models.User, error) {
	existing, err := svc.reader.GetByUsername(ctx, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		logger.Log.Errorw("username already taken", "username", user.Username)
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}
	user.HashedPassword = string(hashedPassword)

	if err := svc.writer.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	return &user, nil
}

// Login authenticates a user and returns a signed access token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}
	if user == nil {
		logger.Log.Errorw("login for unknown username", "username", username)
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.Username, user.IsAdmin)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}
