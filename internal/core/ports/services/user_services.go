package services

import (
	"context"
	"time"

	"github.com/stayfront/hotel_management_app/internal/core/domain"
	"github.com/stayfront/hotel_management_app/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by their unique identifier.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser registers a new local account with a bcrypt-hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// DeleteUser soft deletes a user account.
	DeleteUser(ctx context.Context, userID string, requestingUserID string) error

	// UpdateRefreshTokenDetails stores the hash and expiry of a user's
	// refresh token. A nil expiry clears the token (logout).
	UpdateRefreshTokenDetails(ctx context.Context, userID string, refreshTokenHash string, expiresAt *time.Time) error
}

// UserAuthSvc defines credential operations for user accounts
type UserAuthSvc interface {
	// AuthenticateUser verifies a username/password pair and returns the user.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)

	// UpsertGoogleUser finds or creates the local account linked to a Google
	// identity.
	UpsertGoogleUser(ctx context.Context, info domain.GoogleUserInfo) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserAuthSvc
}
