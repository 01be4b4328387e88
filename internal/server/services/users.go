// Package services contains server-side business logic. This file implements
// UserService, which handles registration and login and issues bearer tokens
// for authenticated users.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/mail"
	"unicode"

	"github.com/dmitrijs2005/bookstore/internal/common"
	"github.com/dmitrijs2005/bookstore/internal/logging"
	"github.com/dmitrijs2005/bookstore/internal/models"
	"github.com/dmitrijs2005/bookstore/internal/server/auth"
	"github.com/dmitrijs2005/bookstore/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

const minPasswordLength = 8

// UserService provides the credential-store operations:
//   - Register: validate and create users
//   - Login: verify credentials and mint a bearer token
type UserService struct {
	db     *sql.DB
	repos  repomanager.RepositoryManager
	issuer *auth.TokenIssuer
	logger logging.Logger
}

// NewUserService constructs a UserService. The token issuer carries the
// process-wide signing configuration; it is passed in explicitly, never
// pulled from globals.
func NewUserService(conn *sql.DB, m repomanager.RepositoryManager, issuer *auth.TokenIssuer, l logging.Logger) *UserService {
	return &UserService{
		db:     conn,
		repos:  m,
		issuer: issuer,
		logger: l.With("module", "user_service"),
	}
}

// Register creates a new user with the given email and password. Every
// rejection reason (malformed email, weak password, duplicate email) is
// aggregated into a single *common.ValidationError.
func (s *UserService) Register(ctx context.Context, email, password string) error {
	reasons := validateEmail(email)
	reasons = append(reasons, validatePassword(password)...)
	if len(reasons) > 0 {
		return &common.ValidationError{Reasons: reasons}
	}

	hash, err := auth.HashPassword([]byte(password))
	if err != nil {
		s.logger.Error(ctx, "error hashing password", "error", err)
		return common.ErrInternal
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}

	if _, err := s.repos.Users(s.db).Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrAlreadyExists) {
			return common.NewValidationError(fmt.Sprintf("email %q is already taken", email))
		}
		s.logger.Error(ctx, "error creating user", "error", err)
		return common.ErrInternal
	}

	return nil
}

// Login verifies the email/password pair and returns a signed bearer token.
// Unknown email and wrong password both return common.ErrInvalidCredentials
// so the response never reveals which half failed.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repos.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "error looking up user", "error", err)
		return "", common.ErrInternal
	}

	if !auth.CheckPassword(user.PasswordHash, []byte(password)) {
		return "", common.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		s.logger.Error(ctx, "error issuing token", "error", err)
		return "", common.ErrInternal
	}

	return token, nil
}

// --- helpers below ---

func validateEmail(email string) []string {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return []string{"email address is not valid"}
	}
	return nil
}

func validatePassword(password string) []string {
	var reasons []string

	if len(password) < minPasswordLength {
		reasons = append(reasons, fmt.Sprintf("password must be at least %d characters", minPasswordLength))
	}

	var hasDigit, hasLower, hasUpper, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsUpper(r):
			hasUpper = true
		default:
			hasSpecial = true
		}
	}

	if !hasDigit {
		reasons = append(reasons, "password must contain a digit")
	}
	if !hasLower {
		reasons = append(reasons, "password must contain a lowercase letter")
	}
	if !hasUpper {
		reasons = append(reasons, "password must contain an uppercase letter")
	}
	if !hasSpecial {
		reasons = append(reasons, "password must contain a non-alphanumeric character")
	}

	return reasons
}
