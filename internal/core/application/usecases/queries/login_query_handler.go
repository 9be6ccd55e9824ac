package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/services"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoginQueryHandler checks credentials against stored verifier material.
// Unknown emails and wrong passwords produce the same error, so callers
// cannot probe which addresses are registered.
type LoginQueryHandler struct {
	db       *gorm.DB
	verifier services.PasswordVerifier
}

// NewLoginQueryHandler creates a handler for credential checks.
// Requires a GORM database connection for query execution.
func NewLoginQueryHandler(db *gorm.DB, verifier services.PasswordVerifier) LoginQueryHandler {
	return LoginQueryHandler{db: db, verifier: verifier}
}

// Handle executes the credential check.
// Returns an UnauthorizedError when the email is unknown or the password
// does not match.
func (h LoginQueryHandler) Handle(
	ctx context.Context,
	query LoginQuery,
) (LoginQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return LoginQueryResponse{}, err
	}

	var resp LoginQueryResponse
	var id uuid.UUID
	var passwordHash string

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			first_name,
			last_name,
			email,
			phone_number,
			address,
			is_admin,
			password_hash,
			created_at
		FROM users
		WHERE email = ?
	`, query.Email()).Row()

	err := row.Scan(
		&id,
		&resp.FirstName,
		&resp.LastName,
		&resp.Email,
		&resp.PhoneNumber,
		&resp.Address,
		&resp.IsAdmin,
		&passwordHash,
		&resp.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return LoginQueryResponse{}, errs.NewUnauthorizedError("invalid email or password")
	}
	if err != nil {
		return LoginQueryResponse{}, err
	}

	if !h.verifier.Verify(query.Password(), passwordHash) {
		return LoginQueryResponse{}, errs.NewUnauthorizedError("invalid email or password")
	}

	userID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return LoginQueryResponse{}, err
	}
	resp.ID = userID

	return resp, nil
}
