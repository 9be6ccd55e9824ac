package queries

import (
	"context"
	"database/sql"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetServiceQueryHandler retrieves a single catalog service from the database.
type GetServiceQueryHandler struct {
	db *gorm.DB
}

// NewGetServiceQueryHandler creates a handler for single-service queries.
// Requires a GORM database connection for query execution.
func NewGetServiceQueryHandler(db *gorm.DB) GetServiceQueryHandler {
	return GetServiceQueryHandler{db: db}
}

// Handle executes the query to retrieve one catalog service.
// Returns an ObjectNotFoundError when no service has the requested id.
func (h GetServiceQueryHandler) Handle(
	ctx context.Context,
	query GetServiceQuery,
) (ServiceResponse, error) {
	if err := query.Validate(); err != nil {
		return ServiceResponse{}, err
	}

	var svc ServiceResponse
	var id uuid.UUID

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			material_type,
			price
		FROM services
		WHERE id = ?
	`, query.ServiceID().Bytes()).Row()

	err := row.Scan(
		&id,
		&svc.Name,
		&svc.MaterialType,
		&svc.Price,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ServiceResponse{}, errs.NewObjectNotFoundError("serviceID", query.ServiceID().String())
	}
	if err != nil {
		return ServiceResponse{}, err
	}

	serviceID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ServiceResponse{}, err
	}
	svc.ID = serviceID

	return svc, nil
}
