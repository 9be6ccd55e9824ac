package queries

import (
	"context"

	"laundry/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetServicesQueryHandler retrieves the service catalog from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetServicesQueryHandler struct {
	db *gorm.DB
}

// NewGetServicesQueryHandler creates a handler for catalog retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetServicesQueryHandler(db *gorm.DB) GetServicesQueryHandler {
	return GetServicesQueryHandler{db: db}
}

// Handle executes the query to retrieve all catalog services.
// Results are sorted by name, then material type, for consistent output.
func (h GetServicesQueryHandler) Handle(
	ctx context.Context,
	query GetServicesQuery,
) ([]ServiceResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	services := make([]ServiceResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			material_type,
			price
		FROM services
		ORDER BY name, material_type
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var svc ServiceResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&svc.Name,
			&svc.MaterialType,
			&svc.Price,
		)
		if err != nil {
			return nil, err
		}

		serviceID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		svc.ID = serviceID

		services = append(services, svc)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return services, nil
}
