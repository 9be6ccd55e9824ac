package servicerepo

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/domain/model/service"
	"laundry/internal/pkg/errs"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// uniqueViolation is the postgres error code for unique constraint violations.
const uniqueViolation = "23505"

// GormServiceRepository implements ServiceRepository using GORM.
type GormServiceRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormServiceRepository creates a new GORM service repository.
func NewGormServiceRepository(db *gorm.DB, tracker aggregateTracker) *GormServiceRepository {
	return &GormServiceRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new catalog service to the database.
// A unique index violation on (name, material_type) surfaces as a
// ConflictError, covering races the application-level check cannot see.
func (r *GormServiceRepository) Add(ctx context.Context, aggregate *service.Service) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateUniqueViolation(err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing catalog service to the database.
func (r *GormServiceRepository) Update(ctx context.Context, aggregate *service.Service) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ServiceDTO{}).Where("id = ?", dto.ID).Updates(&dto)
	if result.Error != nil {
		return translateUniqueViolation(result.Error)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes a catalog service by ID.
func (r *GormServiceRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ServiceDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("serviceID", id.String())
	}

	return nil
}

// Get retrieves a catalog service by ID.
func (r *GormServiceRepository) Get(ctx context.Context, id kernel.UUID) (*service.Service, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ServiceDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("serviceID", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByNameAndMaterial retrieves the catalog service holding a
// (name, materialType) pair.
func (r *GormServiceRepository) GetByNameAndMaterial(
	ctx context.Context,
	name, materialType string,
) (*service.Service, error) {
	var dto ServiceDTO
	err := r.db.WithContext(ctx).
		First(&dto, "name = ? AND material_type = ?", name, materialType).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("service", name+"/"+materialType)
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every catalog service.
func (r *GormServiceRepository) GetAll(ctx context.Context) ([]*service.Service, error) {
	var dtos []ServiceDTO
	if err := r.db.WithContext(ctx).Find(&dtos).Error; err != nil {
		return nil, err
	}

	services := make([]*service.Service, 0, len(dtos))
	for _, dto := range dtos {
		svc, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}

	return services, nil
}

func translateUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return errs.NewConflictErrorWithCause(
			"service", "a service for this material type already exists", err)
	}
	return err
}
