package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"cineplan-api/internal/domain/entity"
	"cineplan-api/pkg/errors"
)

// LocationRepository 场地仓储实现
type LocationRepository struct {
	client *Client
}

// NewLocationRepository 创建场地仓储
func NewLocationRepository(client *Client) *LocationRepository {
	return &LocationRepository{client: client}
}

func (r *LocationRepository) Create(ctx context.Context, location *entity.Location) error {
	ctx, span := tracer.Start(ctx, "postgres.LocationRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(location).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

func (r *LocationRepository) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	ctx, span := tracer.Start(ctx, "postgres.LocationRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var location entity.Location
	if err := db.First(&location, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrLocationNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get location: %w", err)
	}
	return &location, nil
}

func (r *LocationRepository) Update(ctx context.Context, location *entity.Location) error {
	ctx, span := tracer.Start(ctx, "postgres.LocationRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(location).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update location: %w", err)
	}
	return nil
}

func (r *LocationRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.LocationRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Location{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete location: %w", err)
	}
	return nil
}

// ListByProject 获取项目全部场地
func (r *LocationRepository) ListByProject(ctx context.Context, projectID string) ([]*entity.Location, error) {
	ctx, span := tracer.Start(ctx, "postgres.LocationRepository.ListByProject")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var locations []*entity.Location
	if err := db.Where("project_id = ?", projectID).Order("name ASC").Find(&locations).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return locations, nil
}

// GetByName 按名称精确匹配场地
func (r *LocationRepository) GetByName(ctx context.Context, projectID, name string) (*entity.Location, error) {
	ctx, span := tracer.Start(ctx, "postgres.LocationRepository.GetByName")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var location entity.Location
	if err := db.Where("project_id = ? AND name = ?", projectID, name).First(&location).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrLocationNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get location by name: %w", err)
	}
	return &location, nil
}
