package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cineplan-api/internal/domain/entity"
	"cineplan-api/pkg/errors"
)

// DistanceRepository 场地距离仓储实现
type DistanceRepository struct {
	client *Client
}

// NewDistanceRepository 创建场地距离仓储
func NewDistanceRepository(client *Client) *DistanceRepository {
	return &DistanceRepository{client: client}
}

// Upsert 写入距离条目，同一有向场地对冲突时更新
func (r *DistanceRepository) Upsert(ctx context.Context, entry *entity.DistanceEntry) error {
	ctx, span := tracer.Start(ctx, "postgres.DistanceRepository.Upsert")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "project_id"},
			{Name: "from_location_id"},
			{Name: "to_location_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"distance_km", "duration_min", "source", "updated_at"}),
	}).Create(entry).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to upsert distance entry: %w", err)
	}
	return nil
}

func (r *DistanceRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.DistanceRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.DistanceEntry{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete distance entry: %w", err)
	}
	return nil
}

// ListByProject 获取项目全部距离条目
func (r *DistanceRepository) ListByProject(ctx context.Context, projectID string) ([]*entity.DistanceEntry, error) {
	ctx, span := tracer.Start(ctx, "postgres.DistanceRepository.ListByProject")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var entries []*entity.DistanceEntry
	if err := db.Where("project_id = ?", projectID).Find(&entries).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list distance entries: %w", err)
	}
	return entries, nil
}

// GetBetween 查询两场地间的距离（单向，调用方负责双向兜底）
func (r *DistanceRepository) GetBetween(ctx context.Context, projectID, fromID, toID string) (*entity.DistanceEntry, error) {
	ctx, span := tracer.Start(ctx, "postgres.DistanceRepository.GetBetween")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var entry entity.DistanceEntry
	if err := db.Where("project_id = ? AND from_location_id = ? AND to_location_id = ?",
		projectID, fromID, toID).First(&entry).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.New(errors.CodeNotFound, "distance entry not found")
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get distance entry: %w", err)
	}
	return &entry, nil
}
