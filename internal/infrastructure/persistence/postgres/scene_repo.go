// Package postgres 提供 PostgreSQL Repository 实现
package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cineplan-api/internal/domain/entity"
	"cineplan-api/internal/domain/repository"
	"cineplan-api/pkg/errors"
)

// SceneRepository 场次仓储实现
type SceneRepository struct {
	client *Client
}

// NewSceneRepository 创建场次仓储
func NewSceneRepository(client *Client) *SceneRepository {
	return &SceneRepository{client: client}
}

// Create 创建场次
func (r *SceneRepository) Create(ctx context.Context, scene *entity.Scene) error {
	ctx, span := tracer.Start(ctx, "postgres.SceneRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(scene).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create scene: %w", err)
	}
	return nil
}

// GetByID 根据 ID 获取场次
func (r *SceneRepository) GetByID(ctx context.Context, id string) (*entity.Scene, error) {
	ctx, span := tracer.Start(ctx, "postgres.SceneRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var scene entity.Scene
	if err := db.First(&scene, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrSceneNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get scene: %w", err)
	}
	return &scene, nil
}

// Update 更新场次
func (r *SceneRepository) Update(ctx context.Context, scene *entity.Scene) error {
	ctx, span := tracer.Start(ctx, "postgres.SceneRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(scene).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update scene: %w", err)
	}
	return nil
}

// Delete 删除场次
func (r *SceneRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.SceneRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Scene{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete scene: %w", err)
	}
	return nil
}

// ListByProject 获取项目全部场次（按剧本顺序）
func (r *SceneRepository) ListByProject(ctx context.Context, projectID string, filter *repository.SceneFilter) ([]*entity.Scene, error) {
	ctx, span := tracer.Start(ctx, "postgres.SceneRepository.ListByProject")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := applySceneFilter(db.Where("project_id = ?", projectID), filter)

	var scenes []*entity.Scene
	if err := query.Order("seq_num ASC").Find(&scenes).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list scenes: %w", err)
	}
	return scenes, nil
}

// ListByProjectPaged 分页获取项目场次
func (r *SceneRepository) ListByProjectPaged(ctx context.Context, projectID string, filter *repository.SceneFilter, pagination repository.Pagination) (*repository.PagedResult[*entity.Scene], error) {
	ctx, span := tracer.Start(ctx, "postgres.SceneRepository.ListByProjectPaged")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := applySceneFilter(db.Model(&entity.Scene{}).Where("project_id = ?", projectID), filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count scenes: %w", err)
	}

	var scenes []*entity.Scene
	if err := query.Order("seq_num ASC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&scenes).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list scenes: %w", err)
	}
	return repository.NewPagedResult(scenes, total, pagination), nil
}

// BulkUpsert 批量写入场次（脚本拆解导入，按 ID 冲突更新）
func (r *SceneRepository) BulkUpsert(ctx context.Context, scenes []*entity.Scene) error {
	ctx, span := tracer.Start(ctx, "postgres.SceneRepository.BulkUpsert")
	defer span.End()

	if len(scenes) == 0 {
		return nil
	}
	db := getDB(ctx, r.client.db)
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&scenes).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to bulk upsert scenes: %w", err)
	}
	return nil
}

// GetNextSeqNum 获取下一个剧本序号
func (r *SceneRepository) GetNextSeqNum(ctx context.Context, projectID string) (int, error) {
	ctx, span := tracer.Start(ctx, "postgres.SceneRepository.GetNextSeqNum")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var max int
	if err := db.Model(&entity.Scene{}).
		Where("project_id = ?", projectID).
		Select("COALESCE(MAX(seq_num), 0)").
		Scan(&max).Error; err != nil {
		span.RecordError(err)
		return 0, fmt.Errorf("failed to get next seq_num: %w", err)
	}
	return max + 1, nil
}

func applySceneFilter(query *gorm.DB, filter *repository.SceneFilter) *gorm.DB {
	if filter == nil {
		return query
	}
	if filter.LocationID != "" {
		query = query.Where("location_id = ?", filter.LocationID)
	}
	if filter.TimeOfDay != "" {
		query = query.Where("time_of_day = ?", filter.TimeOfDay)
	}
	return query
}
