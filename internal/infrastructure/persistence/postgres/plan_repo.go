package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"cineplan-api/internal/domain/entity"
	"cineplan-api/internal/domain/repository"
	"cineplan-api/pkg/errors"
)

// PlanRepository 拍摄计划仓储实现
type PlanRepository struct {
	client *Client
}

// NewPlanRepository 创建拍摄计划仓储
func NewPlanRepository(client *Client) *PlanRepository {
	return &PlanRepository{client: client}
}

func (r *PlanRepository) Create(ctx context.Context, plan *entity.ShootingPlan) error {
	ctx, span := tracer.Start(ctx, "postgres.PlanRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(plan).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create shooting plan: %w", err)
	}
	return nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id string) (*entity.ShootingPlan, error) {
	ctx, span := tracer.Start(ctx, "postgres.PlanRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var plan entity.ShootingPlan
	if err := db.First(&plan, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPlanNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get shooting plan: %w", err)
	}
	return &plan, nil
}

// Update 更新计划（含日列表，last-write-wins）
func (r *PlanRepository) Update(ctx context.Context, plan *entity.ShootingPlan) error {
	ctx, span := tracer.Start(ctx, "postgres.PlanRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(plan).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update shooting plan: %w", err)
	}
	return nil
}

func (r *PlanRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.PlanRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.ShootingPlan{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete shooting plan: %w", err)
	}
	return nil
}

// GetLatestByProject 获取项目最新一份计划
func (r *PlanRepository) GetLatestByProject(ctx context.Context, projectID string) (*entity.ShootingPlan, error) {
	ctx, span := tracer.Start(ctx, "postgres.PlanRepository.GetLatestByProject")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var plan entity.ShootingPlan
	if err := db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		First(&plan).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrPlanNotFound
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get latest shooting plan: %w", err)
	}
	return &plan, nil
}

// ListByProject 按时间倒序列出项目计划
func (r *PlanRepository) ListByProject(ctx context.Context, projectID string, pagination repository.Pagination) (*repository.PagedResult[*entity.ShootingPlan], error) {
	ctx, span := tracer.Start(ctx, "postgres.PlanRepository.ListByProject")
	defer span.End()

	db := getDB(ctx, r.client.db)
	query := db.Model(&entity.ShootingPlan{}).Where("project_id = ?", projectID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to count shooting plans: %w", err)
	}

	var plans []*entity.ShootingPlan
	if err := query.Order("created_at DESC").
		Offset(pagination.Offset()).
		Limit(pagination.Limit()).
		Find(&plans).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list shooting plans: %w", err)
	}
	return repository.NewPagedResult(plans, total, pagination), nil
}
