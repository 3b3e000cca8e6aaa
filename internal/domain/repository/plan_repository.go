// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"cineplan-api/internal/domain/entity"
)

// PlanRepository 拍摄计划仓储接口
type PlanRepository interface {
	// Create 创建拍摄计划
	Create(ctx context.Context, plan *entity.ShootingPlan) error

	// GetByID 根据 ID 获取计划
	GetByID(ctx context.Context, id string) (*entity.ShootingPlan, error)

	// Update 更新计划（含日列表，last-write-wins）
	Update(ctx context.Context, plan *entity.ShootingPlan) error

	// Delete 删除计划
	Delete(ctx context.Context, id string) error

	// GetLatestByProject 获取项目最新一份计划
	GetLatestByProject(ctx context.Context, projectID string) (*entity.ShootingPlan, error)

	// ListByProject 按时间倒序列出项目计划
	ListByProject(ctx context.Context, projectID string, pagination Pagination) (*PagedResult[*entity.ShootingPlan], error)
}
