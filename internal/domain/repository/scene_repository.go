// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"cineplan-api/internal/domain/entity"
)

// SceneFilter 场次过滤条件
type SceneFilter struct {
	LocationID string
	TimeOfDay  entity.TimeOfDay
}

// SceneRepository 场次仓储接口
type SceneRepository interface {
	// Create 创建场次
	Create(ctx context.Context, scene *entity.Scene) error

	// GetByID 根据 ID 获取场次
	GetByID(ctx context.Context, id string) (*entity.Scene, error)

	// Update 更新场次
	Update(ctx context.Context, scene *entity.Scene) error

	// Delete 删除场次
	Delete(ctx context.Context, id string) error

	// ListByProject 获取项目全部场次（按剧本顺序）
	ListByProject(ctx context.Context, projectID string, filter *SceneFilter) ([]*entity.Scene, error)

	// ListByProjectPaged 分页获取项目场次
	ListByProjectPaged(ctx context.Context, projectID string, filter *SceneFilter, pagination Pagination) (*PagedResult[*entity.Scene], error)

	// BulkUpsert 批量写入场次（脚本拆解导入）
	BulkUpsert(ctx context.Context, scenes []*entity.Scene) error

	// GetNextSeqNum 获取下一个剧本序号
	GetNextSeqNum(ctx context.Context, projectID string) (int, error)
}
