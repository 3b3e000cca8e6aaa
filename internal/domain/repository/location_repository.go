// Package repository 定义数据访问层接口
package repository

import (
	"context"

	"cineplan-api/internal/domain/entity"
)

// LocationRepository 场地仓储接口
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	Update(ctx context.Context, location *entity.Location) error
	Delete(ctx context.Context, id string) error

	// ListByProject 获取项目全部场地
	ListByProject(ctx context.Context, projectID string) ([]*entity.Location, error)

	// GetByName 按名称精确匹配场地
	GetByName(ctx context.Context, projectID, name string) (*entity.Location, error)
}

// CharacterRepository 角色仓储接口
type CharacterRepository interface {
	Create(ctx context.Context, character *entity.Character) error
	GetByID(ctx context.Context, id string) (*entity.Character, error)
	Update(ctx context.Context, character *entity.Character) error
	Delete(ctx context.Context, id string) error

	// ListByProject 获取项目全部角色
	ListByProject(ctx context.Context, projectID string) ([]*entity.Character, error)
}

// DistanceRepository 场地距离仓储接口
type DistanceRepository interface {
	Upsert(ctx context.Context, entry *entity.DistanceEntry) error
	Delete(ctx context.Context, id string) error

	// ListByProject 获取项目全部距离条目
	ListByProject(ctx context.Context, projectID string) ([]*entity.DistanceEntry, error)

	// GetBetween 查询两场地间的距离（单向，调用方负责双向兜底）
	GetBetween(ctx context.Context, projectID, fromID, toID string) (*entity.DistanceEntry, error)
}

// ProjectRepository 项目仓储接口
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	Update(ctx context.Context, project *entity.Project) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, pagination Pagination) (*PagedResult[*entity.Project], error)
}
