package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"cineplan-api/internal/domain/entity"
	"cineplan-api/pkg/errors"
)

// CharacterRepository 角色仓储实现
type CharacterRepository struct {
	client *Client
}

// NewCharacterRepository 创建角色仓储
func NewCharacterRepository(client *Client) *CharacterRepository {
	return &CharacterRepository{client: client}
}

func (r *CharacterRepository) Create(ctx context.Context, character *entity.Character) error {
	ctx, span := tracer.Start(ctx, "postgres.CharacterRepository.Create")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Create(character).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to create character: %w", err)
	}
	return nil
}

func (r *CharacterRepository) GetByID(ctx context.Context, id string) (*entity.Character, error) {
	ctx, span := tracer.Start(ctx, "postgres.CharacterRepository.GetByID")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var character entity.Character
	if err := db.First(&character, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.New(errors.CodeNotFound, "character not found")
		}
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get character: %w", err)
	}
	return &character, nil
}

func (r *CharacterRepository) Update(ctx context.Context, character *entity.Character) error {
	ctx, span := tracer.Start(ctx, "postgres.CharacterRepository.Update")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Save(character).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to update character: %w", err)
	}
	return nil
}

func (r *CharacterRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "postgres.CharacterRepository.Delete")
	defer span.End()

	db := getDB(ctx, r.client.db)
	if err := db.Delete(&entity.Character{}, "id = ?", id).Error; err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete character: %w", err)
	}
	return nil
}

// ListByProject 获取项目全部角色
func (r *CharacterRepository) ListByProject(ctx context.Context, projectID string) ([]*entity.Character, error) {
	ctx, span := tracer.Start(ctx, "postgres.CharacterRepository.ListByProject")
	defer span.End()

	db := getDB(ctx, r.client.db)
	var characters []*entity.Character
	if err := db.Where("project_id = ?", projectID).Order("name ASC").Find(&characters).Error; err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to list characters: %w", err)
	}
	return characters, nil
}
