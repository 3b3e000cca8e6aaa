// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"time"

	"cineplan-api/internal/domain/entity"
)

// CreateCharacterRequest 创建角色请求
type CreateCharacterRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	ActorName string `json:"actor_name" binding:"max=255"`
	IsMinor   bool   `json:"is_minor"`
	Notes     string `json:"notes" binding:"max=5000"`
}

// ToCharacterEntity 转换为角色实体
func (r *CreateCharacterRequest) ToCharacterEntity(projectID string) *entity.Character {
	return &entity.Character{
		ProjectID: projectID,
		Name:      r.Name,
		ActorName: r.ActorName,
		IsMinor:   r.IsMinor,
		Notes:     r.Notes,
	}
}

// UpdateCharacterRequest 更新角色请求
type UpdateCharacterRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,max=255"`
	ActorName *string `json:"actor_name,omitempty" binding:"omitempty,max=255"`
	IsMinor   *bool   `json:"is_minor,omitempty"`
	Notes     *string `json:"notes,omitempty" binding:"omitempty,max=5000"`
}

// ApplyTo 将非空字段应用到角色实体
func (r *UpdateCharacterRequest) ApplyTo(ch *entity.Character) {
	if r.Name != nil {
		ch.Name = *r.Name
	}
	if r.ActorName != nil {
		ch.ActorName = *r.ActorName
	}
	if r.IsMinor != nil {
		ch.IsMinor = *r.IsMinor
	}
	if r.Notes != nil {
		ch.Notes = *r.Notes
	}
}

// CharacterResponse 角色响应
type CharacterResponse struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	Name      string    `json:"name"`
	ActorName string    `json:"actor_name,omitempty"`
	IsMinor   bool      `json:"is_minor"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CharacterListResponse 角色列表响应
type CharacterListResponse struct {
	Characters []*CharacterResponse `json:"characters"`
}

// ToCharacterResponse 将领域实体转换为响应 DTO
func ToCharacterResponse(ch *entity.Character) *CharacterResponse {
	if ch == nil {
		return nil
	}
	return &CharacterResponse{
		ID:        ch.ID,
		ProjectID: ch.ProjectID,
		Name:      ch.Name,
		ActorName: ch.ActorName,
		IsMinor:   ch.IsMinor,
		Notes:     ch.Notes,
		CreatedAt: ch.CreatedAt,
		UpdatedAt: ch.UpdatedAt,
	}
}

// ToCharacterListResponse 将实体列表转换为列表响应
func ToCharacterListResponse(characters []*entity.Character) *CharacterListResponse {
	out := make([]*CharacterResponse, 0, len(characters))
	for _, ch := range characters {
		out = append(out, ToCharacterResponse(ch))
	}
	return &CharacterListResponse{Characters: out}
}

// UpsertDistanceRequest 距离写入请求
type UpsertDistanceRequest struct {
	FromLocationID string  `json:"from_location_id" binding:"required"`
	ToLocationID   string  `json:"to_location_id" binding:"required"`
	DistanceKm     float64 `json:"distance_km" binding:"gte=0"`
	DurationMin    int     `json:"duration_min" binding:"gte=0"`
	Source         string  `json:"source" binding:"omitempty,oneof=manual mapped estimated"`
}

// ToDistanceEntity 转换为距离条目实体
func (r *UpsertDistanceRequest) ToDistanceEntity(projectID string) *entity.DistanceEntry {
	source := entity.DistanceSource(r.Source)
	if source == "" {
		source = entity.DistanceSourceManual
	}
	return &entity.DistanceEntry{
		ProjectID:      projectID,
		FromLocationID: r.FromLocationID,
		ToLocationID:   r.ToLocationID,
		DistanceKm:     r.DistanceKm,
		DurationMin:    r.DurationMin,
		Source:         source,
	}
}

// DistanceResponse 距离条目响应
type DistanceResponse struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"project_id"`
	FromLocationID string    `json:"from_location_id"`
	ToLocationID   string    `json:"to_location_id"`
	DistanceKm     float64   `json:"distance_km"`
	DurationMin    int       `json:"duration_min"`
	Source         string    `json:"source"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// DistanceListResponse 距离条目列表响应
type DistanceListResponse struct {
	Distances []*DistanceResponse `json:"distances"`
}

// ToDistanceResponse 将领域实体转换为响应 DTO
func ToDistanceResponse(e *entity.DistanceEntry) *DistanceResponse {
	if e == nil {
		return nil
	}
	return &DistanceResponse{
		ID:             e.ID,
		ProjectID:      e.ProjectID,
		FromLocationID: e.FromLocationID,
		ToLocationID:   e.ToLocationID,
		DistanceKm:     e.DistanceKm,
		DurationMin:    e.DurationMin,
		Source:         string(e.Source),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

// ToDistanceListResponse 将实体列表转换为列表响应
func ToDistanceListResponse(entries []*entity.DistanceEntry) *DistanceListResponse {
	out := make([]*DistanceResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, ToDistanceResponse(e))
	}
	return &DistanceListResponse{Distances: out}
}
