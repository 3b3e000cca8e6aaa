// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"time"

	"cineplan-api/internal/domain/entity"
)

// CreateProjectRequest 创建项目请求
type CreateProjectRequest struct {
	Name           string  `json:"name" binding:"required,max=255"`
	Description    string  `json:"description" binding:"max=5000"`
	ProductionType string  `json:"production_type" binding:"max=64"`
	TargetHours    float64 `json:"target_hours" binding:"gte=0,lte=24"`
}

// UpdateProjectRequest 更新项目请求
type UpdateProjectRequest struct {
	Name           *string  `json:"name,omitempty" binding:"omitempty,max=255"`
	Description    *string  `json:"description,omitempty" binding:"omitempty,max=5000"`
	ProductionType *string  `json:"production_type,omitempty" binding:"omitempty,max=64"`
	TargetHours    *float64 `json:"target_hours,omitempty" binding:"omitempty,gte=0,lte=24"`
}

// ToProjectEntity 转换为项目实体
func (r *CreateProjectRequest) ToProjectEntity() *entity.Project {
	p := entity.NewProject(r.Name, r.ProductionType)
	p.Description = r.Description
	if r.TargetHours > 0 {
		p.TargetHours = r.TargetHours
	}
	return p
}

// ApplyTo 将非空字段应用到项目实体
func (r *UpdateProjectRequest) ApplyTo(p *entity.Project) {
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.ProductionType != nil {
		p.ProductionType = *r.ProductionType
	}
	if r.TargetHours != nil && *r.TargetHours > 0 {
		p.TargetHours = *r.TargetHours
	}
}

// ProjectResponse 项目响应
type ProjectResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	ProductionType string    `json:"production_type,omitempty"`
	TargetHours    float64   `json:"target_hours"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProjectListResponse 项目列表响应
type ProjectListResponse struct {
	Projects []*ProjectResponse `json:"projects"`
}

// ToProjectResponse 将领域实体转换为响应 DTO
func ToProjectResponse(p *entity.Project) *ProjectResponse {
	if p == nil {
		return nil
	}
	return &ProjectResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		ProductionType: p.ProductionType,
		TargetHours:    p.TargetHours,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

// ToProjectListResponse 将实体列表转换为列表响应
func ToProjectListResponse(projects []*entity.Project) *ProjectListResponse {
	out := make([]*ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, ToProjectResponse(p))
	}
	return &ProjectListResponse{Projects: out}
}
