// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"time"

	"cineplan-api/internal/application/schedule"
	"cineplan-api/internal/domain/entity"
)

// CreateSceneRequest 创建场次请求
type CreateSceneRequest struct {
	Title       string `json:"title" binding:"max=255"`
	Description string `json:"description" binding:"max=5000"`

	SetType      string `json:"set_type" binding:"omitempty,max=8"`
	LocationID   string `json:"location_id,omitempty"`
	LocationName string `json:"location_name" binding:"max=255"`
	TimeOfDay    string `json:"time_of_day" binding:"max=16"`

	Eighths    float64                   `json:"eighths" binding:"gte=0"`
	Complexity string                    `json:"complexity" binding:"omitempty,oneof=low medium high extreme"`
	Factors    *entity.ComplexityFactors `json:"factors,omitempty"`
	Characters []string                  `json:"characters,omitempty"`

	SetupMinutes    *int `json:"setup_minutes,omitempty" binding:"omitempty,gte=0"`
	ShootingMinutes *int `json:"shooting_minutes,omitempty" binding:"omitempty,gte=0"`
}

// ToSceneEntity 转换为场次实体
func (r *CreateSceneRequest) ToSceneEntity(projectID string, seqNum int) *entity.Scene {
	complexity := entity.ComplexityCategory(r.Complexity)
	if complexity == "" {
		complexity = entity.ComplexityLow
	}
	eighths := r.Eighths
	if eighths <= 0 {
		eighths = 1
	}
	return &entity.Scene{
		ProjectID:       projectID,
		SeqNum:          seqNum,
		Title:           r.Title,
		Description:     r.Description,
		SetType:         r.SetType,
		LocationID:      r.LocationID,
		LocationName:    r.LocationName,
		TimeOfDay:       entity.ParseTimeOfDay(r.TimeOfDay),
		Eighths:         eighths,
		Complexity:      complexity,
		Factors:         r.Factors,
		Characters:      r.Characters,
		SetupMinutes:    r.SetupMinutes,
		ShootingMinutes: r.ShootingMinutes,
	}
}

// UpdateSceneRequest 更新场次请求
type UpdateSceneRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,max=255"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=5000"`

	SetType      *string `json:"set_type,omitempty" binding:"omitempty,max=8"`
	LocationID   *string `json:"location_id,omitempty"`
	LocationName *string `json:"location_name,omitempty" binding:"omitempty,max=255"`
	TimeOfDay    *string `json:"time_of_day,omitempty" binding:"omitempty,max=16"`

	Eighths    *float64                  `json:"eighths,omitempty" binding:"omitempty,gte=0"`
	Complexity *string                   `json:"complexity,omitempty" binding:"omitempty,oneof=low medium high extreme"`
	Factors    *entity.ComplexityFactors `json:"factors,omitempty"`
	Characters []string                  `json:"characters,omitempty"`

	SetupMinutes    *int `json:"setup_minutes,omitempty" binding:"omitempty,gte=0"`
	ShootingMinutes *int `json:"shooting_minutes,omitempty" binding:"omitempty,gte=0"`
}

// ApplyTo 将非空字段应用到场次实体
func (r *UpdateSceneRequest) ApplyTo(s *entity.Scene) {
	if r.Title != nil {
		s.Title = *r.Title
	}
	if r.Description != nil {
		s.Description = *r.Description
	}
	if r.SetType != nil {
		s.SetType = *r.SetType
	}
	if r.LocationID != nil {
		s.LocationID = *r.LocationID
	}
	if r.LocationName != nil {
		s.LocationName = *r.LocationName
	}
	if r.TimeOfDay != nil {
		s.TimeOfDay = entity.ParseTimeOfDay(*r.TimeOfDay)
	}
	if r.Eighths != nil && *r.Eighths > 0 {
		s.Eighths = *r.Eighths
	}
	if r.Complexity != nil {
		s.Complexity = entity.ComplexityCategory(*r.Complexity)
	}
	if r.Factors != nil {
		s.Factors = r.Factors
	}
	if r.Characters != nil {
		s.Characters = r.Characters
	}
	if r.SetupMinutes != nil {
		s.SetupMinutes = r.SetupMinutes
	}
	if r.ShootingMinutes != nil {
		s.ShootingMinutes = r.ShootingMinutes
	}
}

// ImportScenesRequest 场次批量导入请求（脚本拆解结果）
type ImportScenesRequest struct {
	Scenes []CreateSceneRequest `json:"scenes" binding:"required,min=1,dive"`
}

// SceneEstimate 单场时间估算
type SceneEstimate struct {
	Eighths         int     `json:"eighths"`
	SetupMinutes    int     `json:"setup_minutes"`
	ShootingMinutes int     `json:"shooting_minutes"`
	TotalMinutes    int     `json:"total_minutes"`
	Multiplier      float64 `json:"multiplier"`
}

// SceneResponse 场次响应
type SceneResponse struct {
	ID          string `json:"id"`
	ProjectID   string `json:"project_id"`
	SeqNum      int    `json:"seq_num"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`

	SetType      string `json:"set_type,omitempty"`
	LocationID   string `json:"location_id,omitempty"`
	LocationName string `json:"location_name,omitempty"`
	TimeOfDay    string `json:"time_of_day"`

	Eighths    float64                   `json:"eighths"`
	Complexity string                    `json:"complexity"`
	Factors    *entity.ComplexityFactors `json:"factors,omitempty"`
	Characters []string                  `json:"characters,omitempty"`

	Estimate  SceneEstimate `json:"estimate"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// SceneListResponse 场次列表响应
type SceneListResponse struct {
	Scenes []*SceneResponse `json:"scenes"`
}

// ToSceneResponse 将领域实体转换为响应 DTO，附带分钟级时间估算
func ToSceneResponse(s *entity.Scene) *SceneResponse {
	if s == nil {
		return nil
	}
	bd := schedule.EstimateSceneTime(s)
	return &SceneResponse{
		ID:           s.ID,
		ProjectID:    s.ProjectID,
		SeqNum:       s.SeqNum,
		Title:        s.Title,
		Description:  s.Description,
		SetType:      s.SetType,
		LocationID:   s.LocationID,
		LocationName: s.EffectiveLocationName(),
		TimeOfDay:    string(s.TimeOfDay),
		Eighths:      s.Eighths,
		Complexity:   string(s.Complexity),
		Factors:      s.Factors,
		Characters:   s.Characters,
		Estimate: SceneEstimate{
			Eighths:         bd.Eighths,
			SetupMinutes:    bd.SetupMinutes,
			ShootingMinutes: bd.ShootingMinutes,
			TotalMinutes:    bd.TotalMinutes,
			Multiplier:      bd.Multiplier,
		},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// ToSceneListResponse 将实体列表转换为列表响应
func ToSceneListResponse(scenes []*entity.Scene) *SceneListResponse {
	out := make([]*SceneResponse, 0, len(scenes))
	for _, s := range scenes {
		out = append(out, ToSceneResponse(s))
	}
	return &SceneListResponse{Scenes: out}
}
