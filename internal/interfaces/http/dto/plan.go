// Package dto 提供 HTTP 层数据传输对象
package dto

import (
	"strings"
	"time"

	"cineplan-api/internal/application/aiplan"
	"cineplan-api/internal/domain/entity"
)

// GeneratePlanRequest 确定性排期请求
type GeneratePlanRequest struct {
	Strategy           string  `json:"strategy" binding:"omitempty,oneof=location time_of_day cast balanced zone"`
	TargetHours        float64 `json:"target_hours" binding:"gte=0,lte=24"`
	DayNightSeparation bool    `json:"day_night_separation"`
}

// AIGeneratePlanRequest AI 排期请求
type AIGeneratePlanRequest struct {
	Provider           string   `json:"provider,omitempty" binding:"omitempty,max=32"`
	Model              string   `json:"model,omitempty" binding:"omitempty,max=64"`
	TargetHours        float64  `json:"target_hours" binding:"gte=0,lte=24"`
	MaxEighthsPerDay   int      `json:"max_eighths_per_day" binding:"gte=0"`
	DayNightSeparation bool     `json:"day_night_separation"`
	Temperature        *float32 `json:"temperature,omitempty" binding:"omitempty,gte=0,lte=2"`
	MaxTokens          *int     `json:"max_tokens,omitempty" binding:"omitempty,gt=0"`
}

// MoveSceneRequest 场次跨日移动请求
type MoveSceneRequest struct {
	SceneID string `json:"scene_id" binding:"required"`
	FromDay int    `json:"from_day" binding:"required,gt=0"`
	ToDay   int    `json:"to_day" binding:"required,gt=0"`
}

// PlannedSceneResponse 拍摄日内场次快照响应
type PlannedSceneResponse struct {
	SceneID         string   `json:"scene_id"`
	SeqNum          int      `json:"seq_num"`
	Title           string   `json:"title,omitempty"`
	LocationID      string   `json:"location_id,omitempty"`
	LocationName    string   `json:"location_name,omitempty"`
	TimeOfDay       string   `json:"time_of_day"`
	Eighths         int      `json:"eighths"`
	EffectiveEighth float64  `json:"effective_eighths"`
	SetupMinutes    int      `json:"setup_minutes"`
	ShootingMinutes int      `json:"shooting_minutes"`
	TotalMinutes    int      `json:"total_minutes"`
	Characters      []string `json:"characters,omitempty"`
	MinorsPresent   bool     `json:"minors_present,omitempty"`
}

// ShootingDayResponse 拍摄日响应
type ShootingDayResponse struct {
	DayNumber      int                    `json:"day_number"`
	LocationLabel  string                 `json:"location_label"`
	LocationID     string                 `json:"location_id,omitempty"`
	Locations      []string               `json:"locations,omitempty"`
	TimeOfDay      string                 `json:"time_of_day"`
	Scenes         []PlannedSceneResponse `json:"scenes"`
	Characters     []string               `json:"characters,omitempty"`
	TotalEighths   float64                `json:"total_eighths"`
	EstimatedHours float64                `json:"estimated_hours"`
	TargetHours    float64                `json:"target_hours"`

	// Warnings 当日全部警告以分号连接的展示串
	Warnings string   `json:"warnings,omitempty"`
	Alerts   []string `json:"alerts,omitempty"`
}

// PlanResponse 拍摄计划响应
type PlanResponse struct {
	ID                 string                     `json:"id"`
	ProjectID          string                     `json:"project_id"`
	Mode               string                     `json:"mode"`
	Strategy           string                     `json:"strategy,omitempty"`
	TargetHours        float64                    `json:"target_hours"`
	Status             string                     `json:"status"`
	Days               []ShootingDayResponse      `json:"days"`
	TotalDays          int                        `json:"total_days"`
	TotalWarnings      int                        `json:"total_warnings"`
	Summary            string                     `json:"summary,omitempty"`
	GenerationMetadata *entity.GenerationMetadata `json:"generation_metadata,omitempty"`
	RepairIssues       []string                   `json:"repair_issues,omitempty"`
	CreatedAt          time.Time                  `json:"created_at"`
	UpdatedAt          time.Time                  `json:"updated_at"`
}

// PlanListResponse 计划列表响应
type PlanListResponse struct {
	Plans []*PlanResponse `json:"plans"`
}

// ToShootingDayResponse 将拍摄日实体转换为响应 DTO
func ToShootingDayResponse(d *entity.ShootingDay) ShootingDayResponse {
	scenes := make([]PlannedSceneResponse, 0, len(d.Scenes))
	for _, s := range d.Scenes {
		scenes = append(scenes, PlannedSceneResponse{
			SceneID:         s.SceneID,
			SeqNum:          s.SeqNum,
			Title:           s.Title,
			LocationID:      s.LocationID,
			LocationName:    s.LocationName,
			TimeOfDay:       string(s.TimeOfDay),
			Eighths:         s.Eighths,
			EffectiveEighth: s.EffectiveEighth,
			SetupMinutes:    s.SetupMinutes,
			ShootingMinutes: s.ShootingMinutes,
			TotalMinutes:    s.TotalMinutes,
			Characters:      s.Characters,
			MinorsPresent:   s.MinorsPresent,
		})
	}
	return ShootingDayResponse{
		DayNumber:      d.DayNumber,
		LocationLabel:  d.LocationLabel,
		LocationID:     d.LocationID,
		Locations:      d.Locations,
		TimeOfDay:      string(d.TimeOfDay),
		Scenes:         scenes,
		Characters:     d.Characters,
		TotalEighths:   d.TotalEighths,
		EstimatedHours: d.EstimatedHours,
		TargetHours:    d.TargetHours,
		Warnings:       strings.Join(d.Warnings, "; "),
		Alerts:         d.Warnings,
	}
}

// ToPlanResponse 将计划实体转换为响应 DTO
func ToPlanResponse(p *entity.ShootingPlan) *PlanResponse {
	if p == nil {
		return nil
	}
	days := make([]ShootingDayResponse, 0, len(p.Days))
	for i := range p.Days {
		days = append(days, ToShootingDayResponse(&p.Days[i]))
	}
	return &PlanResponse{
		ID:                 p.ID,
		ProjectID:          p.ProjectID,
		Mode:               string(p.Mode),
		Strategy:           p.Strategy,
		TargetHours:        p.TargetHours,
		Status:             string(p.Status),
		Days:               days,
		TotalDays:          len(p.Days),
		TotalWarnings:      p.TotalWarnings(),
		Summary:            p.Summary,
		GenerationMetadata: p.GenerationMetadata,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

// ToPlanResponseWithVerdict 在计划响应上附加校验修复信息
func ToPlanResponseWithVerdict(p *entity.ShootingPlan, verdict *aiplan.PlanVerdict) *PlanResponse {
	resp := ToPlanResponse(p)
	if resp != nil && verdict != nil {
		resp.RepairIssues = verdict.Issues
	}
	return resp
}

// ToPlanListResponse 将实体列表转换为列表响应
func ToPlanListResponse(plans []*entity.ShootingPlan) *PlanListResponse {
	out := make([]*PlanResponse, 0, len(plans))
	for _, p := range plans {
		out = append(out, ToPlanResponse(p))
	}
	return &PlanListResponse{Plans: out}
}
