// Package entity 定义领域实体
package entity

import (
	"time"
)

// PlannedScene 拍摄日内的场次快照，只保留重新展示所需的字段
type PlannedScene struct {
	SceneID         string    `json:"scene_id"`
	SeqNum          int       `json:"seq_num"`
	Title           string    `json:"title,omitempty"`
	LocationID      string    `json:"location_id,omitempty"`
	LocationName    string    `json:"location_name,omitempty"`
	TimeOfDay       TimeOfDay `json:"time_of_day"`
	Eighths         int       `json:"eighths"`
	EffectiveEighth float64   `json:"effective_eighths"`
	SetupMinutes    int       `json:"setup_minutes"`
	ShootingMinutes int       `json:"shooting_minutes"`
	TotalMinutes    int       `json:"total_minutes"`
	Characters      []string  `json:"characters,omitempty"`
	MinorsPresent   bool      `json:"minors_present,omitempty"`
}

// ShootingDay 拍摄日：一组场次及其聚合信息
type ShootingDay struct {
	DayNumber int `json:"day_number"`

	// LocationLabel 展示标签：单场地时为其名称，否则 "<first> + N more"
	LocationLabel string   `json:"location_label"`
	LocationID    string   `json:"location_id,omitempty"`
	Locations     []string `json:"locations,omitempty"`

	TimeOfDay TimeOfDay      `json:"time_of_day"`
	Scenes    []PlannedScene `json:"scenes"`

	Characters     []string `json:"characters,omitempty"`
	TotalEighths   float64  `json:"total_eighths"`
	EstimatedHours float64  `json:"estimated_hours"`
	TargetHours    float64  `json:"target_hours"`
	Warnings       []string `json:"warnings,omitempty"`
}

// RemainingHours 目标工时减去估算工时，可为负（超载）
func (d *ShootingDay) RemainingHours() float64 {
	return d.TargetHours - d.EstimatedHours
}

// SceneIDs 返回当日场次 ID 列表（按日内顺序）
func (d *ShootingDay) SceneIDs() []string {
	ids := make([]string, 0, len(d.Scenes))
	for _, s := range d.Scenes {
		ids = append(ids, s.SceneID)
	}
	return ids
}

// HasMinors 当日是否包含未成年演员场次
func (d *ShootingDay) HasMinors() bool {
	for _, s := range d.Scenes {
		if s.MinorsPresent {
			return true
		}
	}
	return false
}

// PlanStatus 计划状态
type PlanStatus string

const (
	PlanStatusDraft     PlanStatus = "draft"
	PlanStatusGenerated PlanStatus = "generated"
	PlanStatusRepaired  PlanStatus = "repaired"
)

// PlanMode 计划生成方式
type PlanMode string

const (
	PlanModeDeterministic PlanMode = "deterministic"
	PlanModeAI            PlanMode = "ai"
)

// GenerationMetadata AI 生成元数据
type GenerationMetadata struct {
	Provider         string  `json:"provider,omitempty"`
	Model            string  `json:"model,omitempty"`
	PromptTokens     int     `json:"prompt_tokens,omitempty"`
	CompletionTokens int     `json:"completion_tokens,omitempty"`
	Temperature      float64 `json:"temperature,omitempty"`
	GeneratedAt      string  `json:"generated_at,omitempty"`
}

// ShootingPlan 拍摄计划聚合根
type ShootingPlan struct {
	ID                 string              `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID          string              `json:"project_id" gorm:"type:uuid;index;not null"`
	Mode               PlanMode            `json:"mode" gorm:"type:varchar(16);default:'deterministic'"`
	Strategy           string              `json:"strategy" gorm:"type:varchar(32)"`
	TargetHours        float64             `json:"target_hours" gorm:"default:10"`
	Status             PlanStatus          `json:"status" gorm:"type:varchar(16);default:'generated'"`
	Days               []ShootingDay       `json:"days" gorm:"type:jsonb;serializer:json"`
	Summary            string              `json:"summary,omitempty" gorm:"type:text"`
	GenerationMetadata *GenerationMetadata `json:"generation_metadata,omitempty" gorm:"type:jsonb;serializer:json"`
	CreatedAt          time.Time           `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt          time.Time           `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (ShootingPlan) TableName() string {
	return "shooting_plans"
}

// Renumber 重排拍摄日编号为连续 1..N
func (p *ShootingPlan) Renumber() {
	for i := range p.Days {
		p.Days[i].DayNumber = i + 1
	}
}

// TotalWarnings 汇总所有拍摄日的警告数量
func (p *ShootingPlan) TotalWarnings() int {
	n := 0
	for i := range p.Days {
		n += len(p.Days[i].Warnings)
	}
	return n
}

// FindDay 按日编号查找
func (p *ShootingPlan) FindDay(dayNumber int) *ShootingDay {
	for i := range p.Days {
		if p.Days[i].DayNumber == dayNumber {
			return &p.Days[i]
		}
	}
	return nil
}
