// Package entity 定义领域实体
package entity

import (
	"time"
)

// Project 制作项目实体
type Project struct {
	ID             string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `json:"name" gorm:"type:varchar(255);not null"`
	Description    string    `json:"description,omitempty" gorm:"type:text"`
	ProductionType string    `json:"production_type,omitempty" gorm:"type:varchar(64)"`
	TargetHours    float64   `json:"target_hours" gorm:"default:10"`
	CreatedAt      time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Project) TableName() string {
	return "projects"
}

// NewProject 创建新项目
func NewProject(name, productionType string) *Project {
	now := time.Now()
	return &Project{
		Name:           name,
		ProductionType: productionType,
		TargetHours:    10,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
