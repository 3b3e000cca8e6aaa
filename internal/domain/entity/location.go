// Package entity 定义领域实体
package entity

import (
	"time"
)

// Location 场地实体
type Location struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID string    `json:"project_id" gorm:"type:uuid;index;not null"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Zone      string    `json:"zone,omitempty" gorm:"type:varchar(64);index"`
	Address   string    `json:"address,omitempty" gorm:"type:varchar(512)"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Location) TableName() string {
	return "locations"
}

// HasCoordinates 是否有经纬度
func (l *Location) HasCoordinates() bool {
	return l.Latitude != nil && l.Longitude != nil
}

// Character 角色实体
type Character struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID string    `json:"project_id" gorm:"type:uuid;index;not null"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	ActorName string    `json:"actor_name,omitempty" gorm:"type:varchar(255)"`
	IsMinor   bool      `json:"is_minor" gorm:"default:false"`
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Character) TableName() string {
	return "characters"
}
