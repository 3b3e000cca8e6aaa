// Package entity 定义领域实体
package entity

import (
	"time"
)

// DistanceSource 距离数据来源
type DistanceSource string

const (
	DistanceSourceManual    DistanceSource = "manual"
	DistanceSourceMapped    DistanceSource = "mapped"
	DistanceSourceEstimated DistanceSource = "estimated"
)

// DistanceEntry 两个场地之间的有向距离；查询时双向兜底
type DistanceEntry struct {
	ID             string         `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID      string         `json:"project_id" gorm:"type:uuid;index;not null"`
	FromLocationID string         `json:"from_location_id" gorm:"type:uuid;index;not null"`
	ToLocationID   string         `json:"to_location_id" gorm:"type:uuid;index;not null"`
	DistanceKm     float64        `json:"distance_km"`
	DurationMin    int            `json:"duration_min"`
	Source         DistanceSource `json:"source" gorm:"type:varchar(16);default:'estimated'"`
	CreatedAt      time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (DistanceEntry) TableName() string {
	return "location_distances"
}

// DistanceMatrix 项目内距离条目的内存索引，支持反向兜底查询
type DistanceMatrix struct {
	entries map[[2]string]*DistanceEntry
}

// NewDistanceMatrix 构建距离索引
func NewDistanceMatrix(entries []*DistanceEntry) *DistanceMatrix {
	m := &DistanceMatrix{entries: make(map[[2]string]*DistanceEntry, len(entries))}
	for _, e := range entries {
		if e == nil || e.FromLocationID == "" || e.ToLocationID == "" {
			continue
		}
		key := [2]string{e.FromLocationID, e.ToLocationID}
		if _, exists := m.entries[key]; !exists {
			m.entries[key] = e
		}
	}
	return m
}

// Lookup 查询两场地间距离；缺失反向条目时回落正向条目
func (m *DistanceMatrix) Lookup(fromID, toID string) (*DistanceEntry, bool) {
	if m == nil || fromID == "" || toID == "" {
		return nil, false
	}
	if e, ok := m.entries[[2]string{fromID, toID}]; ok {
		return e, true
	}
	if e, ok := m.entries[[2]string{toID, fromID}]; ok {
		return e, true
	}
	return nil, false
}

// TravelMinutes 查询行车分钟数
func (m *DistanceMatrix) TravelMinutes(fromID, toID string) (int, bool) {
	e, ok := m.Lookup(fromID, toID)
	if !ok || e.DurationMin <= 0 {
		return 0, false
	}
	return e.DurationMin, true
}
