// Package entity 定义领域实体
package entity

import (
	"strings"
	"time"
)

// TimeOfDay 场次时段
type TimeOfDay string

const (
	TimeOfDayDay   TimeOfDay = "day"
	TimeOfDayDawn  TimeOfDay = "dawn"
	TimeOfDayDusk  TimeOfDay = "dusk"
	TimeOfDayNight TimeOfDay = "night"
)

// ParseTimeOfDay 解析时段字符串，未知值回落为白天
func ParseTimeOfDay(s string) TimeOfDay {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "night", "夜":
		return TimeOfDayNight
	case "dusk", "黄昏":
		return TimeOfDayDusk
	case "dawn", "黎明":
		return TimeOfDayDawn
	default:
		return TimeOfDayDay
	}
}

// SortOrder 返回排序权重：DAY < DAWN < DUSK < NIGHT
func (t TimeOfDay) SortOrder() int {
	switch t {
	case TimeOfDayDawn:
		return 1
	case TimeOfDayDusk:
		return 2
	case TimeOfDayNight:
		return 3
	default:
		return 0
	}
}

// IsNight 是否为夜戏
func (t TimeOfDay) IsNight() bool {
	return t == TimeOfDayNight
}

// ComplexityCategory 粗粒度复杂度分类（遗留模型）
type ComplexityCategory string

const (
	ComplexityLow     ComplexityCategory = "low"
	ComplexityMedium  ComplexityCategory = "medium"
	ComplexityHigh    ComplexityCategory = "high"
	ComplexityExtreme ComplexityCategory = "extreme"
)

// Multiplier 遗留分类系数，仅用于有效页量显示，不参与分钟级估算
func (c ComplexityCategory) Multiplier() float64 {
	switch c {
	case ComplexityMedium:
		return 1.2
	case ComplexityHigh:
		return 2.0
	case ComplexityExtreme:
		return 3.0
	default:
		return 1.0
	}
}

// ComplexityFactors 15 项结构化复杂度因子
type ComplexityFactors struct {
	CameraMovement   bool `json:"camera_movement,omitempty"`
	PhysicalAction   bool `json:"physical_action,omitempty"`
	Stunts           bool `json:"stunts,omitempty"`
	SpecialEffects   bool `json:"special_effects,omitempty"`
	MinorsPresent    bool `json:"minors_present,omitempty"`
	AnimalsPresent   bool `json:"animals_present,omitempty"`
	MovingVehicles   bool `json:"moving_vehicles,omitempty"`
	ExtrasCount      int  `json:"extras_count,omitempty"`
	ComplexLighting  bool `json:"complex_lighting,omitempty"`
	NightScene       bool `json:"night_scene,omitempty"`
	ExteriorWeather  bool `json:"exterior_weather,omitempty"`
	ExtendedDialogue bool `json:"extended_dialogue,omitempty"`
	CraneRequired    bool `json:"crane_required,omitempty"`
	SpecialShots     bool `json:"special_shots,omitempty"`
	CharacterCount   int  `json:"character_count,omitempty"`
}

// Scene 场次实体，一条可拍摄单元
type Scene struct {
	ID          string `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectID   string `json:"project_id" gorm:"type:uuid;index;not null"`
	SeqNum      int    `json:"seq_num" gorm:"not null"`
	Title       string `json:"title,omitempty" gorm:"type:varchar(255)"`
	Description string `json:"description,omitempty" gorm:"type:text"`

	// SetType 显式内外景标记（INT/EXT），为空时从场头解析
	SetType      string    `json:"set_type,omitempty" gorm:"type:varchar(8)"`
	LocationID   string    `json:"location_id,omitempty" gorm:"type:uuid;index"`
	LocationName string    `json:"location_name,omitempty" gorm:"type:varchar(255)"`
	TimeOfDay    TimeOfDay `json:"time_of_day" gorm:"type:varchar(16);default:'day'"`

	// Eighths 原始页量，异构编码：可能是八分之一页整数，也可能是页数小数
	Eighths    float64            `json:"eighths" gorm:"default:1"`
	Complexity ComplexityCategory `json:"complexity" gorm:"type:varchar(16);default:'low'"`
	Factors    *ComplexityFactors `json:"factors,omitempty" gorm:"type:jsonb;serializer:json"`
	Characters []string           `json:"characters,omitempty" gorm:"type:jsonb;serializer:json"`

	// 上游 AI 拆解可能已带分钟估算，存在时覆盖公式
	SetupMinutes    *int `json:"setup_minutes,omitempty"`
	ShootingMinutes *int `json:"shooting_minutes,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName 指定表名
func (Scene) TableName() string {
	return "scenes"
}

// IsExterior 是否为外景：优先显式 set_type，否则解析场头前缀
func (s *Scene) IsExterior() bool {
	st := strings.ToUpper(strings.TrimSpace(s.SetType))
	if st != "" {
		return strings.HasPrefix(st, "EXT")
	}
	return strings.HasPrefix(strings.ToUpper(strings.TrimSpace(s.Title)), "EXT")
}

// EffectiveLocationName 匹配不到场地外键时回落到场头解析出的名称
func (s *Scene) EffectiveLocationName() string {
	if strings.TrimSpace(s.LocationName) != "" {
		return strings.TrimSpace(s.LocationName)
	}
	return parseLocationFromHeading(s.Title)
}

// parseLocationFromHeading 从 "INT. KITCHEN - NIGHT" 样式的场头提取场地名
func parseLocationFromHeading(heading string) string {
	h := strings.TrimSpace(heading)
	if h == "" {
		return "UNKNOWN"
	}
	// 去掉 INT./EXT. 前缀
	upper := strings.ToUpper(h)
	for _, prefix := range []string{"INT./EXT.", "INT/EXT.", "EXT.", "INT.", "EXT", "INT"} {
		if strings.HasPrefix(upper, prefix) {
			h = strings.TrimSpace(h[len(prefix):])
			break
		}
	}
	// 去掉时段尾缀
	if idx := strings.LastIndex(h, " - "); idx > 0 {
		h = h[:idx]
	}
	h = strings.TrimSpace(h)
	if h == "" {
		return "UNKNOWN"
	}
	return h
}

// FactorsOrZero 返回复杂度因子，缺失时为零值
func (s *Scene) FactorsOrZero() ComplexityFactors {
	if s.Factors == nil {
		return ComplexityFactors{}
	}
	return *s.Factors
}

// HasMinors 场次是否涉及未成年演员
func (s *Scene) HasMinors() bool {
	return s.Factors != nil && s.Factors.MinorsPresent
}
