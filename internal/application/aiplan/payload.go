// Package aiplan 实现 AI 辅助排期：请求体序列化、模型输出解析、
// 完整性校验与修复。模型是不可信协作方，其输出必须通过与确定性
// 装日算法相同的结构不变量之后才会被采用。
package aiplan

import (
	"encoding/json"

	"cineplan-api/internal/application/schedule"
	"cineplan-api/internal/domain/entity"
)

// PlanRequest 发往模型的排期请求体
type PlanRequest struct {
	ProjectID          string          `json:"project_id"`
	ProductionType     string          `json:"production_type,omitempty"`
	TargetHours        float64         `json:"target_hours"`
	MaxEighthsPerDay   int             `json:"max_eighths_per_day"`
	DayNightSeparation bool            `json:"day_night_separation"`
	Scenes             []SceneItem     `json:"scenes"`
	Locations          []LocationItem  `json:"locations"`
	Characters         []CharacterItem `json:"characters"`
	Distances          []DistanceItem  `json:"distances,omitempty"`
}

// SceneItem 扁平化场次，携带预估分钟数减轻模型计算负担
type SceneItem struct {
	ID              string   `json:"id"`
	SeqNum          int      `json:"seq_num"`
	Title           string   `json:"title,omitempty"`
	LocationID      string   `json:"location_id,omitempty"`
	LocationName    string   `json:"location_name"`
	TimeOfDay       string   `json:"time_of_day"`
	Eighths         int      `json:"eighths"`
	SetupMinutes    int      `json:"setup_minutes"`
	ShootingMinutes int      `json:"shooting_minutes"`
	TotalMinutes    int      `json:"total_minutes"`
	Characters      []string `json:"characters,omitempty"`
	MinorsPresent   bool     `json:"minors_present,omitempty"`
}

type LocationItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Zone string `json:"zone,omitempty"`
}

// CharacterItem 角色及其出场场次数，供模型评估档期连续性
type CharacterItem struct {
	Name       string `json:"name"`
	SceneCount int    `json:"scene_count"`
	IsMinor    bool   `json:"is_minor,omitempty"`
}

// DistanceItem 去重后的无向距离
type DistanceItem struct {
	FromLocationID string  `json:"from_location_id"`
	ToLocationID   string  `json:"to_location_id"`
	DistanceKm     float64 `json:"distance_km"`
	DurationMin    int     `json:"duration_min"`
}

// BuildPlanRequest 组装排期请求体
func BuildPlanRequest(
	project *entity.Project,
	scenes []*entity.Scene,
	locations []*entity.Location,
	characters []*entity.Character,
	distances []*entity.DistanceEntry,
	targetHours float64,
	maxEighthsPerDay int,
	dayNightSeparation bool,
) *PlanRequest {
	req := &PlanRequest{
		ProjectID:          project.ID,
		ProductionType:     project.ProductionType,
		TargetHours:        targetHours,
		MaxEighthsPerDay:   maxEighthsPerDay,
		DayNightSeparation: dayNightSeparation,
	}

	appearances := make(map[string]int)
	for _, s := range scenes {
		bd := schedule.EstimateSceneTime(s)
		req.Scenes = append(req.Scenes, SceneItem{
			ID:              s.ID,
			SeqNum:          s.SeqNum,
			Title:           s.Title,
			LocationID:      s.LocationID,
			LocationName:    s.EffectiveLocationName(),
			TimeOfDay:       string(s.TimeOfDay),
			Eighths:         bd.Eighths,
			SetupMinutes:    bd.SetupMinutes,
			ShootingMinutes: bd.ShootingMinutes,
			TotalMinutes:    bd.TotalMinutes,
			Characters:      s.Characters,
			MinorsPresent:   s.HasMinors(),
		})
		for _, name := range s.Characters {
			appearances[name]++
		}
	}

	for _, loc := range locations {
		req.Locations = append(req.Locations, LocationItem{
			ID:   loc.ID,
			Name: loc.Name,
			Zone: loc.Zone,
		})
	}

	for _, c := range characters {
		req.Characters = append(req.Characters, CharacterItem{
			Name:       c.Name,
			SceneCount: appearances[c.Name],
			IsMinor:    c.IsMinor,
		})
	}

	// 无向去重：同一对场地只保留先出现的条目
	seen := make(map[[2]string]struct{}, len(distances))
	for _, d := range distances {
		key := [2]string{d.FromLocationID, d.ToLocationID}
		if d.ToLocationID < d.FromLocationID {
			key = [2]string{d.ToLocationID, d.FromLocationID}
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		req.Distances = append(req.Distances, DistanceItem{
			FromLocationID: d.FromLocationID,
			ToLocationID:   d.ToLocationID,
			DistanceKm:     d.DistanceKm,
			DurationMin:    d.DurationMin,
		})
	}

	return req
}

// MarshalJSONString 序列化请求体，用于填充提示词
func (r *PlanRequest) MarshalJSONString() (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
