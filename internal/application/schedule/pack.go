package schedule

import (
	"cineplan-api/internal/domain/entity"
)

// 片区出行固定罚时（分钟），距离矩阵缺条目时兜底
const (
	defaultIntraZoneTravelMinutes = 15
	defaultInterZoneTravelMinutes = 45
)

// PackOptions 装日参数
type PackOptions struct {
	TargetHours float64
	Strategy    Strategy

	// ZoneByLocation 场地名 → 片区，zone 策略下参与边际成本
	ZoneByLocation map[string]string

	// Distances 距离矩阵，有真实条目时覆盖固定罚时
	Distances *entity.DistanceMatrix

	IntraZoneTravelMinutes int
	InterZoneTravelMinutes int
}

func (o *PackOptions) normalize() {
	if o.TargetHours <= 0 {
		o.TargetHours = 10
	}
	if o.IntraZoneTravelMinutes <= 0 {
		o.IntraZoneTravelMinutes = defaultIntraZoneTravelMinutes
	}
	if o.InterZoneTravelMinutes <= 0 {
		o.InterZoneTravelMinutes = defaultInterZoneTravelMinutes
	}
}

// PackDays 把已排序的场次流贪心切分为拍摄日。
// 只分割不重排：日内顺序即输入顺序。边际成本在同场地连拍时
// 用小转场替代整备；容量检查仅阻止第 2 场起的溢出，
// 每日首场无条件接收（超长场次独占一日并携带超载警告）。
func PackDays(ordered []*entity.Scene, opts PackOptions) []entity.ShootingDay {
	opts.normalize()
	if len(ordered) == 0 {
		return nil
	}

	budget := opts.TargetHours * 60
	var days []entity.ShootingDay

	cursor := 0
	for cursor < len(ordered) {
		var dayScenes []*entity.Scene
		running := 0.0

		for cursor < len(ordered) {
			scene := ordered[cursor]
			cost := marginalCost(scene, last(dayScenes), opts)
			if len(dayScenes) > 0 && running+float64(cost) > budget {
				break
			}
			dayScenes = append(dayScenes, scene)
			running += float64(cost)
			cursor++
		}

		day := entity.ShootingDay{
			DayNumber:   len(days) + 1,
			TargetHours: opts.TargetHours,
			Scenes:      snapshotScenes(dayScenes),
		}
		RecomputeDayAggregates(&day, opts)
		days = append(days, day)
	}
	return days
}

// BuildDay 把一组场次实体封装为拍摄日并完成聚合。
// 供 AI 计划修复路径按模型给出的分组重建拍摄日。
func BuildDay(dayNumber int, scenes []*entity.Scene, opts PackOptions) entity.ShootingDay {
	opts.normalize()
	day := entity.ShootingDay{
		DayNumber:   dayNumber,
		TargetHours: opts.TargetHours,
		Scenes:      snapshotScenes(scenes),
	}
	RecomputeDayAggregates(&day, opts)
	return day
}

// marginalCost 场次加入当日的边际分钟成本
func marginalCost(scene, prev *entity.Scene, opts PackOptions) int {
	bd := EstimateSceneTime(scene)
	if prev == nil {
		return bd.SetupMinutes + bd.ShootingMinutes
	}
	if sameLocation(scene, prev) {
		return bd.ShootingMinutes + miniSetupMinutes
	}
	cost := bd.SetupMinutes + bd.ShootingMinutes
	if opts.Strategy == StrategyZone {
		cost += travelPenalty(prev, scene, opts)
	}
	return cost
}

// travelPenalty 换场地出行罚时：优先真实距离矩阵，缺失时按片区兜底
func travelPenalty(from, to *entity.Scene, opts PackOptions) int {
	if opts.Distances != nil && from.LocationID != "" && to.LocationID != "" {
		if minutes, ok := opts.Distances.TravelMinutes(from.LocationID, to.LocationID); ok {
			return minutes
		}
	}
	fromZone := SceneZone(from, opts.ZoneByLocation)
	toZone := SceneZone(to, opts.ZoneByLocation)
	if fromZone != "" && fromZone == toZone {
		return opts.IntraZoneTravelMinutes
	}
	return opts.InterZoneTravelMinutes
}

// sameLocation 优先比外键，缺失时比归一化场地名
func sameLocation(a, b *entity.Scene) bool {
	if a.LocationID != "" && b.LocationID != "" {
		return a.LocationID == b.LocationID
	}
	return locationKey(a) == locationKey(b)
}

func last(scenes []*entity.Scene) *entity.Scene {
	if len(scenes) == 0 {
		return nil
	}
	return scenes[len(scenes)-1]
}

// snapshotScenes 把场次实体折叠为日内快照
func snapshotScenes(scenes []*entity.Scene) []entity.PlannedScene {
	out := make([]entity.PlannedScene, 0, len(scenes))
	for _, s := range scenes {
		bd := EstimateSceneTime(s)
		out = append(out, entity.PlannedScene{
			SceneID:         s.ID,
			SeqNum:          s.SeqNum,
			Title:           s.Title,
			LocationID:      s.LocationID,
			LocationName:    s.EffectiveLocationName(),
			TimeOfDay:       s.TimeOfDay,
			Eighths:         bd.Eighths,
			EffectiveEighth: EffectiveEighths(s),
			SetupMinutes:    bd.SetupMinutes,
			ShootingMinutes: bd.ShootingMinutes,
			TotalMinutes:    bd.TotalMinutes,
			Characters:      s.Characters,
			MinorsPresent:   s.HasMinors(),
		})
	}
	return out
}
