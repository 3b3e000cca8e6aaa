package schedule

import (
	"fmt"
	"math"
	"sort"

	"cineplan-api/internal/domain/entity"
)

// 单日即时警告阈值
const (
	hardOverloadHours = 12.0
	maxDayCastSize    = 10
	maxDayLocations   = 3
)

// RecomputeDayAggregates 依据当日场次快照重建全部聚合字段。
// 纯重推导，不做增量更新：场次列表任何变动（装日、修复、
// 手工移动）之后都整体重算，避免聚合与列表漂移。
// 同时重建该日的单日警告；跨日警告由校验器另行追加。
func RecomputeDayAggregates(day *entity.ShootingDay, opts PackOptions) {
	opts.normalize()

	day.TotalEighths = 0
	day.Characters = nil
	day.Locations = nil
	day.LocationLabel = ""
	day.LocationID = ""
	day.TimeOfDay = entity.TimeOfDayDay
	day.EstimatedHours = 0
	day.Warnings = nil
	if day.TargetHours <= 0 {
		day.TargetHours = opts.TargetHours
	}
	if len(day.Scenes) == 0 {
		return
	}

	totalMinutes := 0
	charSet := make(map[string]struct{})
	var locations []string
	locSeen := make(map[string]struct{})
	todCount := make(map[entity.TimeOfDay]int)

	for i := range day.Scenes {
		s := &day.Scenes[i]
		totalMinutes += sceneMarginalMinutes(day.Scenes, i, opts)
		day.TotalEighths += s.EffectiveEighth
		todCount[s.TimeOfDay]++

		for _, c := range s.Characters {
			charSet[c] = struct{}{}
		}
		if _, ok := locSeen[s.LocationName]; !ok && s.LocationName != "" {
			locSeen[s.LocationName] = struct{}{}
			locations = append(locations, s.LocationName)
		}
	}

	day.EstimatedHours = math.Round(float64(totalMinutes)/60*100) / 100
	day.Locations = locations
	day.LocationLabel = locationLabel(locations)
	day.LocationID = day.Scenes[0].LocationID
	day.TimeOfDay = dominantTimeOfDay(day.Scenes, todCount)
	day.Characters = sortedSet(charSet)

	appendDayWarnings(day)
}

// sceneMarginalMinutes 重放装日时的邻接规则，对快照重算边际成本
func sceneMarginalMinutes(scenes []entity.PlannedScene, i int, opts PackOptions) int {
	s := &scenes[i]
	if i == 0 {
		return s.SetupMinutes + s.ShootingMinutes
	}
	prev := &scenes[i-1]
	if samePlannedLocation(s, prev) {
		return s.ShootingMinutes + miniSetupMinutes
	}
	cost := s.SetupMinutes + s.ShootingMinutes
	if opts.Strategy == StrategyZone {
		cost += plannedTravelPenalty(prev, s, opts)
	}
	return cost
}

func plannedTravelPenalty(from, to *entity.PlannedScene, opts PackOptions) int {
	if opts.Distances != nil && from.LocationID != "" && to.LocationID != "" {
		if minutes, ok := opts.Distances.TravelMinutes(from.LocationID, to.LocationID); ok {
			return minutes
		}
	}
	fromZone := opts.ZoneByLocation[from.LocationName]
	toZone := opts.ZoneByLocation[to.LocationName]
	if fromZone != "" && fromZone == toZone {
		return opts.IntraZoneTravelMinutes
	}
	return opts.InterZoneTravelMinutes
}

func samePlannedLocation(a, b *entity.PlannedScene) bool {
	if a.LocationID != "" && b.LocationID != "" {
		return a.LocationID == b.LocationID
	}
	return a.LocationName == b.LocationName
}

// locationLabel 单场地显示其名，多场地显示 "<first> + N more"
func locationLabel(locations []string) string {
	switch len(locations) {
	case 0:
		return "UNKNOWN"
	case 1:
		return locations[0]
	default:
		return fmt.Sprintf("%s + %d more", locations[0], len(locations)-1)
	}
}

// dominantTimeOfDay 多数票，平票取先出现者
func dominantTimeOfDay(scenes []entity.PlannedScene, counts map[entity.TimeOfDay]int) entity.TimeOfDay {
	best := scenes[0].TimeOfDay
	seen := map[entity.TimeOfDay]struct{}{best: {}}
	for _, s := range scenes[1:] {
		if _, ok := seen[s.TimeOfDay]; ok {
			continue
		}
		seen[s.TimeOfDay] = struct{}{}
		if counts[s.TimeOfDay] > counts[best] {
			best = s.TimeOfDay
		}
	}
	return best
}

func sortedSet(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// appendDayWarnings 附加单日即时警告
func appendDayWarnings(day *entity.ShootingDay) {
	if day.EstimatedHours > hardOverloadHours {
		day.Warnings = append(day.Warnings,
			fmt.Sprintf("第 %d 天预计 %.1f 小时，严重超出 %.0f 小时上限", day.DayNumber, day.EstimatedHours, hardOverloadHours))
	} else if day.EstimatedHours > day.TargetHours {
		day.Warnings = append(day.Warnings,
			fmt.Sprintf("第 %d 天预计 %.1f 小时，超出目标 %.1f 小时", day.DayNumber, day.EstimatedHours, day.TargetHours))
	}
	if len(day.Characters) > maxDayCastSize {
		day.Warnings = append(day.Warnings,
			fmt.Sprintf("第 %d 天涉及 %d 名演员，调度压力较大", day.DayNumber, len(day.Characters)))
	}
	if len(day.Locations) > maxDayLocations {
		day.Warnings = append(day.Warnings,
			fmt.Sprintf("第 %d 天跨 %d 个场地，转场开销较大", day.DayNumber, len(day.Locations)))
	}
}
