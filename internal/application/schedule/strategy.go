package schedule

import (
	"sort"
	"strings"

	"cineplan-api/internal/domain/entity"
)

// Strategy 排序策略标识
type Strategy string

const (
	StrategyLocation  Strategy = "location"
	StrategyTimeOfDay Strategy = "time_of_day"
	StrategyCast      Strategy = "cast"
	StrategyBalanced  Strategy = "balanced"
	StrategyZone      Strategy = "zone"
)

// ParseStrategy 解析策略字符串，未知值回落为场地策略
func ParseStrategy(s string) Strategy {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategyTimeOfDay:
		return StrategyTimeOfDay
	case StrategyCast:
		return StrategyCast
	case StrategyBalanced:
		return StrategyBalanced
	case StrategyZone:
		return StrategyZone
	default:
		return StrategyLocation
	}
}

// SortContext 排序所需的协作数据
type SortContext struct {
	// ZoneByLocation 场地名 → 地理片区，仅 zone 策略使用
	ZoneByLocation map[string]string

	// DayNightSeparation 场地策略下是否按时段二级分组
	DayNightSeparation bool
}

// sortKey 多级排序键，剧本序号恒为最终平局键
type sortKey struct {
	primary   string
	secondary string
	tertiary  int
	seqNum    int
}

func (k sortKey) less(o sortKey) bool {
	if k.primary != o.primary {
		return k.primary < o.primary
	}
	if k.secondary != o.secondary {
		return k.secondary < o.secondary
	}
	if k.tertiary != o.tertiary {
		return k.tertiary < o.tertiary
	}
	return k.seqNum < o.seqNum
}

// OrderScenes 按策略对场次做全序排列。返回新切片，不修改入参。
func OrderScenes(scenes []*entity.Scene, strategy Strategy, sc SortContext) []*entity.Scene {
	type keyed struct {
		scene *entity.Scene
		key   sortKey
	}
	items := make([]keyed, len(scenes))
	for i, s := range scenes {
		items[i] = keyed{scene: s, key: buildKey(s, strategy, sc)}
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].key.less(items[j].key)
	})

	ordered := make([]*entity.Scene, len(items))
	for i, it := range items {
		ordered[i] = it.scene
	}
	return ordered
}

func buildKey(s *entity.Scene, strategy Strategy, sc SortContext) sortKey {
	k := sortKey{seqNum: s.SeqNum}
	switch strategy {
	case StrategyTimeOfDay:
		k.primary = timeKey(s)
		k.secondary = locationKey(s)
	case StrategyCast:
		k.primary = castKey(s)
		k.secondary = timeKey(s)
	case StrategyBalanced:
		k.primary = locationKey(s)
		k.secondary = castKey(s)
		k.tertiary = s.TimeOfDay.SortOrder()
	case StrategyZone:
		k.primary = zoneKey(s, sc.ZoneByLocation)
		k.secondary = locationKey(s)
		k.tertiary = s.TimeOfDay.SortOrder()
	default: // StrategyLocation
		k.primary = locationKey(s)
		if sc.DayNightSeparation {
			k.secondary = timeKey(s)
		}
	}
	return k
}

func locationKey(s *entity.Scene) string {
	return strings.ToLower(s.EffectiveLocationName())
}

// timeKey 时段排序键：DAY < DAWN < DUSK < NIGHT
func timeKey(s *entity.Scene) string {
	return string(rune('0' + s.TimeOfDay.SortOrder()))
}

// castKey 前两位演员名排序拼接，作为演员就近分组键
func castKey(s *entity.Scene) string {
	if len(s.Characters) == 0 {
		return ""
	}
	names := make([]string, len(s.Characters))
	copy(names, s.Characters)
	sort.Strings(names)
	if len(names) > 2 {
		names = names[:2]
	}
	return strings.ToLower(strings.Join(names, "|"))
}

// zoneKey 场地片区键，未映射场地排在最后
func zoneKey(s *entity.Scene, zones map[string]string) string {
	if zones != nil {
		if z, ok := zones[s.EffectiveLocationName()]; ok && z != "" {
			return strings.ToLower(z)
		}
	}
	return "￿"
}

// SceneZone 查询场次所在片区，未映射返回空串
func SceneZone(s *entity.Scene, zones map[string]string) string {
	if zones == nil {
		return ""
	}
	return zones[s.EffectiveLocationName()]
}
