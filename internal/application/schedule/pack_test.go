package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cineplan-api/internal/domain/entity"
)

func packScene(seq int, location string, eighths float64) *entity.Scene {
	return &entity.Scene{
		ID:           fmt.Sprintf("scene-%d", seq),
		SeqNum:       seq,
		Title:        fmt.Sprintf("INT. %s - DAY", location),
		SetType:      "INT",
		LocationName: location,
		TimeOfDay:    entity.TimeOfDayDay,
		Eighths:      eighths,
		Complexity:   entity.ComplexityLow,
	}
}

func flattenSceneIDs(days []entity.ShootingDay) []string {
	var ids []string
	for _, d := range days {
		ids = append(ids, (&d).SceneIDs()...)
	}
	return ids
}

func TestPackDaysEmptyInput(t *testing.T) {
	assert.Nil(t, PackDays(nil, PackOptions{TargetHours: 10}))
}

func TestPackDaysAdjacencyDiscount(t *testing.T) {
	// 十场同一场地：一次整备 30 + 九次小转场 10，
	// 每场拍摄 13+5=18 分钟 → 30+18 + 9×(18+10) = 300 分钟 = 5 小时，单日装下
	scenes := make([]*entity.Scene, 0, 10)
	for i := 1; i <= 10; i++ {
		scenes = append(scenes, packScene(i, "KITCHEN", 1))
	}

	days := PackDays(scenes, PackOptions{TargetHours: 10})
	require.Len(t, days, 1)
	assert.Len(t, days[0].Scenes, 10)
	assert.InDelta(t, 5.0, days[0].EstimatedHours, 0.01)
	assert.Empty(t, days[0].Warnings)
}

func TestPackDaysSplitsOnBudget(t *testing.T) {
	// 每场 8 页量：首场 30+109=139，后续同场地 119 分钟
	scenes := make([]*entity.Scene, 0, 10)
	for i := 1; i <= 10; i++ {
		scenes = append(scenes, packScene(i, "KITCHEN", 8))
	}

	days := PackDays(scenes, PackOptions{TargetHours: 10})
	// 600 分钟预算：139+119×3=496 可再装一场到 615 超限 → 每日 4 场
	require.Len(t, days, 3)
	assert.Len(t, days[0].Scenes, 4)
	assert.Len(t, days[1].Scenes, 4)
	assert.Len(t, days[2].Scenes, 2)
}

func TestPackDaysCompleteness(t *testing.T) {
	scenes := []*entity.Scene{
		packScene(1, "KITCHEN", 3),
		packScene(2, "ALLEY", 8),
		packScene(3, "KITCHEN", 2),
		packScene(4, "WAREHOUSE", 12),
		packScene(5, "ALLEY", 1),
	}

	for _, strategy := range []Strategy{StrategyLocation, StrategyTimeOfDay, StrategyCast, StrategyBalanced, StrategyZone} {
		ordered := OrderScenes(scenes, strategy, SortContext{})
		days := PackDays(ordered, PackOptions{TargetHours: 4, Strategy: strategy})

		ids := flattenSceneIDs(days)
		require.Len(t, ids, len(scenes), "strategy=%s", strategy)
		seen := make(map[string]int)
		for _, id := range ids {
			seen[id]++
		}
		for _, s := range scenes {
			assert.Equal(t, 1, seen[s.ID], "strategy=%s scene=%s", strategy, s.ID)
		}
	}
}

func TestPackDaysPreservesInputOrder(t *testing.T) {
	scenes := []*entity.Scene{
		packScene(5, "A", 2),
		packScene(1, "B", 2),
		packScene(9, "C", 2),
		packScene(3, "D", 2),
	}

	days := PackDays(scenes, PackOptions{TargetHours: 10})
	var got []int
	for _, d := range days {
		for _, s := range d.Scenes {
			got = append(got, s.SeqNum)
		}
	}
	assert.Equal(t, []int{5, 1, 9, 3}, got)
}

func TestPackDaysOversizedSceneAlwaysFits(t *testing.T) {
	shooting := 900 // 15 小时，单场已超任何预算
	huge := packScene(1, "DESERT", 8)
	huge.ShootingMinutes = &shooting

	days := PackDays([]*entity.Scene{huge, packScene(2, "KITCHEN", 1)}, PackOptions{TargetHours: 10})
	require.Len(t, days, 2)
	assert.Len(t, days[0].Scenes, 1)
	assert.Greater(t, days[0].EstimatedHours, 12.0)
	require.NotEmpty(t, days[0].Warnings)
}

func TestPackDaysZoneTravelPenalty(t *testing.T) {
	zones := map[string]string{
		"KITCHEN": "studio",
		"STAGE":   "studio",
		"ALLEY":   "downtown",
	}
	scenes := []*entity.Scene{
		packScene(1, "KITCHEN", 1),
		packScene(2, "STAGE", 1), // 同片区换场地 +15
		packScene(3, "ALLEY", 1), // 跨片区 +45
	}

	days := PackDays(scenes, PackOptions{
		TargetHours:    10,
		Strategy:       StrategyZone,
		ZoneByLocation: zones,
	})
	require.Len(t, days, 1)
	// 3×(30+18) + 15 + 45 = 204 分钟
	assert.InDelta(t, 3.4, days[0].EstimatedHours, 0.01)
}

func TestPackDaysZoneRealDistanceOverridesFixedPenalty(t *testing.T) {
	zones := map[string]string{"KITCHEN": "studio", "ALLEY": "downtown"}
	s1 := packScene(1, "KITCHEN", 1)
	s1.LocationID = "loc-kitchen"
	s2 := packScene(2, "ALLEY", 1)
	s2.LocationID = "loc-alley"

	matrix := entity.NewDistanceMatrix([]*entity.DistanceEntry{
		{FromLocationID: "loc-alley", ToLocationID: "loc-kitchen", DurationMin: 25, DistanceKm: 18},
	})

	days := PackDays([]*entity.Scene{s1, s2}, PackOptions{
		TargetHours:    10,
		Strategy:       StrategyZone,
		ZoneByLocation: zones,
		Distances:      matrix,
	})
	require.Len(t, days, 1)
	// 反向条目兜底命中：罚时用真实 25 分钟而非跨片区固定 45
	// 2×(30+18) + 25 = 121 分钟
	assert.InDelta(t, 2.02, days[0].EstimatedHours, 0.01)
}

func TestPackDaysAggregates(t *testing.T) {
	s1 := packScene(1, "KITCHEN", 4)
	s1.Characters = []string{"ALICE", "BO"}
	s2 := packScene(2, "ALLEY", 2)
	s2.Characters = []string{"BO", "CHEN"}
	s2.TimeOfDay = entity.TimeOfDayNight
	s2.Title = "EXT. ALLEY - NIGHT"
	s2.SetType = "EXT"

	days := PackDays([]*entity.Scene{s1, s2}, PackOptions{TargetHours: 10})
	require.Len(t, days, 1)
	day := days[0]

	assert.Equal(t, 1, day.DayNumber)
	assert.InDelta(t, 6.0, day.TotalEighths, 1e-9)
	assert.Equal(t, []string{"ALICE", "BO", "CHEN"}, day.Characters)
	assert.Equal(t, "KITCHEN + 1 more", day.LocationLabel)
	assert.Equal(t, []string{"KITCHEN", "ALLEY"}, day.Locations)
	// 平票取先出现的时段
	assert.Equal(t, entity.TimeOfDayDay, day.TimeOfDay)
}

func TestRecomputeDayAggregatesAfterManualEdit(t *testing.T) {
	scenes := []*entity.Scene{
		packScene(1, "KITCHEN", 2),
		packScene(2, "KITCHEN", 2),
		packScene(3, "ALLEY", 2),
	}
	days := PackDays(scenes, PackOptions{TargetHours: 10})
	require.Len(t, days, 1)
	day := days[0]
	before := day.EstimatedHours

	// 手工移除一场后全量重算，聚合与场次列表保持一致
	day.Scenes = day.Scenes[:2]
	RecomputeDayAggregates(&day, PackOptions{TargetHours: 10})

	assert.Less(t, day.EstimatedHours, before)
	assert.InDelta(t, 4.0, day.TotalEighths, 1e-9)
	assert.Equal(t, "KITCHEN", day.LocationLabel)
	assert.Equal(t, []string{"KITCHEN"}, day.Locations)
}

func TestRecomputeDayAggregatesEmptyDay(t *testing.T) {
	day := entity.ShootingDay{DayNumber: 2, TargetHours: 10, Scenes: nil,
		Warnings: []string{"stale"}, EstimatedHours: 9}
	RecomputeDayAggregates(&day, PackOptions{TargetHours: 10})

	assert.Zero(t, day.EstimatedHours)
	assert.Empty(t, day.Warnings)
	assert.Empty(t, day.Characters)
}
