package aiplan

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cineplan-api/internal/application/schedule"
	"cineplan-api/internal/domain/entity"
)

func makeScenes(n int) []*entity.Scene {
	scenes := make([]*entity.Scene, 0, n)
	for i := 1; i <= n; i++ {
		scenes = append(scenes, &entity.Scene{
			ID:           fmt.Sprintf("S%d", i),
			SeqNum:       i,
			Title:        "INT. KITCHEN - DAY",
			SetType:      "INT",
			LocationName: "KITCHEN",
			TimeOfDay:    entity.TimeOfDayDay,
			Eighths:      2,
			Complexity:   entity.ComplexityLow,
		})
	}
	return scenes
}

func collectIDs(days []entity.ShootingDay) map[string]int {
	seen := make(map[string]int)
	for _, d := range days {
		for _, s := range d.Scenes {
			seen[s.SceneID]++
		}
	}
	return seen
}

func TestValidateAndRepairMissingScene(t *testing.T) {
	scenes := makeScenes(20)

	// 模型输出遗漏 S7，其余 19 场分两天
	plan := &ModelPlan{Summary: "模型摘要"}
	var first, second []string
	for i := 1; i <= 20; i++ {
		if i == 7 {
			continue
		}
		if i <= 10 {
			first = append(first, fmt.Sprintf("S%d", i))
		} else {
			second = append(second, fmt.Sprintf("S%d", i))
		}
	}
	plan.Days = []ModelDay{
		{DayNumber: 1, SceneIDs: first},
		{DayNumber: 2, SceneIDs: second},
	}

	verdict := ValidateAndRepair(plan, scenes, schedule.PackOptions{TargetHours: 10})

	assert.Equal(t, VerdictRepaired, verdict.Status)
	require.Len(t, verdict.Days, 3)

	trailing := verdict.Days[2]
	require.Len(t, trailing.Scenes, 1)
	assert.Equal(t, "S7", trailing.Scenes[0].SceneID)
	assert.Equal(t, 3, trailing.DayNumber)
	require.NotEmpty(t, trailing.Warnings)
	assert.Greater(t, trailing.EstimatedHours, 0.0)

	seen := collectIDs(verdict.Days)
	require.Len(t, seen, 20)
	for id, count := range seen {
		assert.Equal(t, 1, count, "scene=%s", id)
	}
}

func TestValidateAndRepairDuplicates(t *testing.T) {
	scenes := makeScenes(4)
	plan := &ModelPlan{Days: []ModelDay{
		{DayNumber: 1, SceneIDs: []string{"S1", "S2"}},
		{DayNumber: 2, SceneIDs: []string{"S2", "S3", "S1"}},
		{DayNumber: 3, SceneIDs: []string{"S4"}},
	}}

	verdict := ValidateAndRepair(plan, scenes, schedule.PackOptions{TargetHours: 10})

	assert.Equal(t, VerdictRepaired, verdict.Status)
	seen := collectIDs(verdict.Days)
	require.Len(t, seen, 4)
	for id, count := range seen {
		assert.Equal(t, 1, count, "scene=%s", id)
	}
	// S2/S1 的后续出现被剥除后第 2 天只剩 S3
	assert.Equal(t, []string{"S1", "S2"}, verdict.Days[0].SceneIDs())
	assert.Equal(t, []string{"S3"}, verdict.Days[1].SceneIDs())
}

func TestValidateAndRepairDropsEmptyDaysAndRenumbers(t *testing.T) {
	scenes := makeScenes(2)
	plan := &ModelPlan{Days: []ModelDay{
		{DayNumber: 1, SceneIDs: []string{"S1"}},
		{DayNumber: 2, SceneIDs: []string{"S1"}}, // 去重后为空，整天丢弃
		{DayNumber: 3, SceneIDs: []string{"S2"}},
	}}

	verdict := ValidateAndRepair(plan, scenes, schedule.PackOptions{TargetHours: 10})

	require.Len(t, verdict.Days, 2)
	assert.Equal(t, 1, verdict.Days[0].DayNumber)
	assert.Equal(t, 2, verdict.Days[1].DayNumber)
}

func TestValidateAndRepairUnknownSceneIDs(t *testing.T) {
	scenes := makeScenes(2)
	plan := &ModelPlan{Days: []ModelDay{
		{DayNumber: 1, SceneIDs: []string{"S1", "GHOST", "S2"}},
	}}

	verdict := ValidateAndRepair(plan, scenes, schedule.PackOptions{TargetHours: 10})

	assert.Equal(t, VerdictRepaired, verdict.Status)
	seen := collectIDs(verdict.Days)
	assert.Len(t, seen, 2)
	assert.NotContains(t, seen, "GHOST")
}

func TestValidateAndRepairRoundTrip(t *testing.T) {
	// 确定性装日结果按构造即完整，回灌校验不应触发任何修复
	scenes := makeScenes(12)
	ordered := schedule.OrderScenes(scenes, schedule.StrategyLocation, schedule.SortContext{})
	days := schedule.PackDays(ordered, schedule.PackOptions{TargetHours: 10})

	plan := &ModelPlan{Summary: "round trip"}
	for _, d := range days {
		md := ModelDay{DayNumber: d.DayNumber, SceneIDs: (&d).SceneIDs()}
		plan.Days = append(plan.Days, md)
	}

	verdict := ValidateAndRepair(plan, scenes, schedule.PackOptions{TargetHours: 10})

	assert.Equal(t, VerdictValid, verdict.Status)
	assert.Empty(t, verdict.Issues)
	require.Len(t, verdict.Days, len(days))
	for i := range days {
		assert.Equal(t, days[i].SceneIDs(), verdict.Days[i].SceneIDs())
		assert.InDelta(t, days[i].EstimatedHours, verdict.Days[i].EstimatedHours, 0.01)
	}
}
