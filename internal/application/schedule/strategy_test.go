package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cineplan-api/internal/domain/entity"
)

func scene(seq int, location string, tod entity.TimeOfDay, characters ...string) *entity.Scene {
	return &entity.Scene{
		SeqNum:       seq,
		LocationName: location,
		TimeOfDay:    tod,
		Eighths:      1,
		Characters:   characters,
	}
}

func seqNums(scenes []*entity.Scene) []int {
	out := make([]int, len(scenes))
	for i, s := range scenes {
		out[i] = s.SeqNum
	}
	return out
}

func TestOrderScenesByLocation(t *testing.T) {
	scenes := []*entity.Scene{
		scene(1, "Warehouse", entity.TimeOfDayDay),
		scene(2, "Alley", entity.TimeOfDayDay),
		scene(3, "Warehouse", entity.TimeOfDayDay),
		scene(4, "Kitchen", entity.TimeOfDayDay),
	}

	ordered := OrderScenes(scenes, StrategyLocation, SortContext{})
	assert.Equal(t, []int{2, 4, 1, 3}, seqNums(ordered))
}

func TestOrderScenesLocationDayNightSeparation(t *testing.T) {
	scenes := []*entity.Scene{
		scene(1, "Kitchen", entity.TimeOfDayNight),
		scene(2, "Kitchen", entity.TimeOfDayDay),
		scene(3, "Kitchen", entity.TimeOfDayDusk),
		scene(4, "Kitchen", entity.TimeOfDayDawn),
	}

	ordered := OrderScenes(scenes, StrategyLocation, SortContext{DayNightSeparation: true})
	// DAY < DAWN < DUSK < NIGHT
	assert.Equal(t, []int{2, 4, 3, 1}, seqNums(ordered))
}

func TestOrderScenesByTimeOfDay(t *testing.T) {
	scenes := []*entity.Scene{
		scene(1, "Alley", entity.TimeOfDayNight),
		scene(2, "Kitchen", entity.TimeOfDayDay),
		scene(3, "Alley", entity.TimeOfDayDay),
	}

	ordered := OrderScenes(scenes, StrategyTimeOfDay, SortContext{})
	// 同时段内按场地名，夜戏排最后
	assert.Equal(t, []int{3, 2, 1}, seqNums(ordered))
}

func TestOrderScenesByCast(t *testing.T) {
	scenes := []*entity.Scene{
		scene(1, "A", entity.TimeOfDayDay, "ZHOU", "CHEN"),
		scene(2, "B", entity.TimeOfDayDay, "ALICE"),
		scene(3, "C", entity.TimeOfDayDay, "CHEN", "ZHOU"),
	}

	ordered := OrderScenes(scenes, StrategyCast, SortContext{})
	// 演员键为排序后前两名拼接；1 和 3 同键（chen|zhou），按剧本序平局
	assert.Equal(t, []int{2, 1, 3}, seqNums(ordered))
}

func TestOrderScenesByZoneUnmappedLast(t *testing.T) {
	zones := map[string]string{
		"Kitchen": "studio",
		"Alley":   "downtown",
	}
	scenes := []*entity.Scene{
		scene(1, "Mountain", entity.TimeOfDayDay), // 未映射
		scene(2, "Kitchen", entity.TimeOfDayDay),
		scene(3, "Alley", entity.TimeOfDayDay),
	}

	ordered := OrderScenes(scenes, StrategyZone, SortContext{ZoneByLocation: zones})
	assert.Equal(t, []int{3, 2, 1}, seqNums(ordered))
}

func TestOrderScenesSeqNumTieBreakIsStable(t *testing.T) {
	scenes := []*entity.Scene{
		scene(9, "Kitchen", entity.TimeOfDayDay),
		scene(3, "Kitchen", entity.TimeOfDayDay),
		scene(5, "Kitchen", entity.TimeOfDayDay),
	}

	for _, strategy := range []Strategy{StrategyLocation, StrategyTimeOfDay, StrategyCast, StrategyBalanced, StrategyZone} {
		ordered := OrderScenes(scenes, strategy, SortContext{})
		assert.Equal(t, []int{3, 5, 9}, seqNums(ordered), "strategy=%s", strategy)
	}
}

func TestOrderScenesDoesNotMutateInput(t *testing.T) {
	scenes := []*entity.Scene{
		scene(2, "B", entity.TimeOfDayDay),
		scene(1, "A", entity.TimeOfDayDay),
	}

	_ = OrderScenes(scenes, StrategyLocation, SortContext{})
	require.Equal(t, []int{2, 1}, seqNums(scenes))
}

func TestParseStrategy(t *testing.T) {
	assert.Equal(t, StrategyZone, ParseStrategy("zone"))
	assert.Equal(t, StrategyTimeOfDay, ParseStrategy(" Time_Of_Day "))
	assert.Equal(t, StrategyLocation, ParseStrategy(""))
	assert.Equal(t, StrategyLocation, ParseStrategy("whatever"))
}
