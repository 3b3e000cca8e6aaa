package schedule

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cineplan-api/internal/domain/entity"
)

func day(num int, tod entity.TimeOfDay, hours float64, characters ...string) entity.ShootingDay {
	return entity.ShootingDay{
		DayNumber:      num,
		TimeOfDay:      tod,
		EstimatedHours: hours,
		TargetHours:    10,
		Characters:     characters,
		Scenes: []entity.PlannedScene{
			{SceneID: "s", TimeOfDay: tod, Characters: characters},
		},
	}
}

func hasWarningContaining(warnings []string, sub string) bool {
	for _, w := range warnings {
		if strings.Contains(w, sub) {
			return true
		}
	}
	return false
}

func TestAnnotatePlanConsecutiveNights(t *testing.T) {
	days := []entity.ShootingDay{
		day(1, entity.TimeOfDayNight, 8),
		day(2, entity.TimeOfDayNight, 8),
		day(3, entity.TimeOfDayNight, 8),
		day(4, entity.TimeOfDayNight, 8),
		day(5, entity.TimeOfDayDay, 8),
		day(6, entity.TimeOfDayDay, 8),
	}

	days = AnnotatePlan(days)

	assert.Empty(t, days[0].Warnings)
	assert.Empty(t, days[1].Warnings)
	// 第 3、4 天触发软警告，尚未达到 5 天硬上限
	assert.True(t, hasWarningContaining(days[2].Warnings, "连续 3 天夜戏"))
	assert.True(t, hasWarningContaining(days[3].Warnings, "连续 4 天夜戏"))
	assert.False(t, hasWarningContaining(days[3].Warnings, "上限"))
	// 第 5 天转日戏，计数清零
	assert.Empty(t, days[4].Warnings)
}

func TestAnnotatePlanConsecutiveNightsHardLimit(t *testing.T) {
	days := make([]entity.ShootingDay, 0, 5)
	for i := 1; i <= 5; i++ {
		days = append(days, day(i, entity.TimeOfDayNight, 8))
	}

	days = AnnotatePlan(days)
	assert.True(t, hasWarningContaining(days[4].Warnings, "上限"))
}

func TestAnnotatePlanRestCadence(t *testing.T) {
	days := make([]entity.ShootingDay, 0, 7)
	for i := 1; i <= 7; i++ {
		days = append(days, day(i, entity.TimeOfDayDay, 8))
	}

	days = AnnotatePlan(days)

	assert.False(t, hasWarningContaining(days[4].Warnings, "休息日"))
	// 第 6 天起持续提示，计数器不自动复位
	assert.True(t, hasWarningContaining(days[5].Warnings, "连续工作 6 天"))
	assert.True(t, hasWarningContaining(days[6].Warnings, "连续工作 7 天"))
}

func TestAnnotatePlanMinors(t *testing.T) {
	nightMinors := day(1, entity.TimeOfDayNight, 6)
	nightMinors.Scenes[0].MinorsPresent = true

	longMinors := day(2, entity.TimeOfDayDay, 9)
	longMinors.Scenes[0].MinorsPresent = true

	okMinors := day(3, entity.TimeOfDayDay, 7)
	okMinors.Scenes[0].MinorsPresent = true

	days := AnnotatePlan([]entity.ShootingDay{nightMinors, longMinors, okMinors})

	assert.True(t, hasWarningContaining(days[0].Warnings, "夜间拍摄限制"))
	assert.True(t, hasWarningContaining(days[1].Warnings, "工时限制"))
	assert.False(t, hasWarningContaining(days[2].Warnings, "未成年"))
}

func TestAnnotatePlanActorIdleGap(t *testing.T) {
	days := []entity.ShootingDay{
		day(1, entity.TimeOfDayDay, 8, "ALICE", "BO"),
		day(2, entity.TimeOfDayDay, 8, "BO"),
		day(10, entity.TimeOfDayDay, 8, "ALICE", "BO"),
	}

	days = AnnotatePlan(days)

	// ALICE 第 1 → 10 天，空窗 8 天 > 7；BO 第 2 → 10 天，空窗 7 天不触发
	assert.True(t, hasWarningContaining(days[2].Warnings, "ALICE"))
	assert.True(t, hasWarningContaining(days[2].Warnings, "空窗 8 天"))
	assert.False(t, hasWarningContaining(days[2].Warnings, "BO"))
}

func TestAnnotatePlanNeverRemovesScenes(t *testing.T) {
	days := []entity.ShootingDay{
		day(1, entity.TimeOfDayNight, 14, "A"),
		day(2, entity.TimeOfDayNight, 14, "B"),
	}
	days[0].Warnings = []string{"existing"}

	out := AnnotatePlan(days)

	require.Len(t, out, 2)
	assert.Len(t, out[0].Scenes, 1)
	assert.Len(t, out[1].Scenes, 1)
	// 只追加，不清除既有警告
	assert.Equal(t, "existing", out[0].Warnings[0])
}
