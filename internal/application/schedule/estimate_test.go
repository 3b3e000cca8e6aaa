package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cineplan-api/internal/domain/entity"
)

func TestNormalizeEighths(t *testing.T) {
	cases := []struct {
		name string
		raw  float64
		want int
	}{
		{"zero", 0, 1},
		{"negative", -3, 1},
		{"tiny page fraction", 0.05, 1},
		{"quarter page", 0.25, 2},
		{"half page", 0.5, 4},
		{"one page exactly", 1, 1},
		{"one and a half pages", 1.5, 12},
		{"two and a half pages", 2.5, 20},
		{"three eighths", 3, 3},
		{"rounded eighths", 3.4, 3},
		{"large eighths", 24, 24},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeEighths(tc.raw))
		})
	}
}

func TestNormalizeEighthsIdempotent(t *testing.T) {
	inputs := []float64{-1, 0, 0.05, 0.25, 0.5, 0.875, 1, 1.5, 2.5, 3, 3.7, 8, 100}
	for _, raw := range inputs {
		once := NormalizeEighths(raw)
		require.GreaterOrEqual(t, once, 1)
		assert.Equal(t, once, NormalizeEighths(float64(once)), "raw=%v", raw)
	}
}

func TestEstimateSceneTimeInteriorDay(t *testing.T) {
	scene := &entity.Scene{
		SeqNum:     1,
		Title:      "INT. KITCHEN - DAY",
		SetType:    "INT",
		TimeOfDay:  entity.TimeOfDayDay,
		Eighths:    4,
		Complexity: entity.ComplexityLow,
		Characters: []string{"ALICE"},
	}

	bd := EstimateSceneTime(scene)
	assert.Equal(t, 30, bd.SetupMinutes)
	assert.Equal(t, 57, bd.ShootingMinutes) // 4×13 + 转场 5
	assert.Equal(t, 87, bd.TotalMinutes)
}

func TestEstimateSceneTimeExteriorNight(t *testing.T) {
	scene := &entity.Scene{
		SeqNum:    2,
		Title:     "EXT. ALLEY - NIGHT",
		SetType:   "EXT",
		TimeOfDay: entity.TimeOfDayNight,
		Eighths:   4,
	}

	bd := EstimateSceneTime(scene)
	assert.Equal(t, 60, bd.SetupMinutes) // 45 外景 + 15 夜戏
	assert.Equal(t, 57, bd.ShootingMinutes)
	assert.Equal(t, 117, bd.TotalMinutes)
}

func TestEstimateSceneTimeStunts(t *testing.T) {
	scene := &entity.Scene{
		SeqNum:    3,
		Title:     "INT. WAREHOUSE - DAY",
		SetType:   "INT",
		TimeOfDay: entity.TimeOfDayDay,
		Eighths:   2,
		Factors:   &entity.ComplexityFactors{Stunts: true},
	}

	bd := EstimateSceneTime(scene)
	// 基础 26 + 覆盖 13（50%）+ 特技 40 + 转场 5 = 84
	assert.Equal(t, 84, bd.ShootingMinutes)
	assert.Equal(t, 30, bd.SetupMinutes)
	assert.Equal(t, 114, bd.TotalMinutes)
}

func TestEstimateSceneTimeExtendedDialogue(t *testing.T) {
	scene := &entity.Scene{
		SeqNum:    4,
		SetType:   "INT",
		TimeOfDay: entity.TimeOfDayDay,
		Eighths:   4,
		Factors:   &entity.ComplexityFactors{ExtendedDialogue: true},
	}

	bd := EstimateSceneTime(scene)
	// 基础 52 + 覆盖 15（30%）+ 对白权重 10 + 转场 5 = 82
	assert.Equal(t, 82, bd.ShootingMinutes)
}

func TestEstimateSceneTimeActionBeatsDialogue(t *testing.T) {
	// 动作/特技与超长对白互斥，动作优先取 50%
	scene := &entity.Scene{
		SetType:   "INT",
		TimeOfDay: entity.TimeOfDayDay,
		Eighths:   2,
		Factors: &entity.ComplexityFactors{
			PhysicalAction:   true,
			ExtendedDialogue: true,
		},
	}

	bd := EstimateSceneTime(scene)
	// 基础 26 + 覆盖 13 + 动作 20 + 对白 10 + 转场 5 = 74
	assert.Equal(t, 74, bd.ShootingMinutes)
}

func TestEstimateSceneTimeCharacterAndExtras(t *testing.T) {
	scene := &entity.Scene{
		SetType:   "INT",
		TimeOfDay: entity.TimeOfDayDay,
		Eighths:   1,
		Factors: &entity.ComplexityFactors{
			CharacterCount: 5,  // 超出 2 人的 3 人 ×5 = 15
			ExtrasCount:    12, // 两个完整 5 人组 ×5 = 10
		},
	}

	bd := EstimateSceneTime(scene)
	// 基础 13 + 0 覆盖 + 25 复杂度 + 转场 5 = 43
	assert.Equal(t, 43, bd.ShootingMinutes)
}

func TestEstimateSceneTimePrecomputedOverrides(t *testing.T) {
	setup := 20
	shooting := 90
	scene := &entity.Scene{
		SetType:         "EXT",
		TimeOfDay:       entity.TimeOfDayNight,
		Eighths:         4,
		SetupMinutes:    &setup,
		ShootingMinutes: &shooting,
	}

	bd := EstimateSceneTime(scene)
	assert.Equal(t, 20, bd.SetupMinutes)
	// 预计算拍摄分钟替换 eighths×13 的基础值，其余加项照常
	assert.Equal(t, 95, bd.ShootingMinutes)
}

func TestEstimateSceneTimeDeterministic(t *testing.T) {
	scene := &entity.Scene{
		SetType:   "EXT",
		TimeOfDay: entity.TimeOfDayDusk,
		Eighths:   2.5,
		Factors: &entity.ComplexityFactors{
			CameraMovement: true,
			AnimalsPresent: true,
			CharacterCount: 4,
		},
		Characters: []string{"BO", "CHEN"},
	}

	first := EstimateSceneTime(scene)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, EstimateSceneTime(scene))
	}
}

func TestEstimateSceneTimeSetTypeFromHeading(t *testing.T) {
	scene := &entity.Scene{
		Title:     "EXT. BEACH - DAY",
		TimeOfDay: entity.TimeOfDayDay,
		Eighths:   1,
	}
	assert.Equal(t, 45, EstimateSceneTime(scene).SetupMinutes)

	scene.Title = "INT. OFFICE - DAY"
	assert.Equal(t, 30, EstimateSceneTime(scene).SetupMinutes)
}

func TestEffectiveEighthsLegacyMultiplier(t *testing.T) {
	scene := &entity.Scene{Eighths: 4, Complexity: entity.ComplexityHigh}
	assert.InDelta(t, 8.0, EffectiveEighths(scene), 1e-9)

	scene.Complexity = entity.ComplexityMedium
	assert.InDelta(t, 4.8, EffectiveEighths(scene), 1e-9)

	// 遗留系数只影响有效页量展示，不影响分钟级公式
	low := *scene
	low.Complexity = entity.ComplexityLow
	assert.Equal(t, EstimateSceneTime(scene).ShootingMinutes, EstimateSceneTime(&low).ShootingMinutes)
}
