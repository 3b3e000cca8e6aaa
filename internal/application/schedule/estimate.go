// Package schedule 实现拍摄计划的确定性调度核心：
// 时间估算、排序策略、装日打包、聚合重算与跨日劳动规则校验。
package schedule

import (
	"math"

	"cineplan-api/internal/domain/entity"
)

// 估算常量（单位：分钟）
const (
	interiorSetupMinutes   = 30
	exteriorSetupMinutes   = 45
	nightSetupExtraMinutes = 15
	minutesPerEighth       = 13
	transitionMinutes      = 5
	miniSetupMinutes       = 10
)

// 复杂度因子固定权重（单位：分钟）
const (
	weightCameraMovement    = 15
	weightPhysicalAction    = 20
	weightStunts            = 40
	weightSpecialEffects    = 30
	weightMinorsPresent     = 15
	weightAnimalsPresent    = 25
	weightMovingVehicles    = 30
	weightComplexLighting   = 20
	weightNightScene        = 10
	weightExteriorWeather   = 8
	weightExtendedDialogue  = 10
	weightCraneRequired     = 20
	weightSpecialShots      = 15
	weightPerExtraCharacter = 5
	weightPerExtrasGroup    = 5
	extrasGroupSize         = 5
	baseCharacterCount      = 2
)

// SceneTimeBreakdown 场次时间分解，按需推导，不落库
type SceneTimeBreakdown struct {
	Eighths         int     `json:"eighths"`
	SetupMinutes    int     `json:"setup_minutes"`
	ShootingMinutes int     `json:"shooting_minutes"`
	TotalMinutes    int     `json:"total_minutes"`
	Multiplier      float64 `json:"multiplier"`
}

// NormalizeEighths 归一化异构页量编码，结果恒为 ≥1 的整数。
// 上游拆解数据有时直接给八分之一页整数，有时给页数小数：
// (0,1) 视为页数 ×8；[1,3) 的非整数同样视为页数 ×8；其余四舍五入。
func NormalizeEighths(raw float64) int {
	if raw <= 0 || math.IsNaN(raw) || math.IsInf(raw, 0) {
		return 1
	}
	if raw < 1 {
		n := int(math.Round(raw * 8))
		if n < 1 {
			return 1
		}
		return n
	}
	if raw < 3 && raw != math.Trunc(raw) {
		n := int(math.Round(raw * 8))
		if n < 1 {
			return 1
		}
		return n
	}
	n := int(math.Round(raw))
	if n < 1 {
		return 1
	}
	return n
}

// EstimateSceneTime 估算单场次的准备/拍摄/总时长。
// 上游 AI 拆解携带的预计算分钟数（存在且为正时）覆盖公式。
func EstimateSceneTime(scene *entity.Scene) SceneTimeBreakdown {
	eighths := NormalizeEighths(scene.Eighths)
	factors := scene.FactorsOrZero()

	setup := setupMinutes(scene)
	if scene.SetupMinutes != nil && *scene.SetupMinutes > 0 {
		setup = *scene.SetupMinutes
	}

	baseShooting := eighths * minutesPerEighth
	if scene.ShootingMinutes != nil && *scene.ShootingMinutes > 0 {
		baseShooting = *scene.ShootingMinutes
	}

	coverage := 0
	switch {
	case factors.PhysicalAction || factors.Stunts:
		coverage = baseShooting / 2
	case factors.ExtendedDialogue:
		coverage = baseShooting * 3 / 10
	}

	shooting := baseShooting + coverage + complexityExtra(factors) + transitionMinutes

	return SceneTimeBreakdown{
		Eighths:         eighths,
		SetupMinutes:    setup,
		ShootingMinutes: shooting,
		TotalMinutes:    setup + shooting,
		Multiplier:      scene.Complexity.Multiplier(),
	}
}

// EffectiveEighths 遗留系数下的有效页量，仅用于负载展示
func EffectiveEighths(scene *entity.Scene) float64 {
	return float64(NormalizeEighths(scene.Eighths)) * scene.Complexity.Multiplier()
}

func setupMinutes(scene *entity.Scene) int {
	setup := interiorSetupMinutes
	if scene.IsExterior() {
		setup = exteriorSetupMinutes
	}
	if scene.TimeOfDay.IsNight() {
		setup += nightSetupExtraMinutes
	}
	return setup
}

func complexityExtra(f entity.ComplexityFactors) int {
	extra := 0
	if f.CameraMovement {
		extra += weightCameraMovement
	}
	if f.PhysicalAction {
		extra += weightPhysicalAction
	}
	if f.Stunts {
		extra += weightStunts
	}
	if f.SpecialEffects {
		extra += weightSpecialEffects
	}
	if f.MinorsPresent {
		extra += weightMinorsPresent
	}
	if f.AnimalsPresent {
		extra += weightAnimalsPresent
	}
	if f.MovingVehicles {
		extra += weightMovingVehicles
	}
	if f.ComplexLighting {
		extra += weightComplexLighting
	}
	if f.NightScene {
		extra += weightNightScene
	}
	if f.ExteriorWeather {
		extra += weightExteriorWeather
	}
	if f.ExtendedDialogue {
		extra += weightExtendedDialogue
	}
	if f.CraneRequired {
		extra += weightCraneRequired
	}
	if f.SpecialShots {
		extra += weightSpecialShots
	}
	if f.CharacterCount > baseCharacterCount {
		extra += (f.CharacterCount - baseCharacterCount) * weightPerExtraCharacter
	}
	if f.ExtrasCount >= extrasGroupSize {
		extra += (f.ExtrasCount / extrasGroupSize) * weightPerExtrasGroup
	}
	return extra
}
