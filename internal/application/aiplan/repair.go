package aiplan

import (
	"fmt"

	"cineplan-api/internal/application/schedule"
	"cineplan-api/internal/domain/entity"
	"cineplan-api/pkg/metrics"
)

// VerdictStatus 校验结论
type VerdictStatus string

const (
	VerdictValid    VerdictStatus = "valid"
	VerdictRepaired VerdictStatus = "repaired"
)

// PlanVerdict 不可信模型输出经结构校验后的结论。
// 通信与解析失败不在此表达，它们以 Go error 形式返回。
type PlanVerdict struct {
	Status  VerdictStatus
	Days    []entity.ShootingDay
	Summary string
	Issues  []string
}

// Repaired 是否发生过修复
func (v *PlanVerdict) Repaired() bool {
	return v.Status == VerdictRepaired
}

// ValidateAndRepair 校验模型候选计划的完整性不变量：
// 每个输入场次 ID 在输出中恰好出现一次。违反时施加两类修复：
// 重复场次只保留日序上的首次出现；缺失场次汇入一个追加的
// 末尾拍摄日。修复后丢弃空日、连续重编号，并重算聚合与
// 跨日劳动规则警告。
func ValidateAndRepair(plan *ModelPlan, scenes []*entity.Scene, opts schedule.PackOptions) *PlanVerdict {
	byID := make(map[string]*entity.Scene, len(scenes))
	for _, s := range scenes {
		byID[s.ID] = s
	}

	verdict := &PlanVerdict{Status: VerdictValid, Summary: plan.Summary}

	assigned := make(map[string]struct{}, len(scenes))
	duplicates := 0
	unknown := 0

	var days []entity.ShootingDay
	for _, md := range plan.Days {
		var dayScenes []*entity.Scene
		for _, id := range md.SceneIDs {
			scene, ok := byID[id]
			if !ok {
				unknown++
				continue
			}
			if _, dup := assigned[id]; dup {
				duplicates++
				continue
			}
			assigned[id] = struct{}{}
			dayScenes = append(dayScenes, scene)
		}
		if len(dayScenes) == 0 {
			continue
		}
		days = append(days, schedule.BuildDay(len(days)+1, dayScenes, opts))
	}

	var missing []*entity.Scene
	for _, s := range scenes {
		if _, ok := assigned[s.ID]; !ok {
			missing = append(missing, s)
		}
	}

	if duplicates > 0 {
		verdict.Status = VerdictRepaired
		verdict.Issues = append(verdict.Issues,
			fmt.Sprintf("模型输出中 %d 处场次重复，已保留首次出现", duplicates))
		metrics.PlanRepairTotal.WithLabelValues("duplicate_scenes").Inc()
	}
	if unknown > 0 {
		verdict.Status = VerdictRepaired
		verdict.Issues = append(verdict.Issues,
			fmt.Sprintf("模型输出引用了 %d 个未知场次 ID，已丢弃", unknown))
	}
	if len(missing) > 0 {
		verdict.Status = VerdictRepaired
		verdict.Issues = append(verdict.Issues,
			fmt.Sprintf("模型输出遗漏 %d 场，已汇入追加拍摄日", len(missing)))
		metrics.PlanRepairTotal.WithLabelValues("missing_scenes").Inc()

		day := schedule.BuildDay(len(days)+1, missing, opts)
		day.Warnings = append(day.Warnings,
			fmt.Sprintf("本日由完整性修复生成，收容模型遗漏的 %d 场", len(missing)))
		days = append(days, day)
	}

	for i := range days {
		days[i].DayNumber = i + 1
	}
	verdict.Days = schedule.AnnotatePlan(days)
	return verdict
}
