package schedule

import (
	"fmt"

	"cineplan-api/internal/domain/entity"
)

// 跨日劳动规则阈值
const (
	maxConsecutiveNights  = 5
	softConsecutiveNights = 3
	restCadenceDays       = 6
	maxActorIdleGapDays   = 7
	minorsMaxDayHours     = 8.0
)

// AnnotatePlan 按日序遍历拍摄日，追加跨日劳动规则警告。
// 只追加字符串，不移动、不删除任何场次；所有规则均为建议性，
// 永不中断计划生成。
func AnnotatePlan(days []entity.ShootingDay) []entity.ShootingDay {
	consecutiveNights := 0
	workDays := 0
	lastSeenDay := make(map[string]int)

	for i := range days {
		day := &days[i]

		// 连续夜戏：当日主时段为夜则累加，否则清零
		if day.TimeOfDay.IsNight() {
			consecutiveNights++
		} else {
			consecutiveNights = 0
		}
		if consecutiveNights >= maxConsecutiveNights {
			day.Warnings = append(day.Warnings,
				fmt.Sprintf("已连续 %d 天夜戏，超出连续夜戏上限，必须安排休整", consecutiveNights))
		} else if consecutiveNights >= softConsecutiveNights {
			day.Warnings = append(day.Warnings,
				fmt.Sprintf("已连续 %d 天夜戏，建议尽快穿插日戏", consecutiveNights))
		}

		// 连续工作日：计数器不自动复位，持续提示直到人工插入休息日
		workDays++
		if workDays >= restCadenceDays {
			day.Warnings = append(day.Warnings,
				fmt.Sprintf("已连续工作 %d 天，建议安排休息日", workDays))
		}

		// 未成年演员限制
		if day.HasMinors() {
			if day.TimeOfDay.IsNight() {
				day.Warnings = append(day.Warnings,
					"当日含未成年演员场次且为夜戏日，违反未成年人夜间拍摄限制")
			}
			if day.EstimatedHours > minorsMaxDayHours {
				day.Warnings = append(day.Warnings,
					fmt.Sprintf("当日含未成年演员场次且预计 %.1f 小时，超出未成年人 %.0f 小时工时限制", day.EstimatedHours, minorsMaxDayHours))
			}
		}

		// 演员空窗：同一角色两次出勤间隔超过 7 天
		for _, name := range day.Characters {
			if prev, ok := lastSeenDay[name]; ok {
				gap := day.DayNumber - prev - 1
				if gap > maxActorIdleGapDays {
					day.Warnings = append(day.Warnings,
						fmt.Sprintf("演员 %s 距上次出勤已空窗 %d 天，建议压缩档期", name, gap))
				}
			}
			lastSeenDay[name] = day.DayNumber
		}
	}
	return days
}
