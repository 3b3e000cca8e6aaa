package aiplan

import (
	"encoding/json"
	"strings"

	wfnode "cineplan-api/internal/workflow/node"
	"cineplan-api/pkg/errors"
)

// ModelDay 模型输出中的一个拍摄日
type ModelDay struct {
	DayNumber     int      `json:"day_number"`
	LocationLabel string   `json:"location_label,omitempty"`
	TimeOfDay     string   `json:"time_of_day,omitempty"`
	SceneIDs      []string `json:"scene_ids"`
}

// ModelPlan 模型输出的候选计划
type ModelPlan struct {
	Days    []ModelDay `json:"days"`
	Summary string     `json:"summary,omitempty"`
}

// ParsePlanOutput 三段式容错解析模型输出：
// 直接解析 → 剥掉 Markdown 代码栅栏 → 截取首 '{' 到末 '}'。
// 三段全部失败返回解析错误。
func ParsePlanOutput(raw string) (*ModelPlan, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, errors.New(errors.CodePlanParseFailed, "empty model output")
	}

	candidates := []string{
		text,
		wfnode.StripCodeFences(text),
		wfnode.ExtractJSONObject(wfnode.StripCodeFences(text)),
	}

	var lastErr error
	for _, candidate := range candidates {
		if strings.TrimSpace(candidate) == "" {
			continue
		}
		var plan ModelPlan
		if err := json.Unmarshal([]byte(candidate), &plan); err != nil {
			lastErr = err
			continue
		}
		if len(plan.Days) == 0 {
			lastErr = errors.New(errors.CodePlanParseFailed, "model plan contains no days")
			continue
		}
		return &plan, nil
	}
	return nil, errors.Wrap(lastErr, errors.CodePlanParseFailed, "model plan output unparseable")
}
