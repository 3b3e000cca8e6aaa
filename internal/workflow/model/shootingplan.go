package model

import "time"

// PlanGenerateInput AI 排期工作流输入
type PlanGenerateInput struct {
	ProjectName    string
	ProductionType string

	// PayloadJSON 序列化后的排期请求体（场次/场地/角色/距离）
	PayloadJSON string

	TargetHours        float64
	MaxEighthsPerDay   int
	DayNightSeparation bool

	Provider string
	Model    string

	Temperature *float32
	MaxTokens   *int
}

// LLMUsageMeta 模型调用用量元数据
type LLMUsageMeta struct {
	Provider         string
	Model            string
	PromptTokens     int
	CompletionTokens int
	Temperature      float64
	GeneratedAt      time.Time
}
