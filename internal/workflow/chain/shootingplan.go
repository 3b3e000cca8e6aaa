package chain

import (
	"context"
	"fmt"
	"strings"
	"sync"

	openaiopts "github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	wfmodel "cineplan-api/internal/workflow/model"
	wfnode "cineplan-api/internal/workflow/node"
	workflowport "cineplan-api/internal/workflow/port"
	workflowprompt "cineplan-api/internal/workflow/prompt"
	"cineplan-api/pkg/logger"
)

// ShootingPlanChain AI 排期链：init → template → llm → finalize
type ShootingPlanChain struct {
	factory workflowport.ChatModelFactory

	chainOnce sync.Once
	chain     compose.Runnable[*wfmodel.PlanGenerateInput, *schema.Message]
	chainErr  error
}

func NewShootingPlanChain(factory workflowport.ChatModelFactory) *ShootingPlanChain {
	return &ShootingPlanChain{factory: factory}
}

func (c *ShootingPlanChain) Invoke(ctx context.Context, in *wfmodel.PlanGenerateInput) (*schema.Message, error) {
	if c == nil || c.factory == nil {
		return nil, fmt.Errorf("llm factory not configured")
	}
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}

	chain, err := c.getChain()
	if err != nil {
		return nil, err
	}
	return chain.Invoke(ctx, in)
}

// Stream 返回 Eino StreamReader；调用方负责 Close()。
// 约定：流可能在最后返回一个 Content 为空但包含 Usage 的消息，用于 Token 统计。
func (c *ShootingPlanChain) Stream(ctx context.Context, in *wfmodel.PlanGenerateInput) (*schema.StreamReader[*schema.Message], error) {
	if c == nil || c.factory == nil {
		return nil, fmt.Errorf("llm factory not configured")
	}
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}

	chatModel, err := c.factory.Get(ctx, strings.TrimSpace(in.Provider))
	if err != nil {
		return nil, err
	}

	msgs, err := formatPlanMessages(ctx, in)
	if err != nil {
		return nil, err
	}

	reader, err := chatModel.Stream(ctx, msgs, buildPlanModelOptions(in, true)...)
	if err != nil && wfnode.IsResponseFormatUnsupportedError(err) {
		if reader != nil {
			reader.Close()
		}
		logger.Warn(ctx, "llm json_schema not supported for stream, fallback to prompt-only",
			"provider", strings.TrimSpace(in.Provider),
			"model", strings.TrimSpace(in.Model),
			"error", err.Error(),
		)
		return chatModel.Stream(ctx, msgs, buildPlanModelOptions(in, false)...)
	}
	return reader, err
}

type planChainState struct {
	In       *wfmodel.PlanGenerateInput
	Messages []*schema.Message
	OutMsg   *schema.Message
}

func (c *ShootingPlanChain) getChain() (compose.Runnable[*wfmodel.PlanGenerateInput, *schema.Message], error) {
	c.chainOnce.Do(func() {
		c.chain, c.chainErr = c.buildChain(context.Background())
	})
	return c.chain, c.chainErr
}

func (c *ShootingPlanChain) buildChain(ctx context.Context) (compose.Runnable[*wfmodel.PlanGenerateInput, *schema.Message], error) {
	chain := compose.NewChain[*wfmodel.PlanGenerateInput, *schema.Message]()

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, in *wfmodel.PlanGenerateInput) (*planChainState, error) {
			if in == nil {
				return nil, fmt.Errorf("input is nil")
			}
			return &planChainState{In: in}, nil
		}),
		compose.WithNodeName("shooting_plan.init"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(ctx context.Context, st *planChainState) (*planChainState, error) {
			if st == nil || st.In == nil {
				return nil, fmt.Errorf("state is nil")
			}
			msgs, err := formatPlanMessages(ctx, st.In)
			if err != nil {
				return nil, err
			}
			st.Messages = msgs
			return st, nil
		}),
		compose.WithNodeName("shooting_plan.template"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(ctx context.Context, st *planChainState) (*planChainState, error) {
			if st == nil || st.In == nil {
				return nil, fmt.Errorf("state is nil")
			}
			if c.factory == nil {
				return nil, fmt.Errorf("llm factory not configured")
			}

			chatModel, err := c.factory.Get(ctx, strings.TrimSpace(st.In.Provider))
			if err != nil {
				return nil, err
			}

			outMsg, err := chatModel.Generate(ctx, st.Messages, buildPlanModelOptions(st.In, true)...)
			if err != nil && wfnode.IsResponseFormatUnsupportedError(err) {
				logger.Warn(ctx, "llm json_schema not supported, fallback to prompt-only",
					"provider", strings.TrimSpace(st.In.Provider),
					"model", strings.TrimSpace(st.In.Model),
					"error", err.Error(),
				)
				outMsg, err = chatModel.Generate(ctx, st.Messages, buildPlanModelOptions(st.In, false)...)
			}
			if err != nil {
				return nil, err
			}
			if outMsg == nil {
				return nil, fmt.Errorf("empty llm response")
			}
			st.OutMsg = outMsg
			return st, nil
		}),
		compose.WithNodeName("shooting_plan.llm"),
	)

	chain.AppendLambda(
		compose.InvokableLambda(func(_ context.Context, st *planChainState) (*schema.Message, error) {
			if st == nil || st.OutMsg == nil {
				return nil, fmt.Errorf("state is nil")
			}
			return st.OutMsg, nil
		}),
		compose.WithNodeName("shooting_plan.finalize"),
	)

	return chain.Compile(ctx)
}

var defaultPromptRegistry = workflowprompt.NewRegistry()

func formatPlanMessages(ctx context.Context, in *wfmodel.PlanGenerateInput) ([]*schema.Message, error) {
	tpl, err := defaultPromptRegistry.ChatTemplate(workflowprompt.PromptShootingPlanV1)
	if err != nil {
		return nil, err
	}
	vars := map[string]any{
		"project_name":         strings.TrimSpace(in.ProjectName),
		"production_type":      strings.TrimSpace(in.ProductionType),
		"target_hours":         in.TargetHours,
		"max_eighths_per_day":  in.MaxEighthsPerDay,
		"day_night_separation": in.DayNightSeparation,
		"payload_json":         in.PayloadJSON,
	}
	return tpl.Format(ctx, vars)
}

func buildPlanModelOptions(in *wfmodel.PlanGenerateInput, enableSchema bool) []model.Option {
	opts := make([]model.Option, 0, 4)
	if in == nil {
		return opts
	}

	if in.Temperature != nil {
		opts = append(opts, model.WithTemperature(*in.Temperature))
	}
	if in.MaxTokens != nil {
		opts = append(opts, model.WithMaxTokens(*in.MaxTokens))
	}
	if strings.TrimSpace(in.Model) != "" {
		opts = append(opts, model.WithModel(strings.TrimSpace(in.Model)))
	}

	if enableSchema {
		opts = append(opts, openaiopts.WithExtraFields(map[string]any{
			"response_format": map[string]any{
				"type": "json_schema",
				"json_schema": map[string]any{
					"name":   "shooting_plan",
					"strict": false,
					"schema": shootingPlanJSONSchema(),
				},
			},
		}))
	}

	return opts
}

func shootingPlanJSONSchema() map[string]any {
	// 说明：schema 以“最小可用”为目标，避免过度约束导致模型输出失败。
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"required":             []any{"days"},
		"properties": map[string]any{
			"summary": map[string]any{"type": "string"},
			"days": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"required":             []any{"day_number", "scene_ids"},
					"properties": map[string]any{
						"day_number":     map[string]any{"type": "integer"},
						"location_label": map[string]any{"type": "string"},
						"time_of_day":    map[string]any{"type": "string"},
						"scene_ids": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
				},
			},
		},
	}
}
