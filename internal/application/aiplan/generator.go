package aiplan

import (
	"context"
	stderrors "errors"
	"io"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"cineplan-api/internal/application/schedule"
	"cineplan-api/internal/config"
	"cineplan-api/internal/domain/entity"
	"cineplan-api/internal/domain/repository"
	workflowchain "cineplan-api/internal/workflow/chain"
	wfmodel "cineplan-api/internal/workflow/model"
	workflowport "cineplan-api/internal/workflow/port"
	"cineplan-api/pkg/errors"
	"cineplan-api/pkg/logger"
	"cineplan-api/pkg/metrics"
	"cineplan-api/pkg/tracer"
)

// GenerateOptions AI 生成参数
type GenerateOptions struct {
	Provider           string
	Model              string
	TargetHours        float64
	MaxEighthsPerDay   int
	DayNightSeparation bool
	Temperature        *float32
	MaxTokens          *int
}

// Generator AI 排期服务：序列化 → 远程生成 → 解析 → 校验修复 → 落库
type Generator struct {
	sceneRepo     repository.SceneRepository
	locationRepo  repository.LocationRepository
	characterRepo repository.CharacterRepository
	distanceRepo  repository.DistanceRepository
	planRepo      repository.PlanRepository
	projectRepo   repository.ProjectRepository
	chain         *workflowchain.ShootingPlanChain
	cfg           config.SchedulerConfig
}

// NewGenerator 创建 AI 排期服务
func NewGenerator(
	sceneRepo repository.SceneRepository,
	locationRepo repository.LocationRepository,
	characterRepo repository.CharacterRepository,
	distanceRepo repository.DistanceRepository,
	planRepo repository.PlanRepository,
	projectRepo repository.ProjectRepository,
	factory workflowport.ChatModelFactory,
	cfg config.SchedulerConfig,
) *Generator {
	return &Generator{
		sceneRepo:     sceneRepo,
		locationRepo:  locationRepo,
		characterRepo: characterRepo,
		distanceRepo:  distanceRepo,
		planRepo:      planRepo,
		projectRepo:   projectRepo,
		chain:         workflowchain.NewShootingPlanChain(factory),
		cfg:           cfg,
	}
}

// GeneratePlan 委托远程模型编排拍摄日，对返回结果执行与确定性
// 算法相同的完整性校验与修复，然后持久化。
// 通信或解析失败对本次调用是致命的，不做自动重试；
// 输出不完整不致命，修复后调用仍视为成功。
func (g *Generator) GeneratePlan(ctx context.Context, projectID string, opts GenerateOptions) (*entity.ShootingPlan, *PlanVerdict, error) {
	ctx, span := tracer.Start(ctx, "aiplan.GeneratePlan",
		trace.WithAttributes(
			attribute.String("project.id", projectID),
			attribute.String("llm.provider", opts.Provider),
		))
	defer span.End()

	start := time.Now()
	mode := string(entity.PlanModeAI)

	fail := func(err error) (*entity.ShootingPlan, *PlanVerdict, error) {
		metrics.PlanGenerationTotal.WithLabelValues(mode, "error").Inc()
		return nil, nil, err
	}

	project, err := g.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return fail(err)
	}
	scenes, err := g.sceneRepo.ListByProject(ctx, projectID, nil)
	if err != nil {
		return fail(errors.Wrap(err, errors.CodeDatabaseError, "failed to load scenes"))
	}
	if len(scenes) == 0 {
		return fail(errors.New(errors.CodePlanGenerationFailed, "project has no scenes to schedule"))
	}
	locations, err := g.locationRepo.ListByProject(ctx, projectID)
	if err != nil {
		return fail(errors.Wrap(err, errors.CodeDatabaseError, "failed to load locations"))
	}
	characters, err := g.characterRepo.ListByProject(ctx, projectID)
	if err != nil {
		return fail(errors.Wrap(err, errors.CodeDatabaseError, "failed to load characters"))
	}
	entries, err := g.distanceRepo.ListByProject(ctx, projectID)
	if err != nil {
		return fail(errors.Wrap(err, errors.CodeDatabaseError, "failed to load distance entries"))
	}

	targetHours := opts.TargetHours
	if targetHours <= 0 {
		targetHours = project.TargetHours
	}
	if targetHours <= 0 {
		targetHours = g.cfg.TargetHoursPerDay
	}
	maxEighths := opts.MaxEighthsPerDay
	if maxEighths <= 0 {
		maxEighths = g.cfg.MaxEighthsPerDay
	}

	payload, err := BuildPlanRequest(project, scenes, locations, characters, entries,
		targetHours, maxEighths, opts.DayNightSeparation).MarshalJSONString()
	if err != nil {
		return fail(errors.Wrap(err, errors.CodePlanGenerationFailed, "failed to serialize plan request"))
	}

	raw, meta, err := g.collectModelOutput(ctx, &wfmodel.PlanGenerateInput{
		ProjectName:        project.Name,
		ProductionType:     project.ProductionType,
		PayloadJSON:        payload,
		TargetHours:        targetHours,
		MaxEighthsPerDay:   maxEighths,
		DayNightSeparation: opts.DayNightSeparation,
		Provider:           opts.Provider,
		Model:              opts.Model,
		Temperature:        opts.Temperature,
		MaxTokens:          opts.MaxTokens,
	})
	if err != nil {
		return fail(err)
	}

	modelPlan, err := ParsePlanOutput(raw)
	if err != nil {
		return fail(err)
	}

	verdict := ValidateAndRepair(modelPlan, scenes, g.packOptions(targetHours, locations, entries))

	status := entity.PlanStatusGenerated
	if verdict.Repaired() {
		status = entity.PlanStatusRepaired
	}
	plan := &entity.ShootingPlan{
		ProjectID:   projectID,
		Mode:        entity.PlanModeAI,
		Strategy:    string(schedule.ParseStrategy(g.cfg.DefaultStrategy)),
		TargetHours: targetHours,
		Status:      status,
		Days:        verdict.Days,
		Summary:     verdict.Summary,
		GenerationMetadata: &entity.GenerationMetadata{
			Provider:         meta.Provider,
			Model:            meta.Model,
			PromptTokens:     meta.PromptTokens,
			CompletionTokens: meta.CompletionTokens,
			Temperature:      meta.Temperature,
			GeneratedAt:      meta.GeneratedAt.Format(time.RFC3339),
		},
	}
	if err := g.planRepo.Create(ctx, plan); err != nil {
		return fail(errors.Wrap(err, errors.CodeDatabaseError, "failed to save shooting plan"))
	}

	metrics.PlanGenerationTotal.WithLabelValues(mode, "success").Inc()
	metrics.PlanGenerationDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	metrics.PlanDaysCount.WithLabelValues(mode).Observe(float64(len(plan.Days)))
	metrics.PlanWarningsCount.WithLabelValues(mode).Observe(float64(plan.TotalWarnings()))

	logger.Info(ctx, "ai shooting plan generated",
		"project_id", projectID,
		"plan_id", plan.ID,
		"status", string(status),
		"days", len(plan.Days),
		"repair_issues", len(verdict.Issues),
	)
	return plan, verdict, nil
}

// collectModelOutput 消费流式响应并拼接全部增量文本。
// 流式只为规避传输超时，解析前必须等待完整输出。
func (g *Generator) collectModelOutput(ctx context.Context, in *wfmodel.PlanGenerateInput) (string, wfmodel.LLMUsageMeta, error) {
	meta := wfmodel.LLMUsageMeta{
		Provider:    strings.TrimSpace(in.Provider),
		Model:       strings.TrimSpace(in.Model),
		GeneratedAt: time.Now().UTC(),
	}
	if in.Temperature != nil {
		meta.Temperature = float64(*in.Temperature)
	}

	callStart := time.Now()
	reader, err := g.chain.Stream(ctx, in)
	if err != nil {
		metrics.LLMCallTotal.WithLabelValues(meta.Provider, meta.Model, "error").Inc()
		return "", meta, errors.Wrap(err, errors.CodeModelCallFailed, "model call failed")
	}
	defer reader.Close()

	var sb strings.Builder
	for {
		msg, recvErr := reader.Recv()
		if recvErr != nil {
			if stderrors.Is(recvErr, io.EOF) {
				break
			}
			metrics.LLMCallTotal.WithLabelValues(meta.Provider, meta.Model, "error").Inc()
			return "", meta, errors.Wrap(recvErr, errors.CodeModelCallFailed, "model stream interrupted")
		}
		if msg == nil {
			continue
		}
		sb.WriteString(msg.Content)
		if msg.ResponseMeta != nil && msg.ResponseMeta.Usage != nil {
			meta.PromptTokens = msg.ResponseMeta.Usage.PromptTokens
			meta.CompletionTokens = msg.ResponseMeta.Usage.CompletionTokens
		}
	}

	metrics.LLMCallTotal.WithLabelValues(meta.Provider, meta.Model, "success").Inc()
	metrics.LLMCallDuration.WithLabelValues(meta.Provider, meta.Model).Observe(time.Since(callStart).Seconds())
	return sb.String(), meta, nil
}

func (g *Generator) packOptions(targetHours float64, locations []*entity.Location, entries []*entity.DistanceEntry) schedule.PackOptions {
	zones := make(map[string]string, len(locations))
	for _, loc := range locations {
		if loc.Zone != "" {
			zones[loc.Name] = loc.Zone
		}
	}
	return schedule.PackOptions{
		TargetHours:            targetHours,
		Strategy:               schedule.ParseStrategy(g.cfg.DefaultStrategy),
		ZoneByLocation:         zones,
		Distances:              entity.NewDistanceMatrix(entries),
		IntraZoneTravelMinutes: g.cfg.IntraZoneTravelMinutes,
		InterZoneTravelMinutes: g.cfg.InterZoneTravelMinutes,
	}
}
