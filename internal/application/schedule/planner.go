package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"cineplan-api/internal/config"
	"cineplan-api/internal/domain/entity"
	"cineplan-api/internal/domain/repository"
	"cineplan-api/pkg/errors"
	"cineplan-api/pkg/logger"
	"cineplan-api/pkg/metrics"
	"cineplan-api/pkg/tracer"
)

// PlanCache 计划缓存端口，由 Redis 实现
type PlanCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// GenerateOptions 确定性生成参数，零值回落到配置默认
type GenerateOptions struct {
	Strategy           string
	TargetHours        float64
	DayNightSeparation bool
}

// Planner 确定性排期服务：加载 → 排序 → 装日 → 校验 → 落库
type Planner struct {
	sceneRepo    repository.SceneRepository
	locationRepo repository.LocationRepository
	distanceRepo repository.DistanceRepository
	planRepo     repository.PlanRepository
	projectRepo  repository.ProjectRepository
	cache        PlanCache
	cfg          config.SchedulerConfig
}

// NewPlanner 创建排期服务
func NewPlanner(
	sceneRepo repository.SceneRepository,
	locationRepo repository.LocationRepository,
	distanceRepo repository.DistanceRepository,
	planRepo repository.PlanRepository,
	projectRepo repository.ProjectRepository,
	cache PlanCache,
	cfg config.SchedulerConfig,
) *Planner {
	return &Planner{
		sceneRepo:    sceneRepo,
		locationRepo: locationRepo,
		distanceRepo: distanceRepo,
		planRepo:     planRepo,
		projectRepo:  projectRepo,
		cache:        cache,
		cfg:          cfg,
	}
}

// planInputs 一次生成所需的全部协作数据
type planInputs struct {
	project   *entity.Project
	scenes    []*entity.Scene
	locations []*entity.Location
	zones     map[string]string
	distances *entity.DistanceMatrix
}

// GeneratePlan 生成确定性拍摄计划并持久化。
// 对至少含一个有效场次的项目永不失败：容量与劳动规则问题
// 一律以警告形式附着在受影响的拍摄日上。
func (p *Planner) GeneratePlan(ctx context.Context, projectID string, opts GenerateOptions) (*entity.ShootingPlan, error) {
	ctx, span := tracer.Start(ctx, "planner.GeneratePlan",
		trace.WithAttributes(attribute.String("project.id", projectID)))
	defer span.End()

	start := time.Now()
	mode := string(entity.PlanModeDeterministic)

	in, err := p.loadInputs(ctx, projectID)
	if err != nil {
		metrics.PlanGenerationTotal.WithLabelValues(mode, "error").Inc()
		return nil, err
	}
	if len(in.scenes) == 0 {
		metrics.PlanGenerationTotal.WithLabelValues(mode, "error").Inc()
		return nil, errors.New(errors.CodePlanGenerationFailed, "project has no scenes to schedule")
	}

	strategy := ParseStrategy(opts.Strategy)
	if opts.Strategy == "" {
		strategy = ParseStrategy(p.cfg.DefaultStrategy)
	}
	targetHours := opts.TargetHours
	if targetHours <= 0 {
		targetHours = in.project.TargetHours
	}
	if targetHours <= 0 {
		targetHours = p.cfg.TargetHoursPerDay
	}

	ordered := OrderScenes(in.scenes, strategy, SortContext{
		ZoneByLocation:     in.zones,
		DayNightSeparation: opts.DayNightSeparation || p.cfg.DayNightSeparation,
	})
	days := PackDays(ordered, p.packOptions(strategy, targetHours, in))
	days = AnnotatePlan(days)

	plan := &entity.ShootingPlan{
		ProjectID:   projectID,
		Mode:        entity.PlanModeDeterministic,
		Strategy:    string(strategy),
		TargetHours: targetHours,
		Status:      entity.PlanStatusGenerated,
		Days:        days,
		Summary:     planSummary(days),
	}
	if err := p.planRepo.Create(ctx, plan); err != nil {
		metrics.PlanGenerationTotal.WithLabelValues(mode, "error").Inc()
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to save shooting plan")
	}
	p.cachePlan(ctx, plan)

	metrics.PlanGenerationTotal.WithLabelValues(mode, "success").Inc()
	metrics.PlanGenerationDuration.WithLabelValues(mode).Observe(time.Since(start).Seconds())
	metrics.PlanDaysCount.WithLabelValues(mode).Observe(float64(len(days)))
	metrics.PlanWarningsCount.WithLabelValues(mode).Observe(float64(plan.TotalWarnings()))

	logger.Info(ctx, "shooting plan generated",
		"project_id", projectID,
		"plan_id", plan.ID,
		"strategy", string(strategy),
		"days", len(days),
		"warnings", plan.TotalWarnings(),
	)
	return plan, nil
}

// GetPlan 查询计划，优先走缓存
func (p *Planner) GetPlan(ctx context.Context, planID string) (*entity.ShootingPlan, error) {
	ctx, span := tracer.Start(ctx, "planner.GetPlan",
		trace.WithAttributes(attribute.String("plan.id", planID)))
	defer span.End()

	if p.cache != nil {
		if raw, err := p.cache.Get(ctx, planCacheKey(planID)); err == nil && len(raw) > 0 {
			var plan entity.ShootingPlan
			if err := json.Unmarshal(raw, &plan); err == nil {
				return &plan, nil
			}
		}
	}

	plan, err := p.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}
	p.cachePlan(ctx, plan)
	return plan, nil
}

// GetLatestPlan 查询项目最新计划
func (p *Planner) GetLatestPlan(ctx context.Context, projectID string) (*entity.ShootingPlan, error) {
	ctx, span := tracer.Start(ctx, "planner.GetLatestPlan",
		trace.WithAttributes(attribute.String("project.id", projectID)))
	defer span.End()

	return p.planRepo.GetLatestByProject(ctx, projectID)
}

// MoveScene 在两个拍摄日之间移动场次：从源日移除、追加到目标日，
// 全量重算聚合并重新跑一遍跨日校验，最后落库。
func (p *Planner) MoveScene(ctx context.Context, planID, sceneID string, fromDay, toDay int) (*entity.ShootingPlan, error) {
	ctx, span := tracer.Start(ctx, "planner.MoveScene",
		trace.WithAttributes(
			attribute.String("plan.id", planID),
			attribute.String("scene.id", sceneID),
			attribute.Int("day.from", fromDay),
			attribute.Int("day.to", toDay),
		))
	defer span.End()

	plan, err := p.planRepo.GetByID(ctx, planID)
	if err != nil {
		return nil, err
	}

	source := plan.FindDay(fromDay)
	target := plan.FindDay(toDay)
	if source == nil || target == nil {
		return nil, errors.New(errors.CodeDayNotFound, "shooting day not found in plan")
	}

	idx := -1
	for i := range source.Scenes {
		if source.Scenes[i].SceneID == sceneID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errors.New(errors.CodeSceneMoveFailed, "scene not found in source day")
	}

	moved := source.Scenes[idx]
	source.Scenes = append(source.Scenes[:idx], source.Scenes[idx+1:]...)
	target.Scenes = append(target.Scenes, moved)

	in, err := p.loadInputs(ctx, plan.ProjectID)
	if err != nil {
		return nil, err
	}
	opts := p.packOptions(ParseStrategy(plan.Strategy), plan.TargetHours, in)

	// 移动后源日可能为空：丢弃空日并连续重编号
	kept := plan.Days[:0]
	for i := range plan.Days {
		if len(plan.Days[i].Scenes) > 0 {
			kept = append(kept, plan.Days[i])
		}
	}
	plan.Days = kept
	plan.Renumber()
	for i := range plan.Days {
		RecomputeDayAggregates(&plan.Days[i], opts)
	}
	plan.Days = AnnotatePlan(plan.Days)

	if err := p.planRepo.Update(ctx, plan); err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to save moved scene")
	}
	p.cachePlan(ctx, plan)

	logger.Info(ctx, "scene moved between days",
		"plan_id", planID,
		"scene_id", sceneID,
		"from_day", fromDay,
		"to_day", toDay,
	)
	return plan, nil
}

// LoadInputs 对外暴露协作数据加载，供 AI 生成路径复用
func (p *Planner) LoadInputs(ctx context.Context, projectID string) (*entity.Project, []*entity.Scene, []*entity.Location, *entity.DistanceMatrix, error) {
	in, err := p.loadInputs(ctx, projectID)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return in.project, in.scenes, in.locations, in.distances, nil
}

// PackOptionsFor 按项目上下文构造装日参数，供修复路径复用
func (p *Planner) PackOptionsFor(ctx context.Context, projectID string, targetHours float64) (PackOptions, error) {
	in, err := p.loadInputs(ctx, projectID)
	if err != nil {
		return PackOptions{}, err
	}
	return p.packOptions(ParseStrategy(p.cfg.DefaultStrategy), targetHours, in), nil
}

func (p *Planner) loadInputs(ctx context.Context, projectID string) (*planInputs, error) {
	project, err := p.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	scenes, err := p.sceneRepo.ListByProject(ctx, projectID, nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to load scenes")
	}
	locations, err := p.locationRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to load locations")
	}
	entries, err := p.distanceRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeDatabaseError, "failed to load distance entries")
	}

	zones := make(map[string]string, len(locations))
	for _, loc := range locations {
		if loc.Zone != "" {
			zones[loc.Name] = loc.Zone
		}
	}
	return &planInputs{
		project:   project,
		scenes:    scenes,
		locations: locations,
		zones:     zones,
		distances: entity.NewDistanceMatrix(entries),
	}, nil
}

func (p *Planner) packOptions(strategy Strategy, targetHours float64, in *planInputs) PackOptions {
	return PackOptions{
		TargetHours:            targetHours,
		Strategy:               strategy,
		ZoneByLocation:         in.zones,
		Distances:              in.distances,
		IntraZoneTravelMinutes: p.cfg.IntraZoneTravelMinutes,
		InterZoneTravelMinutes: p.cfg.InterZoneTravelMinutes,
	}
}

func (p *Planner) cachePlan(ctx context.Context, plan *entity.ShootingPlan) {
	if p.cache == nil || plan == nil || plan.ID == "" {
		return
	}
	ttl := p.cfg.PlanCacheTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	if err := p.cache.Set(ctx, planCacheKey(plan.ID), plan, ttl); err != nil {
		logger.Warn(ctx, "failed to cache shooting plan", "plan_id", plan.ID, "error", err.Error())
	}
}

func planCacheKey(planID string) string {
	return fmt.Sprintf("plan:%s", planID)
}

// planSummary 生成一行中文摘要
func planSummary(days []entity.ShootingDay) string {
	totalScenes := 0
	totalEighths := 0.0
	totalHours := 0.0
	for i := range days {
		totalScenes += len(days[i].Scenes)
		totalEighths += days[i].TotalEighths
		totalHours += days[i].EstimatedHours
	}
	return fmt.Sprintf("共 %d 个拍摄日，%d 场，%.1f 页量（八分之一页），预计 %.1f 小时",
		len(days), totalScenes, totalEighths, totalHours)
}
