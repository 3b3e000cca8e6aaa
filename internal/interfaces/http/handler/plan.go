package handler

import (
	"github.com/gin-gonic/gin"

	"cineplan-api/internal/application/aiplan"
	"cineplan-api/internal/application/schedule"
	"cineplan-api/internal/config"
	"cineplan-api/internal/domain/repository"
	"cineplan-api/internal/interfaces/http/dto"
	"cineplan-api/pkg/logger"
)

// PlanHandler 拍摄计划处理器
type PlanHandler struct {
	planner   *schedule.Planner
	generator *aiplan.Generator
	planRepo  repository.PlanRepository
	cfg       *config.Config
}

// NewPlanHandler 创建拍摄计划处理器
func NewPlanHandler(
	planner *schedule.Planner,
	generator *aiplan.Generator,
	planRepo repository.PlanRepository,
	cfg *config.Config,
) *PlanHandler {
	return &PlanHandler{
		planner:   planner,
		generator: generator,
		planRepo:  planRepo,
		cfg:       cfg,
	}
}

// GeneratePlan 生成确定性拍摄计划
// @Summary 生成确定性拍摄计划
// @Description 按指定分组策略将项目全部场次装入拍摄日并落库
// @Tags Plans
// @Accept json
// @Produce json
// @Param pid path string true "项目 ID"
// @Param body body dto.GeneratePlanRequest true "生成参数"
// @Success 201 {object} dto.Response[dto.PlanResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/plan/generate [post]
func (h *PlanHandler) GeneratePlan(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := dto.BindProjectID(c)

	var req dto.GeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	plan, err := h.planner.GeneratePlan(ctx, projectID, schedule.GenerateOptions{
		Strategy:           req.Strategy,
		TargetHours:        req.TargetHours,
		DayNightSeparation: req.DayNightSeparation,
	})
	if err != nil {
		respondError(c, err, "failed to generate plan")
		return
	}

	dto.Created(c, dto.ToPlanResponse(plan))
}

// GeneratePlanAI 生成 AI 拍摄计划
// @Summary 生成 AI 拍摄计划
// @Description 委托远程模型编排拍摄日，校验修复后落库
// @Tags Plans
// @Accept json
// @Produce json
// @Param pid path string true "项目 ID"
// @Param body body dto.AIGeneratePlanRequest true "生成参数"
// @Success 201 {object} dto.Response[dto.PlanResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/plan/ai-generate [post]
func (h *PlanHandler) GeneratePlanAI(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := dto.BindProjectID(c)

	var req dto.AIGeneratePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	provider, model, err := resolveProviderModel(h.cfg, req.Provider, req.Model)
	if err != nil {
		dto.BadRequest(c, err.Error())
		return
	}

	plan, verdict, err := h.generator.GeneratePlan(ctx, projectID, aiplan.GenerateOptions{
		Provider:           provider,
		Model:              model,
		TargetHours:        req.TargetHours,
		MaxEighthsPerDay:   req.MaxEighthsPerDay,
		DayNightSeparation: req.DayNightSeparation,
		Temperature:        req.Temperature,
		MaxTokens:          req.MaxTokens,
	})
	if err != nil {
		respondError(c, err, "failed to generate plan")
		return
	}

	dto.Created(c, dto.ToPlanResponseWithVerdict(plan, verdict))
}

// GetPlan 获取计划详情
// @Summary 获取计划详情
// @Tags Plans
// @Produce json
// @Param plan_id path string true "计划 ID"
// @Success 200 {object} dto.Response[dto.PlanResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/plans/{plan_id} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	ctx := c.Request.Context()
	planID := dto.BindPlanID(c)

	plan, err := h.planner.GetPlan(ctx, planID)
	if err != nil {
		respondError(c, err, "failed to get plan")
		return
	}

	dto.Success(c, dto.ToPlanResponse(plan))
}

// GetLatestPlan 获取项目最新计划
// @Summary 获取项目最新计划
// @Tags Plans
// @Produce json
// @Param pid path string true "项目 ID"
// @Success 200 {object} dto.Response[dto.PlanResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/plan/latest [get]
func (h *PlanHandler) GetLatestPlan(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := dto.BindProjectID(c)

	plan, err := h.planner.GetLatestPlan(ctx, projectID)
	if err != nil {
		respondError(c, err, "failed to get latest plan")
		return
	}

	dto.Success(c, dto.ToPlanResponse(plan))
}

// ListPlans 获取项目计划列表
// @Summary 获取项目计划列表
// @Tags Plans
// @Produce json
// @Param pid path string true "项目 ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页条数" default(20)
// @Success 200 {object} dto.Response[dto.PlanListResponse]
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/plans [get]
func (h *PlanHandler) ListPlans(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := dto.BindProjectID(c)
	pageReq := dto.BindPage(c)

	result, err := h.planRepo.ListByProject(ctx, projectID, repository.NewPagination(pageReq.Page, pageReq.PageSize))
	if err != nil {
		logger.Error(ctx, "failed to list plans", err)
		dto.InternalError(c, "failed to list plans")
		return
	}

	resp := dto.ToPlanListResponse(result.Items)
	meta := dto.NewPageMeta(pageReq.Page, pageReq.PageSize, int(result.Total))
	dto.SuccessWithPage(c, resp, meta)
}

// MoveScene 跨日移动场次
// @Summary 跨日移动场次
// @Description 将场次从一个拍摄日移至另一日，重新聚合并重新校验整份计划
// @Tags Plans
// @Accept json
// @Produce json
// @Param plan_id path string true "计划 ID"
// @Param body body dto.MoveSceneRequest true "移动参数"
// @Success 200 {object} dto.Response[dto.PlanResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/plans/{plan_id}/move-scene [post]
func (h *PlanHandler) MoveScene(c *gin.Context) {
	ctx := c.Request.Context()
	planID := dto.BindPlanID(c)

	var req dto.MoveSceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.FromDay == req.ToDay {
		dto.BadRequest(c, "from_day and to_day must differ")
		return
	}

	plan, err := h.planner.MoveScene(ctx, planID, req.SceneID, req.FromDay, req.ToDay)
	if err != nil {
		respondError(c, err, "failed to move scene")
		return
	}

	dto.Success(c, dto.ToPlanResponse(plan))
}

// DeletePlan 删除计划
// @Summary 删除计划
// @Tags Plans
// @Param plan_id path string true "计划 ID"
// @Success 204
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/plans/{plan_id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	ctx := c.Request.Context()
	planID := dto.BindPlanID(c)

	if err := h.planRepo.Delete(ctx, planID); err != nil {
		logger.Error(ctx, "failed to delete plan", err)
		dto.InternalError(c, "failed to delete plan")
		return
	}

	dto.NoContent(c)
}
