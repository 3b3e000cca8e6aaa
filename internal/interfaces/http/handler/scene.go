package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"cineplan-api/internal/domain/entity"
	"cineplan-api/internal/domain/repository"
	"cineplan-api/internal/interfaces/http/dto"
	"cineplan-api/pkg/logger"
)

// SceneHandler 场次处理器
type SceneHandler struct {
	sceneRepo repository.SceneRepository
	txMgr     repository.Transactor
}

// NewSceneHandler 创建场次处理器
func NewSceneHandler(sceneRepo repository.SceneRepository, txMgr repository.Transactor) *SceneHandler {
	return &SceneHandler{
		sceneRepo: sceneRepo,
		txMgr:     txMgr,
	}
}

// ListScenes 获取场次列表
// @Summary 获取场次列表
// @Description 分页获取项目场次，支持按场地与时段过滤
// @Tags Scenes
// @Produce json
// @Param pid path string true "项目 ID"
// @Param location_id query string false "场地 ID"
// @Param time_of_day query string false "时段 (day/dawn/dusk/night)"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页条数" default(20)
// @Success 200 {object} dto.Response[dto.SceneListResponse]
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/scenes [get]
func (h *SceneHandler) ListScenes(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := dto.BindProjectID(c)
	pageReq := dto.BindPage(c)

	filter := sceneFilterFromQuery(c)
	result, err := h.sceneRepo.ListByProjectPaged(ctx, projectID, filter, repository.NewPagination(pageReq.Page, pageReq.PageSize))
	if err != nil {
		logger.Error(ctx, "failed to list scenes", err)
		dto.InternalError(c, "failed to list scenes")
		return
	}

	resp := dto.ToSceneListResponse(result.Items)
	meta := dto.NewPageMeta(pageReq.Page, pageReq.PageSize, int(result.Total))
	dto.SuccessWithPage(c, resp, meta)
}

// CreateScene 创建场次
// @Summary 创建场次
// @Description 在项目剧本末尾追加新场次
// @Tags Scenes
// @Accept json
// @Produce json
// @Param pid path string true "项目 ID"
// @Param body body dto.CreateSceneRequest true "场次信息"
// @Success 201 {object} dto.Response[dto.SceneResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/scenes [post]
func (h *SceneHandler) CreateScene(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := dto.BindProjectID(c)

	var req dto.CreateSceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	seqNum, err := h.sceneRepo.GetNextSeqNum(ctx, projectID)
	if err != nil {
		logger.Error(ctx, "failed to get next seq num", err)
		dto.InternalError(c, "failed to create scene")
		return
	}

	scene := req.ToSceneEntity(projectID, seqNum)
	if err := h.sceneRepo.Create(ctx, scene); err != nil {
		logger.Error(ctx, "failed to create scene", err)
		dto.InternalError(c, "failed to create scene")
		return
	}

	dto.Created(c, dto.ToSceneResponse(scene))
}

// ImportScenes 批量导入场次
// @Summary 批量导入场次
// @Description 导入脚本拆解产出的场次列表，按出现顺序分配剧本序号
// @Tags Scenes
// @Accept json
// @Produce json
// @Param pid path string true "项目 ID"
// @Param body body dto.ImportScenesRequest true "场次列表"
// @Success 201 {object} dto.Response[dto.SceneListResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/scenes/import [post]
func (h *SceneHandler) ImportScenes(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := dto.BindProjectID(c)

	var req dto.ImportScenesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	var scenes []*entity.Scene
	err := h.txMgr.WithTransaction(ctx, func(txCtx context.Context) error {
		seqNum, err := h.sceneRepo.GetNextSeqNum(txCtx, projectID)
		if err != nil {
			return err
		}
		scenes = make([]*entity.Scene, 0, len(req.Scenes))
		for i := range req.Scenes {
			scenes = append(scenes, req.Scenes[i].ToSceneEntity(projectID, seqNum+i))
		}
		return h.sceneRepo.BulkUpsert(txCtx, scenes)
	})
	if err != nil {
		logger.Error(ctx, "failed to import scenes", err, "count", len(req.Scenes))
		dto.InternalError(c, "failed to import scenes")
		return
	}

	logger.Info(ctx, "scenes imported", "project_id", projectID, "count", len(scenes))
	dto.Created(c, dto.ToSceneListResponse(scenes))
}

// GetScene 获取场次详情
// @Summary 获取场次详情
// @Tags Scenes
// @Produce json
// @Param pid path string true "项目 ID"
// @Param id path string true "场次 ID"
// @Success 200 {object} dto.Response[dto.SceneResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/scenes/{id} [get]
func (h *SceneHandler) GetScene(c *gin.Context) {
	ctx := c.Request.Context()
	sceneID := dto.BindID(c)

	scene, err := h.sceneRepo.GetByID(ctx, sceneID)
	if err != nil {
		respondError(c, err, "failed to get scene")
		return
	}

	dto.Success(c, dto.ToSceneResponse(scene))
}

// UpdateScene 更新场次
// @Summary 更新场次
// @Tags Scenes
// @Accept json
// @Produce json
// @Param pid path string true "项目 ID"
// @Param id path string true "场次 ID"
// @Param body body dto.UpdateSceneRequest true "待更新字段"
// @Success 200 {object} dto.Response[dto.SceneResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/scenes/{id} [put]
func (h *SceneHandler) UpdateScene(c *gin.Context) {
	ctx := c.Request.Context()
	sceneID := dto.BindID(c)

	var req dto.UpdateSceneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	scene, err := h.sceneRepo.GetByID(ctx, sceneID)
	if err != nil {
		respondError(c, err, "failed to get scene")
		return
	}

	req.ApplyTo(scene)
	if err := h.sceneRepo.Update(ctx, scene); err != nil {
		logger.Error(ctx, "failed to update scene", err)
		dto.InternalError(c, "failed to update scene")
		return
	}

	dto.Success(c, dto.ToSceneResponse(scene))
}

// DeleteScene 删除场次
// @Summary 删除场次
// @Tags Scenes
// @Param pid path string true "项目 ID"
// @Param id path string true "场次 ID"
// @Success 204
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/scenes/{id} [delete]
func (h *SceneHandler) DeleteScene(c *gin.Context) {
	ctx := c.Request.Context()
	sceneID := dto.BindID(c)

	if err := h.sceneRepo.Delete(ctx, sceneID); err != nil {
		logger.Error(ctx, "failed to delete scene", err)
		dto.InternalError(c, "failed to delete scene")
		return
	}

	dto.NoContent(c)
}

// sceneFilterFromQuery 从查询参数构造场次过滤条件
func sceneFilterFromQuery(c *gin.Context) *repository.SceneFilter {
	locationID := c.Query("location_id")
	timeOfDay := c.Query("time_of_day")
	if locationID == "" && timeOfDay == "" {
		return nil
	}
	filter := &repository.SceneFilter{LocationID: locationID}
	if timeOfDay != "" {
		filter.TimeOfDay = entity.ParseTimeOfDay(timeOfDay)
	}
	return filter
}
