package handler

import (
	"github.com/gin-gonic/gin"

	"cineplan-api/internal/domain/repository"
	"cineplan-api/internal/interfaces/http/dto"
	"cineplan-api/pkg/logger"
)

// ProjectHandler 项目处理器
type ProjectHandler struct {
	projectRepo repository.ProjectRepository
}

// NewProjectHandler 创建项目处理器
func NewProjectHandler(projectRepo repository.ProjectRepository) *ProjectHandler {
	return &ProjectHandler{projectRepo: projectRepo}
}

// ListProjects 获取项目列表
// @Summary 获取项目列表
// @Description 分页获取全部制作项目
// @Tags Projects
// @Produce json
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页条数" default(20)
// @Success 200 {object} dto.Response[dto.ProjectListResponse]
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	ctx := c.Request.Context()
	pageReq := dto.BindPage(c)

	result, err := h.projectRepo.List(ctx, repository.NewPagination(pageReq.Page, pageReq.PageSize))
	if err != nil {
		logger.Error(ctx, "failed to list projects", err)
		dto.InternalError(c, "failed to list projects")
		return
	}

	resp := dto.ToProjectListResponse(result.Items)
	meta := dto.NewPageMeta(pageReq.Page, pageReq.PageSize, int(result.Total))
	dto.SuccessWithPage(c, resp, meta)
}

// CreateProject 创建项目
// @Summary 创建项目
// @Description 创建新的制作项目
// @Tags Projects
// @Accept json
// @Produce json
// @Param body body dto.CreateProjectRequest true "项目信息"
// @Success 201 {object} dto.Response[dto.ProjectResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	project := req.ToProjectEntity()
	if err := h.projectRepo.Create(ctx, project); err != nil {
		logger.Error(ctx, "failed to create project", err)
		dto.InternalError(c, "failed to create project")
		return
	}

	dto.Created(c, dto.ToProjectResponse(project))
}

// GetProject 获取项目详情
// @Summary 获取项目详情
// @Tags Projects
// @Produce json
// @Param pid path string true "项目 ID"
// @Success 200 {object} dto.Response[dto.ProjectResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{pid} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := dto.BindProjectID(c)

	project, err := h.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		respondError(c, err, "failed to get project")
		return
	}

	dto.Success(c, dto.ToProjectResponse(project))
}

// UpdateProject 更新项目
// @Summary 更新项目
// @Tags Projects
// @Accept json
// @Produce json
// @Param pid path string true "项目 ID"
// @Param body body dto.UpdateProjectRequest true "待更新字段"
// @Success 200 {object} dto.Response[dto.ProjectResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{pid} [put]
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := dto.BindProjectID(c)

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	project, err := h.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		respondError(c, err, "failed to get project")
		return
	}

	req.ApplyTo(project)
	if err := h.projectRepo.Update(ctx, project); err != nil {
		logger.Error(ctx, "failed to update project", err)
		dto.InternalError(c, "failed to update project")
		return
	}

	dto.Success(c, dto.ToProjectResponse(project))
}

// DeleteProject 删除项目
// @Summary 删除项目
// @Tags Projects
// @Param pid path string true "项目 ID"
// @Success 204
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects/{pid} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := dto.BindProjectID(c)

	if err := h.projectRepo.Delete(ctx, projectID); err != nil {
		logger.Error(ctx, "failed to delete project", err)
		dto.InternalError(c, "failed to delete project")
		return
	}

	dto.NoContent(c)
}
