package handler

import (
	"github.com/gin-gonic/gin"

	"cineplan-api/internal/domain/repository"
	"cineplan-api/internal/interfaces/http/dto"
	"cineplan-api/pkg/logger"
)

// LocationHandler 场地处理器
type LocationHandler struct {
	locationRepo repository.LocationRepository
}

// NewLocationHandler 创建场地处理器
func NewLocationHandler(locationRepo repository.LocationRepository) *LocationHandler {
	return &LocationHandler{locationRepo: locationRepo}
}

// ListLocations 获取场地列表
// @Summary 获取场地列表
// @Tags Locations
// @Produce json
// @Param pid path string true "项目 ID"
// @Success 200 {object} dto.Response[dto.LocationListResponse]
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/locations [get]
func (h *LocationHandler) ListLocations(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := dto.BindProjectID(c)

	locations, err := h.locationRepo.ListByProject(ctx, projectID)
	if err != nil {
		logger.Error(ctx, "failed to list locations", err)
		dto.InternalError(c, "failed to list locations")
		return
	}

	dto.Success(c, dto.ToLocationListResponse(locations))
}

// CreateLocation 创建场地
// @Summary 创建场地
// @Tags Locations
// @Accept json
// @Produce json
// @Param pid path string true "项目 ID"
// @Param body body dto.CreateLocationRequest true "场地信息"
// @Success 201 {object} dto.Response[dto.LocationResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/locations [post]
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := dto.BindProjectID(c)

	var req dto.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	location := req.ToLocationEntity(projectID)
	if err := h.locationRepo.Create(ctx, location); err != nil {
		logger.Error(ctx, "failed to create location", err)
		dto.InternalError(c, "failed to create location")
		return
	}

	dto.Created(c, dto.ToLocationResponse(location))
}

// GetLocation 获取场地详情
// @Summary 获取场地详情
// @Tags Locations
// @Produce json
// @Param pid path string true "项目 ID"
// @Param id path string true "场地 ID"
// @Success 200 {object} dto.Response[dto.LocationResponse]
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/locations/{id} [get]
func (h *LocationHandler) GetLocation(c *gin.Context) {
	ctx := c.Request.Context()
	locationID := dto.BindID(c)

	location, err := h.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		respondError(c, err, "failed to get location")
		return
	}

	dto.Success(c, dto.ToLocationResponse(location))
}

// UpdateLocation 更新场地
// @Summary 更新场地
// @Tags Locations
// @Accept json
// @Produce json
// @Param pid path string true "项目 ID"
// @Param id path string true "场地 ID"
// @Param body body dto.UpdateLocationRequest true "待更新字段"
// @Success 200 {object} dto.Response[dto.LocationResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/locations/{id} [put]
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	ctx := c.Request.Context()
	locationID := dto.BindID(c)

	var req dto.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	location, err := h.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		respondError(c, err, "failed to get location")
		return
	}

	req.ApplyTo(location)
	if err := h.locationRepo.Update(ctx, location); err != nil {
		logger.Error(ctx, "failed to update location", err)
		dto.InternalError(c, "failed to update location")
		return
	}

	dto.Success(c, dto.ToLocationResponse(location))
}

// DeleteLocation 删除场地
// @Summary 删除场地
// @Tags Locations
// @Param pid path string true "项目 ID"
// @Param id path string true "场地 ID"
// @Success 204
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/locations/{id} [delete]
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	ctx := c.Request.Context()
	locationID := dto.BindID(c)

	if err := h.locationRepo.Delete(ctx, locationID); err != nil {
		logger.Error(ctx, "failed to delete location", err)
		dto.InternalError(c, "failed to delete location")
		return
	}

	dto.NoContent(c)
}
