package handler

import (
	"github.com/gin-gonic/gin"

	"cineplan-api/internal/domain/repository"
	"cineplan-api/internal/interfaces/http/dto"
	"cineplan-api/pkg/logger"
)

// DistanceHandler 场地距离处理器
type DistanceHandler struct {
	distanceRepo repository.DistanceRepository
}

// NewDistanceHandler 创建场地距离处理器
func NewDistanceHandler(distanceRepo repository.DistanceRepository) *DistanceHandler {
	return &DistanceHandler{distanceRepo: distanceRepo}
}

// ListDistances 获取距离条目列表
// @Summary 获取距离条目列表
// @Tags Distances
// @Produce json
// @Param pid path string true "项目 ID"
// @Success 200 {object} dto.Response[dto.DistanceListResponse]
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/distances [get]
func (h *DistanceHandler) ListDistances(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := dto.BindProjectID(c)

	entries, err := h.distanceRepo.ListByProject(ctx, projectID)
	if err != nil {
		logger.Error(ctx, "failed to list distances", err)
		dto.InternalError(c, "failed to list distances")
		return
	}

	dto.Success(c, dto.ToDistanceListResponse(entries))
}

// UpsertDistance 写入距离条目
// @Summary 写入距离条目
// @Description 按 (项目, 起点, 终点) 幂等写入两场地间的距离
// @Tags Distances
// @Accept json
// @Produce json
// @Param pid path string true "项目 ID"
// @Param body body dto.UpsertDistanceRequest true "距离信息"
// @Success 200 {object} dto.Response[dto.DistanceResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/distances [put]
func (h *DistanceHandler) UpsertDistance(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := dto.BindProjectID(c)

	var req dto.UpsertDistanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}
	if req.FromLocationID == req.ToLocationID {
		dto.BadRequest(c, "from_location_id and to_location_id must differ")
		return
	}

	entry := req.ToDistanceEntity(projectID)
	if err := h.distanceRepo.Upsert(ctx, entry); err != nil {
		logger.Error(ctx, "failed to upsert distance", err)
		dto.InternalError(c, "failed to upsert distance")
		return
	}

	dto.Success(c, dto.ToDistanceResponse(entry))
}

// DeleteDistance 删除距离条目
// @Summary 删除距离条目
// @Tags Distances
// @Param pid path string true "项目 ID"
// @Param id path string true "条目 ID"
// @Success 204
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/distances/{id} [delete]
func (h *DistanceHandler) DeleteDistance(c *gin.Context) {
	ctx := c.Request.Context()
	entryID := dto.BindID(c)

	if err := h.distanceRepo.Delete(ctx, entryID); err != nil {
		logger.Error(ctx, "failed to delete distance", err)
		dto.InternalError(c, "failed to delete distance")
		return
	}

	dto.NoContent(c)
}
