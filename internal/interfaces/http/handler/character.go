package handler

import (
	"github.com/gin-gonic/gin"

	"cineplan-api/internal/domain/repository"
	"cineplan-api/internal/interfaces/http/dto"
	"cineplan-api/pkg/logger"
)

// CharacterHandler 角色处理器
type CharacterHandler struct {
	characterRepo repository.CharacterRepository
}

// NewCharacterHandler 创建角色处理器
func NewCharacterHandler(characterRepo repository.CharacterRepository) *CharacterHandler {
	return &CharacterHandler{characterRepo: characterRepo}
}

// ListCharacters 获取角色列表
// @Summary 获取角色列表
// @Tags Characters
// @Produce json
// @Param pid path string true "项目 ID"
// @Success 200 {object} dto.Response[dto.CharacterListResponse]
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/characters [get]
func (h *CharacterHandler) ListCharacters(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := dto.BindProjectID(c)

	characters, err := h.characterRepo.ListByProject(ctx, projectID)
	if err != nil {
		logger.Error(ctx, "failed to list characters", err)
		dto.InternalError(c, "failed to list characters")
		return
	}

	dto.Success(c, dto.ToCharacterListResponse(characters))
}

// CreateCharacter 创建角色
// @Summary 创建角色
// @Tags Characters
// @Accept json
// @Produce json
// @Param pid path string true "项目 ID"
// @Param body body dto.CreateCharacterRequest true "角色信息"
// @Success 201 {object} dto.Response[dto.CharacterResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/characters [post]
func (h *CharacterHandler) CreateCharacter(c *gin.Context) {
	ctx := c.Request.Context()
	projectID := dto.BindProjectID(c)

	var req dto.CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	character := req.ToCharacterEntity(projectID)
	if err := h.characterRepo.Create(ctx, character); err != nil {
		logger.Error(ctx, "failed to create character", err)
		dto.InternalError(c, "failed to create character")
		return
	}

	dto.Created(c, dto.ToCharacterResponse(character))
}

// UpdateCharacter 更新角色
// @Summary 更新角色
// @Tags Characters
// @Accept json
// @Produce json
// @Param pid path string true "项目 ID"
// @Param id path string true "角色 ID"
// @Param body body dto.UpdateCharacterRequest true "待更新字段"
// @Success 200 {object} dto.Response[dto.CharacterResponse]
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/characters/{id} [put]
func (h *CharacterHandler) UpdateCharacter(c *gin.Context) {
	ctx := c.Request.Context()
	characterID := dto.BindID(c)

	var req dto.UpdateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.BadRequest(c, "invalid request body: "+err.Error())
		return
	}

	character, err := h.characterRepo.GetByID(ctx, characterID)
	if err != nil {
		respondError(c, err, "failed to get character")
		return
	}

	req.ApplyTo(character)
	if err := h.characterRepo.Update(ctx, character); err != nil {
		logger.Error(ctx, "failed to update character", err)
		dto.InternalError(c, "failed to update character")
		return
	}

	dto.Success(c, dto.ToCharacterResponse(character))
}

// DeleteCharacter 删除角色
// @Summary 删除角色
// @Tags Characters
// @Param pid path string true "项目 ID"
// @Param id path string true "角色 ID"
// @Success 204
// @Failure 500 {object} dto.ErrorResponse
// @Router /v1/projects/{pid}/characters/{id} [delete]
func (h *CharacterHandler) DeleteCharacter(c *gin.Context) {
	ctx := c.Request.Context()
	characterID := dto.BindID(c)

	if err := h.characterRepo.Delete(ctx, characterID); err != nil {
		logger.Error(ctx, "failed to delete character", err)
		dto.InternalError(c, "failed to delete character")
		return
	}

	dto.NoContent(c)
}
