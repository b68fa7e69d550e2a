package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	profileUC "github.com/khoahotran/professional-ladder/internal/application/usecase/profile"
	"github.com/khoahotran/professional-ladder/pkg/apperror"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUseCase: uc,
		logger:         log,
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	s, ok := GetSessionFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("session not found in context", nil))
		return
	}

	output, err := h.profileUseCase.ExecuteGetProfile(c.Request.Context(), profileUC.SessionInput{Session: s})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) UpdatePersonalInfo(c *gin.Context) {
	s, ok := GetSessionFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("session not found in context", nil))
		return
	}

	var req UpdatePersonalInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for personal info update", err))
		return
	}

	output, err := h.profileUseCase.ExecuteUpdatePersonalInfo(c.Request.Context(), profileUC.UpdatePersonalInfoInput{
		Session: s,
		Patch:   req.ToPatch(),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPersonalInfoDTO(output.PersonalInfo))
}

func (h *ProfileHandler) Load(c *gin.Context) {
	s, ok := GetSessionFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("session not found in context", nil))
		return
	}

	output, err := h.profileUseCase.ExecuteLoad(c.Request.Context(), profileUC.SessionInput{Session: s})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

func (h *ProfileHandler) Save(c *gin.Context) {
	s, ok := GetSessionFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("session not found in context", nil))
		return
	}

	output, err := h.profileUseCase.ExecuteSave(c.Request.Context(), profileUC.SessionInput{Session: s})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile saved successfully", "saved_at": output.SavedAt})
}

func (h *ProfileHandler) Stats(c *gin.Context) {
	s, ok := GetSessionFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("session not found in context", nil))
		return
	}

	output, err := h.profileUseCase.ExecuteStats(c.Request.Context(), profileUC.SessionInput{Session: s})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"stats": ToCategoryStatsDTOs(output.Stats)})
}

func (h *ProfileHandler) Preview(c *gin.Context) {
	s, ok := GetSessionFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("session not found in context", nil))
		return
	}

	output, err := h.profileUseCase.ExecutePreview(c.Request.Context(), profileUC.SessionInput{Session: s})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPreviewDTO(output.View, output.Text))
}

func (h *ProfileHandler) ShareLink(c *gin.Context) {
	s, ok := GetSessionFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("session not found in context", nil))
		return
	}

	output, err := h.profileUseCase.ExecuteShareLink(c.Request.Context(), profileUC.SessionInput{Session: s})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": output.URL})
}

func (h *ProfileHandler) AddItem(c *gin.Context) {
	s, ok := GetSessionFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("session not found in context", nil))
		return
	}

	var fields map[string]string
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.Error(apperror.NewInvalidInput("item body must be an object of string fields", err))
		return
	}

	output, err := h.profileUseCase.ExecuteAddItem(c.Request.Context(), profileUC.AddItemInput{
		Session:  s,
		Category: c.Param("category"),
		Fields:   fields,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, ItemRefDTO{Category: string(output.Category), ID: output.ID})
}

func (h *ProfileHandler) ListItems(c *gin.Context) {
	s, ok := GetSessionFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("session not found in context", nil))
		return
	}

	output, err := h.profileUseCase.ExecuteListItems(c.Request.Context(), profileUC.ItemRefInput{
		Session:  s,
		Category: c.Param("category"),
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": output.Category, "items": ToEntryDTOs(output.Entries)})
}

func (h *ProfileHandler) ToggleVisibility(c *gin.Context) {
	s, ok := GetSessionFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("session not found in context", nil))
		return
	}

	id, err := parseItemID(c)
	if err != nil {
		c.Error(err)
		return
	}

	output, err := h.profileUseCase.ExecuteToggleVisibility(c.Request.Context(), profileUC.ItemRefInput{
		Session:  s,
		Category: c.Param("category"),
		ID:       id,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToggleResponse{Found: output.Found, Visibility: string(output.Visibility)})
}

func (h *ProfileHandler) DeleteItem(c *gin.Context) {
	s, ok := GetSessionFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("session not found in context", nil))
		return
	}

	id, err := parseItemID(c)
	if err != nil {
		c.Error(err)
		return
	}

	output, err := h.profileUseCase.ExecuteDeleteItem(c.Request.Context(), profileUC.ItemRefInput{
		Session:  s,
		Category: c.Param("category"),
		ID:       id,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"found": output.Found})
}

func parseItemID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.NewInvalidInput("item id must be an integer", err)
	}
	return id, nil
}
