package http

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	documentUC "github.com/khoahotran/professional-ladder/internal/application/usecase/document"
	"github.com/khoahotran/professional-ladder/pkg/apperror"
	"github.com/khoahotran/professional-ladder/pkg/logger"
)

type DocumentHandler struct {
	documentUseCase *documentUC.DocumentUseCase
	logger          logger.Logger
}

func NewDocumentHandler(uc *documentUC.DocumentUseCase, log logger.Logger) *DocumentHandler {
	return &DocumentHandler{
		documentUseCase: uc,
		logger:          log,
	}
}

func (h *DocumentHandler) Resume(c *gin.Context) {
	s, ok := GetSessionFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("session not found in context", nil))
		return
	}

	output, err := h.documentUseCase.ExecuteResume(c.Request.Context(), documentUC.ResumeInput{Session: s})
	if err != nil {
		c.Error(err)
		return
	}

	h.download(c, output)
}

func (h *DocumentHandler) CoverLetter(c *gin.Context) {
	s, ok := GetSessionFromGinContext(c)
	if !ok {
		c.Error(apperror.NewUnauthorized("session not found in context", nil))
		return
	}

	var req CoverLetterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for cover letter", err))
		return
	}

	output, err := h.documentUseCase.ExecuteCoverLetter(c.Request.Context(), documentUC.CoverLetterInput{
		Session:     s,
		JobTitle:    req.JobTitle,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.download(c, output)
}

func (h *DocumentHandler) download(c *gin.Context, doc *documentUC.Output) {
	c.Header("Content-Type", doc.ContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Status(http.StatusOK)

	if _, err := c.Writer.WriteString(doc.Content); err != nil {
		h.logger.Error("Failed to write document to response", err)
	}
}
