package analyses

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"resume-match/internal/match"
	"resume-match/internal/shared/server/middleware"
	"resume-match/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the analysis service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.analyzeText)
	rg.POST("/documents/:id/analyses", h.analyzeDocument)
}

type analyzeTextRequest struct {
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) analyzeText(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)

	var req analyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, CodeValidation, "invalid request body", nil)
		return
	}

	report, err := h.Svc.AnalyzeText(c.Request.Context(), userID, req.ResumeText, req.JobDescription)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Set("analysisId", report.AnalysisID)
	respond.JSON(c, http.StatusOK, report)
}

type analyzeDocumentRequest struct {
	JobDescription string `json:"jobDescription"`
}

func (h *Handler) analyzeDocument(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	documentID := strings.TrimSpace(c.Param("id"))
	if documentID == "" {
		respond.Error(c, http.StatusBadRequest, CodeValidation, "document id is required", nil)
		return
	}

	var req analyzeDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, CodeValidation, "invalid request body", nil)
		return
	}

	report, err := h.Svc.AnalyzeDocument(c.Request.Context(), userID, documentID, req.JobDescription)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Set("analysisId", report.AnalysisID)
	c.Set("documentId", documentID)
	respond.JSON(c, http.StatusOK, report)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	var verr *match.ValidationError
	switch {
	case errors.As(err, &verr):
		respond.Error(c, http.StatusUnprocessableEntity, CodeValidation, verr.Error(), gin.H{"field": verr.Field})
	case errors.Is(err, ErrDocumentNotFound):
		respond.Error(c, http.StatusNotFound, CodeNotFound, "document not found", nil)
	case errors.Is(err, ErrDocumentNotReadable):
		respond.Error(c, http.StatusUnprocessableEntity, CodeDocumentNotReadable, "document text could not be extracted", nil)
	default:
		respond.Error(c, http.StatusInternalServerError, CodeInternal, "analysis failed", nil)
	}
}
