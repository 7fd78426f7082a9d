package analyses

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"placement-backend/internal/extract"
	"placement-backend/internal/shared/server/respond"
	"placement-backend/internal/shared/telemetry"
)

// maxUploadBytes bounds uploaded JD documents.
const maxUploadBytes = 10 << 20

// Handler wires HTTP handlers to the analyses service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/analyses", h.createAnalysis)
	rg.POST("/analyses/upload", h.createAnalysisFromUpload)
	rg.GET("/analyses", h.listAnalyses)
	rg.GET("/analyses/:id", h.getAnalysis)
	rg.DELETE("/analyses", h.clearHistory)
}

type createAnalysisRequest struct {
	JDText  string `json:"jdText"`
	Company string `json:"company"`
	Role    string `json:"role"`
}

func (h *Handler) createAnalysis(c *gin.Context) {
	var req createAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	analysis, err := h.Svc.Analyze(c.Request.Context(), req.JDText, req.Company, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", "jdText must not be empty", []map[string]string{
				{"field": "jdText", "issue": "required"},
			})
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze job description", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, analysis)
}

func (h *Handler) createAnalysisFromUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required", nil)
		return
	}
	if fileHeader.Size > maxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "file exceeds the upload limit", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file could not be read", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file could not be read", nil)
		return
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	text, err := extract.TextFromBytes(c.Request.Context(), data, mimeType, fileHeader.Filename)
	if err != nil {
		telemetry.Error("upload.extract_failed", map[string]any{
			"file_name": fileHeader.Filename,
			"mime_type": mimeType,
			"error":     err.Error(),
		})
		respond.Error(c, http.StatusUnprocessableEntity, "extract_failed", "could not extract text from the uploaded file", nil)
		return
	}

	analysis, err := h.Svc.Analyze(c.Request.Context(), text, c.PostForm("company"), c.PostForm("role"))
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyInput):
			respond.Error(c, http.StatusUnprocessableEntity, "extract_failed", "the uploaded file contains no text", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze job description", nil)
		}
		return
	}

	respond.JSON(c, http.StatusCreated, analysis)
}

func (h *Handler) listAnalyses(c *gin.Context) {
	analyses, err := h.Svc.List(c.Request.Context())
	if err != nil {
		// History is best-effort: an unreadable store degrades to empty.
		telemetry.Error("history.list_failed", map[string]any{"error": err.Error()})
		respond.JSON(c, http.StatusOK, []Analysis{})
		return
	}
	respond.JSON(c, http.StatusOK, analyses)
}

func (h *Handler) getAnalysis(c *gin.Context) {
	analysisID := c.Param("id")
	if analysisID == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "analysis id is required", nil)
		return
	}

	analysis, err := h.Svc.Get(c.Request.Context(), analysisID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "analysis not found", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch analysis", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, analysis)
}

func (h *Handler) clearHistory(c *gin.Context) {
	if err := h.Svc.ClearHistory(c.Request.Context()); err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to clear history", nil)
		return
	}
	respond.JSON(c, http.StatusOK, gin.H{"cleared": true})
}
