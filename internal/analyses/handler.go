package analyses

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/just-manoj/PathoAi-API/internal/shared/server/respond"
	"github.com/just-manoj/PathoAi-API/internal/shared/storage/mongodb"
	"github.com/just-manoj/PathoAi-API/internal/usage"
	"github.com/just-manoj/PathoAi-API/internal/vision"
)

// Handler exposes the analysis, feedback and history endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches analysis routes to the router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/analyze", h.analyze)
	r.POST("/feedback", h.submitFeedback)
	r.GET("/history", h.history)
}

func (h *Handler) analyze(c *gin.Context) {
	file, err := c.FormFile("slideImage")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "slideImage: Field required")
		return
	}
	organ := c.PostForm("organ")
	if organ == "" {
		respond.Error(c, http.StatusBadRequest, "organ: Field required")
		return
	}
	clinicalContext := c.PostForm("clinicalContext")
	if clinicalContext == "" {
		respond.Error(c, http.StatusBadRequest, "clinicalContext: Field required")
		return
	}
	rawTier := c.PostForm("model")
	if rawTier == "" {
		respond.Error(c, http.StatusBadRequest, "model: Field required")
		return
	}
	tier, ok := vision.ParseTier(rawTier)
	if !ok {
		respond.Error(c, http.StatusBadRequest, "model: must be 'JR' or 'SR'")
		return
	}

	opened, err := file.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "slideImage: could not read file")
		return
	}
	defer opened.Close()
	image, err := io.ReadAll(opened)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "slideImage: could not read file")
		return
	}

	analysis, err := h.Svc.Submit(c.Request.Context(), SubmitInput{
		Image:           image,
		Organ:           organ,
		ClinicalContext: clinicalContext,
		Tier:            tier,
	})
	if err != nil {
		switch {
		case errors.Is(err, usage.ErrLimitReached), errors.Is(err, usage.ErrNoRecordForToday):
			respond.Error(c, http.StatusTooManyRequests, fmt.Sprintf("%s model usage limit exceeded for today", tier))
		case errors.Is(err, mongodb.ErrUninitialized):
			respond.Error(c, http.StatusInternalServerError, "Database client not initialized")
		default:
			respond.Error(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	respond.OK(c, "Analysis stored successfully", analysis)
}

type feedbackRequest struct {
	Rating int    `json:"rating"`
	Notes  string `json:"notes"`
}

func (h *Handler) submitFeedback(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		respond.Error(c, http.StatusBadRequest, "id: Field required")
		return
	}

	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "Invalid feedback body")
		return
	}

	result, err := h.Svc.SubmitFeedback(c.Request.Context(), id, Feedback{Rating: req.Rating, Notes: req.Notes})
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			respond.Error(c, http.StatusBadRequest, "Invalid analysis ID format")
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "Analysis not found")
		case errors.Is(err, mongodb.ErrUninitialized):
			respond.Error(c, http.StatusInternalServerError, "Database client not initialized")
		default:
			respond.Error(c, http.StatusInternalServerError, "Database operation failed: "+err.Error())
		}
		return
	}

	respond.OK(c, "Feedback submitted successfully", result)
}

func (h *Handler) history(c *gin.Context) {
	items, err := h.Svc.History(c.Request.Context())
	if err != nil {
		if errors.Is(err, mongodb.ErrUninitialized) {
			respond.Error(c, http.StatusInternalServerError, "Database client not initialized")
			return
		}
		respond.Error(c, http.StatusInternalServerError, err.Error())
		return
	}
	respond.OK(c, "History retrieved successfully", items)
}
