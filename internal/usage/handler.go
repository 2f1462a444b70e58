package usage

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/just-manoj/PathoAi-API/internal/shared/server/respond"
)

// Handler exposes usage-limit endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches usage routes to the router.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/modelLimit", h.list)
}

func (h *Handler) list(c *gin.Context) {
	records, err := h.Svc.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "Database query failed: "+err.Error())
		return
	}
	respond.OK(c, "Usage limits retrieved successfully", records)
}
