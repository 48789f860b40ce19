package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/mechdata/hvac-dataset/internal/http/middleware"
	"github.com/mechdata/hvac-dataset/internal/service"
)

type Handler struct {
	datasets *service.DatasetService
	log      zerolog.Logger
}

func NewHandler(datasets *service.DatasetService, log zerolog.Logger) *Handler {
	return &Handler{datasets: datasets, log: log}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(authMiddleware)
	protected.POST("/datasets/export", h.exportDataset)
}

type exportDatasetRequest struct {
	Seed   int64  `json:"seed"`
	AsOf   string `json:"as_of"`
	Format string `json:"format" binding:"required"`
}

func (h *Handler) exportDataset(c *gin.Context) {
	if _, ok := middleware.MustPrincipal(c); !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return
	}

	var req exportDatasetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asOf := time.Now().UTC().Truncate(24 * time.Hour)
	if strings.TrimSpace(req.AsOf) != "" {
		parsed, err := parseDate(req.AsOf)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid as_of"})
			return
		}
		asOf = parsed
	}

	seed := req.Seed
	if seed == 0 {
		seed = 42
	}

	result, err := h.datasets.Generate(c.Request.Context(), service.GenerateInput{
		Seed:   seed,
		AsOf:   asOf,
		Format: strings.ToLower(strings.TrimSpace(req.Format)),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, result.ContentType, result.Content)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidInput), errors.Is(err, service.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Msg("dataset export failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(value))
}
