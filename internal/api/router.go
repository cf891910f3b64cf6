package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/kanban/internal/services/board"
)

// RouterOptions configures NewRouter
type RouterOptions struct {
	AllowedOrigins []string
	Logger         *slog.Logger
	Metrics        *Metrics // nil disables /metrics and request metrics
}

// NewRouter builds the gin engine with middleware and every route
func NewRouter(svc board.Service, opts RouterOptions) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(logger))
	r.Use(CORS(opts.AllowedOrigins))
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware())
		r.GET("/metrics", opts.Metrics.Handler())
	}

	h := NewHandler(svc)
	r.GET("/health", h.Health)

	boards := r.Group("/boards")
	{
		boards.GET("", h.ListBoards)
		boards.POST("", h.CreateBoard)
		boards.GET("/:board_id", h.GetBoard)
		boards.GET("/:board_id/columns", h.ListColumns)
		boards.GET("/:board_id/cards", h.ListCards)
	}

	cards := r.Group("/cards")
	{
		cards.POST("", h.CreateCard)
		cards.GET("/:card_id", h.GetCard)
		cards.POST("/:card_id/move", h.MoveCard)
	}

	return r
}
