package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/kanban/internal/services/board"
)

// Handler serves the board endpoints
type Handler struct {
	svc board.Service
}

// NewHandler creates a handler backed by the board service
func NewHandler(svc board.Service) *Handler {
	return &Handler{svc: svc}
}

type createBoardRequest struct {
	Name string `json:"name" binding:"required"`
}

type createCardRequest struct {
	BoardID     int     `json:"board_id" binding:"required"`
	ColumnID    int     `json:"column_id" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
}

type moveCardRequest struct {
	BoardID      int `json:"board_id" binding:"required"`
	FromColumnID int `json:"from_column_id" binding:"required"`
	ToColumnID   int `json:"to_column_id" binding:"required"`
	// pointer so that 0 passes the required check
	NewPosition *int `json:"new_position" binding:"required"`
}

// idParam parses a positive integer path parameter
func idParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /boards
func (h *Handler) ListBoards(c *gin.Context) {
	boards, err := h.svc.ListBoards(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, boards)
}

// POST /boards
func (h *Handler) CreateBoard(c *gin.Context) {
	var body createBoardRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err.Error())
		return
	}

	b, err := h.svc.CreateBoard(c.Request.Context(), body.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// GET /boards/:board_id
func (h *Handler) GetBoard(c *gin.Context) {
	boardID, ok := idParam(c, "board_id")
	if !ok {
		return
	}

	board, err := h.svc.GetBoard(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, board)
}

// GET /boards/:board_id/columns
func (h *Handler) ListColumns(c *gin.Context) {
	boardID, ok := idParam(c, "board_id")
	if !ok {
		return
	}

	columns, err := h.svc.ListColumns(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, columns)
}

// GET /boards/:board_id/cards
func (h *Handler) ListCards(c *gin.Context) {
	boardID, ok := idParam(c, "board_id")
	if !ok {
		return
	}

	cards, err := h.svc.ListCards(c.Request.Context(), boardID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// GET /cards/:card_id
func (h *Handler) GetCard(c *gin.Context) {
	cardID, ok := idParam(c, "card_id")
	if !ok {
		return
	}

	card, err := h.svc.GetCard(c.Request.Context(), cardID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// POST /cards
func (h *Handler) CreateCard(c *gin.Context) {
	var body createCardRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err.Error())
		return
	}

	card, err := h.svc.CreateCard(c.Request.Context(), board.CreateCardRequest{
		BoardID:     body.BoardID,
		ColumnID:    body.ColumnID,
		Title:       body.Title,
		Description: body.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

// POST /cards/:card_id/move
func (h *Handler) MoveCard(c *gin.Context) {
	cardID, ok := idParam(c, "card_id")
	if !ok {
		return
	}

	var body moveCardRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err.Error())
		return
	}

	card, err := h.svc.MoveCard(c.Request.Context(), board.MoveCardRequest{
		CardID:       cardID,
		BoardID:      body.BoardID,
		FromColumnID: body.FromColumnID,
		ToColumnID:   body.ToColumnID,
		NewPosition:  *body.NewPosition,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}
