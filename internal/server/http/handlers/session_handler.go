package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fourline/orderfront/internal/server/http/dto"
)

// SessionHandler binds a customer email to the view session.
type SessionHandler struct {
	facade SessionFacade
}

// NewSessionHandler creates SessionHandler instance.
func NewSessionHandler(facade SessionFacade) *SessionHandler {
	return &SessionHandler{facade: facade}
}

// Start handles POST /view/session.
func (h *SessionHandler) Start(c *gin.Context) {
	var req dto.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "malformed request body"})
		return
	}

	email, err := h.facade.StartSession(c.Request.Context(), CurrentViewID(c), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SessionResponse{Email: email})
}
