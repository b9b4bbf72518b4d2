package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teamforge/teamforge/internal/domain"
)

// MessageResponse is the plain {message} body used for most errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// ServerErrorResponse carries a message plus the underlying error text.
type ServerErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// LoginResponse wraps the issued session token.
type LoginResponse struct {
	Token string `json:"token"`
}

// TeamResponse wraps a team mutation result.
type TeamResponse struct {
	Message string       `json:"message"`
	Team    *domain.Team `json:"team"`
}

// TeamListResponse wraps the team listing.
type TeamListResponse struct {
	Message string            `json:"message"`
	Teams   []domain.TeamName `json:"teams"`
}

// NotFound sends a 404 with a {message} body.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, MessageResponse{Message: message})
}

// BadRequest sends a 400 with a {message} body.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, MessageResponse{Message: message})
}
