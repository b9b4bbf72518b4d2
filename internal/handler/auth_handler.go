package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teamforge/teamforge/internal/service"
	"github.com/teamforge/teamforge/internal/token"
)

// AuthHandler handles signup and login requests.
type AuthHandler struct {
	authService AuthServiceInterface
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService AuthServiceInterface) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Signup handles POST /signup.
// Any failure, validation or duplicate field alike, is a 400 with the
// "ERR04 : " text prefix.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "ERR04 : invalid request body")
		return
	}

	err := h.authService.Signup(c.Request.Context(), service.SignupInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		UserName:  req.UserName,
		EmailID:   req.EmailID,
		Password:  req.Password,
	})
	if err != nil {
		c.String(http.StatusBadRequest, "ERR04 : %s", err.Error())
		return
	}

	c.String(http.StatusOK, "Data saved successfully")
}

// Login handles POST /login. On success the token is returned in the
// body and set as an HttpOnly cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "ERR04 : %s", service.ErrInvalidCredential.Error())
		return
	}

	tok, err := h.authService.Login(c.Request.Context(), req.UserName, req.Password)
	if err != nil {
		c.String(http.StatusBadRequest, "ERR04 : %s", err.Error())
		return
	}

	c.SetCookie("token", tok, int(token.TTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, LoginResponse{Token: tok})
}
