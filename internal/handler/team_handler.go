package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teamforge/teamforge/internal/middleware"
	"github.com/teamforge/teamforge/internal/service"
)

// TeamHandler handles team-related HTTP requests. All of its routes sit
// behind the auth middleware, so a request identity is always present.
type TeamHandler struct {
	teamService TeamServiceInterface
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(teamService TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// Create handles POST /teams/create. The authenticated user becomes the
// creator and sole initial member.
func (h *TeamHandler) Create(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, MessageResponse{Message: "authentication required"})
		return
	}

	var req CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusInternalServerError, "ERR05: %s", err.Error())
		return
	}

	team, err := h.teamService.Create(c.Request.Context(), req.Name, user.UserName)
	if err != nil {
		c.String(http.StatusInternalServerError, "ERR05: %s", err.Error())
		return
	}

	c.JSON(http.StatusCreated, TeamResponse{
		Message: "Team created successfully",
		Team:    team,
	})
}

// List handles GET /teams, returning team names only. Unpaginated.
func (h *TeamHandler) List(c *gin.Context) {
	names, err := h.teamService.ListNames(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "ERR06: %s", err.Error())
		return
	}

	c.JSON(http.StatusOK, TeamListResponse{
		Message: "Teams retrieved successfully",
		Teams:   names,
	})
}

// RemoveMember handles DELETE /teams/:teamName/remove.
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	team, err := h.teamService.RemoveMember(c.Request.Context(), c.Param("teamName"), req.UserName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			NotFound(c, err.Error())
		case errors.Is(err, service.ErrNotAMember):
			BadRequest(c, err.Error())
		default:
			c.String(http.StatusInternalServerError, "ERR08: %s", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, TeamResponse{
		Message: "Member removed successfully",
		Team:    team,
	})
}

// AddMember handles POST /teams/:teamName/addMember.
func (h *TeamHandler) AddMember(c *gin.Context) {
	var req MemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "invalid request body")
		return
	}

	team, err := h.teamService.AddMember(c.Request.Context(), c.Param("teamName"), req.UserName)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeamNotFound):
			NotFound(c, err.Error())
		case errors.Is(err, service.ErrUserNotRegistered), errors.Is(err, service.ErrAlreadyMember):
			BadRequest(c, err.Error())
		default:
			c.String(http.StatusInternalServerError, "ERR09: %s", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, TeamResponse{
		Message: "Member added successfully",
		Team:    team,
	})
}

// CheckMembership handles GET /:teamName/check-membership for the
// authenticated user.
func (h *TeamHandler) CheckMembership(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, MessageResponse{Message: "authentication required"})
		return
	}

	isMember, err := h.teamService.IsMember(c.Request.Context(), c.Param("teamName"), user.UserName)
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			NotFound(c, err.Error())
			return
		}
		c.JSON(http.StatusInternalServerError, ServerErrorResponse{
			Message: "Server error",
			Error:   err.Error(),
		})
		return
	}

	if isMember {
		c.JSON(http.StatusOK, MessageResponse{Message: "User is a member of the team"})
		return
	}
	c.JSON(http.StatusForbidden, MessageResponse{Message: "User is not a member of the team"})
}

// GetTeam handles GET /team/:teamname, expanding members to
// {userName, emailId} records.
func (h *TeamHandler) GetTeam(c *gin.Context) {
	detail, err := h.teamService.Detail(c.Request.Context(), c.Param("teamname"))
	if err != nil {
		if errors.Is(err, service.ErrTeamNotFound) {
			NotFound(c, err.Error())
			return
		}
		c.JSON(http.StatusInternalServerError, ServerErrorResponse{
			Message: "Error fetching team data",
			Error:   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, detail)
}
