package dashboard

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"founderdesk/pkg/response"
	"founderdesk/pkg/roster"
	"founderdesk/pkg/token"
)

type DashboardHandler struct {
	service DashboardService
}

func NewDashboardHandler(service DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.Engine) {
	router.GET("/dashboard/:token", h.viewDashboard)
	router.POST("/update-profile", h.updateProfile)
}

// @Summary      Render the startup dashboard
// @Description  Verifies the magic-link token and renders the team roster as HTML
// @Tags         dashboard
// @Produce      html
// @Param        token  path  string  true  "Magic-link token"
// @Success      200  {string}  string  "Dashboard HTML"
// @Failure      401  {string}  string  "Invalid or expired link page"
// @Router       /dashboard/{token} [get]
func (h *DashboardHandler) viewDashboard(c *gin.Context) {
	d, err := h.service.View(c.Request.Context(), c.Param("token"))
	if err != nil {
		if errors.Is(err, token.ErrTokenInvalid) {
			response.SendErrorPage(c, http.StatusUnauthorized, "Invalid or Expired Link",
				"This link is invalid or has expired. Please request a new one.")
			return
		}
		response.SendErrorPage(c, http.StatusInternalServerError, "Something went wrong",
			"We could not load your dashboard. Please try again later.")
		return
	}

	page, err := Render(d)
	if err != nil {
		response.SendErrorPage(c, http.StatusInternalServerError, "Something went wrong",
			"We could not load your dashboard. Please try again later.")
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", page)
}

type updateProfileRequest struct {
	Token    string         `json:"token" binding:"required"`
	MemberID string         `json:"memberId" binding:"required"`
	Updates  map[string]any `json:"updates" binding:"required"`
}

// @Summary      Update a team member profile
// @Description  Writes allow-listed profile fields of a team member belonging to the token's startup
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        request body updateProfileRequest true "Token, member id and field updates"
// @Success      200  {object}  response.APIResponse "Profile updated"
// @Failure      400  {object}  response.APIResponse "Invalid request payload"
// @Failure      401  {object}  response.APIResponse "Invalid or expired token"
// @Failure      403  {object}  response.APIResponse "Not authorized for this member"
// @Failure      404  {object}  response.APIResponse "Member not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /update-profile [post]
func (h *DashboardHandler) updateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "invalid request payload", nil)
		return
	}

	err := h.service.UpdateProfile(c.Request.Context(), req.Token, req.MemberID, req.Updates)
	if err != nil {
		switch {
		case errors.Is(err, token.ErrTokenInvalid):
			response.SendAPIResponse(c, http.StatusUnauthorized, false, err.Error(), nil)
		case errors.Is(err, ErrNotAuthorized):
			response.SendAPIResponse(c, http.StatusForbidden, false, err.Error(), nil)
		case errors.Is(err, ErrNoEditableFields):
			response.SendAPIResponse(c, http.StatusBadRequest, false, err.Error(), nil)
		case errors.Is(err, roster.ErrMemberNotFound):
			response.SendAPIResponse(c, http.StatusNotFound, false, "team member not found", nil)
		default:
			response.SendAPIResponse(c, http.StatusInternalServerError, false, "Failed to update profile: "+err.Error(), nil)
		}
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "Profile updated successfully!", nil)
}
