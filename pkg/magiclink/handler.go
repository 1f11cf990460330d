package magiclink

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"founderdesk/pkg/response"
)

type MagicLinkHandler struct {
	service MagicLinkService
}

func NewMagicLinkHandler(service MagicLinkService) *MagicLinkHandler {
	return &MagicLinkHandler{service: service}
}

func (h *MagicLinkHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/lookup-email", h.lookupEmail)
}

type lookupEmailRequest struct {
	Email string `json:"email" binding:"required"`
}

// @Summary      Look up an email and issue a magic link
// @Description  Resolves the email to a startup (directly or via a team member) and returns a fresh dashboard link
// @Tags         magiclink
// @Accept       json
// @Produce      json
// @Param        request body lookupEmailRequest true "Email to look up"
// @Success      200  {object}  response.APIResponse{data=Link} "Magic link generated"
// @Failure      400  {object}  response.APIResponse "Email is required"
// @Failure      404  {object}  response.APIResponse "Email or startup not found"
// @Failure      500  {object}  response.APIResponse "Internal server error"
// @Router       /lookup-email [post]
func (h *MagicLinkHandler) lookupEmail(c *gin.Context) {
	var req lookupEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.SendAPIResponse(c, http.StatusBadRequest, false, "Email is required", nil)
		return
	}

	link, err := h.service.LookupEmail(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailNotFound),
			errors.Is(err, ErrNoStartupAssociated),
			errors.Is(err, ErrStartupNotFound):
			response.SendAPIResponse(c, http.StatusNotFound, false, err.Error(), nil)
		default:
			response.SendAPIResponse(c, http.StatusInternalServerError, false, "Internal server error: "+err.Error(), nil)
		}
		return
	}

	response.SendAPIResponse(c, http.StatusOK, true, "Magic link generated successfully!", link)
}
