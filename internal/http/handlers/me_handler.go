package handlers

import (
	"net/http"

	"contactform-server/internal/services"
	"contactform-server/internal/utils"
	"github.com/gin-gonic/gin"
)

type MeHandler struct {
	auth *services.AuthService
}

func NewMeHandler(auth *services.AuthService) *MeHandler {
	return &MeHandler{auth: auth}
}

// GetMe resolves the authenticated caller's profile. The token may outlive
// the account (state resets on restart), hence the 404 path.
func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.GetString("user_id")
	if userID == "" {
		utils.RespondError(c, utils.NewAppError(http.StatusUnauthorized, "No token provided"))
		return
	}

	profile, err := h.auth.Me(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    profile,
	})
}
