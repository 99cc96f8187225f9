package handlers

import (
	"net/http"

	"venuely/models"
	"venuely/services/user"
	"venuely/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles dashboard sign-in and session management.
type AuthHandler struct {
	Service user.AuthService
}

func NewAuthHandler(svc user.AuthService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// LoginHandler exchanges admin credentials for a JWT.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid login payload: "+err.Error())
		return
	}

	resp, err := h.Service.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.GetLogger().Info("admin signed in", zap.String("email", req.Email))
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler revokes the presented token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	token, ok := c.Get("token")
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "No active session")
		return
	}

	if err := h.Service.Logout(c.Request.Context(), token.(string)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// MeHandler returns the signed-in admin account.
func (h *AuthHandler) MeHandler(c *gin.Context) {
	userID, ok := c.Get("userID")
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "No active session")
		return
	}

	u, err := h.Service.GetByID(userID.(string))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// UpdateFCMTokenHandler stores a device token for admin push notifications.
func (h *AuthHandler) UpdateFCMTokenHandler(c *gin.Context) {
	var req struct {
		FCMToken string `json:"fcmToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payload: "+err.Error())
		return
	}

	userID, ok := c.Get("userID")
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "No active session")
		return
	}

	if err := h.Service.UpdateFCMToken(userID.(string), req.FCMToken); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Device token updated"})
}
