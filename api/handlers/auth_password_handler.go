package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sitebuilder-backend/shared/database/models"
	utils "sitebuilder-backend/shared/utils/auth"
)

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"jane@example.com"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

// POST /api/auth/forgot-password
// @Summary Request password reset
// @Description Email a 15-minute password reset link to an active user
// @Tags auth
// @Accept json
// @Produce json
// @Param forgot body ForgotPasswordRequest true "Account email"
// @Success 200 {object} map[string]interface{} "Reset link sent"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 429 {object} map[string]string "Too many reset attempts"
// @Router /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.db.Where("email = ? AND is_active = ?", req.Email, true).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	resetToken, err := utils.GeneratePasswordResetJWT(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate reset token"})
		return
	}

	if err := h.mailer.SendPasswordResetEmail(user.Email, user.Name, resetToken); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not send reset email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset link has been sent"})
}

// POST /api/auth/reset-password
// @Summary Reset password
// @Description Validate a reset token (including its purpose claim) and set a new password
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body ResetPasswordRequest true "Token and new password"
// @Success 200 {object} map[string]interface{} "Password reset"
// @Failure 401 {object} map[string]string "Invalid or expired token"
// @Failure 404 {object} map[string]string "User not found"
// @Router /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidatePassword(req.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	claims, err := utils.ValidatePasswordResetJWT(req.Token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	var user models.User
	err = h.db.
		Where("id = ? AND email = ? AND is_active = ?", userID, claims.Email, true).
		First(&user).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not process password"})
		return
	}

	updates := map[string]interface{}{
		"password":   hashedPassword,
		"updated_at": time.Now(),
	}
	if err := h.db.Model(&user).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password reset successfully. Please login with your new password."})
}
