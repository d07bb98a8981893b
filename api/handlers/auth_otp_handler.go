package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sitebuilder-backend/shared/config"
	"sitebuilder-backend/shared/database/models"
	"sitebuilder-backend/shared/database/models/auth"
	utils "sitebuilder-backend/shared/utils/auth"
)

type SendOTPRequest struct {
	Email string `json:"email" binding:"required,email" example:"jane@example.com"`
}

type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email" example:"jane@example.com"`
	Code  string `json:"code" binding:"required,len=6" example:"482913"`
}

// POST /api/auth/send-otp
// @Summary Send verification OTP
// @Description Issue a 6-digit email verification code for an unverified user
// @Tags auth
// @Accept json
// @Produce json
// @Param send body SendOTPRequest true "Target email"
// @Success 200 {object} map[string]interface{} "OTP sent"
// @Failure 404 {object} map[string]string "User not found or already verified"
// @Failure 429 {object} map[string]string "Cooldown active"
// @Router /auth/send-otp [post]
func (h *AuthHandler) SendOTP(c *gin.Context) {
	var req SendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cfg := config.GetConfig()

	var user models.User
	err := h.db.Where("email = ? AND is_verified = ?", req.Email, false).First(&user).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found or already verified"})
		return
	}

	// Cooldown: refuse while a code issued in the last minute exists
	cooldown := time.Duration(cfg.GetOTPCooldownSeconds()) * time.Second
	var recentCount int64
	h.db.Model(&auth.EmailVerification{}).
		Where("email = ? AND created_at > ?", req.Email, time.Now().Add(-cooldown)).
		Count(&recentCount)
	if recentCount > 0 {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Please wait 1 minute before requesting a new OTP"})
		return
	}

	// Revoke old unused codes before issuing a new one
	if err := h.db.
		Where("user_id = ? AND used = ?", user.ID, false).
		Delete(&auth.EmailVerification{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not issue OTP"})
		return
	}

	code, err := utils.GenerateNumericCode(6)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate OTP"})
		return
	}

	hashedCode, err := utils.HashPassword(code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not issue OTP"})
		return
	}

	verification := auth.EmailVerification{
		UserID:    user.ID,
		Email:     req.Email,
		Code:      hashedCode,
		ExpiresAt: time.Now().Add(time.Duration(cfg.GetOTPExpireMinutes()) * time.Minute),
	}

	if err := h.db.Create(&verification).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not issue OTP"})
		return
	}

	if err := h.mailer.SendOTPEmail(user.Email, user.Name, code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not send OTP email"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "OTP sent to email"})
}

// POST /api/auth/verify-otp
// @Summary Verify OTP code
// @Description Check a 6-digit code, mark the user verified and issue tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param verify body VerifyOTPRequest true "Email and code"
// @Success 200 {object} map[string]interface{} "Verified, tokens issued"
// @Failure 400 {object} map[string]string "Invalid, expired or incorrect code"
// @Failure 429 {object} map[string]string "Attempt limit reached"
// @Router /auth/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req VerifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	maxAttempts := config.GetConfig().GetOTPMaxAttempts()

	var record auth.EmailVerification
	err := h.db.
		Where("email = ? AND used = ? AND expires_at > ?", req.Email, false, time.Now()).
		First(&record).Error
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired code"})
		return
	}

	// Fail fast when the record is already exhausted
	if record.Attempts >= maxAttempts {
		h.db.Model(&record).Update("used", true)
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many failed attempts. Request a new OTP."})
		return
	}

	if !utils.CheckPasswordHash(req.Code, record.Code) {
		// Atomic increment so parallel wrong guesses each count
		err := h.db.Model(&auth.EmailVerification{}).
			Where("id = ?", record.ID).
			Update("attempts", gorm.Expr("attempts + 1")).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not verify code"})
			return
		}

		var updated auth.EmailVerification
		if err := h.db.Where("id = ?", record.ID).First(&updated).Error; err == nil && updated.Attempts >= maxAttempts {
			h.db.Model(&updated).Update("used", true)
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many failed attempts. Request a new OTP."})
			return
		}

		c.JSON(http.StatusBadRequest, gin.H{"error": "Incorrect code"})
		return
	}

	// Compare-and-set on used so a concurrent verify cannot redeem the
	// same code twice
	result := h.db.Model(&auth.EmailVerification{}).
		Where("id = ? AND used = ?", record.ID, false).
		Update("used", true)
	if result.Error != nil || result.RowsAffected == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired code"})
		return
	}

	var user models.User
	if err := h.db.Where("id = ?", record.UserID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if !user.IsVerified {
		if err := h.db.Model(&user).Update("is_verified", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not verify user"})
			return
		}
		user.IsVerified = true
	}

	accessToken, err := h.issueTokens(c, &user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Email verified successfully",
		"data": gin.H{
			"access_token": accessToken,
		},
	})
}
