package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sitebuilder-backend/shared/database/models"
	utils "sitebuilder-backend/shared/utils/auth"
)

// RefreshCookieName is the HTTP-only cookie carrying the refresh token.
// The token is never returned in a response body.
const RefreshCookieName = "refreshToken"

type AuthHandler struct {
	db     *gorm.DB
	mailer utils.Mailer
}

func NewAuthHandler(db *gorm.DB, mailer utils.Mailer) *AuthHandler {
	return &AuthHandler{db: db, mailer: mailer}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Jane Doe"`
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"`
	Password string `json:"password" binding:"required" example:"securepassword123"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	maxAge := int(utils.GetRefreshExpireDuration().Seconds())
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(RefreshCookieName, token, maxAge, "/", "", true, true)
}

func (h *AuthHandler) issueTokens(c *gin.Context, user *models.User) (string, error) {
	accessToken, err := utils.GenerateAccessJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return "", err
	}

	refreshToken, err := utils.GenerateRefreshJWT(user.ID, user.Email, user.Role)
	if err != nil {
		return "", err
	}

	h.setRefreshCookie(c, refreshToken)
	return accessToken, nil
}

// POST /api/auth/register-user
// @Summary Register a new user
// @Description Create a user account and send an email verification link
// @Tags auth
// @Accept json
// @Produce json
// @Param register body RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{} "User created"
// @Failure 400 {object} map[string]string "Invalid request or email taken"
// @Failure 429 {object} map[string]string "Too many registration attempts"
// @Router /auth/register-user [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidatePassword(req.Password); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.User
	if err := h.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not process password"})
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
		Role:     models.RoleUser,
	}

	if err := h.db.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create user"})
		return
	}

	magicToken, err := utils.GenerateEmailVerificationJWT(user.ID, user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate verification token"})
		return
	}

	verificationSent := true
	if err := h.mailer.SendVerificationEmail(user.Email, user.Name, magicToken); err != nil {
		verificationSent = false
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"data": gin.H{
			"user":                            user,
			"has_verification_email_been_sent": verificationSent,
		},
	})
}

// POST /api/auth/login
// @Summary User login
// @Description Authenticate a user, return an access token and set the refresh cookie
// @Tags auth
// @Accept json
// @Produce json
// @Param login body LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{} "Successful login"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 404 {object} map[string]string "User not found"
// @Failure 429 {object} map[string]string "Too many login attempts"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := h.db.Where("email = ? AND is_active = ?", req.Email, true).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	accessToken, err := h.issueTokens(c, &user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"access_token": accessToken,
			"user":         user,
		},
	})
}

// GET /api/auth/verify-email
// @Summary Verify email via magic link
// @Description Validate the emailed verification token and mark the user verified
// @Tags auth
// @Produce json
// @Param token query string true "Verification token"
// @Success 200 {object} map[string]interface{} "Email verified"
// @Failure 400 {object} map[string]string "Missing or invalid token"
// @Failure 404 {object} map[string]string "User not found"
// @Router /auth/verify-email [get]
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	claims, err := utils.ValidateEmailVerificationJWT(token)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid or expired token"})
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid token"})
		return
	}

	var user models.User
	if err := h.db.Where("id = ? AND email = ?", userID, claims.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// Idempotent: a second visit of the same link succeeds without a write
	if !user.IsVerified {
		if err := h.db.Model(&user).Update("is_verified", true).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not verify user"})
			return
		}
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

// POST /api/auth/refresh-token
// @Summary Refresh access token
// @Description Exchange the refresh cookie for a new access token, rotating the cookie
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{} "New access token"
// @Failure 401 {object} map[string]string "Missing or invalid refresh token"
// @Failure 404 {object} map[string]string "User not found or inactive"
// @Router /auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie(RefreshCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token is required"})
		return
	}

	claims, err := utils.ValidateRefreshJWT(refreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		return
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid refresh token"})
		return
	}

	var user models.User
	err = h.db.
		Where("id = ? AND email = ? AND is_active = ? AND is_verified = ?", userID, claims.Email, true, true).
		First(&user).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found or inactive"})
		return
	}

	accessToken, err := h.issueTokens(c, &user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token refreshed successfully",
		"data": gin.H{
			"access_token": accessToken,
		},
	})
}

// POST /api/auth/change-password
// @Summary Change password
// @Description Update the authenticated user's password after checking the current one
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param change body ChangePasswordRequest true "Password change data"
// @Success 200 {object} map[string]interface{} "Password changed"
// @Failure 401 {object} map[string]string "Wrong current password"
// @Router /auth/change-password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := utils.ValidatePassword(req.NewPassword); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := c.MustGet("userID").(uuid.UUID)

	var user models.User
	if err := h.db.Where("id = ?", userID).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if !utils.CheckPasswordHash(req.CurrentPassword, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
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

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}
