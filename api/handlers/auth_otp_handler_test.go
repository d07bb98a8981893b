package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sitebuilder-backend/shared/database/models"
	"sitebuilder-backend/shared/database/models/auth"
	"sitebuilder-backend/shared/database/testutil"
	utils "sitebuilder-backend/shared/utils/auth"
)

// fakeMailer records outgoing mail instead of talking to SMTP
type fakeMailer struct {
	verificationTokens []string
	otpCodes           []string
	resetTokens        []string
	failNext           bool
}

func (m *fakeMailer) SendVerificationEmail(email, name, token string) error {
	if m.failNext {
		m.failNext = false
		return fmt.Errorf("smtp down")
	}
	m.verificationTokens = append(m.verificationTokens, token)
	return nil
}

func (m *fakeMailer) SendOTPEmail(email, name, code string) error {
	if m.failNext {
		m.failNext = false
		return fmt.Errorf("smtp down")
	}
	m.otpCodes = append(m.otpCodes, code)
	return nil
}

func (m *fakeMailer) SendPasswordResetEmail(email, name, token string) error {
	if m.failNext {
		m.failNext = false
		return fmt.Errorf("smtp down")
	}
	m.resetTokens = append(m.resetTokens, token)
	return nil
}

func newAuthTestRouter(t *testing.T) (*gin.Engine, *gorm.DB, *fakeMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewTestDB(t)
	mailer := &fakeMailer{}
	handler := NewAuthHandler(db, mailer)

	router := gin.New()
	router.POST("/api/auth/register-user", handler.Register)
	router.POST("/api/auth/login", handler.Login)
	router.POST("/api/auth/send-otp", handler.SendOTP)
	router.POST("/api/auth/verify-otp", handler.VerifyOTP)
	router.POST("/api/auth/refresh-token", handler.RefreshToken)
	router.POST("/api/auth/forgot-password", handler.ForgotPassword)
	router.POST("/api/auth/reset-password", handler.ResetPassword)

	return router, db, mailer
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func seedUnverifiedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()

	hashed, err := utils.HashPassword("securepassword123")
	require.NoError(t, err)

	user := models.User{
		ID:       uuid.New(),
		Name:     "Jane Doe",
		Email:    email,
		Password: hashed,
		Role:     models.RoleUser,
		IsActive: true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func TestSendOTPIssuesCode(t *testing.T) {
	router, db, mailer := newAuthTestRouter(t)
	user := seedUnverifiedUser(t, db, "jane@example.com")

	w := postJSON(t, router, "/api/auth/send-otp", gin.H{"email": user.Email})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, mailer.otpCodes, 1)
	assert.Len(t, mailer.otpCodes[0], 6)

	// The stored code is hashed, never plaintext
	var record auth.EmailVerification
	require.NoError(t, db.Where("email = ?", user.Email).First(&record).Error)
	assert.NotEqual(t, mailer.otpCodes[0], record.Code)
	assert.True(t, utils.CheckPasswordHash(mailer.otpCodes[0], record.Code))
	assert.True(t, record.ExpiresAt.After(time.Now()))
}

func TestSendOTPCooldown(t *testing.T) {
	router, db, mailer := newAuthTestRouter(t)
	user := seedUnverifiedUser(t, db, "jane@example.com")

	w := postJSON(t, router, "/api/auth/send-otp", gin.H{"email": user.Email})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, router, "/api/auth/send-otp", gin.H{"email": user.Email})
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Len(t, mailer.otpCodes, 1)
}

func TestSendOTPRejectsVerifiedUser(t *testing.T) {
	router, db, _ := newAuthTestRouter(t)
	user := seedUnverifiedUser(t, db, "jane@example.com")
	require.NoError(t, db.Model(&user).Update("is_verified", true).Error)

	w := postJSON(t, router, "/api/auth/send-otp", gin.H{"email": user.Email})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSendOTPReplacesUnusedCode(t *testing.T) {
	router, db, mailer := newAuthTestRouter(t)
	user := seedUnverifiedUser(t, db, "jane@example.com")

	// An old unused code outside the cooldown window
	stale := auth.EmailVerification{
		ID:        uuid.New(),
		UserID:    user.ID,
		Email:     user.Email,
		Code:      "stale-hash",
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Model(&stale).Update("created_at", time.Now().Add(-2*time.Minute)).Error)

	w := postJSON(t, router, "/api/auth/send-otp", gin.H{"email": user.Email})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, mailer.otpCodes, 1)

	var count int64
	db.Model(&auth.EmailVerification{}).Where("email = ?", user.Email).Count(&count)
	assert.Equal(t, int64(1), count, "stale code must be replaced, not accumulated")
}

func TestVerifyOTPHappyPath(t *testing.T) {
	router, db, mailer := newAuthTestRouter(t)
	user := seedUnverifiedUser(t, db, "jane@example.com")

	w := postJSON(t, router, "/api/auth/send-otp", gin.H{"email": user.Email})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, router, "/api/auth/verify-otp", gin.H{
		"email": user.Email,
		"code":  mailer.otpCodes[0],
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "access_token")

	// Refresh token travels only in the cookie
	cookies := w.Result().Cookies()
	var foundCookie bool
	for _, cookie := range cookies {
		if cookie.Name == RefreshCookieName {
			foundCookie = true
			assert.True(t, cookie.HttpOnly)
			assert.NotEmpty(t, cookie.Value)
		}
	}
	assert.True(t, foundCookie, "refresh cookie must be set")
	assert.NotContains(t, w.Body.String(), "refresh_token")

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, "id = ?", user.ID).Error)
	assert.True(t, reloaded.IsVerified)
}

func TestVerifyOTPCannotBeReplayed(t *testing.T) {
	router, db, mailer := newAuthTestRouter(t)
	user := seedUnverifiedUser(t, db, "jane@example.com")

	postJSON(t, router, "/api/auth/send-otp", gin.H{"email": user.Email})
	code := mailer.otpCodes[0]

	w := postJSON(t, router, "/api/auth/verify-otp", gin.H{"email": user.Email, "code": code})
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, router, "/api/auth/verify-otp", gin.H{"email": user.Email, "code": code})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyOTPAttemptLimit(t *testing.T) {
	router, db, mailer := newAuthTestRouter(t)
	user := seedUnverifiedUser(t, db, "jane@example.com")

	postJSON(t, router, "/api/auth/send-otp", gin.H{"email": user.Email})
	correct := mailer.otpCodes[0]

	wrong := "000000"
	if wrong == correct {
		wrong = "000001"
	}

	// First two wrong guesses just count
	for i := 0; i < 2; i++ {
		w := postJSON(t, router, "/api/auth/verify-otp", gin.H{"email": user.Email, "code": wrong})
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	}

	// The third one exhausts the record
	w := postJSON(t, router, "/api/auth/verify-otp", gin.H{"email": user.Email, "code": wrong})
	assert.Equal(t, http.StatusTooManyRequests, w.Code, w.Body.String())

	// Even the correct code is dead now
	w = postJSON(t, router, "/api/auth/verify-otp", gin.H{"email": user.Email, "code": correct})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var record auth.EmailVerification
	require.NoError(t, db.Where("email = ?", user.Email).First(&record).Error)
	assert.True(t, record.Used)
}

func TestVerifyOTPExpiredCode(t *testing.T) {
	router, db, _ := newAuthTestRouter(t)
	user := seedUnverifiedUser(t, db, "jane@example.com")

	expired := auth.EmailVerification{
		ID:        uuid.New(),
		UserID:    user.ID,
		Email:     user.Email,
		Code:      "hash",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(&expired).Error)

	w := postJSON(t, router, "/api/auth/verify-otp", gin.H{"email": user.Email, "code": "123456"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
