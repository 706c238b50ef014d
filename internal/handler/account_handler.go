/**
* Name: 			account_handler.go
* Description: 		계정 관련 Gin HTTP 핸들러
* Workflow: 		회원가입, 로그인, 프로필 조회
 */
package handler

import (
	"database/sql"
	"errors"
	"log"
	"net/http"
	"regexp"
	"strings"

	"WeightLossDataGenerator/internal/auth"
	"WeightLossDataGenerator/internal/middleware"
	"WeightLossDataGenerator/internal/storage"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// usernames double as archive directory names
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]{2,31}$`)

const minPasswordLength = 8

// /signup, /login 요청 바디
type CredentialsRequest struct {
	Username string `json:"username" example:"coach_kim"`
	Password string `json:"password" example:"password123"`
}

type SuccessResponse struct {
	Message string `json:"message" example:"User created successfully"`
}
type ErrorResponse struct {
	Error string `json:"error" example:"error description"`
}
type LoginSuccessResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// 프로필 조회 응답
type ProfileResponse struct {
	Username  string `json:"username" example:"coach_kim"`
	CreatedAt string `json:"created_at" example:"2026-03-01T12:00:00Z"`
}

// Signup godoc
// @Summary      회원가입 (Signup)
// @Description  Creates an account. Generations made while signed in are archived to the account's history.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handler.CredentialsRequest true "username and password"
// @Param        X-Invite-Code header string false "required when the server sets SIGNUP_INVITE_CODE"
// @Success      200 {object} handler.SuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      403 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /signup [post]
func Signup(c *gin.Context) {
	var credentials CredentialsRequest
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	credentials.Username = strings.TrimSpace(credentials.Username)
	if !usernamePattern.MatchString(credentials.Username) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username must be 3-32 letters, digits, '.', '_' or '-'"})
		return
	}
	if len(credentials.Password) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 8 characters"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to hash password"})
		return
	}
	if _, err := storage.CreateUser(credentials.Username, string(hashedPassword)); err != nil {
		if errors.Is(err, storage.ErrUsernameExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username already exists"})
		} else {
			log.Printf("[ERROR] Failed to create user (database error): %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user (database error)"})
		}
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "User created successfully"})
}

// Login godoc
// @Summary      로그인 (Login)
// @Description  Exchanges username and password for a 24h JWT.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handler.CredentialsRequest true "username and password"
// @Success      200 {object} handler.LoginSuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /login [post]
func Login(c *gin.Context) {
	var credentials CredentialsRequest
	if err := c.ShouldBindJSON(&credentials); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if credentials.Username == "" || credentials.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	user, err := storage.GetUserByUsername(strings.TrimSpace(credentials.Username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		log.Printf("[ERROR] GetUserByUsername failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	tokenString, err := auth.GenerateToken(user.Username)
	if err != nil {
		log.Printf("[ERROR] GenerateToken failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, LoginSuccessResponse{Token: tokenString})
}

// Profile godoc
// @Summary      프로필 조회 (Profile)
// @Description  Returns the authenticated account.
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} handler.ProfileResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/profile [get]
func Profile(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)
	user, err := storage.GetUserByUsername(username)
	if err != nil {
		log.Printf("[ERROR] Profile: GetUserByUsername(%s) failed: %v", username, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}
	c.JSON(http.StatusOK, ProfileResponse{
		Username:  user.Username,
		CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	})
}
