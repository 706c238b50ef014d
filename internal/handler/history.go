package handler

import (
	"WeightLossDataGenerator/internal/middleware"
	"WeightLossDataGenerator/internal/models"
	"WeightLossDataGenerator/internal/storage"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
)

const defaultHistoryLimit = 50

// 생성 기록 목록 응답 (Wrapper)
type HistoryResponse struct {
	History []models.Generation `json:"history"`
}

// GetHistory godoc
// @Summary      생성 기록 조회
// @Description  Lists the signed-in user's archived datasets, newest first.
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Param        limit query integer false "max entries (default 50, 0 = all)"
// @Success      200 {object} handler.HistoryResponse
// @Failure      401 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/history [get]
func GetHistory(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	limit := defaultHistoryLimit
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
			limit = parsed
		}
	}

	userID, err := storage.GetUserIDByUsername(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}

	generations, err := storage.GetGenerationsByUserID(userID, limit)
	if err != nil {
		log.Printf("[ERROR] GetHistory: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch history"})
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{History: generations})
}

// DownloadGeneration godoc
// @Summary      보관된 데이터셋 재다운로드
// @Description  Downloads a dataset archived earlier by the signed-in user.
// @Tags         API (Protected)
// @Produce      text/csv
// @Security     BearerAuth
// @Param        id  path  string  true  "generation id"
// @Success      200 {file} file "archived CSV"
// @Failure      401 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /api/history/{id}/download [get]
func DownloadGeneration(c *gin.Context) {
	username := c.GetString(middleware.ContextUsername)

	userID, err := storage.GetUserIDByUsername(username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}

	generation, err := storage.GetGeneration(userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrGenerationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Dataset not found"})
			return
		}
		log.Printf("[ERROR] DownloadGeneration: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dataset"})
		return
	}

	if _, err := os.Stat(generation.FilePath); os.IsNotExist(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Dataset file not found"})
		return
	}

	c.Header("X-Dataset-Seed", strconv.FormatInt(generation.Seed, 10))
	c.Header("X-Dataset-Rows", strconv.Itoa(generation.Rows))
	c.FileAttachment(generation.FilePath, generation.Filename)
}
