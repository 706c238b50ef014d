/**
* Name: 			dataset_handler.go
* Description: 		데이터셋 생성 및 다운로드 핸들러
* Workflow: 		행 수/시드 해석 -> 생성 -> CSV 인코딩 -> (로그인 시) 보관 -> 다운로드
 */
package handler

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"WeightLossDataGenerator/internal/config"
	"WeightLossDataGenerator/internal/csvexport"
	"WeightLossDataGenerator/internal/dataset"
	"WeightLossDataGenerator/internal/generator"
	"WeightLossDataGenerator/internal/middleware"
	"WeightLossDataGenerator/internal/observability"

	"github.com/gin-gonic/gin"
)

const (
	defaultPreviewRows = 10
	maxPreviewRows     = 100
)

var errInvalidSeed = errors.New("seed must be an integer")

// DatasetHandler serves dataset generation over HTTP and websocket.
type DatasetHandler struct {
	cfg      config.Config
	archiver *dataset.Archiver
}

// NewDatasetHandler builds a DatasetHandler. archiver may be nil, which disables archiving.
func NewDatasetHandler(cfg config.Config, archiver *dataset.Archiver) *DatasetHandler {
	return &DatasetHandler{cfg: cfg, archiver: archiver}
}

// GenerateRequest is the body of POST /api/datasets.
type GenerateRequest struct {
	Rows *int   `json:"rows" example:"5000"`
	Seed *int64 `json:"seed" example:"42"`
}

// PreviewResponse carries a handful of records as JSON.
type PreviewResponse struct {
	Seed    int64              `json:"seed"`
	Rows    int                `json:"rows"`
	Columns []string           `json:"columns"`
	Records []generator.Record `json:"records"`
}

// ColumnInfo documents one dataset column.
type ColumnInfo struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// SchemaResponse describes the dataset layout and request limits.
type SchemaResponse struct {
	Header      string                      `json:"header"`
	Columns     []ColumnInfo                `json:"columns"`
	Exercises   []generator.ExerciseProgram `json:"exercises"`
	DefaultRows int                         `json:"default_rows"`
	MaxRows     int                         `json:"max_rows"`
}

var columnInfo = []ColumnInfo{
	{"age", "integer", "Age in years, 18-70"},
	{"sex", "enum", "Male or Female, 50/50"},
	{"height_cm", "decimal(1)", "Height by sex (M ~175cm, F ~163cm), clamped to 150-200"},
	{"start_weight_kg", "decimal(1)", "Starting weight from a starting BMI of 22-35"},
	{"target_weight_kg", "decimal(1)", "Target weight, 5-20% below the starting weight"},
	{"duration_weeks", "decimal(1)", "Weight to lose times 1.5-3.5 weeks per kg"},
	{"start_bmi", "decimal(1)", "start_weight_kg / height_m^2"},
	{"target_bmi", "decimal(1)", "target_weight_kg / height_m^2"},
	{"avg_calorie_intake", "integer", "Harris-Benedict BMR x 1.5 minus a 300-700 kcal deficit"},
	{"avg_calorie_burn", "integer", "Exercise burn, 150-650 kcal"},
	{"main_exercise", "enum", "One of the exercise programs"},
}

// DownloadDataset godoc
// @Summary      데이터셋 다운로드 (GET)
// @Description  Generates a synthetic weight-loss dataset and returns it as a CSV attachment.
// @Description  `rows` is parsed leniently ("12.9" -> 12, "abc" -> 1) and clamped to [1, MAX_ROWS].
// @Description  Signed-in requests are also archived to the account's history.
// @Tags         Dataset
// @Produce      text/csv
// @Param        rows  query  string  false  "row count (default DEFAULT_ROWS)"
// @Param        seed  query  integer false  "random seed; random when omitted"
// @Success      200   {file} file "weight_loss_dataset_<N>_rows.csv"
// @Header       200   {integer} X-Dataset-Seed "seed used"
// @Header       200   {integer} X-Dataset-Rows "rows generated"
// @Failure      400   {object} handler.ErrorResponse
// @Failure      429   {object} handler.ErrorResponse
// @Router       /api/datasets/download [get]
func (h *DatasetHandler) DownloadDataset(c *gin.Context) {
	rows := h.rowsFromQuery(c)
	seed, err := seedFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.deliver(c, rows, seed)
}

// CreateDataset godoc
// @Summary      데이터셋 생성 (POST)
// @Description  Same as the GET download, with parameters in a JSON body.
// @Tags         Dataset
// @Accept       json
// @Produce      text/csv
// @Param        request body handler.GenerateRequest false "rows and optional seed"
// @Success      200   {file} file "weight_loss_dataset_<N>_rows.csv"
// @Failure      400   {object} handler.ErrorResponse
// @Failure      429   {object} handler.ErrorResponse
// @Router       /api/datasets [post]
func (h *DatasetHandler) CreateDataset(c *gin.Context) {
	var req GenerateRequest
	// An empty body means all defaults.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	rows := h.cfg.DefaultRows
	if req.Rows != nil {
		rows = generator.NormalizeRowCount(*req.Rows)
	}
	h.deliver(c, h.cfg.ClampRows(rows), dataset.ResolveSeed(req.Seed))
}

// PreviewDataset godoc
// @Summary      데이터셋 미리보기
// @Description  Returns up to 100 generated records as JSON.
// @Tags         Dataset
// @Produce      json
// @Param        rows  query  string  false  "row count (default 10, max 100)"
// @Param        seed  query  integer false  "random seed; random when omitted"
// @Success      200   {object} handler.PreviewResponse
// @Failure      400   {object} handler.ErrorResponse
// @Router       /api/datasets/preview [get]
func (h *DatasetHandler) PreviewDataset(c *gin.Context) {
	rows := defaultPreviewRows
	if raw, ok := c.GetQuery("rows"); ok {
		rows = generator.ParseRowCount(raw)
	}
	if rows > maxPreviewRows {
		rows = maxPreviewRows
	}
	seed, err := seedFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	records := dataset.Records(rows, seed)
	observability.RecordGeneration(observability.ChannelPreview, len(records), time.Since(start))
	c.JSON(http.StatusOK, PreviewResponse{
		Seed:    seed,
		Rows:    len(records),
		Columns: csvexport.Columns,
		Records: records,
	})
}

// Schema godoc
// @Summary      데이터셋 스키마
// @Description  Lists the CSV columns, their ranges and the exercise catalog.
// @Tags         Dataset
// @Produce      json
// @Success      200   {object} handler.SchemaResponse
// @Router       /api/datasets/schema [get]
func (h *DatasetHandler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, SchemaResponse{
		Header:      csvexport.Header,
		Columns:     columnInfo,
		Exercises:   generator.ExercisePrograms(),
		DefaultRows: h.cfg.DefaultRows,
		MaxRows:     h.cfg.MaxRows,
	})
}

// deliver builds the dataset, archives it for signed-in users and sends it as an attachment.
func (h *DatasetHandler) deliver(c *gin.Context, rows int, seed int64) {
	ds := dataset.Build(observability.ChannelDownload, rows, seed)

	if id, ok := h.archive(c, ds); ok {
		c.Header("X-Generation-ID", id)
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ds.Filename))
	c.Header("X-Dataset-Seed", strconv.FormatInt(ds.Seed, 10))
	c.Header("X-Dataset-Rows", strconv.Itoa(ds.Rows))
	c.Data(http.StatusOK, csvexport.ContentType, ds.Data)
}

// archive stores ds for the signed-in user, if any. Failures are logged, never fatal to the download.
func (h *DatasetHandler) archive(c *gin.Context, ds dataset.Dataset) (string, bool) {
	username := c.GetString(middleware.ContextUsername)
	if username == "" || h.archiver == nil {
		return "", false
	}
	g, err := h.archiver.Archive(c.Request.Context(), username, ds)
	if err != nil {
		log.Printf("[ERROR] archive for %s failed: %v", username, err)
		return "", false
	}
	return g.ID, true
}

// rowsFromQuery applies DEFAULT_ROWS when rows is absent, lenient parsing otherwise, then MAX_ROWS.
func (h *DatasetHandler) rowsFromQuery(c *gin.Context) int {
	rows := h.cfg.DefaultRows
	if raw, ok := c.GetQuery("rows"); ok {
		rows = generator.ParseRowCount(raw)
	}
	return h.cfg.ClampRows(rows)
}

func seedFromQuery(c *gin.Context) (int64, error) {
	raw := strings.TrimSpace(c.Query("seed"))
	if raw == "" {
		return dataset.ResolveSeed(nil), nil
	}
	seed, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errInvalidSeed
	}
	return seed, nil
}
