package handler

import (
	"WeightLossDataGenerator/internal/auth"
	"WeightLossDataGenerator/internal/dataset"
	"WeightLossDataGenerator/internal/middleware"
	"WeightLossDataGenerator/internal/observability"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Status frames sent around the binary CSV frame.
const (
	StatusGenerating = "generating"
	StatusDone       = "done"
)

// GenerationStatus is the JSON text frame of /ws/generate.
type GenerationStatus struct {
	Status       string `json:"status"`
	SessionID    string `json:"session_id"`
	Rows         int    `json:"rows"`
	Seed         int64  `json:"seed"`
	Filename     string `json:"filename,omitempty"`
	SizeBytes    int    `json:"size_bytes,omitempty"`
	GenerationID string `json:"generation_id,omitempty"`
}

// HandleGenerate godoc
// @Summary      WebSocket 데이터셋 생성
// @Description  Generates a dataset over a websocket so the client can show a "generating" state.
// @Description  <br>
// @Description  **참고: 이것은 표준 HTTP API가 아닙니다.** Frames, in order:
// @Description  1. text `{"status":"generating",...}`
// @Description  2. binary: the CSV bytes
// @Description  3. text `{"status":"done","filename":...,"size_bytes":...}`
// @Description  Authentication is optional, via the `token` query parameter.
// @Tags         WebSocket
// @Param        token query   string  false "JWT from /login"
// @Param        rows  query   string  false "row count (default DEFAULT_ROWS)"
// @Param        seed  query   integer false "random seed; random when omitted"
// @Success      101   {string} string "101 Switching Protocols"
// @Failure      400   {object} handler.ErrorResponse
// @Failure      401   {object} handler.ErrorResponse
// @Router       /ws/generate [get]
func (h *DatasetHandler) HandleGenerate(c *gin.Context) {
	if tokenString := c.Query("token"); tokenString != "" {
		claims, err := auth.ValidateToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		c.Set(middleware.ContextUsername, claims.Username)
	}

	rows := h.rowsFromQuery(c)
	seed, err := seedFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("HandleGenerate(): Failed to upgrade to WebSocket: %v", err)
		return
	}
	defer conn.Close()

	sessionID := uuid.NewString()
	log.Printf("HandleGenerate(): session %s started (rows=%d, seed=%d)", sessionID, rows, seed)

	status := GenerationStatus{Status: StatusGenerating, SessionID: sessionID, Rows: rows, Seed: seed}
	if err := writeJSON(conn, status); err != nil {
		log.Printf("HandleGenerate(): session %s: failed to send status: %v", sessionID, err)
		return
	}

	ds := dataset.Build(observability.ChannelWebsocket, rows, seed)
	generationID, _ := h.archive(c, ds)

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.BinaryMessage, ds.Data); err != nil {
		log.Printf("HandleGenerate(): session %s: failed to send dataset: %v", sessionID, err)
		return
	}

	status.Status = StatusDone
	status.Rows = ds.Rows
	status.Filename = ds.Filename
	status.SizeBytes = len(ds.Data)
	status.GenerationID = generationID
	if err := writeJSON(conn, status); err != nil {
		log.Printf("HandleGenerate(): session %s: failed to send status: %v", sessionID, err)
		return
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
	log.Printf("HandleGenerate(): session %s finished, %d bytes sent", sessionID, len(ds.Data))
}

func writeJSON(conn *websocket.Conn, v interface{}) error {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	return conn.WriteJSON(v)
}
