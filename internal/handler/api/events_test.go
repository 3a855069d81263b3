//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"booking-bot/internal/conversation"
	"booking-bot/internal/handler/api"
	"booking-bot/internal/infra/memstore"
	"booking-bot/internal/pkg/clock"
	"booking-bot/internal/usecase/commands"
	"booking-bot/internal/usecase/queries"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := memstore.NewReservationStore()
	clk := clock.NewMockClock(time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC))
	engine := conversation.NewEngine(
		conversation.NewSessionStore(),
		queries.NewAvailabilityQueries(store, clk),
		commands.NewBookingUseCase(store),
		clk,
	)

	r := gin.New()
	r.POST("/api/events", api.NewEventsHandler(engine).HandleEvent)
	return r
}

func postEvent(t *testing.T, router *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleEvent(t *testing.T) {
	router := newTestRouter()

	t.Run("start command returns the booking button", func(t *testing.T) {
		w := postEvent(t, router, gin.H{"user_id": "42", "type": "text", "text": "/start"})
		require.Equal(t, http.StatusOK, w.Code)

		var reply conversation.Reply
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
		assert.NotEmpty(t, reply.Text)
		require.Len(t, reply.Choices, 1)
		assert.Equal(t, conversation.StartToken, reply.Choices[0].Token)
	})

	t.Run("selection token reaches the engine", func(t *testing.T) {
		w := postEvent(t, router, gin.H{"user_id": "42", "type": "selection", "token": conversation.StartToken})
		require.Equal(t, http.StatusOK, w.Code)

		var reply conversation.Reply
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reply))
		assert.Contains(t, reply.Text, "name")
	})

	t.Run("missing user_id is rejected", func(t *testing.T) {
		w := postEvent(t, router, gin.H{"type": "text", "text": "hi"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		w := postEvent(t, router, gin.H{"user_id": "42", "type": "sticker"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
