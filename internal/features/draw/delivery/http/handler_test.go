package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luckydraw-backend/internal/features/draw/models"
	"luckydraw-backend/internal/features/draw/store"
	"luckydraw-backend/internal/utils/random"
)

func newTestRouter(st *store.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewDrawHandler(st).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestAddPrize(t *testing.T) {
	st := store.New("p1", store.WithSource(random.NewSequenceSource(0)))
	router := newTestRouter(st)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/draw/prizes", gin.H{
		"label": "AirPods 4", "count": 5, "tier": "B",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var prize models.Prize
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prize))
	assert.NotEmpty(t, prize.ID)
	assert.Equal(t, "AirPods 4", prize.Label)
	assert.Len(t, st.Prizes(), 1)
}

func TestAddPrize_ValidationError(t *testing.T) {
	st := store.New("p1")
	router := newTestRouter(st)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/draw/prizes", gin.H{
		"label": "", "count": 0,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, st.Prizes())
}

func TestDrawByRandom_NoEligibleConflict(t *testing.T) {
	st := store.New("p1", store.WithSource(random.NewSequenceSource(0)))
	st.Seed([]models.Prize{{ID: "p1", Label: "X", Count: 1}}, nil)
	router := newTestRouter(st)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/draw/random", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "NO_ELIGIBLE_PARTICIPANTS")
}

func TestDrawByRandom_ReturnsWinner(t *testing.T) {
	st := store.New("p1", store.WithSource(random.NewSequenceSource(0)))
	st.Seed(
		[]models.Prize{{ID: "p1", Label: "X", Count: 1}},
		[]models.Participant{{ID: "u1", Phone: "0900000001"}},
	)
	router := newTestRouter(st)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/draw/random", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Winner *models.Winner `json:"winner"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.Winner)
	assert.Equal(t, "0900000001", resp.Winner.Phone)
	assert.Equal(t, "X", resp.Winner.PrizeLabel)
}

func TestWheelStop_OutOfRange(t *testing.T) {
	st := store.New("p1", store.WithSource(random.NewSequenceSource(0)))
	st.Seed(
		[]models.Prize{{ID: "p1", Label: "X", Count: 1}},
		[]models.Participant{{ID: "u1", Phone: "0900000001"}},
	)
	router := newTestRouter(st)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/draw/wheel-stop", gin.H{"index": 3})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "PRIZE_INDEX_OUT_OF_RANGE")
}

func TestShowCage_SpecialFlag(t *testing.T) {
	st := store.New("p1")
	router := newTestRouter(st)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/draw/cage/show", gin.H{"number": "77-77"})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Display string `json:"display"`
		Special bool   `json:"special"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "7777", resp.Display)
	assert.True(t, resp.Special)
	assert.Equal(t, "7777", st.Cage().Display)
}

func TestShowCage_NoDigits(t *testing.T) {
	st := store.New("p1")
	router := newTestRouter(st)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/draw/cage/show", gin.H{"number": "abc"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, st.Cage().Display)
}

func TestSetRunning(t *testing.T) {
	st := store.New("p1")
	router := newTestRouter(st)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/draw/running", gin.H{"running": true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, st.Running())

	rec = doJSON(t, router, http.MethodPost, "/api/v1/draw/running", gin.H{"running": false})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, st.Running())
}

func TestRemovePrize(t *testing.T) {
	st := store.New("p1")
	st.Seed([]models.Prize{{ID: "p1", Label: "X", Count: 1}}, nil)
	router := newTestRouter(st)

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/draw/prizes/p1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, st.Prizes())

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/draw/prizes/p1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetState(t *testing.T) {
	st := store.New("p1")
	st.Seed([]models.Prize{{ID: "p1", Label: "X", Count: 1}}, nil)
	router := newTestRouter(st)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/draw/state", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var snap models.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, "p1", snap.ProgramID)
	assert.Len(t, snap.Prizes, 1)
}
