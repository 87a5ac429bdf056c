package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"whiskybase-backend/internal/domains/whisky/model"
	"whiskybase-backend/internal/domains/whisky/repository"
	"whiskybase-backend/internal/domains/whisky/service"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *repository.MemoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepository()
	h := NewWhiskyHandler(service.NewWhiskyService(repo))

	router := gin.New()
	v1 := router.Group("/api/v1")
	whiskies := v1.Group("/whiskies")
	{
		whiskies.GET("", h.ListWhiskies)
		whiskies.GET("/search/:query", h.SearchWhiskies)
		whiskies.GET("/:id", h.GetWhisky)
		whiskies.POST("", h.CreateWhisky)
		whiskies.PUT("/:id", h.UpdateWhisky)
		whiskies.DELETE("/:id", h.DeleteWhisky)
	}

	return router, repo
}

func seedWhisky(t *testing.T, repo *repository.MemoryRepository, name string) *model.Whisky {
	t.Helper()

	now := time.Now().UTC()
	w := &model.Whisky{
		ID:          uuid.New(),
		Name:        name,
		Distillery:  "Distillery",
		Country:     "Scotland",
		Type:        model.TypeSingleMalt,
		ABV:         43.0,
		Description: "test bottle",
		CaskType:    []string{},
		BottleSize:  model.DefaultBottleSize,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, repo.Create(context.Background(), w))
	return w
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func doRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestListWhiskiesEndpoint(t *testing.T) {
	router, repo := setupTestRouter(t)
	seedWhisky(t, repo, "Lagavulin 16")
	seedWhisky(t, repo, "Ardbeg 10")

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/whiskies", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var result model.ListWhiskiesResponse
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Len(t, result.Whiskies, 2)
	assert.Equal(t, 2, result.Total)
	assert.Equal(t, 1, result.CurrentPage)
}

func TestListWhiskiesBadPagingFallsBack(t *testing.T) {
	router, repo := setupTestRouter(t)
	seedWhisky(t, repo, "Oban 14")

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/whiskies?page=abc&limit=0", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result model.ListWhiskiesResponse
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, 1, result.CurrentPage)
	assert.Len(t, result.Whiskies, 1)
}

func TestGetWhiskyEndpoint(t *testing.T) {
	router, repo := setupTestRouter(t)
	w := seedWhisky(t, repo, "Talisker 10")

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/whiskies/"+w.ID.String(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got model.Whisky
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, w.ID, got.ID)
	assert.Equal(t, "Talisker 10", got.Name)
}

func TestGetWhiskyNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/whiskies/"+uuid.NewString(), nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestGetWhiskyBadID(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/whiskies/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "BAD_REQUEST", env.Error.Code)
}

func TestSearchWhiskiesEndpoint(t *testing.T) {
	router, repo := setupTestRouter(t)
	seedWhisky(t, repo, "Lagavulin 16")
	seedWhisky(t, repo, "Macallan 12")

	rec, env := doRequest(t, router, http.MethodGet, "/api/v1/whiskies/search/lagavulin", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []model.Whisky
	require.NoError(t, json.Unmarshal(env.Data, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Lagavulin 16", got[0].Name)
}

func TestCreateWhiskyEndpoint(t *testing.T) {
	router, _ := setupTestRouter(t)

	body := map[string]interface{}{
		"name":        "Springbank 10",
		"distillery":  "Springbank",
		"country":     "Scotland",
		"abv":         46.0,
		"description": "Lightly peated Campbeltown malt",
	}

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/whiskies", body)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)

	var got model.Whisky
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Springbank 10", got.Name)
	assert.Equal(t, model.TypeSingleMalt, got.Type)
	assert.Equal(t, model.DefaultBottleSize, got.BottleSize)
	assert.Equal(t, 0.0, got.AverageRating)
}

func TestCreateWhiskyValidationError(t *testing.T) {
	router, _ := setupTestRouter(t)

	// Missing abv and description.
	body := map[string]interface{}{
		"name":       "Incomplete",
		"distillery": "Nowhere",
		"country":    "Scotland",
	}

	rec, env := doRequest(t, router, http.MethodPost, "/api/v1/whiskies", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)

	var details map[string]string
	require.NoError(t, json.Unmarshal(env.Error.Details, &details))
	assert.Contains(t, details, "abv")
	assert.Contains(t, details, "description")
}

func TestUpdateWhiskyEndpoint(t *testing.T) {
	router, repo := setupTestRouter(t)
	w := seedWhisky(t, repo, "Glendronach 12")

	body := map[string]interface{}{"name": "GlenDronach 12"}

	rec, env := doRequest(t, router, http.MethodPut, "/api/v1/whiskies/"+w.ID.String(), body)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got model.Whisky
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "GlenDronach 12", got.Name)
	assert.Equal(t, "Distillery", got.Distillery)
}

func TestUpdateWhiskyNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	body := map[string]interface{}{"name": "Ghost"}

	rec, _ := doRequest(t, router, http.MethodPut, "/api/v1/whiskies/"+uuid.NewString(), body)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteWhiskyEndpoint(t *testing.T) {
	router, repo := setupTestRouter(t)
	w := seedWhisky(t, repo, "Bowmore 15")

	rec, env := doRequest(t, router, http.MethodDelete, "/api/v1/whiskies/"+w.ID.String(), nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "Whisky removed", got["message"])

	rec, _ = doRequest(t, router, http.MethodGet, "/api/v1/whiskies/"+w.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteWhiskyNotFound(t *testing.T) {
	router, _ := setupTestRouter(t)

	rec, _ := doRequest(t, router, http.MethodDelete, "/api/v1/whiskies/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
