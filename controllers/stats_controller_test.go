package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prospermen/Belief-life/middleware"
	"github.com/prospermen/Belief-life/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStatsRouter(store services.RecordStore) *gin.Engine {
	insightService := services.NewInsightService(store, services.DefaultInsightOptions())
	controller := NewStatsController(services.NewStatsService(store, insightService))

	r := gin.New()
	private := r.Group("/api/v1", middleware.IdentityMiddleware())
	{
		private.GET("/emotions/stats", controller.GetEmotionStats)
		private.GET("/sos/recommendations", controller.GetSOSRecommendations)
	}
	r.GET("/api/v1/sos/techniques", controller.GetSOSTechniques)
	r.GET("/api/v1/cbt/distortions", controller.GetCognitiveDistortions)
	r.GET("/api/v1/act/value-categories", controller.GetValueCategories)
	return r
}

func TestGetEmotionStats(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/emotions/stats?period=month", nil)
	req.Header.Set("X-User-ID", "user-1")
	newStatsRouter(&fakeStore{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success bool `json:"success"`
		Stats   struct {
			Period       string `json:"period"`
			TotalEntries int    `json:"total_entries"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "month", body.Stats.Period)
	assert.Zero(t, body.Stats.TotalEntries)
}

func TestGetEmotionStatsMissingUserID(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/emotions/stats", nil)
	newStatsRouter(&fakeStore{}).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetSOSRecommendations(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sos/recommendations", nil)
	req.Header.Set("X-User-ID", "user-1")
	newStatsRouter(&fakeStore{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Success         bool                             `json:"success"`
		Recommendations []struct {
			Technique          string  `json:"technique"`
			EffectivenessScore float64 `json:"effectiveness_score"`
		} `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	// 没有历史记录时推荐全部8个内置技巧
	assert.Len(t, body.Recommendations, 8)
	for _, rec := range body.Recommendations {
		assert.Equal(t, 3.6, rec.EffectivenessScore)
	}
}

func TestGetSOSTechniques(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/sos/techniques", nil)
	newStatsRouter(&fakeStore{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Techniques map[string][]string `json:"techniques"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Techniques[services.SessionTypeFeelings], "方框呼吸")
	assert.Contains(t, body.Techniques[services.SessionTypeThoughts], "思维泡泡")
}

func TestGetCognitiveDistortions(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cbt/distortions", nil)
	newStatsRouter(&fakeStore{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Distortions []string `json:"distortions"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Distortions)
}

func TestGetValueCategories(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/act/value-categories", nil)
	newStatsRouter(&fakeStore{}).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Categories []string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Categories)
}
