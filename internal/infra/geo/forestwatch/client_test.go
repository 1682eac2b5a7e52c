package forestwatch

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"canopy/config"
	"canopy/internal/domain/entity"
	domainerrors "canopy/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBoundary() []entity.Coordinate {
	return []entity.Coordinate{
		{Lat: 5.0, Lng: 100.0},
		{Lat: 5.0, Lng: 100.1},
		{Lat: 5.1, Lng: 100.1},
		{Lat: 5.1, Lng: 100.0},
	}
}

func testClient(baseURL string) *client {
	cfg := &config.Config{
		ForestWatch: &config.ForestWatchConfig{
			BaseURL:     baseURL,
			APIKey:      "test-key",
			Timeout:     5 * time.Second,
			TileBaseURL: "https://tiles.example.com",
		},
	}

	return NewClient(cfg, slog.Default()).(*client)
}

func TestAnalyzeBoundary(t *testing.T) {
	var captured analyzeRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, analyzePath, r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"forest_area_ha": 120.456, "loss_area_ha": 8.123, "deforestation_percent": 6.744}`))
	}))
	defer server.Close()

	analysis, err := testClient(server.URL).AnalyzeBoundary(context.Background(), testBoundary())
	require.NoError(t, err)
	require.NotNil(t, analysis)

	assert.InDelta(t, 120.46, analysis.ForestAreaHa, 0.001)
	assert.InDelta(t, 8.12, analysis.LossAreaHa, 0.001)
	assert.InDelta(t, 6.74, analysis.DeforestationPct, 0.001)
	assert.Equal(t, "https://tiles.example.com/forest/{z}/{x}/{y}.png", analysis.ForestTileURL)
	assert.Equal(t, "https://tiles.example.com/loss/{z}/{x}/{y}.png", analysis.LossTileURL)
	assert.WithinDuration(t, time.Now(), analysis.AnalyzedAt, time.Minute)

	// The open ring is closed and a plausible area is sent along.
	require.NotNil(t, captured.Geometry)
	assert.Greater(t, captured.AreaHa, 0.0)
}

func TestAnalyzeBoundarySinglePointBuffered(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req analyzeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		// A single point becomes a small square, not a degenerate geometry.
		assert.Greater(t, req.AreaHa, 0.0)

		_, _ = w.Write([]byte(`{"forest_area_ha": 1, "loss_area_ha": 0, "deforestation_percent": 0}`))
	}))
	defer server.Close()

	analysis, err := testClient(server.URL).AnalyzeBoundary(context.Background(), []entity.Coordinate{{Lat: 5.0, Lng: 100.0}})
	require.NoError(t, err)
	assert.Zero(t, analysis.DeforestationPct)
}

func TestAnalyzeBoundaryEmptyBoundary(t *testing.T) {
	_, err := testClient("http://localhost:0").AnalyzeBoundary(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidGeometry)
}

func TestAnalyzeBoundaryUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	_, err := testClient(server.URL).AnalyzeBoundary(context.Background(), testBoundary())
	require.Error(t, err)
}

func TestAnalyzeBoundaryNotConfigured(t *testing.T) {
	c := NewClient(&config.Config{}, slog.Default())

	_, err := c.AnalyzeBoundary(context.Background(), testBoundary())
	require.Error(t, err)
}
