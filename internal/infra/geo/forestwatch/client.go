// Package forestwatch talks to the external forest-change analysis API.
package forestwatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"canopy/config"
	"canopy/internal/domain/entity"
	domainerrors "canopy/internal/domain/errors"
	"canopy/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
)

const (
	analyzePath    = "/v1/analyze"
	defaultTimeout = 15 * time.Second

	// Hectares per square meter.
	haPerSquareMeter = 1.0 / 10_000
)

// client implements service.DeforestationService against an HTTP analysis API.
type client struct {
	httpClient  *http.Client
	baseURL     string
	apiKey      string
	tileBaseURL string
	logger      *slog.Logger
}

// NewClient is the constructor for the forest-change analysis client.
func NewClient(cfg *config.Config, logger *slog.Logger) service.DeforestationService {
	timeout := defaultTimeout
	baseURL := ""
	apiKey := ""
	tileBaseURL := ""

	if cfg.ForestWatch != nil {
		if cfg.ForestWatch.Timeout > 0 {
			timeout = cfg.ForestWatch.Timeout
		}
		baseURL = strings.TrimRight(cfg.ForestWatch.BaseURL, "/")
		apiKey = cfg.ForestWatch.APIKey
		tileBaseURL = strings.TrimRight(cfg.ForestWatch.TileBaseURL, "/")
	}

	return &client{
		httpClient:  &http.Client{Timeout: timeout},
		baseURL:     baseURL,
		apiKey:      apiKey,
		tileBaseURL: tileBaseURL,
		logger:      logger,
	}
}

// analyzeRequest is the JSON payload sent to the analysis API.
type analyzeRequest struct {
	Geometry *geojson.Geometry `json:"geometry"`
	AreaHa   float64           `json:"area_ha"`
}

// analyzeResponse is the JSON payload returned by the analysis API.
type analyzeResponse struct {
	ForestAreaHa         float64 `json:"forest_area_ha"`
	LossAreaHa           float64 `json:"loss_area_ha"`
	DeforestationPercent float64 `json:"deforestation_percent"`
}

// AnalyzeBoundary runs a closed polygon ring through the analysis provider
// and returns the forest cover and loss figures for it.
func (c *client) AnalyzeBoundary(ctx context.Context, boundary []entity.Coordinate) (*entity.DeforestationAnalysis, error) {
	if c.baseURL == "" {
		return nil, domainerrors.ErrAnalysisUnavailable.WrapMessage("analysis service is not configured")
	}

	ring := toRing(entity.NormalizeBoundary(boundary))
	if ring == nil {
		return nil, domainerrors.ErrInvalidGeometry
	}

	polygon := orb.Polygon{ring}
	payload := analyzeRequest{
		Geometry: geojson.NewGeometry(polygon),
		AreaHa:   roundTwo(math.Abs(geo.Area(polygon)) * haPerSquareMeter),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode analysis request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+analyzePath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "failed to build analysis request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrAnalysisUnavailable.WrapMessage(err.Error())
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Warn("failed to close analysis response body", slog.Any("error", closeErr))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		c.logger.Warn("analysis service returned an error",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(snippet)),
		)

		return nil, domainerrors.ErrAnalysisUnavailable.
			WrapMessage(fmt.Sprintf("analysis service returned status %d", resp.StatusCode))
	}

	var result analyzeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Wrap(err, "failed to decode analysis response")
	}

	analysis := &entity.DeforestationAnalysis{
		ForestAreaHa:     roundTwo(result.ForestAreaHa),
		LossAreaHa:       roundTwo(result.LossAreaHa),
		DeforestationPct: roundTwo(result.DeforestationPercent),
		AnalyzedAt:       time.Now(),
	}

	if c.tileBaseURL != "" {
		analysis.ForestTileURL = c.tileBaseURL + "/forest/{z}/{x}/{y}.png"
		analysis.LossTileURL = c.tileBaseURL + "/loss/{z}/{x}/{y}.png"
	}

	return analysis, nil
}

// toRing converts a normalized boundary to an orb ring. Returns nil when the
// ring cannot form a polygon.
func toRing(boundary []entity.Coordinate) orb.Ring {
	if len(boundary) < 4 {
		return nil
	}

	ring := make(orb.Ring, 0, len(boundary))
	for _, c := range boundary {
		ring = append(ring, orb.Point{c.Lng, c.Lat})
	}
	if !ring.Closed() {
		ring = append(ring, ring[0])
	}

	return ring
}

func roundTwo(v float64) float64 {
	return math.Round(v*100) / 100
}
