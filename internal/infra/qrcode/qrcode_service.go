package qrcode

import (
	"encoding/json"
	"fmt"

	"canopy/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// QRCodeData represents the QR code data structure
type QRCodeData struct {
	PlotID    string `json:"plot_id"`
	Type      string `json:"type"`
	VerifyURL string `json:"verify_url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              baseURL,
	}
}

// GeneratePlotQR generates a traceability QR code image for a land plot
func (s *qrcodeService) GeneratePlotQR(plotID string) ([]byte, error) {
	// Create QR code data
	data := QRCodeData{
		PlotID: plotID,
		Type:   "plot",
	}
	if s.baseURL != "" {
		data.VerifyURL = s.baseURL + "/plots/" + plotID
	}

	// Convert to JSON
	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	// Generate QR code
	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	// Generate PNG image
	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParsePlotQR parses QR code data and returns the plot identifier
func (s *qrcodeService) ParsePlotQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	// Validate type
	if data.Type != "plot" {
		return "", fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.PlotID == "" {
		return "", fmt.Errorf("QR code carries no plot identifier")
	}

	return data.PlotID, nil
}
