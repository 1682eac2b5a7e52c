package service

// QRCodeService defines the interface for QR code generation services
type QRCodeService interface {
	// GeneratePlotQR generates a traceability QR code image for a land plot.
	// The code encodes a verification URL together with the plot identifier.
	GeneratePlotQR(plotID string) ([]byte, error)

	// ParsePlotQR parses QR payload data and returns the plot identifier.
	ParsePlotQR(qrData string) (string, error)
}
