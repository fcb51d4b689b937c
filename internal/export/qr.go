package export

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QRCode renders the composed plan text as a QR code image and returns the
// written file path.
func (e *Exporter) QRCode(planText string) (string, error) {
	path := e.path(qrFileName)
	if err := qrcode.WriteFile(planText, qrcode.Medium, 256, path); err != nil {
		return "", fmt.Errorf("failed to write QR code: %w", err)
	}
	return path, nil
}
