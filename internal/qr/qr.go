// Package qr encodes verification URLs as QR code images.
package qr

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// ImageSize is the rendered QR code edge length in pixels
const ImageSize = 400

// DataURL encodes text as a PNG QR code and returns it as a
// data:image/png;base64 URL suitable for direct embedding in HTML
func DataURL(text string) (string, error) {
	png, err := qrcode.Encode(text, qrcode.Medium, ImageSize)
	if err != nil {
		return "", fmt.Errorf("failed to encode QR code: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
