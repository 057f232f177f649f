// Package render produces the binary artifacts served next to the JSON API:
// share QR codes and certificate PDFs.
package render

import (
	"strings"

	"github.com/skip2/go-qrcode"
)

const DefaultQRSize = 256

// ShareURL is the recipient-facing link for a content item. It never carries
// the PIN.
func ShareURL(baseURL, contentID string) string {
	return strings.TrimRight(baseURL, "/") + "/s/" + contentID
}

// ShareQR encodes ShareURL as a PNG QR code. size <= 0 selects DefaultQRSize.
func ShareQR(baseURL, contentID string, size int) ([]byte, error) {
	if size <= 0 {
		size = DefaultQRSize
	}
	return qrcode.Encode(ShareURL(baseURL, contentID), qrcode.Medium, size)
}
