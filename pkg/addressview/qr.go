package addressview

import (
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"

	"github.com/jsvisa/blockscout/internal/metrics"
	"github.com/jsvisa/blockscout/pkg/chain"
)

// DefaultQRSize is the rendered QR image edge length in pixels.
const DefaultQRSize = 256

// QRCode renders the address's canonical hex string as a QR PNG and
// returns it base64-encoded. Output is deterministic for a given address
// and always decodes back to a valid PNG payload.
func QRCode(a *chain.Address) (string, error) {
	return QRCodeSized(a, DefaultQRSize)
}

// QRCodeSized is QRCode with an explicit image size.
func QRCodeSized(a *chain.Address, size int) (string, error) {
	png, err := qrcode.Encode(Hash(a), qrcode.Medium, size)
	if err != nil {
		metrics.QREncodesTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("encode address qr: %w", err)
	}
	metrics.QREncodesTotal.WithLabelValues("ok").Inc()
	return base64.StdEncoding.EncodeToString(png), nil
}
