// Package devtools bundles the small developer utilities: JSON
// formatting, base64 conversion and the QR image URL builder.
package devtools

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/url"

	"github.com/mesh-intelligence/workos/internal/shell"
)

// FormatJSON pretty-prints a JSON document with two-space indentation.
func FormatJSON(input string) (string, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, []byte(input), "", "  "); err != nil {
		return "", fmt.Errorf("invalid JSON: %w", err)
	}
	return buf.String(), nil
}

// Base64Encode encodes text as standard base64.
func Base64Encode(input string) string {
	return base64.StdEncoding.EncodeToString([]byte(input))
}

// Base64Decode decodes standard base64 back to text.
func Base64Decode(input string) (string, error) {
	out, err := base64.StdEncoding.DecodeString(input)
	if err != nil {
		return "", fmt.Errorf("invalid base64: %w", err)
	}
	return string(out), nil
}

// QRImageURL builds the image URL for a QR code encoding the given
// text.
func QRImageURL(text string) string {
	return "https://api.qrserver.com/v1/create-qr-code/?size=200x200&data=" + url.QueryEscape(text)
}

// View lists the available tools.
type View struct{}

func (View) ID() string { return shell.ViewDevTools }

func (View) Render(w io.Writer, dark bool) error {
	fmt.Fprintln(w, shell.Heading("Dev Tools", dark))
	fmt.Fprintln(w, "JSON / Base64 / QR")
	return nil
}

// QRView renders the QR image URL for a fixed text, or a prompt when
// none is set.
type QRView struct {
	Text string
}

func (QRView) ID() string { return shell.ViewQR }

func (v QRView) Render(w io.Writer, dark bool) error {
	fmt.Fprintln(w, shell.Heading("Tạo mã QR", dark))
	if v.Text == "" {
		fmt.Fprintln(w, "Link/Text...")
		return nil
	}
	fmt.Fprintln(w, QRImageURL(v.Text))
	return nil
}
