// Package barcode adapts the boombuler symbology encoders behind a narrow
// capability interface so composers never depend on a specific engine.
package barcode

import (
	"errors"
	"fmt"
	"image"
	"strings"

	bb "github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/code39"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/twooffive"
)

// Format identifies a barcode symbology.
type Format string

const (
	FormatCode128    Format = "CODE128"
	FormatEAN13      Format = "EAN13"
	FormatUPC        Format = "UPC"
	FormatCode39     Format = "CODE39"
	FormatITF14      Format = "ITF14"
	FormatMSI        Format = "MSI"
	FormatPharmacode Format = "PHARMACODE"
)

// ErrUnsupportedSymbology is returned for formats the encoder cannot
// produce. Callers are expected to omit the graphic rather than fail the
// whole document.
var ErrUnsupportedSymbology = errors.New("barcode: unsupported symbology")

// Encoder produces a scannable graphic for a payload in a given symbology.
type Encoder interface {
	Encode(payload string, format Format, widthPx, heightPx int) (image.Image, error)
}

// New returns the default boombuler-backed encoder.
func New() Encoder {
	return &encoder{}
}

type encoder struct{}

func (e *encoder) Encode(payload string, format Format, widthPx, heightPx int) (image.Image, error) {
	if payload == "" {
		return nil, errors.New("barcode: empty payload")
	}
	if widthPx <= 0 || heightPx <= 0 {
		return nil, fmt.Errorf("barcode: invalid target size %dx%d", widthPx, heightPx)
	}

	var (
		code bb.Barcode
		err  error
	)
	switch normalize(format) {
	case FormatCode128:
		code, err = code128.Encode(payload)
	case FormatEAN13:
		code, err = ean.Encode(payload)
	case FormatUPC:
		// UPC-A is EAN-13 with an implied leading zero.
		code, err = ean.Encode(upcPayload(payload))
	case FormatCode39:
		code, err = code39.Encode(payload, true, true)
	case FormatITF14:
		code, err = twooffive.Encode(payload, true)
	case FormatMSI, FormatPharmacode:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSymbology, format)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSymbology, format)
	}
	if err != nil {
		return nil, fmt.Errorf("barcode: encode %s: %w", format, err)
	}

	scaled, err := bb.Scale(code, widthPx, heightPx)
	if err != nil {
		return nil, fmt.Errorf("barcode: scale %s: %w", format, err)
	}
	return scaled, nil
}

func normalize(f Format) Format {
	return Format(strings.ToUpper(strings.TrimSpace(string(f))))
}

func upcPayload(payload string) string {
	if len(payload) == 11 || len(payload) == 12 {
		return "0" + payload
	}
	return payload
}
