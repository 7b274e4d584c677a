package barcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSupportedFormats(t *testing.T) {
	enc := New()

	tests := []struct {
		name    string
		payload string
		format  Format
	}{
		{"code128 sample sku", "SAMPLE-123", FormatCode128},
		{"ean13", "5901234123457", FormatEAN13},
		{"upc 12 digits", "036000291452", FormatUPC},
		{"code39", "SAMPLE-123", FormatCode39},
		{"itf14", "15400141288763", FormatITF14},
		{"lowercase format accepted", "SAMPLE-123", Format("code128")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := enc.Encode(tt.payload, tt.format, 200, 60)
			require.NoError(t, err)
			require.NotNil(t, img)
			bounds := img.Bounds()
			assert.Equal(t, 200, bounds.Dx())
			assert.Equal(t, 60, bounds.Dy())
		})
	}
}

func TestEncodeUnsupportedSymbology(t *testing.T) {
	enc := New()

	for _, format := range []Format{FormatMSI, FormatPharmacode, Format("AZTEC-RUNE")} {
		_, err := enc.Encode("SAMPLE-123", format, 200, 60)
		assert.ErrorIs(t, err, ErrUnsupportedSymbology, "format %s", format)
	}
}

func TestEncodeRejectsBadInput(t *testing.T) {
	enc := New()

	_, err := enc.Encode("", FormatCode128, 200, 60)
	assert.Error(t, err)

	_, err = enc.Encode("SAMPLE-123", FormatCode128, 0, 60)
	assert.Error(t, err)

	// EAN-13 payloads must be numeric with a valid length.
	_, err = enc.Encode("not-a-number", FormatEAN13, 200, 60)
	assert.Error(t, err)
}
