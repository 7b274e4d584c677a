package enum

// BarcodeFormat names the symbology configured for product labels. Stored
// as its string value; the barcode encoder decides which it can produce.
type BarcodeFormat string

const (
	BarcodeCode128    BarcodeFormat = "CODE128"
	BarcodeEAN13      BarcodeFormat = "EAN13"
	BarcodeUPC        BarcodeFormat = "UPC"
	BarcodeCode39     BarcodeFormat = "CODE39"
	BarcodeITF14      BarcodeFormat = "ITF14"
	BarcodeMSI        BarcodeFormat = "MSI"
	BarcodePharmacode BarcodeFormat = "PHARMACODE"
)

// Valid reports whether the format is a recognized symbology name.
func (f BarcodeFormat) Valid() bool {
	switch f {
	case BarcodeCode128, BarcodeEAN13, BarcodeUPC, BarcodeCode39,
		BarcodeITF14, BarcodeMSI, BarcodePharmacode:
		return true
	}
	return false
}
