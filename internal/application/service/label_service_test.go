package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkamande/tillpoint-api/internal/domain/entity"
	"github.com/mkamande/tillpoint-api/internal/domain/enum"
	"github.com/mkamande/tillpoint-api/pkg/apperror"
	"github.com/mkamande/tillpoint-api/pkg/barcode"
)

func newLabelService(repo *fakeSettingsRepo, p *fakePrinter) *LabelService {
	return NewLabelService(NewSettingsService(repo), p, barcode.New())
}

func TestResolveDimensions(t *testing.T) {
	tests := []struct {
		name   string
		cfg    entity.LabelSettings
		width  float64
		height float64
		scale  float64
	}{
		{"small", entity.LabelSettings{LabelSize: enum.LabelSizeSmall}, 37, 22, 0.6},
		{"medium", entity.LabelSettings{LabelSize: enum.LabelSizeMedium}, 50, 25, 0.5},
		{"large", entity.LabelSettings{LabelSize: enum.LabelSizeLarge}, 62, 29, 0.4},
		{"custom", entity.LabelSettings{LabelSize: enum.LabelSizeCustom, CustomWidth: "55", CustomHeight: "30"}, 55, 30, 0.5},
		{"custom wide", entity.LabelSettings{LabelSize: enum.LabelSizeCustom, CustomWidth: "80", CustomHeight: "40"}, 80, 40, 0.3},
		{"custom narrow", entity.LabelSettings{LabelSize: enum.LabelSizeCustom, CustomWidth: "30", CustomHeight: "15"}, 30, 15, 0.65},
		{"custom unparseable", entity.LabelSettings{LabelSize: enum.LabelSizeCustom, CustomWidth: "wide", CustomHeight: ""}, 50, 25, 0.5},
		{"custom out of range", entity.LabelSettings{LabelSize: enum.LabelSizeCustom, CustomWidth: "500", CustomHeight: "5"}, 50, 25, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dims := ResolveDimensions(&tt.cfg)
			assert.InDelta(t, tt.width, dims.WidthMm, 0.001)
			assert.InDelta(t, tt.height, dims.HeightMm, 0.001)
			assert.InDelta(t, tt.scale, dims.Scale, 0.001)
		})
	}
}

func TestComposeLabelCarriesSettings(t *testing.T) {
	repo := &fakeSettingsRepo{
		label: &entity.LabelSettings{
			LabelSize:     enum.LabelSizeSmall,
			FontSize:      10,
			ShowSKU:       true,
			ShowBarcode:   false,
			ShowPrice:     true,
			BarcodeFormat: enum.BarcodeEAN13,
		},
	}
	svc := newLabelService(repo, newFakePrinter())

	doc := svc.Compose(context.Background(), entity.LabelContent{Name: "Widget", SKU: "W-1", Price: 1299})
	assert.InDelta(t, 37.0, doc.Dimensions.WidthMm, 0.001)
	assert.Equal(t, 10, doc.FontSizePx)
	assert.False(t, doc.ShowBarcode)
	assert.Equal(t, enum.BarcodeEAN13, doc.BarcodeFormat)
}

func TestBarcodePayloadFallback(t *testing.T) {
	assert.Equal(t, "W-1", entity.LabelContent{SKU: "W-1"}.BarcodePayload())
	assert.Equal(t, "SAMPLE-123", entity.LabelContent{}.BarcodePayload())
}

func TestLabelRenderPDF(t *testing.T) {
	svc := newLabelService(&fakeSettingsRepo{}, newFakePrinter())

	doc := svc.Compose(context.Background(), entity.LabelContent{Name: "Widget", SKU: "W-1", Price: 1299})
	pdf, err := svc.RenderPDF(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestLabelRenderPDFWithBarcode(t *testing.T) {
	repo := &fakeSettingsRepo{
		label: &entity.LabelSettings{
			LabelSize:     enum.LabelSizeMedium,
			FontSize:      8,
			ShowBarcode:   true,
			BarcodeFormat: enum.BarcodeCode128,
		},
	}
	svc := newLabelService(repo, newFakePrinter())

	doc := svc.Compose(context.Background(), entity.LabelContent{Name: "Widget", SKU: "W-1", Price: 1299})
	require.True(t, doc.ShowBarcode)
	pdf, err := svc.RenderPDF(doc)
	require.NoError(t, err, "a renderable barcode must not break the label PDF")
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestLabelRenderPDFUnsupportedSymbology(t *testing.T) {
	repo := &fakeSettingsRepo{
		label: &entity.LabelSettings{
			LabelSize:     enum.LabelSizeMedium,
			FontSize:      8,
			ShowBarcode:   true,
			BarcodeFormat: enum.BarcodeMSI,
		},
	}
	svc := newLabelService(repo, newFakePrinter())

	doc := svc.Compose(context.Background(), entity.LabelContent{Name: "Widget", SKU: "W-1", Price: 1299})
	pdf, err := svc.RenderPDF(doc)
	require.NoError(t, err, "an unsupported symbology omits the barcode, not the label")
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestCalibrationPDF(t *testing.T) {
	svc := newLabelService(&fakeSettingsRepo{}, newFakePrinter())

	pdf, err := svc.RenderCalibrationPDF(context.Background())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestLabelPrint(t *testing.T) {
	p := newFakePrinter()
	svc := newLabelService(&fakeSettingsRepo{}, p)
	ctx := context.Background()

	doc := svc.Compose(ctx, entity.LabelContent{Name: "Widget", SKU: "W-1", Price: 1299})
	require.NoError(t, svc.Print(ctx, doc))
	require.Equal(t, 1, p.jobCount())
	assert.True(t, bytes.Contains(p.jobs[0], []byte("Widget")))
}

func TestLabelPrintUnavailable(t *testing.T) {
	p := newFakePrinter()
	p.connected = false
	svc := newLabelService(&fakeSettingsRepo{}, p)

	doc := svc.Compose(context.Background(), entity.LabelContent{Name: "Widget"})
	assert.ErrorIs(t, svc.Print(context.Background(), doc), apperror.ErrPrinterUnavailable)
}

func TestTestPrintUsesSampleContent(t *testing.T) {
	p := newFakePrinter()
	svc := newLabelService(&fakeSettingsRepo{}, p)

	require.NoError(t, svc.TestPrint(context.Background()))
	require.Equal(t, 1, p.jobCount())
	assert.True(t, bytes.Contains(p.jobs[0], []byte("Sample Product")))
}

func TestSupportedSymbology(t *testing.T) {
	svc := newLabelService(&fakeSettingsRepo{}, newFakePrinter())

	assert.True(t, svc.SupportedSymbology(enum.BarcodeCode128))
	assert.False(t, svc.SupportedSymbology(enum.BarcodeMSI))
	assert.False(t, svc.SupportedSymbology(enum.BarcodePharmacode))
}
