package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkamande/tillpoint-api/internal/domain/entity"
	"github.com/mkamande/tillpoint-api/pkg/apperror"
	"github.com/mkamande/tillpoint-api/pkg/qr"
)

func newReceiptService(repo *fakeSettingsRepo, p *fakePrinter) *ReceiptService {
	return NewReceiptService(NewSettingsService(repo), p, qr.New(qr.LevelMedium), time.Millisecond)
}

func TestComposeRejectsBadOrders(t *testing.T) {
	svc := newReceiptService(&fakeSettingsRepo{}, newFakePrinter())
	ctx := context.Background()

	_, err := svc.Compose(ctx, nil)
	assert.ErrorIs(t, err, apperror.ErrInvalidOrderData)

	_, err = svc.Compose(ctx, &entity.CompletedOrder{ID: "X"})
	assert.ErrorIs(t, err, apperror.ErrInvalidOrderData)

	_, err = svc.Compose(ctx, &entity.CompletedOrder{Items: testOrder().Items})
	assert.ErrorIs(t, err, apperror.ErrInvalidOrderData)
}

func TestComposeBuildsDocument(t *testing.T) {
	repo := &fakeSettingsRepo{
		receipt: &entity.ReceiptSettings{
			StoreName:  "Corner Coffee",
			Address:    "12 Main St",
			ShowQRCode: true,
			ThankYou:   "Come again!",
			CopyCount:  2,
			AutoPrint:  true,
		},
		general: &entity.GeneralSettings{DateFormat: "YYYY-MM-DD", Timezone: "UTC"},
	}
	svc := newReceiptService(repo, newFakePrinter())

	doc, err := svc.Compose(context.Background(), testOrder())
	require.NoError(t, err)

	assert.Equal(t, "Corner Coffee", doc.Header.StoreName)
	assert.Equal(t, "Jordan", doc.Info.Customer)
	assert.Equal(t, "2026-03-14 15:09", doc.Info.Date)
	assert.InDelta(t, 64.73, doc.Summary.Total, 0.001)
	assert.InDelta(t, 5.27, doc.Change, 0.001)
	require.Len(t, doc.Items, 2)
	assert.InDelta(t, 49.94, doc.Items[0].Total, 0.001)
	assert.True(t, doc.AutoPrint)
	assert.Equal(t, 2, doc.Copies)
	assert.Equal(t,
		"order=INV-1001&date=2026-03-14T15:09:00Z&total=64.73&items=2",
		doc.Footer.QRPayload)
}

func TestComposeCustomerFallback(t *testing.T) {
	svc := newReceiptService(&fakeSettingsRepo{}, newFakePrinter())

	order := testOrder()
	order.Customer = ""
	doc, err := svc.Compose(context.Background(), order)
	require.NoError(t, err)
	assert.Equal(t, "Walk in customer", doc.Info.Customer)
}

func TestComposeIsDeterministic(t *testing.T) {
	svc := newReceiptService(&fakeSettingsRepo{}, newFakePrinter())
	ctx := context.Background()

	a, err := svc.Compose(ctx, testOrder())
	require.NoError(t, err)
	b, err := svc.Compose(ctx, testOrder())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestComposeUsesDefaultsWhenStoreDown(t *testing.T) {
	svc := NewReceiptService(NewSettingsService(brokenSettingsRepo{}), newFakePrinter(), qr.New(qr.LevelMedium), time.Millisecond)

	doc, err := svc.Compose(context.Background(), testOrder())
	require.NoError(t, err, "a dead settings store must not block receipts")
	assert.Equal(t, "My Store", doc.Header.StoreName)
	assert.Equal(t, 1, doc.Copies)
}

func TestQRPayloadOverride(t *testing.T) {
	cfg := &entity.ReceiptSettings{QRCodeURL: "https://shop.example/orders/INV-1001"}
	assert.Equal(t, "https://shop.example/orders/INV-1001", BuildQRPayload(testOrder(), cfg))

	assert.Equal(t,
		"order=INV-1001&date=2026-03-14T15:09:00Z&total=64.73&items=2",
		BuildQRPayload(testOrder(), &entity.ReceiptSettings{}))
}

func TestFormatESCPOSOmitsZeroLines(t *testing.T) {
	svc := newReceiptService(&fakeSettingsRepo{}, newFakePrinter())
	ctx := context.Background()

	doc, err := svc.Compose(ctx, testOrder())
	require.NoError(t, err)
	data := svc.FormatESCPOS(doc)
	assert.True(t, bytes.Contains(data, []byte("Discount")))
	assert.True(t, bytes.Contains(data, []byte("-5.00")))
	assert.True(t, bytes.Contains(data, []byte("Change")))

	order := testOrder()
	order.Discount = 0
	order.Tax = 0
	order.SubTotal = 6473
	order.Change = 0
	doc, err = svc.Compose(ctx, order)
	require.NoError(t, err)
	data = svc.FormatESCPOS(doc)
	assert.False(t, bytes.Contains(data, []byte("Discount")))
	assert.False(t, bytes.Contains(data, []byte("Tax")))
	assert.False(t, bytes.Contains(data, []byte("Change")))
}

func TestRenderPDF(t *testing.T) {
	svc := newReceiptService(&fakeSettingsRepo{}, newFakePrinter())

	doc, err := svc.Compose(context.Background(), testOrder())
	require.NoError(t, err)

	pdf, err := svc.RenderPDF(doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestReceiptHeightTracksContent(t *testing.T) {
	svc := newReceiptService(&fakeSettingsRepo{}, newFakePrinter())
	ctx := context.Background()

	short, err := svc.Compose(ctx, testOrder())
	require.NoError(t, err)

	long := testOrder()
	for i := 0; i < 20; i++ {
		long.Items = append(long.Items, entity.LineItem{Name: "Extra", Quantity: 1, Price: 100})
	}
	tall, err := svc.Compose(ctx, long)
	require.NoError(t, err)

	assert.Greater(t, estimateReceiptHeightMm(tall), estimateReceiptHeightMm(short))

	noQR := *short
	noQR.Footer.ShowQRCode = false
	noQR.Footer.QRPayload = ""
	assert.Greater(t, estimateReceiptHeightMm(short), estimateReceiptHeightMm(&noQR))

	pdf, err := svc.RenderPDF(tall)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestPrintCopies(t *testing.T) {
	p := newFakePrinter()
	repo := &fakeSettingsRepo{receipt: &entity.ReceiptSettings{CopyCount: 3}}
	svc := newReceiptService(repo, p)
	ctx := context.Background()

	doc, err := svc.Compose(ctx, testOrder())
	require.NoError(t, err)
	require.NoError(t, svc.Print(ctx, doc))
	assert.Equal(t, 3, p.jobCount())
}

func TestPrintUnavailable(t *testing.T) {
	p := newFakePrinter()
	p.connected = false
	svc := newReceiptService(&fakeSettingsRepo{}, p)
	ctx := context.Background()

	doc, err := svc.Compose(ctx, testOrder())
	require.NoError(t, err)
	assert.ErrorIs(t, svc.Print(ctx, doc), apperror.ErrPrinterUnavailable)
	assert.Equal(t, 0, p.jobCount())
}

func TestAutoPrint(t *testing.T) {
	p := newFakePrinter()
	repo := &fakeSettingsRepo{receipt: &entity.ReceiptSettings{AutoPrint: true, CopyCount: 1}}
	svc := newReceiptService(repo, p)

	doc, err := svc.Compose(context.Background(), testOrder())
	require.NoError(t, err)
	require.True(t, doc.AutoPrint)

	svc.AutoPrint(doc)
	assert.Eventually(t, func() bool { return p.jobCount() == 1 }, time.Second, 5*time.Millisecond)
}

func TestAutoPrintDisabled(t *testing.T) {
	p := newFakePrinter()
	svc := newReceiptService(&fakeSettingsRepo{}, p)

	doc, err := svc.Compose(context.Background(), testOrder())
	require.NoError(t, err)
	require.False(t, doc.AutoPrint)

	svc.AutoPrint(doc)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 0, p.jobCount())
}
