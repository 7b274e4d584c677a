package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mkamande/tillpoint-api/internal/domain/entity"
)

// fakeSettingsRepo is an in-memory SettingsRepository for tests.
type fakeSettingsRepo struct {
	receipt *entity.ReceiptSettings
	label   *entity.LabelSettings
	general *entity.GeneralSettings
}

func (f *fakeSettingsRepo) GetReceiptSettings(ctx context.Context) (*entity.ReceiptSettings, error) {
	return f.receipt, nil
}

func (f *fakeSettingsRepo) SaveReceiptSettings(ctx context.Context, s *entity.ReceiptSettings) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.receipt = s
	return nil
}

func (f *fakeSettingsRepo) GetLabelSettings(ctx context.Context) (*entity.LabelSettings, error) {
	return f.label, nil
}

func (f *fakeSettingsRepo) SaveLabelSettings(ctx context.Context, s *entity.LabelSettings) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.label = s
	return nil
}

func (f *fakeSettingsRepo) GetGeneralSettings(ctx context.Context) (*entity.GeneralSettings, error) {
	return f.general, nil
}

func (f *fakeSettingsRepo) SaveGeneralSettings(ctx context.Context, s *entity.GeneralSettings) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	f.general = s
	return nil
}

// brokenSettingsRepo fails every read, simulating a dead settings store.
type brokenSettingsRepo struct{}

var errStoreDown = errors.New("settings store unavailable")

func (brokenSettingsRepo) GetReceiptSettings(ctx context.Context) (*entity.ReceiptSettings, error) {
	return nil, errStoreDown
}

func (brokenSettingsRepo) SaveReceiptSettings(ctx context.Context, s *entity.ReceiptSettings) error {
	return errStoreDown
}

func (brokenSettingsRepo) GetLabelSettings(ctx context.Context) (*entity.LabelSettings, error) {
	return nil, errStoreDown
}

func (brokenSettingsRepo) SaveLabelSettings(ctx context.Context, s *entity.LabelSettings) error {
	return errStoreDown
}

func (brokenSettingsRepo) GetGeneralSettings(ctx context.Context) (*entity.GeneralSettings, error) {
	return nil, errStoreDown
}

func (brokenSettingsRepo) SaveGeneralSettings(ctx context.Context, s *entity.GeneralSettings) error {
	return errStoreDown
}

// fakePrinter records every job it is handed.
type fakePrinter struct {
	mu        sync.Mutex
	jobs      [][]byte
	connected bool
	failPrint bool
}

func newFakePrinter() *fakePrinter {
	return &fakePrinter{connected: true}
}

func (p *fakePrinter) Print(data []byte) error {
	if p.failPrint {
		return errors.New("printer offline")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.jobs = append(p.jobs, data)
	return nil
}

func (p *fakePrinter) Close() error { return nil }

func (p *fakePrinter) IsConnected() bool { return p.connected }

func (p *fakePrinter) jobCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.jobs)
}

func testOrder() *entity.CompletedOrder {
	return &entity.CompletedOrder{
		ID:       "INV-1001",
		Date:     time.Date(2026, 3, 14, 15, 9, 0, 0, time.UTC),
		Customer: "Jordan",
		Cashier:  "Alex",
		Items: []entity.LineItem{
			{Name: "Espresso Beans 1kg", Quantity: 2, Price: 2497},
			{Name: "Filter Papers", Quantity: 1, Price: 1500},
		},
		SubTotal: 6494,
		Discount: 500,
		Tax:      479,
		Total:    6473,
		Payments: []entity.PaymentLine{{Method: "Cash", Amount: 6473}},
		Change:   527,
	}
}
