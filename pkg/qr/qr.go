// Package qr wraps QR code generation behind a small capability interface.
package qr

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Level is the error-correction level applied to generated codes.
type Level int

const (
	LevelLow Level = iota
	LevelMedium
	LevelHigh
	LevelHighest
)

// Encoder turns a payload string into a rendered QR graphic (PNG bytes).
type Encoder interface {
	Encode(payload string, sizePx int) ([]byte, error)
}

// New returns an encoder at the given error-correction level.
func New(level Level) Encoder {
	return &encoder{level: recoveryLevel(level)}
}

type encoder struct {
	level qrcode.RecoveryLevel
}

func (e *encoder) Encode(payload string, sizePx int) ([]byte, error) {
	if payload == "" {
		return nil, errors.New("qr: empty payload")
	}
	if sizePx <= 0 {
		sizePx = 256
	}
	png, err := qrcode.Encode(payload, e.level, sizePx)
	if err != nil {
		return nil, fmt.Errorf("qr: encode: %w", err)
	}
	return png, nil
}

func recoveryLevel(level Level) qrcode.RecoveryLevel {
	switch level {
	case LevelLow:
		return qrcode.Low
	case LevelHigh:
		return qrcode.High
	case LevelHighest:
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}
