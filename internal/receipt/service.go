package receipt

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pocketwatch-io/pocketwatch/internal/encoding"
)

// OCREngine recognizes text in a receipt image and reports its 0-100
// confidence score.
//
//go:generate mockgen -source=service.go -destination=ocr_mock.go -package=receipt
type OCREngine interface {
	Recognize(ctx context.Context, image []byte) (text string, confidence float64, err error)
}

// Service runs OCR over a receipt image and parses the result.
type Service struct {
	ocr    OCREngine
	parser *Parser
}

func NewService(ocr OCREngine, parser *Parser) *Service {
	return &Service{ocr: ocr, parser: parser}
}

// Process recognizes, normalizes and parses a receipt image. The returned
// validation tells the caller whether the data is usable as-is.
func (s *Service) Process(ctx context.Context, image []byte) (Data, Validation, error) {
	started := time.Now()

	text, confidence, err := s.ocr.Recognize(ctx, image)
	if err != nil {
		return Data{}, Validation{}, fmt.Errorf("recognizing receipt text: %w", err)
	}

	// OCR engines occasionally emit legacy-encoded text for non-ASCII
	// merchants. Normalize to UTF-8 before parsing.
	normalized, err := encoding.ToUTF8String([]byte(text))
	if err != nil {
		return Data{}, Validation{}, fmt.Errorf("normalizing receipt text: %w", err)
	}

	return s.finish(started, normalized, confidence)
}

// ProcessText parses already-recognized receipt text, for callers that ran
// OCR elsewhere. confidence is the engine's 0-100 score.
func (s *Service) ProcessText(text string, confidence float64) (Data, Validation, error) {
	started := time.Now()

	normalized, err := encoding.ToUTF8String([]byte(text))
	if err != nil {
		return Data{}, Validation{}, fmt.Errorf("normalizing receipt text: %w", err)
	}

	return s.finish(started, normalized, confidence)
}

func (s *Service) finish(started time.Time, text string, confidence float64) (Data, Validation, error) {
	data := s.parser.Parse(text, confidence)
	data.Elapsed = time.Since(started)

	validation := Validate(data)

	slog.Debug("processed receipt",
		"merchant", data.Merchant,
		"amount_cents", data.AmountCents,
		"items", len(data.Items),
		"confidence", data.Confidence,
		"valid", validation.Valid,
	)

	return data, validation, nil
}
