package receipt

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestService_Process(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	image := []byte{0xFF, 0xD8, 0xFF}

	ocr := NewMockOCREngine(ctrl)
	ocr.EXPECT().
		Recognize(gomock.Any(), image).
		Return("STARBUCKS\nLATTE $6.50\nTOTAL $6.50", 92.0, nil)

	svc := NewService(ocr, NewParser(WithClock(func() time.Time {
		return time.Date(2025, 8, 20, 12, 0, 0, 0, time.UTC)
	})))

	data, validation, err := svc.Process(context.Background(), image)
	require.NoError(t, err)

	assert.Equal(t, "Starbucks", data.Merchant)
	assert.Equal(t, int64(650), data.AmountCents)
	assert.True(t, validation.Valid)
	assert.Empty(t, validation.Errors)
}

func TestService_Process_DecodesLegacyEncodedText(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// "CAFÉ MÜNCHEN" in Windows-1252.
	raw := string([]byte{'C', 'A', 'F', 0xC9, ' ', 'M', 0xDC, 'N', 'C', 'H', 'E', 'N', '\n',
		'T', 'O', 'T', 'A', 'L', ' ', '$', '9', '.', '5', '0'})

	ocr := NewMockOCREngine(ctrl)
	ocr.EXPECT().
		Recognize(gomock.Any(), gomock.Any()).
		Return(raw, 75.0, nil)

	svc := NewService(ocr, NewParser())

	data, _, err := svc.Process(context.Background(), []byte("img"))
	require.NoError(t, err)

	assert.Equal(t, "Café München", data.Merchant)
}

func TestService_Process_OCRError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ocr := NewMockOCREngine(ctrl)
	ocr.EXPECT().
		Recognize(gomock.Any(), gomock.Any()).
		Return("", 0.0, errors.New("engine crashed"))

	svc := NewService(ocr, NewParser())

	_, _, err := svc.Process(context.Background(), []byte("img"))
	require.ErrorContains(t, err, "recognizing receipt text")
}

func TestParseTSV(t *testing.T) {
	tsv := "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext\n" +
		"5\t1\t1\t1\t1\t1\t10\t10\t50\t20\t90\tWALMART\n" +
		"5\t1\t1\t1\t1\t2\t70\t10\t50\t20\t80\tSUPERCENTER\n" +
		"4\t1\t1\t1\t2\t0\t0\t40\t200\t20\t-1\t\n" +
		"5\t1\t1\t1\t2\t1\t10\t40\t50\t20\t70\tTOTAL\n" +
		"5\t1\t1\t1\t2\t2\t70\t40\t50\t20\t60\t$27.45\n"

	text, confidence := parseTSV(tsv)

	assert.Equal(t, "WALMART SUPERCENTER\nTOTAL $27.45", text)
	assert.InDelta(t, 75.0, confidence, 1e-9)
}

func TestParseTSV_Empty(t *testing.T) {
	text, confidence := parseTSV("")

	assert.Empty(t, text)
	assert.Zero(t, confidence)
}
