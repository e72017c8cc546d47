package receipt

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Tesseract runs the tesseract CLI to recognize receipt text. The TSV output
// carries per-word confidences, which are averaged into the engine score.
type Tesseract struct {
	binary string
}

func NewTesseract() *Tesseract {
	return &Tesseract{binary: "tesseract"}
}

func (t *Tesseract) Recognize(ctx context.Context, image []byte) (string, float64, error) {
	dir, err := os.MkdirTemp("", "receipt-ocr-*")
	if err != nil {
		return "", 0, fmt.Errorf("creating temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "receipt.img")
	if err := os.WriteFile(path, image, 0o600); err != nil {
		return "", 0, fmt.Errorf("writing image: %w", err)
	}

	var out bytes.Buffer

	cmd := exec.CommandContext(ctx, t.binary, path, "stdout", "--psm", "6", "tsv")
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return "", 0, fmt.Errorf("running tesseract: %w", err)
	}

	text, confidence := parseTSV(out.String())

	return text, confidence, nil
}

// parseTSV reconstructs line text from tesseract's TSV output and averages
// the word-level confidences. Column layout: level, page, block, paragraph,
// line, word, left, top, width, height, conf, text.
func parseTSV(tsv string) (string, float64) {
	var (
		b         strings.Builder
		confSum   float64
		confCount int
		lastLine  string
	)

	for i, row := range strings.Split(tsv, "\n") {
		if i == 0 {
			continue // header
		}

		cols := strings.Split(row, "\t")
		if len(cols) < 12 {
			continue
		}

		conf, err := strconv.ParseFloat(cols[10], 64)
		if err != nil || conf < 0 {
			continue // conf -1 marks non-word rows
		}

		word := strings.TrimSpace(cols[11])
		if word == "" {
			continue
		}

		lineKey := cols[2] + ":" + cols[3] + ":" + cols[4]
		if lastLine != "" && lineKey != lastLine {
			b.WriteByte('\n')
		} else if lastLine != "" {
			b.WriteByte(' ')
		}

		b.WriteString(word)
		lastLine = lineKey

		confSum += conf
		confCount++
	}

	if confCount == 0 {
		return "", 0
	}

	return b.String(), confSum / float64(confCount)
}
