package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketwatch-io/pocketwatch/internal/encoding"
)

func TestNewUTF8Reader_UTF8Passthrough(t *testing.T) {
	// Valid UTF-8 with accented characters should pass through unchanged.
	input := "Date,Description,Amount\n2025-07-30,Café visit,-4.50\n"
	r, err := encoding.NewUTF8Reader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestNewUTF8Reader_Latin1(t *testing.T) {
	// Windows-1252 encoded "Café München\n".
	// In Windows-1252: é = 0xE9, ü = 0xFC
	latin1Bytes := []byte{
		'C', 'a', 'f', 0xE9, ' ',
		'M', 0xFC, 'n', 'c', 'h', 'e', 'n', '\n',
	}

	r, err := encoding.NewUTF8Reader(bytes.NewReader(latin1Bytes))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Café München\n", string(got))
}

func TestNewUTF8Reader_UTF8BOM(t *testing.T) {
	// UTF-8 BOM (0xEF 0xBB 0xBF) should be stripped.
	bom := []byte{0xEF, 0xBB, 0xBF}
	content := []byte("Date,Description,Amount\n")
	input := append(bom, content...)

	r, err := encoding.NewUTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Date,Description,Amount\n", string(got))
}

func TestToUTF8String(t *testing.T) {
	// Windows-1252 "Café" decodes to the UTF-8 string.
	got, err := encoding.ToUTF8String([]byte{'C', 'a', 'f', 0xE9})
	require.NoError(t, err)
	assert.Equal(t, "Café", got)
}
