// Package importer turns bank statement exports into transaction params.
package importer

import (
	"io"

	"github.com/pocketwatch-io/pocketwatch/internal/transaction"
)

type Importer interface {
	Parse(r io.Reader) ([]transaction.CreateParams, error)
}
