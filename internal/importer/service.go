package importer

import (
	"io"

	"github.com/pocketwatch-io/pocketwatch/internal/importer/statement"
	"github.com/pocketwatch-io/pocketwatch/internal/transaction"
)

type Service struct {
	statements Importer
}

func NewService() *Service {
	return &Service{
		statements: statement.NewParser(),
	}
}

// Import parses a statement export, auto-detecting its column layout.
func (s *Service) Import(r io.Reader) ([]transaction.CreateParams, error) {
	return s.statements.Parse(r)
}
