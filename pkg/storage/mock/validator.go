package mock

import (
	"github.com/tcfw/starnotary/pkg/storage"
)

// MockValidator reports Findings (or Err) once the chain grows past
// FailAbove blocks
type MockValidator struct {
	FailAbove int
	Findings  []storage.Finding
	Err       error

	Calls int
}

func (m *MockValidator) Validate(blocks []*storage.Block) ([]storage.Finding, error) {
	m.Calls++

	if len(blocks) <= m.FailAbove {
		return nil, nil
	}

	if m.Err != nil {
		return nil, m.Err
	}

	return m.Findings, nil
}
