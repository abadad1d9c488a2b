package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/librevault/discovery/internal/ports"
)

// Compile-time check that MockHealthRegistry implements ports.HealthRegistry.
var _ ports.HealthRegistry = (*MockHealthRegistry)(nil)

// MockHealthRegistry is a testify mock for ports.HealthRegistry.
type MockHealthRegistry struct {
	mock.Mock
}

// NewMockHealthRegistry creates a MockHealthRegistry whose expectations are
// asserted during test cleanup.
func NewMockHealthRegistry(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockHealthRegistry {
	m := &MockHealthRegistry{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockHealthRegistry) Register(checker ports.HealthChecker) {
	m.Called(checker)
}

func (m *MockHealthRegistry) CheckAll(ctx context.Context) map[string]error {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.(map[string]error)
	}
	return nil
}
