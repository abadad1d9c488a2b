package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/librevault/discovery/internal/ports"
)

// Compile-time check that MockHealthChecker implements ports.HealthChecker.
var _ ports.HealthChecker = (*MockHealthChecker)(nil)

// MockHealthChecker is a testify mock for ports.HealthChecker.
type MockHealthChecker struct {
	mock.Mock
}

// NewMockHealthChecker creates a MockHealthChecker whose expectations are
// asserted during test cleanup.
func NewMockHealthChecker(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockHealthChecker {
	m := &MockHealthChecker{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockHealthChecker) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
