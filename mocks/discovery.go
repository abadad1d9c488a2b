package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/librevault/discovery/internal/domain/peer"
	"github.com/librevault/discovery/internal/ports"
)

// Compile-time check that MockDiscovery implements ports.Discovery.
var _ ports.Discovery = (*MockDiscovery)(nil)

// MockDiscovery is a testify mock for ports.Discovery.
type MockDiscovery struct {
	mock.Mock
}

// NewMockDiscovery creates a MockDiscovery whose expectations are asserted
// during test cleanup.
func NewMockDiscovery(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockDiscovery {
	m := &MockDiscovery{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockDiscovery) Announce(ctx context.Context, ann *peer.Announce) (*ports.AnnounceResult, error) {
	args := m.Called(ctx, ann)
	if v := args.Get(0); v != nil {
		return v.(*ports.AnnounceResult), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDiscovery) Deannounce(ctx context.Context, dea *peer.Deannounce) error {
	args := m.Called(ctx, dea)
	return args.Error(0)
}
