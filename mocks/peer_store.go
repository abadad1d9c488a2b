package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/librevault/discovery/internal/domain/peer"
	"github.com/librevault/discovery/internal/ports"
)

// Compile-time check that MockPeerStore implements ports.PeerStore.
var _ ports.PeerStore = (*MockPeerStore)(nil)

// MockPeerStore is a testify mock for ports.PeerStore.
type MockPeerStore struct {
	mock.Mock
}

// NewMockPeerStore creates a MockPeerStore whose expectations are asserted
// during test cleanup.
func NewMockPeerStore(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockPeerStore {
	m := &MockPeerStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockPeerStore) Put(ctx context.Context, communityID peer.ID, p peer.Peer, ttl time.Duration) error {
	args := m.Called(ctx, communityID, p, ttl)
	return args.Error(0)
}

func (m *MockPeerStore) List(ctx context.Context, communityID, exclude peer.ID, limit int) ([]peer.Peer, error) {
	args := m.Called(ctx, communityID, exclude, limit)
	if v := args.Get(0); v != nil {
		return v.([]peer.Peer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPeerStore) Delete(ctx context.Context, communityID, peerID peer.ID) error {
	args := m.Called(ctx, communityID, peerID)
	return args.Error(0)
}

func (m *MockPeerStore) AddCommunity(ctx context.Context, communityID peer.ID) (bool, int64, error) {
	args := m.Called(ctx, communityID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}
