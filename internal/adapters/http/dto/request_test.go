package dto_test

import (
	"errors"
	"testing"

	"github.com/librevault/discovery/internal/adapters/http/dto"
	"github.com/librevault/discovery/internal/domain"
)

func TestAnnounceRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		req        dto.AnnounceRequest
		wantFields []string
	}{
		{
			name: "valid request",
			req:  dto.AnnounceRequest{CommunityID: "aabb", PeerID: "ccdd", Port: 4000},
		},
		{
			name:       "missing community_id",
			req:        dto.AnnounceRequest{PeerID: "ccdd", Port: 4000},
			wantFields: []string{"community_id"},
		},
		{
			name:       "missing peer_id",
			req:        dto.AnnounceRequest{CommunityID: "aabb", Port: 4000},
			wantFields: []string{"peer_id"},
		},
		{
			name:       "zero port",
			req:        dto.AnnounceRequest{CommunityID: "aabb", PeerID: "ccdd"},
			wantFields: []string{"port"},
		},
		{
			name:       "port above range",
			req:        dto.AnnounceRequest{CommunityID: "aabb", PeerID: "ccdd", Port: 65536},
			wantFields: []string{"port"},
		},
		{
			name:       "everything missing",
			req:        dto.AnnounceRequest{},
			wantFields: []string{"community_id", "peer_id", "port"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.req.Validate()
			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}

			var verr *domain.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *domain.ValidationError", err)
			}
			if len(verr.Fields) != len(tt.wantFields) {
				t.Fatalf("got %d field errors %v, want %d", len(verr.Fields), verr.Fields, len(tt.wantFields))
			}
			for _, field := range tt.wantFields {
				if _, ok := verr.Fields[field]; !ok {
					t.Errorf("missing field error for %q in %v", field, verr.Fields)
				}
			}
		})
	}
}

func TestDeannounceRequest_Validate(t *testing.T) {
	t.Parallel()

	valid := dto.DeannounceRequest{CommunityID: "aabb", PeerID: "ccdd"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	empty := dto.DeannounceRequest{}
	var verr *domain.ValidationError
	if err := empty.Validate(); !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want *domain.ValidationError", err)
	}
	if len(verr.Fields) != 2 {
		t.Errorf("got %d field errors %v, want 2", len(verr.Fields), verr.Fields)
	}
}
