package dto

import (
	"fmt"
	"strings"

	"github.com/librevault/discovery/internal/domain"
)

// AnnounceRequest represents the JSON body for announcing a peer to a
// community. The announcing peer's address is taken from the connection,
// not the body.
type AnnounceRequest struct {
	CommunityID string `json:"community_id"`
	PeerID      string `json:"peer_id"`
	Port        int    `json:"port"`
}

// Validate checks that required fields are present and the port is in range.
// Hex canonicalization of the identifiers happens in the domain layer.
// Returns a *domain.ValidationError if any checks fail.
func (r *AnnounceRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.CommunityID) == "" {
		fields["community_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.PeerID) == "" {
		fields["peer_id"] = domain.MsgRequired
	}
	if r.Port < 1 || r.Port > 65535 {
		fields["port"] = fmt.Sprintf("must be 1-65535, got %d", r.Port)
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// DeannounceRequest represents the JSON body for withdrawing a peer from a
// community before its announce record expires.
type DeannounceRequest struct {
	CommunityID string `json:"community_id"`
	PeerID      string `json:"peer_id"`
}

// Validate checks that required fields are present.
// Returns a *domain.ValidationError if any checks fail.
func (r *DeannounceRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.CommunityID) == "" {
		fields["community_id"] = domain.MsgRequired
	}
	if strings.TrimSpace(r.PeerID) == "" {
		fields["peer_id"] = domain.MsgRequired
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}
