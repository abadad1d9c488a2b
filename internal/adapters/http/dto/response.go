// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"github.com/librevault/discovery/internal/domain/peer"
	"github.com/librevault/discovery/internal/ports"
)

// PeerResponse represents a single discovered peer in HTTP responses.
type PeerResponse struct {
	IP     string `json:"ip"`
	Port   int    `json:"port"`
	PeerID string `json:"peer_id"`
}

// AnnounceResponse represents the body returned from a successful announce.
// TTL is the number of seconds before the client should re-announce.
type AnnounceResponse struct {
	TTL   int            `json:"ttl"`
	Peers []PeerResponse `json:"peers"`
}

// ToPeerResponse converts a domain Peer to an HTTP response DTO.
func ToPeerResponse(p *peer.Peer) PeerResponse {
	return PeerResponse{
		IP:     p.Addr.String(),
		Port:   p.Port,
		PeerID: string(p.PeerID),
	}
}

// ToAnnounceResponse converts a ports.AnnounceResult to an HTTP response DTO.
// The peers slice is always non-nil so the JSON body carries an empty array
// rather than null.
func ToAnnounceResponse(result *ports.AnnounceResult) AnnounceResponse {
	peers := make([]PeerResponse, len(result.Peers))
	for i := range result.Peers {
		peers[i] = ToPeerResponse(&result.Peers[i])
	}
	return AnnounceResponse{
		TTL:   int(result.TTL.Seconds()),
		Peers: peers,
	}
}
