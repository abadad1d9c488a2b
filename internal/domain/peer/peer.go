// Package peer defines the discovery tracker's core entities: community and
// peer identifiers, announce submissions, and the peers returned to clients.
package peer

import (
	"encoding/hex"
	"errors"
	"fmt"
	"net/netip"

	"github.com/librevault/discovery/internal/domain"
)

// MaxIDLen is the maximum accepted length, in hex characters, of a community
// or peer identifier.
const MaxIDLen = 50

// ID is a canonical (lowercase hex) community or peer identifier.
type ID string

// ParseID canonicalizes a raw hex identifier to lowercase. It rejects empty
// input, identifiers longer than MaxIDLen, and strings that do not decode as
// an even-length hex sequence.
func ParseID(raw string) (ID, error) {
	if raw == "" {
		return "", errors.New(domain.MsgRequired)
	}
	if len(raw) > MaxIDLen {
		return "", fmt.Errorf("%s (%d > %d)", domain.MsgTooLong, len(raw), MaxIDLen)
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return "", errors.New(domain.MsgNotHex)
	}
	return ID(hex.EncodeToString(b)), nil
}

// Bytes returns the decoded identifier bytes. IDs constructed via ParseID
// always decode cleanly.
func (id ID) Bytes() []byte {
	b, _ := hex.DecodeString(string(id))
	return b
}

func (id ID) String() string { return string(id) }

// Peer is a single community member as returned to announcing clients.
type Peer struct {
	Addr   netip.Addr
	Port   int
	PeerID ID
}

// Announce is a validated announce submission: the announcing peer's identity,
// the community it belongs to, and the address it can be reached at.
type Announce struct {
	CommunityID ID
	PeerID      ID
	Port        int
	Addr        netip.Addr
}

// NewAnnounce validates and canonicalizes a raw announce submission.
// The addr is normalized via NormalizeAddr. Returns a *domain.ValidationError
// with per-field details when any rule fails.
func NewAnnounce(communityID, peerID string, port int, addr netip.Addr) (*Announce, error) {
	fields := make(map[string]string)

	cid, err := ParseID(communityID)
	if err != nil {
		fields["community_id"] = err.Error()
	}
	pid, err := ParseID(peerID)
	if err != nil {
		fields["peer_id"] = err.Error()
	}
	if port < 1 || port > 65535 {
		fields["port"] = fmt.Sprintf("must be 1-65535, got %d", port)
	}
	if !addr.IsValid() {
		fields["addr"] = "no usable source address"
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}

	return &Announce{
		CommunityID: cid,
		PeerID:      pid,
		Port:        port,
		Addr:        NormalizeAddr(addr),
	}, nil
}

// Validate re-checks business rules on an already-constructed Announce.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with
// per-field details, or nil if all rules pass.
func (a *Announce) Validate() error {
	fields := make(map[string]string)

	if _, err := ParseID(string(a.CommunityID)); err != nil {
		fields["community_id"] = err.Error()
	}
	if _, err := ParseID(string(a.PeerID)); err != nil {
		fields["peer_id"] = err.Error()
	}
	if a.Port < 1 || a.Port > 65535 {
		fields["port"] = fmt.Sprintf("must be 1-65535, got %d", a.Port)
	}
	if !a.Addr.IsValid() {
		fields["addr"] = "no usable source address"
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Record returns the Peer view of this announce, as other community members
// will see it.
func (a *Announce) Record() Peer {
	return Peer{Addr: a.Addr, Port: a.Port, PeerID: a.PeerID}
}

// Deannounce is a validated request to drop a peer's announce record.
type Deannounce struct {
	CommunityID ID
	PeerID      ID
}

// NewDeannounce validates and canonicalizes a raw deannounce submission.
func NewDeannounce(communityID, peerID string) (*Deannounce, error) {
	fields := make(map[string]string)

	cid, err := ParseID(communityID)
	if err != nil {
		fields["community_id"] = err.Error()
	}
	pid, err := ParseID(peerID)
	if err != nil {
		fields["peer_id"] = err.Error()
	}

	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	return &Deannounce{CommunityID: cid, PeerID: pid}, nil
}

// NormalizeAddr unmaps IPv4-mapped IPv6 addresses (::ffff:a.b.c.d) to plain
// IPv4 so that dual-stack listeners report consistent peer addresses.
func NormalizeAddr(addr netip.Addr) netip.Addr {
	return addr.Unmap()
}
