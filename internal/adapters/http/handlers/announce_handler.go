// Package handlers implements the inbound HTTP handlers for the tracker.
package handlers

import (
	"net/http"

	"github.com/librevault/discovery/internal/adapters/http/dto"
	"github.com/librevault/discovery/internal/domain/peer"
	"github.com/librevault/discovery/internal/ports"
)

// AnnounceHandler handles HTTP requests for peer announce and deannounce.
type AnnounceHandler struct {
	service ports.Discovery
}

// NewAnnounceHandler creates a new AnnounceHandler with the given discovery port.
func NewAnnounceHandler(service ports.Discovery) *AnnounceHandler {
	return &AnnounceHandler{service: service}
}

// Announce handles POST /v1/announce. The announcing peer's address is taken
// from the connection, so peers behind NAT are reachable at the address the
// tracker observed rather than whatever they believe their address to be.
func (h *AnnounceHandler) Announce(w http.ResponseWriter, r *http.Request) {
	var req dto.AnnounceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	addr, err := clientAddr(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	ann, err := peer.NewAnnounce(req.CommunityID, req.PeerID, req.Port, addr)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	result, err := h.service.Announce(r.Context(), ann)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToAnnounceResponse(result))
}

// Deannounce handles POST /v1/deannounce. Removing an already-expired or
// unknown record is not an error, so the response is 204 either way.
func (h *AnnounceHandler) Deannounce(w http.ResponseWriter, r *http.Request) {
	var req dto.DeannounceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	dea, err := peer.NewDeannounce(req.CommunityID, req.PeerID)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if err := h.service.Deannounce(r.Context(), dea); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
