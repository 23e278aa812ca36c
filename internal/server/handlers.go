package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/jmylchreest/luma/internal/colour"
)

// errorResponse is the body of every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
}

// colourResponse describes a single normalized colour.
type colourResponse struct {
	Hex       string     `json:"hex"`
	RGB       colour.RGB `json:"rgb"`
	Luminance float64    `json:"luminance"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// handleContrast evaluates ?fg=<token>&bg=<token> and returns the ratio and
// compliance levels.
func (s *Server) handleContrast(w http.ResponseWriter, r *http.Request) {
	fg := r.URL.Query().Get("fg")
	bg := r.URL.Query().Get("bg")
	if fg == "" || bg == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "fg and bg query parameters are required"})
		return
	}

	res, err := s.norm.Evaluate(fg, bg)
	if err != nil {
		if errors.Is(err, colour.ErrInvalidColour) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid colour"})
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// handleColour normalizes a single token and reports its channels and
// relative luminance.
func (s *Server) handleColour(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	hex, err := s.norm.Normalize(token)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid colour"})
		return
	}

	writeJSON(w, http.StatusOK, colourResponse{
		Hex:       hex,
		RGB:       colour.HexToRGB(hex),
		Luminance: colour.Luminance(hex),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
