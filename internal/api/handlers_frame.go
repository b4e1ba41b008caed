package api

import (
	"net/http"
)

// handleFrame handles GET /api/frame - Frame metadata for embedding the
// app in a cast
func (s *Server) handleFrame(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"metaTags": s.frames.DefaultMetaTags(),
	})
}

// handleManifest handles GET /.well-known/farcaster.json - Account
// manifest for Farcaster clients
func (s *Server) handleManifest(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, s.frames.BuildManifest())
}
