package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
)

// handleRoot reports liveness and identifies the serving worker process.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{Message: fmt.Sprintf("Brainly backend process: %d", os.Getpid())})
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	userID, err := s.users.Signup(r.Context(), req.Username, req.Password)
	if err != nil {
		status, msg := mapError(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		UserID string `json:"userId"`
	}{UserID: userID})
}

func (s *Server) handleSignin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	token, err := s.users.Signin(r.Context(), req.Username, req.Password)
	if err != nil {
		status, msg := mapError(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Token string `json:"token"`
	}{Token: token})
}

func (s *Server) handleCreateContent(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req contentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	contentID, err := s.contents.Create(r.Context(), userID, toContentModel(&req))
	if err != nil {
		status, msg := mapError(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		ContentID string `json:"contentId"`
	}{ContentID: contentID})
}

func (s *Server) handleListContent(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	items, err := s.contents.List(r.Context(), userID)
	if err != nil {
		status, msg := mapError(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Content []contentResponse `json:"content"`
	}{Content: toContentResponses(items)})
}

func (s *Server) handleUpdateContent(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req contentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ContentID == "" {
		writeError(w, http.StatusBadRequest, "contentId is required")
		return
	}

	if err := s.contents.Update(r.Context(), userID, req.ContentID, toContentModel(&req)); err != nil {
		status, msg := mapError(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{Message: "content updated"})
}

func (s *Server) handleDeleteContent(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req deleteContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.ContentID == "" {
		writeError(w, http.StatusBadRequest, "contentId is required")
		return
	}

	if err := s.contents.Delete(r.Context(), userID, req.ContentID); err != nil {
		status, msg := mapError(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
	}{Message: "content deleted"})
}

// handleShareBrain toggles sharing for the caller. Enabling returns the
// share token; enabling twice returns the same token.
func (s *Server) handleShareBrain(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req shareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	if !req.Share {
		if err := s.shares.DisableSharing(r.Context(), userID); err != nil {
			status, msg := mapError(err)
			writeError(w, status, msg)
			return
		}
		writeJSON(w, http.StatusOK, struct {
			Message string `json:"message"`
		}{Message: "sharing disabled"})
		return
	}

	token, err := s.shares.EnableSharing(r.Context(), userID)
	if err != nil {
		status, msg := mapError(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Hash string `json:"hash"`
	}{Hash: token})
}

// handleResolveShare is the only content-reading route without auth: anyone
// holding the token gets a read-only snapshot with no owner identity.
func (s *Server) handleResolveShare(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "shareLink")

	items, err := s.shares.Resolve(r.Context(), token)
	if err != nil {
		status, msg := mapError(err)
		writeError(w, status, msg)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Content []contentResponse `json:"content"`
	}{Content: toContentResponses(items)})
}
