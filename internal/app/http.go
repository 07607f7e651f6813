package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"strings"
	"time"
)

type HTTPServer struct {
	service    *Service
	corsOrigin string
	siteURL    string
}

func NewHTTPServer(service *Service, corsOrigin, siteURL string) *HTTPServer {
	return &HTTPServer{service: service, corsOrigin: corsOrigin, siteURL: siteURL}
}

func (s *HTTPServer) Handler() http.Handler {
	return s.withMiddleware(http.HandlerFunc(s.handle))
}

func (s *HTTPServer) handle(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	if (r.Method == http.MethodGet || r.Method == http.MethodHead) && r.URL.Path == "/health" {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
		return
	}

	if id, sortDir, ok := parseCommentsPath(r.URL.Path); ok {
		switch r.Method {
		case http.MethodPost:
			s.handleSubmit(w, r, id)
			return
		case http.MethodGet:
			s.handleFetch(w, r, id, sortDir)
			return
		}
	}

	// Anything unrecognized bounces to the site the service fronts.
	if s.siteURL != "" {
		http.Redirect(w, r, s.siteURL, http.StatusFound)
		return
	}
	writeError(w, http.StatusNotFound, "NOT_FOUND", "Not found", nil)
}

// parseCommentsPath matches /comments/{id} and /comments/{id}/{sort}. The id
// itself may never contain a slash, which keeps the match unambiguous.
func parseCommentsPath(path string) (id, sortDir string, ok bool) {
	rest, found := strings.CutPrefix(path, "/comments/")
	if !found {
		return "", "", false
	}
	rest = strings.TrimSuffix(rest, "/")
	if rest == "" {
		return "", "", false
	}
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		return rest[:idx], rest[idx+1:], true
	}
	return rest, "", true
}

func (s *HTTPServer) handleSubmit(w http.ResponseWriter, r *http.Request, id string) {
	if err := r.ParseForm(); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "Malformed form body", nil)
		return
	}

	in := SubmitInput{
		Discussion: id,
		Author:     r.PostFormValue("author"),
		Body:       r.PostFormValue("body"),
		Email:      r.PostFormValue("email"),
		Parent:     r.PostFormValue("parent"),
		IP:         clientIP(r),
		Site:       r.Host,
	}
	if err := s.service.Submit(r.Context(), in); err != nil {
		writeDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *HTTPServer) handleFetch(w http.ResponseWriter, r *http.Request, id, sortDir string) {
	if sortDir == "" {
		sortDir = r.URL.Query().Get("sort")
	}

	comments, err := s.service.Fetch(r.Context(), id, sortDir)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	// The legacy client loads comments cross-origin via JSONP; a callback
	// parameter opts into that wrapping, everyone else gets plain JSON.
	if callback := r.URL.Query().Get("callback"); callback != "" && validCallback(callback) {
		payload, err := json.Marshal(comments)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "ENCODING_FAILED", "Failed to encode comments", nil)
			return
		}
		w.Header().Set("Content-Type", "application/javascript")
		w.Header().Set("Content-Security-Policy",
			"default-src https:; script-src https: 'unsafe-inline'; style-src https: 'unsafe-inline'")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(callback + "(" + string(payload) + ")"))
		return
	}

	writeJSON(w, http.StatusOK, comments)
}

func validCallback(name string) bool {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '$', r == '.':
		default:
			return false
		}
	}
	return true
}

// clientIP prefers the forwarding header set by the fronting proxy, falling
// back to the peer address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.IndexByte(fwd, ','); idx >= 0 {
			fwd = fwd[:idx]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type requestIDKey struct{}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *HTTPServer) withMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = randomRequestID()
		}
		ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
		r = r.WithContext(ctx)

		started := time.Now()
		writer := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		setCORSHeaders(writer.Header(), s.corsOrigin)
		writer.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(writer, r)

		log.Printf(`{"request_id":"%s","method":"%s","path":"%s","status":%d,"duration_ms":%d}`,
			requestID,
			r.Method,
			r.URL.Path,
			writer.status,
			time.Since(started).Milliseconds(),
		)
	})
}

func setCORSHeaders(h http.Header, origin string) {
	if origin == "" {
		origin = "*"
	}
	h.Set("Access-Control-Allow-Origin", origin)
	h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
}

func randomRequestID() string {
	bytes := make([]byte, 8)
	_, _ = rand.Read(bytes)
	return hex.EncodeToString(bytes)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, code, message string, details any) {
	response := map[string]any{
		"code":  code,
		"error": message,
	}
	if details != nil {
		response["details"] = details
	}
	writeJSON(w, status, response)
}

func writeDomainError(w http.ResponseWriter, err error) {
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		writeError(w, domainErr.Status, domainErr.Code, domainErr.Message, domainErr.Details)
		return
	}
	writeError(w, http.StatusInternalServerError, "INTERNAL", "Internal error", nil)
}
