// Package httpapi exposes the share service over HTTP/JSON.
package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dmitrijs2005/secureshare/internal/logging"
	"github.com/dmitrijs2005/secureshare/internal/server/services"
)

// Handler wraps the mux router and the share service.
type Handler struct {
	*mux.Router
	shares  *services.ShareService
	baseURL string
	// maxBody bounds request bodies; ciphertext travels base64-encoded.
	maxBody int64
	logger  logging.Logger
}

func NewHandler(s *services.ShareService, baseURL string, maxUploadSize int64, l logging.Logger) *Handler {
	h := &Handler{
		Router:  mux.NewRouter(),
		shares:  s,
		baseURL: baseURL,
		maxBody: maxUploadSize/3*4 + 64<<10,
		logger:  l.With("module", "http_server"),
	}

	h.Use(h.recoverer, h.accessLog)

	h.HandleFunc("/health", h.health).Methods(http.MethodGet)

	api := h.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/content", h.upload).Methods(http.MethodPost)
	api.HandleFunc("/access", h.access).Methods(http.MethodPost)
	api.HandleFunc("/stats", h.stats).Methods(http.MethodGet)
	api.HandleFunc("/cleanup", h.cleanup).Methods(http.MethodPost)

	content := api.PathPrefix("/content/{id}").Subrouter()
	content.HandleFunc("/stream", h.stream).Methods(http.MethodGet)
	content.HandleFunc("/status", h.status).Methods(http.MethodGet)
	content.HandleFunc("/terminate", h.terminate).Methods(http.MethodPost)
	content.HandleFunc("/activity", h.reportActivity).Methods(http.MethodPost)
	content.HandleFunc("/pin", h.rotatePin).Methods(http.MethodPost)
	content.HandleFunc("/qr", h.shareQR).Methods(http.MethodGet)

	certs := api.PathPrefix("/certificates/{id}").Subrouter()
	certs.HandleFunc("", h.certificate).Methods(http.MethodGet)
	certs.HandleFunc("/pdf", h.certificatePDF).Methods(http.MethodGet)

	h.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusNotFound, errorBody{Error: "route not found"})
	})

	return h
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
