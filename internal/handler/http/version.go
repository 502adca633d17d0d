package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-posts/internal/logger"
)

// getServerVersion answers GET /api/version/ with the running go-posts
// version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	if _, err := io.WriteString(w, version); err != nil {
		logger.FromRequest(r).Debug().Err(err).Str("func", "Handler.getServerVersion").Msg("failed to write version")
	}
}
