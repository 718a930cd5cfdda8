package http

import (
	"net/http"
)

// getServerVersion answers with the cipher-chat build version as plain
// text. Clients compare it against their own build, so it is never cached.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.Write([]byte(version))
}
