package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging, h.withMetrics)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)

		r.Post("/api/captcha/new", h.newCaptcha)
		r.Post("/api/captcha/verify", h.verifyCaptcha)

		r.Post("/api/crypto/encrypt", h.encrypt)
		r.Post("/api/crypto/decrypt", h.decrypt)

		r.Post("/api/stego/embed", h.embedSecret)
		r.Post("/api/stego/extract", h.extractSecret)
		r.Post("/api/stego/inspect", h.inspectCover)

		r.Get("/api/mitm/intercept", h.intercept)

		r.Get("/api/version/", h.getServerVersion)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/message/", h.sendMessage)
		r.Get("/api/message/", h.listMessages)
		r.Post("/api/message/decrypt", h.decryptMessage)
		r.Get("/api/message/{id}", h.getMessage)
		r.Put("/api/message/{id}", h.updateMessage)
	})

	if h.metrics != nil {
		router.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
