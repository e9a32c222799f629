package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	apiPrefix       = "/api/v1"
	sharePathPrefix = apiPrefix + "/share/"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/", h.root)
	router.Get("/health", h.health)
	router.Get("/version", h.getServerVersion)

	router.Route(apiPrefix, func(r chi.Router) {
		// routes without authorization
		r.Group(func(r chi.Router) {
			r.Post("/auth/register", h.register)
			r.Post("/auth/token", h.tokenForm)
			r.Post("/auth/login", h.login)
			r.Get("/share/{token}", h.consumeShare)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/auth/me", h.me)

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", h.me)
				r.Put("/me", h.updateMe)
				r.Delete("/me", h.deleteMe)
			})

			r.Route("/passwords", func(r chi.Router) {
				r.Post("/", h.createPassword)
				r.Get("/", h.listPasswords)
				r.Get("/{id}", h.getPassword)
				r.Put("/{id}", h.updatePassword)
				r.Delete("/{id}", h.deletePassword)
				r.Get("/{id}/reveal", h.revealPassword)
			})

			r.Route("/social", func(r chi.Router) {
				r.Get("/platforms/supported", h.supportedPlatforms)
				r.Post("/", h.createSocialAccount)
				r.Get("/", h.listSocialAccounts)
				r.Get("/{id}", h.getSocialAccount)
				r.Put("/{id}", h.updateSocialAccount)
				r.Delete("/{id}", h.deleteSocialAccount)
				r.Get("/{id}/reveal", h.revealSocialAccount)
			})

			r.Route("/notes", func(r chi.Router) {
				r.Post("/", h.createNote)
				r.Get("/", h.listNotes)
				r.Get("/{id}", h.getNote)
				r.Put("/{id}", h.updateNote)
				r.Delete("/{id}", h.deleteNote)
			})

			r.Post("/share/create", h.createShare)
			r.Get("/share/", h.listShares)
			r.Delete("/share/id/{id}", h.revokeShare)

			r.Route("/breach", func(r chi.Router) {
				r.Post("/check-passwords", h.checkPasswords)
				r.Post("/check-email", h.checkEmail)
				r.Post("/check-password", h.checkPassword)
				r.Get("/alerts", h.listAlerts)
				r.Put("/alerts/{id}/resolve", h.resolveAlert)
			})

			r.Route("/private-storage", func(r chi.Router) {
				r.Get("/status", h.privateStorageStatus)
				r.Post("/setup", h.setupPrivateStorage)
				r.Post("/unlock", h.unlockPrivateStorage)
				r.Post("/lock", h.lockPrivateStorage)
				r.Post("/items", h.createPrivateItem)
				r.Get("/items", h.listPrivateItems)
				r.Delete("/items/{id}", h.deletePrivateItem)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.listNotifications)
				r.Put("/{id}/read", h.markNotificationRead)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(h.admin)
				r.Get("/users", h.adminListUsers)
				r.Delete("/users/{id}", h.adminDeleteUser)
				r.Get("/breaches", h.adminListBreaches)
			})
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
