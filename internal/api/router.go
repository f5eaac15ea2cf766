package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"

	"inkpress/internal/api/handler"
	"inkpress/internal/api/middleware"
	"inkpress/internal/app/service"
	"inkpress/internal/common/security"
	"inkpress/internal/platform/tokenstore"
)

func NewRouter(
	authService *service.AuthService,
	contentService *service.ContentService,
	tokenAuth *security.TokenAuth,
	tokens tokenstore.Store,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies a token if present and puts claims in context; rejection
	// happens in the Authenticator on protected groups only.
	r.Use(jwtauth.Verifier(tokenAuth.JWTAuth))

	// Public health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handler.NewAuthHandler(authService, tokenAuth, tokens)
	postHandler := handler.NewPostHandler(contentService)
	categoryHandler := handler.NewCategoryHandler(contentService)

	r.Route("/api/v1", func(v1 chi.Router) {
		// Auth routes (public)
		v1.Group(func(publicAuth chi.Router) {
			authHandler.RegisterRoutes(publicAuth)
		})

		// Published blog content (public)
		v1.Route("/blog", postHandler.RegisterPublicRoutes)

		// Management routes (authenticated)
		v1.Group(func(protected chi.Router) {
			protected.Use(middleware.Authenticator(tokens))
			protected.Group(authHandler.RegisterProtectedRoutes)
			protected.Route("/posts", postHandler.RegisterRoutes)
			protected.Route("/categories", categoryHandler.RegisterRoutes)
		})
	})

	return r
}
