package api

import (
	"net/http"

	_ "github.com/rohandas-dev/cabinet/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rohandas-dev/cabinet/internal/api/handlers"
	"github.com/rohandas-dev/cabinet/internal/api/middleware"
	"github.com/rohandas-dev/cabinet/internal/repositories"
	"github.com/rs/cors"
)

// SetupRouter wires the route table. Authenticated routes sit behind the
// x-token middleware; /connect, /disconnect and content serving handle
// their own credentials.
func SetupRouter(h *handlers.Handler, sessions repositories.SessionStore, corsOpts cors.Options) http.Handler {
	mux := http.NewServeMux()
	c := cors.New(corsOpts)
	authed := middleware.Auth(sessions)

	// ---------- PUBLIC ROUTES ----------
	mux.HandleFunc("GET /status", h.GetStatus)
	mux.HandleFunc("GET /stats", h.GetStats)

	mux.HandleFunc("POST /users", h.RegisterUser)
	mux.HandleFunc("GET /connect", h.Connect)
	mux.HandleFunc("GET /disconnect", h.Disconnect)
	mux.HandleFunc("GET /files/{id}/data", h.GetFileContent)

	mux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	// ---------- PROTECTED ROUTES ----------
	mux.Handle("GET /users/me", authed(http.HandlerFunc(h.GetMe)))
	mux.Handle("POST /files", authed(http.HandlerFunc(h.CreateFile)))
	mux.Handle("GET /files", authed(http.HandlerFunc(h.ListFiles)))
	mux.Handle("GET /files/{id}", authed(http.HandlerFunc(h.GetFile)))
	mux.Handle("PUT /files/{id}/publish", authed(http.HandlerFunc(h.PublishFile)))
	mux.Handle("PUT /files/{id}/unpublish", authed(http.HandlerFunc(h.UnpublishFile)))

	handler := c.Handler(mux)
	handler = middleware.Logger(handler)
	return handler
}
