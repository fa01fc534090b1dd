package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/starterhq/accounts/internal/accounts/service"
	"github.com/starterhq/accounts/internal/accounts/store"
	"github.com/starterhq/accounts/pkg/httpx"
	"github.com/starterhq/accounts/pkg/jwtx"
	"github.com/starterhq/accounts/pkg/slogx"

	_ "github.com/starterhq/accounts/api/accounts" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	staticDir    string

	store          store.Store
	AccountService *service.AccountService
	AuthService    *service.AuthService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion, staticDir string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		staticDir:    staticDir,
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerUsers()
	r.registerAuth()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	// Serve the single-page client bundle when a dist dir is configured.
	if r.staticDir != "" {
		r.Mux.Handle("/", http.FileServer(http.Dir(r.staticDir)))
	}
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Accounts Service API
//	@version		0.1.0
//	@description	Minimal user-account service: registration, bearer-token sign-in/sign-out,
//	@description	and owner-gated account CRUD.
//
//	@host			localhost:3000
//	@BasePath		/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Identity token. Format: "Bearer {token}". Also accepted via the "t" cookie.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerUsers() {
	h := &UsersHandler{AccountService: r.AccountService}

	// POST /api/users - public signup, strict rate limit by IP
	r.Mux.Handle("POST /api/users",
		httpx.Chain(http.HandlerFunc(h.HandleCreate),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// GET /api/users - public listing
	r.Mux.Handle("GET /api/users",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	res := &UserResourceHandler{AccountService: r.AccountService}

	// GET /{id} only needs authentication; mutations additionally require the
	// caller to own the target account.
	r.Mux.Handle("GET /api/users/{id}",
		httpx.Chain(http.HandlerFunc(res.HandleRead),
			httpx.RateLimitByIP(httpx.LenientLimit),
			httpx.AuthnMiddleware(r.verifier),
			res.LoadAccount(),
		),
	)
	r.Mux.Handle("PUT /api/users/{id}",
		httpx.Chain(http.HandlerFunc(res.HandleUpdate),
			httpx.RateLimitByIP(httpx.LenientLimit),
			httpx.AuthnMiddleware(r.verifier),
			res.LoadAccount(),
			httpx.RequireOwner(),
		),
	)
	r.Mux.Handle("DELETE /api/users/{id}",
		httpx.Chain(http.HandlerFunc(res.HandleDelete),
			httpx.RateLimitByIP(httpx.LenientLimit),
			httpx.AuthnMiddleware(r.verifier),
			res.LoadAccount(),
			httpx.RequireOwner(),
		),
	)
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	// POST /auth/signin - strict rate limit by IP (authentication attempts)
	r.Mux.Handle("POST /auth/signin",
		httpx.Chain(http.HandlerFunc(h.HandleSignin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	r.Mux.Handle("GET /auth/signout", http.HandlerFunc(h.HandleSignout))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
