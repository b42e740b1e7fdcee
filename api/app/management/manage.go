package management

import (
	"context"
	"net/http"
	"strconv"

	"github.com/eisenwinter/apicportal/api/auth"
	"github.com/eisenwinter/apicportal/config"
	"github.com/eisenwinter/apicportal/sanitize"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// ManagementRessource habours the headless admin endpoints
type ManagementRessource struct {
	log         *zap.Logger
	cfg         *config.ManageEndpointConfiguration
	userService UserService
	appService  ApplicationService
	remover     ModuleRemover
	resetLinks  ResetLinkIssuer
}

func (m *ManagementRessource) Router() *chi.Mux {
	r := chi.NewRouter()

	if m.cfg != nil && m.cfg.CORS != nil {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   m.cfg.CORS.AllowedOrigins,
			AllowedMethods:   m.cfg.CORS.AllowedMethods,
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: m.cfg.CORS.AllowCredentials,
			MaxAge:           300,
		}))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		m.log.Debug(
			"Could not found",
			zap.String("method", r.Method),
			sanitize.UserInputString("path", r.URL.Path),
		)
		w.WriteHeader(404)
	})

	r.Get("/.ping", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("pong"))
	})

	r.Group(func(gr chi.Router) {
		gr.Use(auth.AdminOnly)
		gr.Route("/custom-modules", func(r chi.Router) {
			r.Get("/", m.installedModules)
			r.Post("/", m.stageModules)
			r.Get("/confirm", m.stagedModules)
			r.Post("/confirm", m.confirmModules)
		})
		gr.Route("/applications", func(r chi.Router) {
			r.With(pageinate).Get("/", m.listApplications)
		})
		gr.Route("/users", func(r chi.Router) {
			r.With(pageinate).Get("/", m.listUsers)
			r.Get("/by-id", m.userByID)
			r.Post("/reset-link", m.issueResetLink)
		})
	})
	return r
}

func NewManagementRessource(logger *zap.Logger,
	cfg *config.ManageEndpointConfiguration,
	userService UserService,
	appService ApplicationService,
	remover ModuleRemover,
	resetLinks ResetLinkIssuer) *ManagementRessource {
	return &ManagementRessource{
		log:         logger,
		cfg:         cfg,
		userService: userService,
		appService:  appService,
		remover:     remover,
		resetLinks:  resetLinks,
	}
}

type accountKey string

var pageSizeKey accountKey = "page_size"
var pageKey accountKey = "page"
var queryKey accountKey = "query"
var sortKey accountKey = "sort"

func pageinate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		p := r.URL.Query().Get("page")

		intOrDefault := func(in string, def int) int {
			if in == "" {
				return def
			}
			i, err := strconv.Atoi(in)
			if err != nil {
				return def
			}
			return i
		}
		ctx = context.WithValue(ctx, pageKey, intOrDefault(p, 1))
		s := r.URL.Query().Get("page_size")
		ctx = context.WithValue(ctx, pageSizeKey, intOrDefault(s, 12))

		q := r.URL.Query().Get("q")
		if q == "" {
			q = r.URL.Query().Get("query")
		}
		ctx = context.WithValue(ctx, queryKey, q)

		sort := r.URL.Query().Get("sort")
		ctx = context.WithValue(ctx, sortKey, sort)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
