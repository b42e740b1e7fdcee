package meta

import (
	"encoding/json"
	"net/http"

	"github.com/eisenwinter/apicportal/config"
	"github.com/eisenwinter/apicportal/user"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// MetaRessource contains the .well-known endpoints
type MetaRessource struct {
	log      *zap.Logger
	cfg      *config.PortalConfiguration
	modules  ModuleLister
	policies PolicyStatuser
}

func (m *MetaRessource) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/portal-configuration", m.portalConfiguration)
	r.Post("/password-policy", m.passwordPolicy)
	return r
}

func (m *MetaRessource) portalConfiguration(w http.ResponseWriter, r *http.Request) {
	meta := &portalMetaData{
		Site:                  m.cfg.Site,
		ChangePasswordURL:     "/account/change-password",
		Modules:               m.modules.Enabled(),
		ShowPlaceholderImages: m.cfg.ShowPlaceholderImages,
		ApplicationImagePath:  m.cfg.ApplicationImagePath,
		ProductImagePath:      m.cfg.ProductImagePath,
	}
	err := render.Render(w, r, meta)
	if err != nil {
		m.log.Error("unable to render response", zap.Error(err))
	}
}

// passwordPolicy evaluates a candidate password so forms can show the policy status while typing
func (m *MetaRessource) passwordPolicy(w http.ResponseWriter, r *http.Request) {
	var req policyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	rows := m.policies.PolicyStatus(req.Password)
	if rows == nil {
		rows = []user.PolicyRow{}
	}
	render.Respond(w, r, rows)
}

func NewMetaRessource(
	log *zap.Logger,
	cfg *config.PortalConfiguration,
	modules ModuleLister,
	policies PolicyStatuser,
) *MetaRessource {
	return &MetaRessource{log: log, cfg: cfg, modules: modules, policies: policies}
}
