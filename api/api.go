package api

import (
	"net/http"
	"time"

	"github.com/eisenwinter/apicportal/api/app/applications"
	"github.com/eisenwinter/apicportal/api/app/management"
	"github.com/eisenwinter/apicportal/api/app/meta"
	"github.com/eisenwinter/apicportal/api/auth"
	"github.com/eisenwinter/apicportal/application"
	"github.com/eisenwinter/apicportal/config"
	"github.com/eisenwinter/apicportal/manage"
	"github.com/eisenwinter/apicportal/metrics"
	"github.com/eisenwinter/apicportal/modules"
	"github.com/eisenwinter/apicportal/tokens"
	"github.com/eisenwinter/apicportal/user"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"
	"github.com/go-playground/validator/v10"

	ar "github.com/eisenwinter/apicportal/api/app/account"

	"go.uber.org/zap"
)

var validate *validator.Validate
var tokenAuth *jwtauth.JWTAuth

// Services bundles everything the http surface needs
type Services struct {
	Issuer       *tokens.TokenIssuer
	Applications *application.Service
	Passwords    *user.PasswordService
	ResetLinks   *user.ResetLinks
	ManageUsers  *manage.UserService
	ManageApps   *manage.ApplicationService
	Remover      *modules.Remover
	Modules      *modules.Handler
}

func compose(logger *zap.Logger,
	cfg *config.Configuration,
	services *Services,
	fileSystems *config.FileSystems) (*chi.Mux, error) {
	validate = validator.New()

	// same key as the issuer, tokens are verified only
	tokenAuth = jwtauth.New(services.Issuer.Alg(), services.Issuer.Key(), services.Issuer.Key())

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	r.Use(loggerMiddleware(logger))
	r.Use(metrics.InstrumentHandler)

	r.Use(middleware.Recoverer)

	r.Use(middleware.Timeout(50 * time.Second))
	r.Use(jwtauth.Verifier(tokenAuth))
	r.Use(auth.Principal)

	if cfg.DebugMode() {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("running in debug mode - no auto redirects to site"))
		})
	} else {
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, cfg.Portal.Site, http.StatusFound)
		})
	}

	applicationsRessource := applications.NewApplicationsRessource(
		logger.Named("applications_ressource"),
		services.Applications,
		validate,
	)
	accountRessource := ar.NewAccountRessource(
		logger.Named("account_ressource"),
		services.Passwords,
		cfg.Portal,
		cfg.Server,
		fileSystems,
	)
	metaRessource := meta.NewMetaRessource(
		logger.Named("meta_ressource"),
		cfg.Portal,
		services.Modules,
		services.Passwords,
	)

	if cfg.ManageEndpoint != nil && cfg.ManageEndpoint.Enable {
		manageRessource := management.NewManagementRessource(
			logger.Named("management_ressource"),
			cfg.ManageEndpoint,
			services.ManageUsers,
			services.ManageApps,
			services.Remover,
			services.ResetLinks,
		)
		r.Mount("/manage", manageRessource.Router())
	}

	r.Mount("/applications", applicationsRessource.Router())

	r.Mount("/account", accountRessource.Router())

	r.Mount("/.well-known", metaRessource.Router())

	r.Handle("/metrics", metrics.Handler())

	r.Get("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		if fileSystems.StaticFolder == nil {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		favicon, err := fileSystems.StaticFolder.Open("favicon.ico")
		if err == nil {
			defer favicon.Close()
			s, err := favicon.Stat()
			if err == nil {
				buffer := make([]byte, s.Size())
				_, err = favicon.Read(buffer)
				if err != nil {
					logger.Warn("Unable to load favicon", zap.Error(err))
				}
				_, err = w.Write(buffer)
				if err != nil {
					logger.Warn("Unable to write favicon", zap.Error(err))
				}
				return
			}

		}
		logger.Warn("No favicon found", zap.Error(err))
		w.WriteHeader(http.StatusNotFound)
	})

	return r, nil
}
