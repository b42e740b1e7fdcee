package account

import (
	"errors"
	"io/fs"
	"net/http"
	"net/url"
	"time"

	"github.com/eisenwinter/apicportal/config"
	"github.com/eisenwinter/apicportal/identity"
	"github.com/eisenwinter/apicportal/user"
	"github.com/go-chi/chi/v5"
	"github.com/google/safehtml/template"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

const resetTokenParam = "pass-reset-token"

// statusCookie carries the outcome message to the site home after a redirect
const statusCookie = "apicportal_status"

const passwordChangedMessage = "Password changed successfully"

type AccountRessource struct {
	changePasswordTemplate *template.Template
	fourOFourTemplate      *template.Template

	log       *zap.Logger
	passwords PasswordForms
	portalCfg *config.PortalConfiguration
	serverCfg *config.ServerConfiguration
	statics   fs.FS
}

func (a *AccountRessource) Router() *chi.Mux {
	r := chi.NewRouter()

	antiForgery := csrf.Protect([]byte(a.serverCfg.CSRFToken))
	r.Use(antiForgery)

	r.Get("/change-password", a.changePassword)
	r.Post("/change-password", a.updatePassword)

	if a.statics != nil {
		fs := http.FileServer(staticFS{http.FS(a.statics)})
		r.Handle("/static/*", http.StripPrefix("/account/static/", fs))
	}

	r.NotFound(a.fourOFour)
	return r
}

func (a *AccountRessource) fourOFour(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	a.view(a.fourOFourTemplate, &fourOFourViewModel{}, w)
}

func (a *AccountRessource) view(tmpl *template.Template, model viewModeler, w http.ResponseWriter) {
	err := tmpl.Execute(w, model.ViewData())
	if err != nil {
		a.log.Error(
			"unable to render template for page",
			zap.String("template", tmpl.Name()),
			zap.Error(err),
		)
	}
}

func (a *AccountRessource) home() string {
	if a.portalCfg == nil || a.portalCfg.Site == "" {
		return "/"
	}
	return a.portalCfg.Site
}

func (a *AccountRessource) redirectHome(w http.ResponseWriter, r *http.Request, message string) {
	if message != "" {
		http.SetCookie(w, &http.Cookie{
			Name:     statusCookie,
			Value:    url.QueryEscape(message),
			Path:     "/",
			Expires:  time.Now().Add(time.Minute),
			HttpOnly: false,
			Secure:   true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	http.Redirect(w, r, a.home(), http.StatusFound)
}

func (a *AccountRessource) renderForm(w http.ResponseWriter, r *http.Request, form *user.Form, resetToken string, formErr string) {
	a.view(a.changePasswordTemplate, &changePasswordViewModel{
		CsrfToken:      csrf.Token(r),
		ResetToken:     resetToken,
		Mode:           string(form.Mode),
		RequireCurrent: form.RequireCurrent,
		ShowPolicy:     form.ShowPolicy,
		Policy:         form.Policy,
		Error:          formErr,
	}, w)
}

func (a *AccountRessource) changePassword(w http.ResponseWriter, r *http.Request) {
	resetToken := r.URL.Query().Get(resetTokenParam)
	p := identity.FromContext(r.Context())
	form, err := a.passwords.Form(r.Context(), p.UserID, resetToken)
	if err != nil {
		if errors.Is(err, user.ErrInvalidResetToken) {
			a.log.Info("change password: invalid reset token")
			a.fourOFour(w, r)
			return
		}
		a.log.Error("change password: unable to build form", zap.Error(err))
		a.redirectHome(w, r, "")
		return
	}
	if form.Mode == user.FormModeNone {
		a.redirectHome(w, r, "")
		return
	}
	a.renderForm(w, r, form, resetToken, "")
}

func formError(err error) (string, bool) {
	switch {
	case errors.Is(err, user.ErrPasswordGuidelines):
		return err.Error(), true
	case errors.Is(err, user.ErrPasswordRequired):
		return "A new password is required.", true
	case errors.Is(err, user.ErrPasswordMismatch):
		return "The passwords do not match.", true
	case errors.Is(err, user.ErrCurrentPassword):
		return "The current password is not correct.", true
	}
	return "", false
}

func (a *AccountRessource) updatePassword(w http.ResponseWriter, r *http.Request) {
	err := r.ParseForm()
	if err != nil {
		a.log.Error("change password: ParseForm failed", zap.Error(err))
	}
	resetToken := r.FormValue(resetTokenParam)
	p := identity.FromContext(r.Context())
	if p.IsAnonymous() && resetToken == "" {
		a.redirectHome(w, r, "")
		return
	}
	req := &user.ChangeRequest{
		UserID:     p.UserID,
		Current:    r.FormValue("current_password"),
		New:        r.FormValue("new_password"),
		Confirm:    r.FormValue("confirm_password"),
		ResetToken: resetToken,
	}
	ok, err := a.passwords.Submit(r.Context(), req)
	if err != nil {
		if msg, isFormErr := formError(err); isFormErr {
			form, ferr := a.passwords.Form(r.Context(), p.UserID, resetToken)
			if ferr == nil && form.Mode != user.FormModeNone {
				a.renderForm(w, r, form, resetToken, msg)
				return
			}
		}
		a.log.Warn("change password failed", zap.Int("user_id", req.UserID), zap.Error(err))
		a.redirectHome(w, r, "")
		return
	}
	if !ok {
		a.log.Warn("change password was rejected", zap.Int("user_id", req.UserID))
		a.redirectHome(w, r, "")
		return
	}
	a.redirectHome(w, r, passwordChangedMessage)
}

func NewAccountRessource(log *zap.Logger,
	passwords PasswordForms,
	portalCfg *config.PortalConfiguration,
	serverCfg *config.ServerConfiguration,
	fsConfig *config.FileSystems) *AccountRessource {

	changePasswordTemplate, err := mustLoadTemplate(fsConfig.Pages, "change_password.html")
	if err != nil {
		log.Fatal(
			"unable to load required template file",
			zap.String("file", "change_password.html"),
			zap.Error(err),
		)
	}
	fourOFour, err := mustLoadTemplate(fsConfig.Pages, "404.html")
	if err != nil {
		log.Fatal(
			"unable to load required template file",
			zap.String("file", "404.html"),
			zap.Error(err),
		)
	}

	return &AccountRessource{
		changePasswordTemplate: changePasswordTemplate,
		fourOFourTemplate:      fourOFour,
		log:                    log,
		passwords:              passwords,
		portalCfg:              portalCfg,
		serverCfg:              serverCfg,
		statics:                fsConfig.StaticFolder,
	}
}
