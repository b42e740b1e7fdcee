package applications

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/eisenwinter/apicportal/api/auth"
	"github.com/eisenwinter/apicportal/application"
	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/eisenwinter/apicportal/identity"
	"github.com/eisenwinter/apicportal/sanitize"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const customFieldsKey = "custom_fields"

const eventContentRefresh = "content_refresh"

// ApplicationsRessource receives application webhooks and serves application data
type ApplicationsRessource struct {
	log      *zap.Logger
	service  ApplicationService
	validate *validator.Validate
}

func (a *ApplicationsRessource) Router() *chi.Mux {
	r := chi.NewRouter()

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		a.log.Debug(
			"Could not found",
			zap.String("method", r.Method),
			sanitize.UserInputString("path", r.URL.Path),
		)
		w.WriteHeader(404)
	})

	r.Group(func(gr chi.Router) {
		gr.Use(auth.RequirePermission(identity.PermissionEditAnyApplication))
		gr.Post("/", a.upsert)
		gr.Post("/refresh", a.refresh)
		gr.Delete("/", a.deleteByURL)
		gr.Delete("/{applicationID}", a.deleteByID)
		gr.Delete("/node/{id}", a.deleteNode)
		gr.Route("/credentials", func(r chi.Router) {
			r.Put("/", a.putCredential)
			r.Delete("/", a.deleteCredential)
		})
		gr.Route("/subscriptions", func(r chi.Router) {
			r.Put("/", a.putSubscription)
			r.Delete("/", a.deleteSubscription)
		})
		gr.Put("/image", a.setImage)
	})

	r.Group(func(gr chi.Router) {
		gr.Use(auth.Authenticated)
		gr.Get("/", a.list)
		gr.Get("/json", a.asJSON)
		gr.Get("/placeholder", a.placeholder)
		gr.Get("/{id}/subscriptions", a.subscriptions)
		gr.Get("/{id}/image", a.image)
	})
	return r
}

func (a *ApplicationsRessource) respondUpdated(w http.ResponseWriter, r *http.Request, ok bool, err error, what string) {
	if err != nil {
		a.log.Error("unable to update "+what, zap.Error(err))
		respondError(w, r, "internal server error", http.StatusInternalServerError)
		return
	}
	if !ok {
		respondError(w, r, what+" not found", http.StatusNotFound)
		return
	}
	err = render.Render(w, r, &genericSuccessResponse{
		Success: true,
		Message: "Successfully updated " + what,
	})
	if err != nil {
		a.log.Error("unable to render response", zap.Error(err))
	}
}

func (a *ApplicationsRessource) upsert(w http.ResponseWriter, r *http.Request) {
	var payload application.Payload
	err := json.NewDecoder(r.Body).Decode(&payload)
	if err != nil || payload == nil {
		a.log.Info("invalid payload data", zap.Error(err))
		respondError(w, r, "invalid payload", http.StatusBadRequest)
		return
	}
	header := &applicationHeader{ID: payload.String("id"), URL: payload.String("url")}
	if err := a.validate.Struct(header); err != nil {
		a.log.Info("payload is missing required fields", zap.Error(err))
		respondError(w, r, "id and url are required", http.StatusBadRequest)
		return
	}

	var custom tables.MapStructure
	if raw, ok := payload[customFieldsKey].(map[string]interface{}); ok {
		custom = application.CustomFields(raw)
	}
	delete(payload, customFieldsKey)

	ev := r.URL.Query().Get("event")
	if ev == "" {
		ev = application.EventInternal
	}
	created, err := a.service.CreateOrUpdate(r.Context(), payload, ev, custom)
	if errors.Is(err, application.ErrMissingApplicationID) {
		respondError(w, r, "id and url are required", http.StatusBadRequest)
		return
	}
	if err != nil {
		a.log.Error("unable to store application", sanitize.UserInputString("url", header.URL), zap.Error(err))
		respondError(w, r, "internal server error", http.StatusInternalServerError)
		return
	}
	if created {
		render.Status(r, http.StatusCreated)
	}
	err = render.Render(w, r, &upsertResponse{Created: created})
	if err != nil {
		a.log.Error("unable to render response", zap.Error(err))
	}
}

func (a *ApplicationsRessource) refresh(w http.ResponseWriter, r *http.Request) {
	appURL := r.URL.Query().Get("url")
	if appURL == "" {
		respondError(w, r, "url is required", http.StatusBadRequest)
		return
	}
	payload, err := a.service.FetchFromAPIC(r.Context(), appURL)
	if err != nil {
		a.log.Error("unable to fetch application", sanitize.UserInputString("url", appURL), zap.Error(err))
		respondError(w, r, "unable to fetch application", http.StatusBadGateway)
		return
	}
	if payload == nil {
		respondError(w, r, "application not found", http.StatusNotFound)
		return
	}
	created, err := a.service.CreateOrUpdate(r.Context(), payload, eventContentRefresh, nil)
	if err != nil {
		a.log.Error("unable to store application", sanitize.UserInputString("url", appURL), zap.Error(err))
		respondError(w, r, "internal server error", http.StatusInternalServerError)
		return
	}
	a.service.InvalidateCaches(r.Context())
	err = render.Render(w, r, &upsertResponse{Created: created})
	if err != nil {
		a.log.Error("unable to render response", zap.Error(err))
	}
}

func (a *ApplicationsRessource) respondDeleted(w http.ResponseWriter, r *http.Request, ok bool, err error) {
	if err != nil {
		a.log.Error("unable to delete application", zap.Error(err))
		respondError(w, r, "internal server error", http.StatusInternalServerError)
		return
	}
	if !ok {
		respondError(w, r, "application not found", http.StatusNotFound)
		return
	}
	err = render.Render(w, r, &genericSuccessResponse{
		Success: true,
		Message: "Successfully deleted application",
	})
	if err != nil {
		a.log.Error("unable to render response", zap.Error(err))
	}
}

func (a *ApplicationsRessource) deleteByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "applicationID")
	ok, err := a.service.DeleteByID(r.Context(), id, eventFromQuery(r))
	a.respondDeleted(w, r, ok, err)
}

func (a *ApplicationsRessource) deleteNode(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, "invalid id", http.StatusBadRequest)
		return
	}
	ok, err := a.service.DeleteNode(r.Context(), id, eventFromQuery(r))
	a.respondDeleted(w, r, ok, err)
}

func (a *ApplicationsRessource) deleteByURL(w http.ResponseWriter, r *http.Request) {
	appURL := r.URL.Query().Get("url")
	if appURL == "" {
		respondError(w, r, "url is required", http.StatusBadRequest)
		return
	}
	ok, err := a.service.DeleteByURL(r.Context(), appURL, eventFromQuery(r))
	a.respondDeleted(w, r, ok, err)
}

func eventFromQuery(r *http.Request) string {
	if ev := r.URL.Query().Get("event"); ev != "" {
		return ev
	}
	return application.EventInternal
}

func (a *ApplicationsRessource) putCredential(w http.ResponseWriter, r *http.Request) {
	appURL := r.URL.Query().Get("app_url")
	var req *application.CredentialInput
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req == nil || appURL == "" {
		a.log.Info("invalid payload data", zap.Error(err))
		respondError(w, r, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.log.Info("invalid credential", zap.Error(err))
		respondError(w, r, "invalid payload", http.StatusBadRequest)
		return
	}
	ok, err := a.service.CreateOrUpdateCredential(r.Context(), appURL, req)
	a.respondUpdated(w, r, ok, err, "credential")
}

func (a *ApplicationsRessource) deleteCredential(w http.ResponseWriter, r *http.Request) {
	appURL := r.URL.Query().Get("app_url")
	id := r.URL.Query().Get("id")
	if appURL == "" || id == "" {
		respondError(w, r, "app_url and id are required", http.StatusBadRequest)
		return
	}
	ok, err := a.service.DeleteCredential(r.Context(), appURL, id)
	a.respondUpdated(w, r, ok, err, "credential")
}

func (a *ApplicationsRessource) putSubscription(w http.ResponseWriter, r *http.Request) {
	appURL := r.URL.Query().Get("app_url")
	var req *application.SubscriptionInput
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req == nil || appURL == "" {
		a.log.Info("invalid payload data", zap.Error(err))
		respondError(w, r, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := a.validate.Struct(req); err != nil {
		a.log.Info("invalid subscription", zap.Error(err))
		respondError(w, r, "invalid payload", http.StatusBadRequest)
		return
	}
	ok, err := a.service.CreateOrUpdateSubscription(r.Context(), appURL, req)
	a.respondUpdated(w, r, ok, err, "subscription")
}

func (a *ApplicationsRessource) deleteSubscription(w http.ResponseWriter, r *http.Request) {
	appURL := r.URL.Query().Get("app_url")
	id := r.URL.Query().Get("id")
	if appURL == "" || id == "" {
		respondError(w, r, "app_url and id are required", http.StatusBadRequest)
		return
	}
	ok, err := a.service.DeleteSubscription(r.Context(), appURL, id)
	a.respondUpdated(w, r, ok, err, "subscription")
}

func (a *ApplicationsRessource) setImage(w http.ResponseWriter, r *http.Request) {
	appURL := r.URL.Query().Get("app_url")
	var req *setImageRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil || req == nil || appURL == "" {
		a.log.Info("invalid payload data", zap.Error(err))
		respondError(w, r, "invalid payload", http.StatusBadRequest)
		return
	}
	ok, err := a.service.SetImage(r.Context(), appURL, req.Image)
	a.respondUpdated(w, r, ok, err, "image")
}

func (a *ApplicationsRessource) list(w http.ResponseWriter, r *http.Request) {
	ids, err := a.service.ListApplications(r.Context())
	if err != nil {
		a.log.Error("error listing applications", zap.Error(err))
		respondError(w, r, "internal server error", http.StatusInternalServerError)
		return
	}
	res := &listResponse{Applications: make([]string, 0, len(ids))}
	for _, id := range ids {
		res.Applications = append(res.Applications, id.String())
	}
	err = render.Render(w, r, res)
	if err != nil {
		a.log.Error("unable to render response", zap.Error(err))
	}
}

func (a *ApplicationsRessource) asJSON(w http.ResponseWriter, r *http.Request) {
	appURL := r.URL.Query().Get("url")
	if appURL == "" {
		respondError(w, r, "url is required", http.StatusBadRequest)
		return
	}
	doc, err := a.service.ApplicationAsJSON(r.Context(), appURL)
	if err != nil {
		a.log.Error("unable to serialize application", sanitize.UserInputString("url", appURL), zap.Error(err))
		respondError(w, r, "internal server error", http.StatusInternalServerError)
		return
	}
	if doc == "" {
		respondError(w, r, "application not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(doc))
}

func (a *ApplicationsRessource) placeholder(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	err := render.Render(w, r, &imageResponse{Image: a.service.PlaceholderImage(name)})
	if err != nil {
		a.log.Error("unable to render response", zap.Error(err))
	}
}

func (a *ApplicationsRessource) recordFromPath(w http.ResponseWriter, r *http.Request) (*tables.ApplicationTable, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondError(w, r, "invalid id", http.StatusBadRequest)
		return nil, false
	}
	record, err := a.service.ByID(r.Context(), id)
	if err != nil {
		a.log.Error("unable to load application", zap.Error(err))
		respondError(w, r, "internal server error", http.StatusInternalServerError)
		return nil, false
	}
	if record == nil || !canSee(identity.FromContext(r.Context()), record.ConsumerOrgURL) {
		respondError(w, r, "application not found", http.StatusNotFound)
		return nil, false
	}
	return record, true
}

func canSee(p *identity.Principal, consumerOrgURL string) bool {
	if p.IsAdmin() || p.HasPermission(identity.PermissionEditAnyApplication) {
		return true
	}
	return p.HasConsumerOrg() && p.ConsumerOrgURL == consumerOrgURL
}

func (a *ApplicationsRessource) subscriptions(w http.ResponseWriter, r *http.Request) {
	record, ok := a.recordFromPath(w, r)
	if !ok {
		return
	}
	views, err := a.service.Subscriptions(r.Context(), record)
	if err != nil {
		a.log.Error("unable to resolve subscriptions", zap.Error(err))
		respondError(w, r, "internal server error", http.StatusInternalServerError)
		return
	}
	if views == nil {
		views = []*application.SubscriptionView{}
	}
	render.Respond(w, r, views)
}

func (a *ApplicationsRessource) image(w http.ResponseWriter, r *http.Request) {
	record, ok := a.recordFromPath(w, r)
	if !ok {
		return
	}
	err := render.Render(w, r, &imageResponse{Image: a.service.ImageForApp(record, record.Name)})
	if err != nil {
		a.log.Error("unable to render response", zap.Error(err))
	}
}

func NewApplicationsRessource(logger *zap.Logger, service ApplicationService, validate *validator.Validate) *ApplicationsRessource {
	if validate == nil {
		validate = validator.New()
	}
	return &ApplicationsRessource{
		log:      logger,
		service:  service,
		validate: validate,
	}
}
