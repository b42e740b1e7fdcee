// Package application keeps the local copy of the consumer applications of the api management backend
package application

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/eisenwinter/apicportal/apim"
	"github.com/eisenwinter/apicportal/cache"
	"github.com/eisenwinter/apicportal/config"
	"github.com/eisenwinter/apicportal/db"
	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/eisenwinter/apicportal/events"
	"github.com/eisenwinter/apicportal/events/event"
	"github.com/eisenwinter/apicportal/identity"
	"github.com/eisenwinter/apicportal/metrics"
	"github.com/eisenwinter/apicportal/sanitize"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrNoConsumerOrg is returned when the caller does not act for a consumer organization
	ErrNoConsumerOrg = errors.New("consumer organization not set")
	// ErrMissingApplicationID is returned for payloads without an id
	ErrMissingApplicationID = errors.New("payload has no application id")
)

// ModuleSerialization enables the outbound json representation
const ModuleSerialization = "serialization"

// ModuleProduct enables plan and product image resolution
const ModuleProduct = "product"

// Storer persists applications
type Storer interface {
	ApplicationByID(ctx context.Context, id uuid.UUID) (*tables.ApplicationTable, error)
	ApplicationByApplicationID(ctx context.Context, applicationID string) (*tables.ApplicationTable, error)
	ApplicationByURL(ctx context.Context, url string) (*tables.ApplicationTable, error)
	ApplicationIDs(ctx context.Context, consumerOrgURL *string) ([]uuid.UUID, error)
	InsertApplication(ctx context.Context, app *tables.ApplicationTable) error
	UpdateApplication(ctx context.Context, app *tables.ApplicationTable) error
	DeleteApplication(ctx context.Context, id uuid.UUID) (bool, error)
	SetApplicationImage(ctx context.Context, id uuid.UUID, image *string) error
}

// ProductLookup resolves products, missing products are nil without error
type ProductLookup interface {
	ByURL(ctx context.Context, url string, publishedOnly bool) (*tables.ProductTable, error)
}

// RemoteClient is the consumer api of the backend
type RemoteClient interface {
	ApplicationDetails(ctx context.Context, appURL string) (map[string]interface{}, error)
	RemoveFullyQualifiedURL(raw string) string
}

// Dispatcher dispatches events
type Dispatcher interface {
	Dispatch(ctx context.Context, event events.Event)
}

// ModuleChecker reports enabled optional modules
type ModuleChecker interface {
	Exists(name string) bool
}

// Service synchronizes applications
type Service struct {
	log         *zap.Logger
	cfg         *config.PortalConfiguration
	store       Storer
	products    ProductLookup
	remote      RemoteClient
	dispatcher  Dispatcher
	modules     ModuleChecker
	invalidator cache.Invalidator
}

// New returns a application service, remote may be nil if no consumer api is configured
func New(log *zap.Logger,
	cfg *config.PortalConfiguration,
	store Storer,
	products ProductLookup,
	remote RemoteClient,
	dispatcher Dispatcher,
	modules ModuleChecker,
	invalidator cache.Invalidator) *Service {
	if invalidator == nil {
		invalidator = cache.NoopInvalidator{}
	}
	return &Service{
		log:         log.Named("application_service"),
		cfg:         cfg,
		store:       store,
		products:    products,
		remote:      remote,
		dispatcher:  dispatcher,
		modules:     modules,
		invalidator: invalidator,
	}
}

func (s *Service) relative(raw string) string {
	if s.remote != nil {
		return s.remote.RemoveFullyQualifiedURL(raw)
	}
	return apim.RemoveFullyQualifiedURL(raw, s.cfg.ConsumerAPIPrefix)
}

// Create stores a new application and notifies about it, it returns the local id
func (s *Service) Create(ctx context.Context, payload Payload, ev string, custom tables.MapStructure) (uuid.UUID, error) {
	record, err := s.Update(ctx, &tables.ApplicationTable{}, payload, EventInternal, custom)
	if err != nil {
		return uuid.Nil, err
	}
	s.dispatcher.Dispatch(ctx, &event.ApplicationCreated{
		ID:            record.ID,
		ApplicationID: record.ApplicationID,
		URL:           record.URL,
		Title:         record.Title,
		Trigger:       ev,
	})
	s.log.Info("application created", sanitize.UserInputString("title", record.Title), zap.String("id", record.ID.String()))
	return record.ID, nil
}

// Update copies the payload onto record and persists it, records without id are inserted
func (s *Service) Update(ctx context.Context,
	record *tables.ApplicationTable,
	payload Payload,
	ev string,
	custom tables.MapStructure) (*tables.ApplicationTable, error) {
	if record == nil {
		s.log.Error("update application: no record provided")
		return nil, db.ErrNotFound
	}
	appID := payload.String("id")
	if appID == "" {
		return nil, ErrMissingApplicationID
	}
	record.Title = titleFromPayload(payload)
	record.Hostname = s.cfg.APIMHost
	record.ProviderID = s.cfg.ProviderOrgID
	record.CatalogID = s.cfg.CatalogID
	record.ApplicationID = appID
	record.ClientType = ClientTypeConfidential
	record.Name = payload.String("name")
	record.Summary = payload.String("summary")
	if payload.Has("consumer_org_url") {
		record.ConsumerOrgURL = s.relative(payload.String("consumer_org_url"))
	} else if payload.Has("org_url") {
		record.ConsumerOrgURL = s.relative(payload.String("org_url"))
	}
	record.RedirectEndpoints = tables.JSONList[string](payload.StringList("redirect_endpoints"))
	record.URL = payload.String("url")
	record.State = NormalizeState(payload.String("state"))
	record.Enabled = record.State == StateEnabled
	record.LifecycleState = NormalizeLifecycleState(payload.String("lifecycle_state"))
	if payload.Has("lifecycle_pending") {
		pending := payload.String("lifecycle_pending")
		record.LifecyclePending = &pending
	} else {
		record.LifecyclePending = nil
	}
	record.Credentials = credentialsFromPayload(payload, s.relative)
	record.Data = tables.MapStructure(stripMap(payload))
	if custom != nil {
		record.CustomFields = tables.MapStructure(stripMap(custom))
	}
	if record.CustomFields == nil {
		record.CustomFields = tables.MapStructure{}
	}
	if record.Subscriptions == nil {
		record.Subscriptions = tables.JSONList[tables.SubscriptionColumn]{}
	}

	var err error
	if record.ID == uuid.Nil {
		err = s.store.InsertApplication(ctx, record)
	} else {
		err = s.store.UpdateApplication(ctx, record)
	}
	if err != nil {
		s.log.Error("could not persist application", sanitize.UserInputString("application_id", appID), zap.Error(err))
		return nil, err
	}

	if ev != EventInternal {
		// webhooks may send a create down the update path
		if ev == EventCreate {
			s.log.Info("application created", sanitize.UserInputString("title", record.Title))
			s.dispatcher.Dispatch(ctx, &event.ApplicationCreated{
				ID:            record.ID,
				ApplicationID: record.ApplicationID,
				URL:           record.URL,
				Title:         record.Title,
				Trigger:       ev,
			})
		} else {
			s.log.Info("application updated", sanitize.UserInputString("title", record.Title))
			s.dispatcher.Dispatch(ctx, &event.ApplicationUpdated{
				ID:            record.ID,
				ApplicationID: record.ApplicationID,
				URL:           record.URL,
				Title:         record.Title,
				Trigger:       ev,
			})
		}
	}
	return record, nil
}

func (s *Service) createOrUpdate(ctx context.Context, payload Payload, ev string, custom tables.MapStructure) (uuid.UUID, bool, error) {
	appID := payload.String("id")
	if appID == "" {
		metrics.RecordSync(metrics.OutcomeFailed)
		return uuid.Nil, false, ErrMissingApplicationID
	}
	existing, err := s.store.ApplicationByApplicationID(ctx, appID)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		metrics.RecordSync(metrics.OutcomeFailed)
		return uuid.Nil, false, err
	}
	if existing == nil {
		id, err := s.Create(ctx, payload, ev, custom)
		if err != nil {
			metrics.RecordSync(metrics.OutcomeFailed)
			return uuid.Nil, false, err
		}
		metrics.RecordSync(metrics.OutcomeCreated)
		return id, true, nil
	}
	ts, hasTimestamp := payload.Timestamp()
	if hasTimestamp && existing.ChangedTime().Unix() >= ts {
		s.log.Info("application not changed since last sync, skipping update",
			zap.String("id", existing.ID.String()),
			zap.Int64("timestamp", ts))
		metrics.RecordSync(metrics.OutcomeSkipped)
		return existing.ID, false, nil
	}
	if _, err := s.Update(ctx, existing, payload, ev, custom); err != nil {
		metrics.RecordSync(metrics.OutcomeFailed)
		return uuid.Nil, false, err
	}
	metrics.RecordSync(metrics.OutcomeUpdated)
	return existing.ID, false, nil
}

// CreateOrUpdate upserts the application by its application id, existing applications
// are only updated if the payload is newer than the local copy. It returns true if the
// application was created
func (s *Service) CreateOrUpdate(ctx context.Context, payload Payload, ev string, custom tables.MapStructure) (bool, error) {
	_, created, err := s.createOrUpdate(ctx, payload, ev, custom)
	return created, err
}

// CreateOrUpdateReturnID upserts like CreateOrUpdate and returns the local id
func (s *Service) CreateOrUpdateReturnID(ctx context.Context, payload Payload, ev string, custom tables.MapStructure) (uuid.UUID, error) {
	id, _, err := s.createOrUpdate(ctx, payload, ev, custom)
	return id, err
}

func (s *Service) deleteRecord(ctx context.Context, record *tables.ApplicationTable, ev string) (bool, error) {
	s.dispatcher.Dispatch(ctx, &event.ApplicationDeleted{
		ID:            record.ID,
		ApplicationID: record.ApplicationID,
		URL:           record.URL,
		Trigger:       ev,
	})
	deleted, err := s.store.DeleteApplication(ctx, record.ID)
	if err != nil {
		return false, err
	}
	if deleted {
		metrics.RecordDeletion(ev)
		s.log.Info("application deleted", sanitize.UserInputString("title", record.Title))
	}
	return deleted, nil
}

// DeleteNode deletes the application with the local id
func (s *Service) DeleteNode(ctx context.Context, id uuid.UUID, ev string) (bool, error) {
	record, err := s.store.ApplicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.log.Info("delete application: not found", zap.String("id", id.String()))
			return false, nil
		}
		return false, err
	}
	return s.deleteRecord(ctx, record, ev)
}

// DeleteByID deletes the application with the remote application id
func (s *Service) DeleteByID(ctx context.Context, applicationID string, ev string) (bool, error) {
	record, err := s.store.ApplicationByApplicationID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.log.Warn("delete application: could not find application", sanitize.UserInputString("application_id", applicationID))
			return false, nil
		}
		return false, err
	}
	return s.deleteRecord(ctx, record, ev)
}

// DeleteByURL deletes the application with the remote url
func (s *Service) DeleteByURL(ctx context.Context, url string, ev string) (bool, error) {
	record, err := s.store.ApplicationByURL(ctx, url)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.log.Warn("delete application: could not find application", sanitize.UserInputString("url", url))
			return false, nil
		}
		return false, err
	}
	return s.deleteRecord(ctx, record, ev)
}

// ByID returns the application, nil if it does not exist
func (s *Service) ByID(ctx context.Context, id uuid.UUID) (*tables.ApplicationTable, error) {
	record, err := s.store.ApplicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.log.Debug("application not found", zap.String("id", id.String()))
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

// ByURL returns the application, nil if it does not exist
func (s *Service) ByURL(ctx context.Context, url string) (*tables.ApplicationTable, error) {
	record, err := s.store.ApplicationByURL(ctx, url)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.log.Debug("application not found", sanitize.UserInputString("url", url))
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

// FetchFromAPIC loads the application document from the backend, for the new pseudo url and
// error documents the result is nil
func (s *Service) FetchFromAPIC(ctx context.Context, appURL string) (Payload, error) {
	if appURL == "new" {
		return nil, nil
	}
	if !identity.FromContext(ctx).HasConsumerOrg() {
		s.log.Warn("fetch application: consumer organization not set")
		return nil, ErrNoConsumerOrg
	}
	if s.remote == nil {
		return nil, errors.New("no consumer api configured")
	}
	result, err := s.remote.ApplicationDetails(ctx, appURL)
	if err != nil {
		if errors.Is(err, apim.ErrRemoteError) {
			return nil, nil
		}
		return nil, err
	}
	return Payload(result), nil
}

// ListApplications returns the ids of the applications the caller may see
func (s *Service) ListApplications(ctx context.Context) ([]uuid.UUID, error) {
	p := identity.FromContext(ctx)
	if p.HasPermission(identity.PermissionEditAnyApplication) {
		return s.store.ApplicationIDs(ctx, nil)
	}
	if p.HasConsumerOrg() {
		org := p.ConsumerOrgURL
		return s.store.ApplicationIDs(ctx, &org)
	}
	return []uuid.UUID{}, nil
}

// ApplicationAsJSON returns the json representation of the application, empty if the
// serialization module is disabled or the application does not exist
func (s *Service) ApplicationAsJSON(ctx context.Context, url string) (string, error) {
	record, err := s.ByURL(ctx, url)
	if err != nil || record == nil {
		return "", err
	}
	if !s.modules.Exists(ModuleSerialization) {
		s.log.Info("application json requested but serialization module not enabled")
		return "", nil
	}
	data, err := json.Marshal(exportFromTable(record))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// InvalidateCaches invalidates the cache tag of the callers consumer organization
func (s *Service) InvalidateCaches(ctx context.Context) {
	p := identity.FromContext(ctx)
	if p.IsAnonymous() || p.IsAdmin() {
		return
	}
	tag := "consumerorg:" + sanitize.CleanCSSIdentifier(p.ConsumerOrgURL)
	if err := s.invalidator.InvalidateTags(ctx, tag); err != nil {
		s.log.Warn("could not invalidate cache tags", zap.String("tag", tag), zap.Error(err))
	}
}
