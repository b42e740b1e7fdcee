package management

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/eisenwinter/apicportal/api/app/management/mocks"
	"github.com/eisenwinter/apicportal/config"
	"github.com/eisenwinter/apicportal/identity"
	"github.com/eisenwinter/apicportal/manage"
	"github.com/eisenwinter/apicportal/modules"
	"github.com/eisenwinter/apicportal/user"
	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"
)

var admin = &identity.Principal{UserID: identity.AdminUserID, Username: "admin"}

type fixture struct {
	users   *mocks.UserService
	apps    *mocks.ApplicationService
	remover *mocks.ModuleRemover
	resets  *mocks.ResetLinkIssuer
}

func handlerFor(t *testing.T, p *identity.Principal) (http.Handler, *fixture) {
	f := &fixture{
		users:   mocks.NewUserService(t),
		apps:    mocks.NewApplicationService(t),
		remover: mocks.NewModuleRemover(t),
		resets:  mocks.NewResetLinkIssuer(t),
	}
	cfg := &config.ManageEndpointConfiguration{
		Enable: true,
		CORS: &config.CORSConfiguration{
			AllowedOrigins: []string{"https://admin.example.com"},
			AllowedMethods: []string{"GET", "POST"},
		},
	}
	router := NewManagementRessource(zaptest.NewLogger(t), cfg, f.users, f.apps, f.remover, f.resets).Router()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		router.ServeHTTP(w, r.WithContext(identity.WithPrincipal(r.Context(), p)))
	}), f
}

func TestPing(t *testing.T) {
	h, _ := handlerFor(t, identity.Anonymous)
	apitest.New().
		Handler(h).
		Get("/.ping").
		Expect(t).
		Status(http.StatusOK).
		Body("pong").
		End()
}

func TestManageRequiresAdmin(t *testing.T) {
	h, _ := handlerFor(t, &identity.Principal{UserID: 3, Permissions: []string{identity.PermissionEditAnyApplication}})
	apitest.New().
		Handler(h).
		Get("/custom-modules").
		Expect(t).
		Status(http.StatusForbidden).
		End()

	anon, _ := handlerFor(t, identity.Anonymous)
	apitest.New().
		Handler(anon).
		Get("/applications").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

func TestInstalledModules(t *testing.T) {
	h, f := handlerFor(t, admin)
	f.remover.On("Installed").Return([]string{"alpha", "beta"}, nil).Once()

	apitest.New().
		Handler(h).
		Get("/custom-modules").
		Expect(t).
		Status(http.StatusOK).
		Body(`{"installed":["alpha","beta"]}`).
		End()
}

func TestStageModules(t *testing.T) {
	h, f := handlerFor(t, admin)
	f.remover.On("Stage", mock.Anything, identity.AdminUserID, []string{"alpha"}).Return(nil).Once()
	f.remover.On("Stage", mock.Anything, identity.AdminUserID, []string{"../etc"}).Return(modules.ErrInvalidModuleName).Once()

	apitest.New().
		Handler(h).
		Post("/custom-modules").
		JSON(`{"modules":["alpha"]}`).
		Expect(t).
		Status(http.StatusAccepted).
		Body(`{"staged":["alpha"]}`).
		End()

	apitest.New().
		Handler(h).
		Post("/custom-modules").
		JSON(`{"modules":["../etc"]}`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestStagedModulesNothingStaged(t *testing.T) {
	h, f := handlerFor(t, admin)
	f.remover.On("Staged", mock.Anything, identity.AdminUserID).Return(nil, modules.ErrNothingStaged).Once()

	apitest.New().
		Handler(h).
		Get("/custom-modules/confirm").
		Expect(t).
		Status(http.StatusNotFound).
		Body(`{"error":"no modules staged for deletion"}`).
		End()
}

func TestConfirmModules(t *testing.T) {
	h, f := handlerFor(t, admin)
	f.remover.On("Confirm", mock.Anything, identity.AdminUserID).Return(true, nil).Once()

	apitest.New().
		Handler(h).
		Post("/custom-modules/confirm").
		Expect(t).
		Status(http.StatusOK).
		Body(`{"success":true,"message":"Successfully deleted custom modules"}`).
		End()
}

func TestConfirmModulesNothingDeleted(t *testing.T) {
	h, f := handlerFor(t, admin)
	f.remover.On("Confirm", mock.Anything, identity.AdminUserID).Return(false, nil).Once()

	apitest.New().
		Handler(h).
		Post("/custom-modules/confirm").
		Expect(t).
		Status(http.StatusConflict).
		End()
}

func TestListApplicationsPassesPaging(t *testing.T) {
	h, f := handlerFor(t, admin)
	f.apps.On("List", mock.Anything, 2, 5, "state==enabled", "-created_at").
		Return(&manage.PaginationResponse{Total: 0, Entries: []*manage.ApplicationDTO{}}, nil).Once()

	apitest.New().
		Handler(h).
		Get("/applications").
		Query("page", "2").
		Query("page_size", "5").
		Query("q", "state==enabled").
		Query("sort", "-created_at").
		Expect(t).
		Status(http.StatusOK).
		Body(`{"total":0,"entries":[]}`).
		End()
}

func TestListUsersInvalidQuery(t *testing.T) {
	h, f := handlerFor(t, admin)
	f.users.On("List", mock.Anything, 1, 12, "username=", "").Return(nil, errors.New("fiql: unexpected end")).Once()

	apitest.New().
		Handler(h).
		Get("/users").
		Query("query", "username=").
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestUserByID(t *testing.T) {
	h, f := handlerFor(t, admin)
	f.users.On("ByID", mock.Anything, 8).Return(nil, manage.ErrUserNotFound).Once()

	apitest.New().
		Handler(h).
		Get("/users/by-id").
		Query("id", "8").
		Expect(t).
		Status(http.StatusNotFound).
		End()

	apitest.New().
		Handler(h).
		Get("/users/by-id").
		Query("id", "abc").
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestIssueResetLink(t *testing.T) {
	h, f := handlerFor(t, admin)
	f.resets.On("Issue", mock.Anything, "alice", true).Return(&user.ResetLink{
		Link:   "https://portal.example.com/account/change-password?pass-reset-token=tok",
		Mailed: true,
		Expiry: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}, nil)
	apitest.New().
		Handler(h).
		Post("/users/reset-link").
		JSON(`{"username":"alice","notify":true}`).
		Expect(t).
		Status(http.StatusCreated).
		Body(`{"link":"https://portal.example.com/account/change-password?pass-reset-token=tok","mailed":true,"expires_at":"2026-01-02T03:04:05Z"}`).
		End()
}

func TestIssueResetLinkUnknownUser(t *testing.T) {
	h, f := handlerFor(t, admin)
	f.resets.On("Issue", mock.Anything, "ghost", false).Return(nil, user.ErrEntityDoesNotExist)
	apitest.New().
		Handler(h).
		Post("/users/reset-link").
		JSON(`{"username":"ghost"}`).
		Expect(t).
		Status(http.StatusNotFound).
		End()
}

func TestIssueResetLinkMailFailureStillReturnsLink(t *testing.T) {
	h, f := handlerFor(t, admin)
	f.resets.On("Issue", mock.Anything, "alice", true).Return(&user.ResetLink{Link: "l"}, errors.New("smtp down"))
	apitest.New().
		Handler(h).
		Post("/users/reset-link").
		JSON(`{"username":"alice","notify":true}`).
		Expect(t).
		Status(http.StatusCreated).
		End()
}

func TestIssueResetLinkRequiresUsername(t *testing.T) {
	h, _ := handlerFor(t, admin)
	apitest.New().
		Handler(h).
		Post("/users/reset-link").
		JSON(`{}`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}
