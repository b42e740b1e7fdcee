package api

import (
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/eisenwinter/apicportal/config"
	"github.com/eisenwinter/apicportal/identity"
	"github.com/eisenwinter/apicportal/modules"
	"github.com/eisenwinter/apicportal/tokens"
	"github.com/eisenwinter/apicportal/user"
	"github.com/google/safehtml/template"
	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

const testSigningKey = "a-test-signing-key-that-is-long-enough-for-hs256"

type composed struct {
	handler http.Handler
	issuer  *tokens.TokenIssuer
}

func composeForTest(t *testing.T, manage bool) *composed {
	logger := zaptest.NewLogger(t)
	jwtCfg := &config.JWTConfiguration{Algorithm: "HS256", HMACSigningKey: testSigningKey, Expiry: time.Minute}
	issuer, err := tokens.NewIssuer(logger, jwtCfg)
	if err != nil {
		t.Fatalf("issuer: %v", err)
	}
	cfg := &config.Configuration{
		Server: &config.ServerConfiguration{CSRFToken: "0123456789abcdef0123456789abcdef"},
		Portal: &config.PortalConfiguration{Site: "https://portal.example.com"},
		JWT:    jwtCfg,
		ManageEndpoint: &config.ManageEndpointConfiguration{
			Enable: manage,
			CORS:   &config.CORSConfiguration{AllowedOrigins: []string{"*"}, AllowedMethods: []string{"GET"}},
		},
		PasswordPolicy: &config.PasswordPolicyConfiguration{MinLength: 8},
	}
	handler := modules.NewHandler(&config.ModulesConfiguration{Enabled: []string{modules.PasswordPolicy}})
	services := &Services{
		Issuer:    issuer,
		Modules:   handler,
		Passwords: user.NewPasswordService(logger, nil, nil, handler, cfg.PasswordPolicy, nil),
	}
	fileSystems := &config.FileSystems{
		StaticFolder: os.DirFS("../templates/static"),
		Pages:        template.TrustedFSFromTrustedSource(template.TrustedSourceFromConstant("../templates")),
	}
	r, err := compose(logger, cfg, services, fileSystems)
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	return &composed{handler: r, issuer: issuer}
}

func (c *composed) bearer(t *testing.T, p *identity.Principal) string {
	token, err := c.issuer.IssuePrincipalToken(p)
	assert.NoError(t, err)
	signed, err := c.issuer.Sign(token)
	assert.NoError(t, err)
	return "Bearer " + string(signed)
}

func TestUnknownRoutesRedirectToSite(t *testing.T) {
	t.Setenv("APIC_DEBUG_MODE", "false")
	c := composeForTest(t, false)
	apitest.New().
		Handler(c.handler).
		Get("/somewhere").
		Expect(t).
		Status(http.StatusFound).
		Header("Location", "https://portal.example.com").
		End()
}

func TestMetricsEndpoint(t *testing.T) {
	c := composeForTest(t, false)
	apitest.New().
		Handler(c.handler).
		Get("/metrics").
		Expect(t).
		Status(http.StatusOK).
		End()
}

func TestPortalConfigurationIsPublic(t *testing.T) {
	c := composeForTest(t, false)
	apitest.New().
		Handler(c.handler).
		Get("/.well-known/portal-configuration").
		Expect(t).
		Status(http.StatusOK).
		End()
}

func TestApplicationsRequireToken(t *testing.T) {
	c := composeForTest(t, false)
	apitest.New().
		Handler(c.handler).
		Get("/applications/placeholder").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

func TestInvalidTokenIsRejected(t *testing.T) {
	c := composeForTest(t, true)
	apitest.New().
		Handler(c.handler).
		Get("/manage/.ping").
		Header("Authorization", "Bearer not-a-token").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

func TestManageIsMountedWhenEnabled(t *testing.T) {
	c := composeForTest(t, true)
	apitest.New().
		Handler(c.handler).
		Get("/manage/.ping").
		Header("Authorization", c.bearer(t, &identity.Principal{UserID: identity.AdminUserID, Username: "admin"})).
		Expect(t).
		Status(http.StatusOK).
		Body("pong").
		End()

	apitest.New().
		Handler(c.handler).
		Get("/manage/custom-modules").
		Header("Authorization", c.bearer(t, &identity.Principal{UserID: 7, Username: "dev"})).
		Expect(t).
		Status(http.StatusForbidden).
		End()
}

func TestManageIsNotMountedWhenDisabled(t *testing.T) {
	t.Setenv("APIC_DEBUG_MODE", "false")
	c := composeForTest(t, false)
	apitest.New().
		Handler(c.handler).
		Get("/manage/.ping").
		Expect(t).
		Status(http.StatusFound).
		End()
}
