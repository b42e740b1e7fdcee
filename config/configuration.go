package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/google/safehtml/template"
)

// ServerConfiguration contains the server settings
type ServerConfiguration struct {
	Port      int
	Address   string
	CSRFToken string `mapstructure:"csrf-token" json:"-"`
	// LoadTemplateFolder serves the pages from ./templates instead of the embedded copy
	LoadTemplateFolder bool `mapstructure:"load-template-folder"`
}

// SMTPConfiguration contains the email settings used for password reset mails
type SMTPConfiguration struct {
	Enable   bool
	Host     string
	Port     int
	Username string
	Password string `json:"-"`
	// DisplayName will be displayed as email sender
	DisplayName string `mapstructure:"display-name"`
	// Address is the sender address
	Address string
}

// DatabaseConfiguration contains the settings required to connect to a database
type DatabaseConfiguration struct {
	Type string
	DSN  string `json:"-"`
}

// KeyValueConfiguration configures the expiring key value store and
// the cache tag invalidation backend
type KeyValueConfiguration struct {
	// Type is either memory or redis
	Type     string
	Address  string
	Password string `json:"-"`
	DB       int
	// StagingExpiry is how long a staged module deletion is kept around
	StagingExpiry time.Duration `mapstructure:"staging-expiry"`
	// ResetTokenExpiry is the lifetime of a password reset token
	ResetTokenExpiry time.Duration `mapstructure:"reset-token-expiry"`
}

// PortalConfiguration describes the remote api management backend this portal belongs to
type PortalConfiguration struct {
	// Site is the public url of the portal, used for home redirects and fully qualified image urls
	Site string
	// APIMHost is the hostname of the api management backend
	APIMHost string `mapstructure:"apim-host"`
	// ConsumerAPI is the base url of the consumer api
	ConsumerAPI string `mapstructure:"consumer-api"`
	// ConsumerAPIPrefix is the path prefix stripped from fully qualified urls
	ConsumerAPIPrefix string        `mapstructure:"consumer-api-prefix"`
	ProviderOrgID     string        `mapstructure:"provider-org-id"`
	CatalogID         string        `mapstructure:"catalog-id"`
	RequestTimeout    time.Duration `mapstructure:"request-timeout"`
	// RateLimit caps outgoing requests per second to the consumer api, 0 disables the limit
	RateLimit float64 `mapstructure:"rate-limit"`
	// APIToken is sent as bearer token on consumer api calls
	APIToken string `mapstructure:"api-token" json:"-"`
	// ShowPlaceholderImages toggles generated application and product images
	ShowPlaceholderImages bool   `mapstructure:"show-placeholder-images"`
	ApplicationImagePath  string `mapstructure:"application-image-path"`
	ProductImagePath      string `mapstructure:"product-image-path"`
	// SitePath is the directory custom modules are installed to (<site-path>/modules)
	SitePath string `mapstructure:"site-path"`
}

// ModulesConfiguration lists the enabled optional modules
type ModulesConfiguration struct {
	Enabled []string
}

// PasswordPolicyConfiguration contains the password policy constraints,
// only enforced when the password_policy module is enabled
type PasswordPolicyConfiguration struct {
	MinLength        int  `mapstructure:"min-length"`
	RequireUpper     bool `mapstructure:"require-upper"`
	RequireLower     bool `mapstructure:"require-lower"`
	RequireDigit     bool `mapstructure:"require-digit"`
	RequireSpecial   bool `mapstructure:"require-special"`
	ShowPolicyStatus bool `mapstructure:"show-policy-status"`
}

// JWTConfiguration contains the settings to verify caller tokens
type JWTConfiguration struct {
	Algorithm      string        `mapstructure:"alg"`
	HMACSigningKey string        `mapstructure:"hmac-signing-key" json:"-"`
	Expiry         time.Duration `mapstructure:"exp"`
}

// FileSystems contains the used file systems
type FileSystems struct {
	StaticFolder fs.FS
	Pages        template.TrustedFS
}

// CORSConfiguration very basic cors configuration
type CORSConfiguration struct {
	AllowCredentials bool     `mapstructure:"allow-credentials"`
	AllowedMethods   []string `mapstructure:"allowed-methods"`
	AllowedOrigins   []string `mapstructure:"allowed-origins"`
}

// ManageEndpointConfiguration habours the manage endpoint configuration
type ManageEndpointConfiguration struct {
	Enable bool
	CORS   *CORSConfiguration
}

// Configuration habours the entire configuration
type Configuration struct {
	Server         *ServerConfiguration         `mapstructure:"server"`
	Database       *DatabaseConfiguration       `mapstructure:"database"`
	SMTP           *SMTPConfiguration           `mapstructure:"smtp"`
	KeyValue       *KeyValueConfiguration       `mapstructure:"kv"`
	Portal         *PortalConfiguration         `mapstructure:"portal"`
	Modules        *ModulesConfiguration        `mapstructure:"modules"`
	PasswordPolicy *PasswordPolicyConfiguration `mapstructure:"password-policy"`
	JWT            *JWTConfiguration            `mapstructure:"jwt"`
	ManageEndpoint *ManageEndpointConfiguration `mapstructure:"manage-endpoint"`
}

// Validate does some basic validation of the config file and tries to be helpful on missconfiguration
func (c *Configuration) Validate() error {
	if c.Database == nil {
		return errors.New("no database configuration found")
	}
	if c.Server == nil {
		return errors.New("no server configuration found")
	}
	if c.Portal == nil {
		return errors.New("no portal configuration found")
	}
	if c.Portal.SitePath == "" {
		return errors.New("portal.site-path is required to manage custom modules")
	}
	if c.KeyValue == nil {
		return errors.New("no kv configuration found")
	}
	switch c.KeyValue.Type {
	case "memory":
	case "redis":
		if c.KeyValue.Address == "" {
			return errors.New("when using kv.type redis you need to define kv.address")
		}
	default:
		return errors.New("kv.type needs to be either memory or redis")
	}
	if c.JWT == nil {
		return errors.New("no JWT configuration found")
	}
	switch c.JWT.Algorithm {
	case "HS256", "HS384", "HS512":
		if c.JWT.HMACSigningKey == "" {
			return errors.New(
				"when using jwt.alg HS256, HS384, HS512 you need to define hmac-signing-key",
			)
		}
	default:
		return errors.New("jwt.alg needs to be one of HS256, HS384, HS512")
	}
	if c.Modules == nil {
		c.Modules = &ModulesConfiguration{Enabled: []string{}}
	}
	if c.SMTP == nil {
		c.SMTP = &SMTPConfiguration{}
	}
	if c.SMTP.Enable && (c.SMTP.Host == "" || c.SMTP.Address == "") {
		return errors.New("when using smtp.enable you need to define smtp.host and smtp.address")
	}
	if c.PasswordPolicy == nil {
		c.PasswordPolicy = &PasswordPolicyConfiguration{}
	}
	if c.ManageEndpoint != nil {
		if c.ManageEndpoint.Enable && c.ManageEndpoint.CORS == nil {
			return errors.New("manage endpoint has no cors settings")
		}
	}
	return nil
}

// DebugMode returns true if the APIC_DEBUG_MODE variable is set
func (*Configuration) DebugMode() bool {
	if r := os.Getenv("APIC_DEBUG_MODE"); r == "true" {
		return true
	}
	return false
}
