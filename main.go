package main

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/eisenwinter/apicportal/cmd"
	"github.com/eisenwinter/apicportal/config"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/safehtml/template"
	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

//go:embed templates/static
//go:embed templates/404.html
//go:embed templates/change_password.html
//go:embed templates/email/template.html
var templates embed.FS

var (
	Version   = "?"
	BuildTime = "?"
	GitCommit = "-"
	GitRef    = "-"
)

func main() {
	//version info
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("apicportal %s, built %s from %s (%s)", Version, BuildTime, GitCommit, GitRef)
		return
	}
	logger := bootstrap()
	defer func() {
		_ = logger.Sync()

	}()
	cmd.TopLevelLogger = logger
	cmd.Execute()
}

func bootstrap() *zap.Logger {
	if _, err := os.Stat(".env"); err == nil {
		err := godotenv.Load()
		if err != nil {
			log.Fatal("Error loading .env file")
		}
	}
	cfg := zap.NewProductionConfig()
	if r := os.Getenv("DEBUG_LOG"); r == "true" {
		cfg = zap.NewDevelopmentConfig()
	}
	logger, err := cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		log.Fatal(err)
	}
	cobra.OnInitialize(func() { initConfig(logger) })
	return logger
}

func setDefaults() {
	viper.SetDefault("server.port", 3000)
	viper.SetDefault("server.load-template-folder", false)
	viper.SetDefault("smtp.enable", false)
	viper.SetDefault("kv.type", "memory")
	viper.SetDefault("kv.staging-expiry", "1h")
	viper.SetDefault("kv.reset-token-expiry", "24h")
	viper.SetDefault("portal.request-timeout", "10s")
	viper.SetDefault("portal.rate-limit", 0)
	viper.SetDefault("portal.show-placeholder-images", true)
	viper.SetDefault("portal.application-image-path", "/images/applications")
	viper.SetDefault("portal.product-image-path", "/images/products")
	viper.SetDefault("jwt.alg", "HS256")
	viper.SetDefault("jwt.exp", "900s")
	viper.SetDefault("password-policy.min-length", 8)
	viper.SetDefault("password-policy.show-policy-status", true)
	viper.SetDefault("manage-endpoint.enable", false)
}

func initConfig(logger *zap.Logger) {
	bind := func(from string, to string) {
		err := viper.BindEnv(to, from)
		if err != nil {
			logger.Error("unable to bindenv", zap.String("from", from), zap.String(to, to), zap.Error(err))
		}

	}
	setDefaults()
	bind("PORT", "server.port")
	bind("ADDRESS", "server.address")

	bind("APIC_PORT", "server.port")
	bind("APIC_ADDRESS", "server.address")
	bind("APIC_SERVER_CSRF_TOKEN", "server.csrf-token")
	bind("APIC_SERVER_LOAD_TEMPLATE_FOLDER", "server.load-template-folder")

	bind("APIC_DATABASE_TYPE", "database.type")
	bind("APIC_DATABASE_DSN", "database.dsn")

	bind("APIC_SMTP_ENABLE", "smtp.enable")
	bind("APIC_SMTP_HOST", "smtp.host")
	bind("APIC_SMTP_PORT", "smtp.port")
	bind("APIC_SMTP_USERNAME", "smtp.username")
	bind("APIC_SMTP_PASSWORD", "smtp.password")
	bind("APIC_SMTP_DISPLAYNAME", "smtp.display-name")
	bind("APIC_SMTP_ADDRESS", "smtp.address")

	bind("APIC_KV_TYPE", "kv.type")
	bind("APIC_KV_ADDRESS", "kv.address")
	bind("APIC_KV_PASSWORD", "kv.password")
	bind("APIC_KV_DB", "kv.db")
	bind("APIC_KV_STAGING_EXPIRY", "kv.staging-expiry")
	bind("APIC_KV_RESET_TOKEN_EXPIRY", "kv.reset-token-expiry")

	bind("APIC_PORTAL_SITE", "portal.site")
	bind("APIC_PORTAL_SITE_PATH", "portal.site-path")
	bind("APIC_PORTAL_APIM_HOST", "portal.apim-host")
	bind("APIC_PORTAL_CONSUMER_API", "portal.consumer-api")
	bind("APIC_PORTAL_CONSUMER_API_PREFIX", "portal.consumer-api-prefix")
	bind("APIC_PORTAL_PROVIDER_ORG_ID", "portal.provider-org-id")
	bind("APIC_PORTAL_CATALOG_ID", "portal.catalog-id")
	bind("APIC_PORTAL_REQUEST_TIMEOUT", "portal.request-timeout")
	bind("APIC_PORTAL_RATE_LIMIT", "portal.rate-limit")
	bind("APIC_PORTAL_API_TOKEN", "portal.api-token")
	bind("APIC_PORTAL_SHOW_PLACEHOLDER_IMAGES", "portal.show-placeholder-images")
	bind("APIC_PORTAL_APPLICATION_IMAGE_PATH", "portal.application-image-path")
	bind("APIC_PORTAL_PRODUCT_IMAGE_PATH", "portal.product-image-path")

	bind("APIC_MODULES_ENABLED", "modules.enabled")

	bind("APIC_PASSWORD_POLICY_MIN_LENGTH", "password-policy.min-length")
	bind("APIC_PASSWORD_POLICY_REQUIRE_UPPER", "password-policy.require-upper")
	bind("APIC_PASSWORD_POLICY_REQUIRE_LOWER", "password-policy.require-lower")
	bind("APIC_PASSWORD_POLICY_REQUIRE_DIGIT", "password-policy.require-digit")
	bind("APIC_PASSWORD_POLICY_REQUIRE_SPECIAL", "password-policy.require-special")
	bind("APIC_PASSWORD_POLICY_SHOW_POLICY_STATUS", "password-policy.show-policy-status")

	bind("APIC_JWT_ALG", "jwt.alg")
	bind("APIC_JWT_EXP", "jwt.exp")
	bind("APIC_JWT_HMAC_SIGNING_KEY", "jwt.hmac-signing-key")

	bind("APIC_MANAGE_ENDPOINT_ENABLE", "manage-endpoint.enable")
	bind("APIC_MANAGE_ENDPOINT_CORS_ALLOWED_ORIGINS", "manage-endpoint.cors.allowed-origins")
	bind("APIC_MANAGE_ENDPOINT_CORS_ALLOWED_METHODS", "manage-endpoint.cors.allowed-methods")
	bind("APIC_MANAGE_ENDPOINT_CORS_ALLOW_CREDENTIALS", "manage-endpoint.cors.allow-credentials")

	if cmd.ConfigFileLocation != "" {
		logger.Debug("Using supplied config file", zap.String("file", cmd.ConfigFileLocation))
		viper.SetConfigFile(cmd.ConfigFileLocation)
	} else {
		path, err := os.Getwd()
		if err != nil {
			logger.Warn("Unable to get current working dir", zap.Error(err))
		}
		cobra.CheckErr(err)
		viper.AddConfigPath(path)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		logger.Debug("Looking for default config file")
	}
	//precedence: environment overwrites yml
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logger.Debug("No confg file loaded")
	} else {
		logger.Debug("Config file loaded", zap.String("file", viper.ConfigFileUsed()))
	}

	conf := &config.Configuration{}
	err := viper.Unmarshal(conf)
	if err != nil {
		logger.Fatal("Unable to unmarshall config", zap.Error(err))
	}
	logger.Debug("Config loaded", zap.Any("config", conf))
	logger.Debug("Validating final config")
	if err = conf.Validate(); err != nil {
		logger.Fatal("Invalid configuration", zap.Error(err))
	}
	cmd.LoadedConfig = conf

	if cmd.LoadedConfig.Server.LoadTemplateFolder {
		if _, err := os.Stat("templates"); os.IsNotExist(err) {
			logger.Fatal("You need to add the templates folder when using  `server.load-template-folder:true`")
		}
		statics, err := fs.Sub(os.DirFS("templates"), "static")
		if err != nil {
			logger.Fatal("Unable to open templates/static folder")
		}
		cmd.FileSystemsConfig = &config.FileSystems{
			StaticFolder: statics,
			Pages:        template.TrustedFSFromTrustedSource(template.TrustedSourceFromConstant("templates")),
		}
	} else {
		statics, err := fs.Sub(templates, "templates/static")
		if err != nil {
			logger.Fatal("Unable to open templates/static folder")
		}
		pages, err := template.TrustedFSFromEmbed(templates).Sub(template.TrustedSourceFromConstant("templates"))
		if err != nil {
			logger.Fatal("Unable to open embedded templates folder", zap.Error(err))
		}
		cmd.FileSystemsConfig = &config.FileSystems{
			StaticFolder: statics,
			Pages:        pages,
		}
	}

}
