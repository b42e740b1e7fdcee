package cmd

import (
	"context"

	"github.com/eisenwinter/apicportal/apim"
	"github.com/eisenwinter/apicportal/application"
	"github.com/eisenwinter/apicportal/cache"
	"github.com/eisenwinter/apicportal/db"
	"github.com/eisenwinter/apicportal/events"
	"github.com/eisenwinter/apicportal/kv"
	"github.com/eisenwinter/apicportal/mailing"
	"github.com/eisenwinter/apicportal/modules"
	"github.com/eisenwinter/apicportal/pkg/redis"
	"github.com/eisenwinter/apicportal/product"
	"github.com/eisenwinter/apicportal/rules"
	"github.com/eisenwinter/apicportal/user"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func mustResolveUsableDataStore() *db.DataStore {
	dataStore, err := db.NewStore(TopLevelLogger, LoadedConfig.Database)
	if err != nil {
		TopLevelLogger.Fatal("Failed to create datastore", zap.Error(err))
	}
	err = dataStore.EnsureUsable()
	if err != nil {
		TopLevelLogger.Fatal("Datastore is unusable", zap.Error(err))
	}
	return dataStore
}

// mustResolveRedis returns nil when the key value store is not backed by redis
func mustResolveRedis(ctx context.Context) *redis.Client {
	if LoadedConfig.KeyValue.Type != "redis" {
		return nil
	}
	client, err := redis.NewClient(ctx, redis.Config{
		Address:  LoadedConfig.KeyValue.Address,
		Password: LoadedConfig.KeyValue.Password,
		DB:       LoadedConfig.KeyValue.DB,
	}, TopLevelLogger.Named("redis"))
	if err != nil {
		TopLevelLogger.Fatal("Failed to connect to redis", zap.Error(err))
	}
	return client
}

func mustResolveKeyValueFactory(client *redis.Client) kv.Factory {
	factory, err := kv.NewFactory(TopLevelLogger.Named("kv"), LoadedConfig.KeyValue, client)
	if err != nil {
		TopLevelLogger.Fatal("Failed to create key value store", zap.Error(err))
	}
	return factory
}

func resolveInvalidator(client *redis.Client) cache.Invalidator {
	if client == nil {
		return cache.NoopInvalidator{}
	}
	return cache.NewRedisInvalidator(TopLevelLogger.Named("cache_invalidator"), client)
}

// resolveRemote returns nil when no consumer api is configured
func resolveRemote() *apim.Client {
	if LoadedConfig.Portal.ConsumerAPI == "" {
		TopLevelLogger.Info("No consumer api configured, remote calls are disabled")
		return nil
	}
	client, err := apim.New(TopLevelLogger.Named("apim_client"), LoadedConfig.Portal)
	if err != nil {
		TopLevelLogger.Fatal("Failed to create consumer api client", zap.Error(err))
	}
	return client
}

func resolveModules() *modules.Handler {
	return modules.NewHandler(LoadedConfig.Modules)
}

func bootstrapDispatcher(auditor db.Auditor, client *redis.Client, handler *modules.Handler) *events.Dispatcher {
	dispatcher := events.NewDispatcher(TopLevelLogger.Named("event_dispatcher"))
	//bootstrap listeners
	dbLayer := db.BootstrapListeners(auditor, TopLevelLogger.Named("event_listener"))
	dispatcher.Register(dbLayer...)
	if client != nil {
		dispatcher.Register(rules.BootstrapListeners(client, handler, TopLevelLogger.Named("rules_listener"))...)
	} else if handler.Exists(modules.Rules) {
		TopLevelLogger.Warn("rules module is enabled but no redis is configured, events are not published")
	}
	return dispatcher
}

func resolveApplicationService(
	dataStore *db.DataStore,
	dispatcher *events.Dispatcher,
	handler *modules.Handler,
	client *redis.Client,
) *application.Service {
	products := product.NewService(TopLevelLogger.Named("product_service"), dataStore)
	var remote application.RemoteClient
	if c := resolveRemote(); c != nil {
		remote = c
	}
	return application.New(TopLevelLogger,
		LoadedConfig.Portal,
		dataStore,
		products,
		remote,
		dispatcher,
		handler,
		resolveInvalidator(client))
}

func resolveUserService(
	dataStore *db.DataStore,
	dispatcher *events.Dispatcher,
	factory kv.Factory,
) *user.Service {
	return user.New(dataStore,
		TopLevelLogger,
		LoadedConfig.KeyValue,
		factory.Collection(user.ResetTokenCollection),
		dispatcher)
}

func resolvePasswordService(
	accounts *user.Service,
	dispatcher *events.Dispatcher,
	handler *modules.Handler,
) *user.PasswordService {
	var remote user.PasswordChanger
	if c := resolveRemote(); c != nil {
		remote = c
	}
	return user.NewPasswordService(TopLevelLogger,
		accounts,
		remote,
		handler,
		LoadedConfig.PasswordPolicy,
		dispatcher)
}

func resolveRemover(factory kv.Factory, dispatcher *events.Dispatcher) *modules.Remover {
	return modules.NewRemover(TopLevelLogger,
		afero.NewOsFs(),
		LoadedConfig.Portal.SitePath,
		factory.Collection(modules.StagingCollection),
		LoadedConfig.KeyValue.StagingExpiry,
		dispatcher)
}

func mustResolveMailer() *mailing.Mailer {
	mailer, err := mailing.NewMailer(TopLevelLogger,
		LoadedConfig.SMTP,
		LoadedConfig.Portal.Site,
		FileSystemsConfig.Pages)
	if err != nil {
		TopLevelLogger.Fatal("Failed to create mailer", zap.Error(err))
	}
	return mailer
}

func resolveResetLinks(accounts *user.Service) *user.ResetLinks {
	return user.NewResetLinks(TopLevelLogger, accounts, mustResolveMailer(), LoadedConfig.Portal.Site)
}
