//go:build integration
// +build integration

package db

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/eisenwinter/apicportal/config"
	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v4/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

type DatabaseIntegrationTestSuite struct {
	suite.Suite
	dataStore *DataStore
	dbType    string
	dsn       string
}

func (s *DatabaseIntegrationTestSuite) SetupTest() {
	//reset to clean state
	switch s.dbType {
	case "pg":
		s.dataStore.db.MustExec("DROP SCHEMA public CASCADE; CREATE SCHEMA public;")
	case "mysql":
		s.dataStore.db.MustExec("DROP DATABASE IF EXISTS apicportal;")
		s.dataStore.db.MustExec("CREATE DATABASE apicportal;")
		s.dataStore.db.MustExec("USE apicportal;")
	default:
		//just reopen for :memory:
		dataStore, err := NewSqliteStore(zap.NewNop(), &config.DatabaseConfiguration{
			Type: "sqlite",
			DSN:  s.dsn,
		})
		if err != nil {
			log.Fatal("error creating database store")
		}
		dataStore.db.SetMaxOpenConns(1)
		s.dataStore = dataStore
	}

	err := s.dataStore.EnsureUsable()
	assert.NoError(s.T(), err)
}

func testApplication(appID string, url string, org string) *tables.ApplicationTable {
	return &tables.ApplicationTable{
		ApplicationID:     appID,
		Title:             "App " + appID,
		Name:              appID,
		ConsumerOrgURL:    org,
		Enabled:           true,
		RedirectEndpoints: tables.JSONList[string]{"https://example.com/cb"},
		URL:               url,
		State:             "enabled",
		LifecycleState:    "PRODUCTION",
		ClientType:        "confidential",
		Credentials: tables.JSONList[tables.CredentialColumn]{
			{ID: "c1", ClientID: "client-1", Title: "c1"},
		},
		Data:         tables.MapStructure{"id": appID},
		CustomFields: tables.MapStructure{},
	}
}

func (s *DatabaseIntegrationTestSuite) TestApplicationInsertUpdateDelete() {
	ctx := context.Background()
	app := testApplication("app-1", "/apps/1", "/orgs/a")
	err := s.dataStore.InsertApplication(ctx, app)
	assert.NoError(s.T(), err)
	assert.NotEqual(s.T(), uuid.Nil, app.ID)

	loaded, err := s.dataStore.ApplicationByApplicationID(ctx, "app-1")
	assert.NoError(s.T(), err)
	if assert.NotNil(s.T(), loaded) {
		assert.Equal(s.T(), app.ID, loaded.ID)
		assert.Len(s.T(), loaded.Credentials, 1)
		assert.Nil(s.T(), loaded.UpdatedAt)
	}

	loaded.Title = "Renamed"
	err = s.dataStore.UpdateApplication(ctx, loaded)
	assert.NoError(s.T(), err)
	assert.NotNil(s.T(), loaded.UpdatedAt)

	byURL, err := s.dataStore.ApplicationByURL(ctx, "/apps/1")
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "Renamed", byURL.Title)

	deleted, err := s.dataStore.DeleteApplication(ctx, app.ID)
	assert.NoError(s.T(), err)
	assert.True(s.T(), deleted)

	_, err = s.dataStore.ApplicationByID(ctx, app.ID)
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *DatabaseIntegrationTestSuite) TestApplicationUniqueApplicationID() {
	ctx := context.Background()
	assert.NoError(s.T(), s.dataStore.InsertApplication(ctx, testApplication("dup", "/apps/1", "/orgs/a")))
	err := s.dataStore.InsertApplication(ctx, testApplication("dup", "/apps/2", "/orgs/a"))
	assert.ErrorIs(s.T(), err, ErrAlreadyExists)
}

func (s *DatabaseIntegrationTestSuite) TestApplicationIDsByConsumerOrg() {
	ctx := context.Background()
	assert.NoError(s.T(), s.dataStore.InsertApplication(ctx, testApplication("a1", "/apps/1", "/orgs/a")))
	assert.NoError(s.T(), s.dataStore.InsertApplication(ctx, testApplication("a2", "/apps/2", "/orgs/a")))
	assert.NoError(s.T(), s.dataStore.InsertApplication(ctx, testApplication("b1", "/apps/3", "/orgs/b")))

	all, err := s.dataStore.ApplicationIDs(ctx, nil)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), all, 3)

	org := "/orgs/a"
	scoped, err := s.dataStore.ApplicationIDs(ctx, &org)
	assert.NoError(s.T(), err)
	assert.Len(s.T(), scoped, 2)
}

func (s *DatabaseIntegrationTestSuite) TestApplicationsQuery() {
	ctx := context.Background()
	assert.NoError(s.T(), s.dataStore.InsertApplication(ctx, testApplication("a1", "/apps/1", "/orgs/a")))
	assert.NoError(s.T(), s.dataStore.InsertApplication(ctx, testApplication("b1", "/apps/2", "/orgs/b")))

	entities, total, err := s.dataStore.Applications(ctx, ListOptions{Page: 1, PageSize: 10, Query: "application_id==b1"})
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), 1, total)
	if assert.Len(s.T(), entities, 1) {
		assert.Equal(s.T(), "/apps/2", entities[0].URL)
	}
}

func (s *DatabaseIntegrationTestSuite) TestProductUpsert() {
	ctx := context.Background()
	p := &tables.ProductTable{
		Title:     "Weather",
		Version:   "1.0.0",
		URL:       "/products/weather",
		Published: true,
		Plans:     tables.JSONList[tables.PlanColumn]{{Name: "gold", Title: "Gold"}},
		Data:      "info:\n  title: Weather\n",
	}
	created, err := s.dataStore.UpsertProduct(ctx, p)
	assert.NoError(s.T(), err)
	assert.True(s.T(), created)

	p.Version = "1.1.0"
	created, err = s.dataStore.UpsertProduct(ctx, p)
	assert.NoError(s.T(), err)
	assert.False(s.T(), created)

	loaded, err := s.dataStore.ProductByURL(ctx, "/products/weather", true)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "1.1.0", loaded.Version)
	assert.Len(s.T(), loaded.Plans, 1)
}

func (s *DatabaseIntegrationTestSuite) TestUnpublishedProductHidden() {
	ctx := context.Background()
	_, err := s.dataStore.UpsertProduct(ctx, &tables.ProductTable{Title: "Hidden", URL: "/products/hidden"})
	assert.NoError(s.T(), err)
	_, err = s.dataStore.ProductByURL(ctx, "/products/hidden", true)
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *DatabaseIntegrationTestSuite) TestUserInsertAndSetPassword() {
	ctx := context.Background()
	id, err := s.dataStore.InsertUser(ctx, "admin", "admin@example.com", "hash", nil)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), 1, id)

	err = s.dataStore.SetPassword(ctx, id, "other")
	assert.NoError(s.T(), err)

	u, err := s.dataStore.UserByID(ctx, id)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), "other", u.Password)

	_, err = s.dataStore.InsertUser(ctx, "admin", "admin@example.com", "hash", nil)
	assert.ErrorIs(s.T(), err, ErrAlreadyExists)
}

func (s *DatabaseIntegrationTestSuite) TestUserByIDNotFound() {
	_, err := s.dataStore.UserByID(context.Background(), 4242)
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *DatabaseIntegrationTestSuite) TestAuditLog() {
	err := s.dataStore.Auditor().addToAuditLog("application_created", tables.MapStructure{"id": "x"})
	assert.NoError(s.T(), err)
}

func TestDatabaseSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping database integration tests")
	}
	s := &DatabaseIntegrationTestSuite{}
	logger := zaptest.NewLogger(t)
	dbType := os.Getenv("INTEGRATION_TEST_DB_TYPE")
	dsn := os.Getenv("INTEGRATION_TEST_DB_DSN")
	if dsn == "" {
		dbType = "sqlite"
		dsn = ":memory:"
	}
	dataStore, err := NewStore(logger, &config.DatabaseConfiguration{
		Type: dbType,
		DSN:  dsn,
	})
	if err != nil {
		log.Fatal("error creating database store")
	}
	s.dataStore = dataStore
	s.dbType = dbType
	s.dsn = dsn
	suite.Run(t, s)
}
