package product

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/eisenwinter/apicportal/db"
	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/eisenwinter/apicportal/product/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap/zaptest"
)

const weatherDocument = `product: 1.0.0
info:
  name: weather
  title: Weather
  version: 1.0.0
plans:
  gold:
    title: Gold
    billing-model:
      currency: USD
      price: 10
      period: 1
      period-unit: month
  bronze:
    superseded-by:
      product_url: /products/weather-v2
      plan: silver
`

func TestParseBilling(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Free, ParseBilling(nil))
	assert.Equal(Free, ParseBilling(map[string]interface{}{"currency": "USD"}))
	assert.Equal(Free, ParseBilling(map[string]interface{}{"price": "0"}))
	assert.Equal("$10 per month", ParseBilling(map[string]interface{}{
		"currency": "USD", "price": 10, "period": 1, "period-unit": "month",
	}))
	assert.Equal("$10 per 2 months", ParseBilling(map[string]interface{}{
		"currency": "USD", "price": json.Number("10"), "period": json.Number("2"), "period-unit": "month",
	}))
	assert.Equal("$2.5 per year", ParseBilling(map[string]interface{}{
		"price": 2.5, "period-unit": "year",
	}))
}

func TestImport(t *testing.T) {
	assert := assert.New(t)
	store := mocks.NewStorer(t)
	service := NewService(zaptest.NewLogger(t), store)
	ctx := context.Background()

	store.On("UpsertProduct", ctx, mock.AnythingOfType("*tables.ProductTable")).Return(true, nil)

	p, created, err := service.Import(ctx, []byte(weatherDocument), "/products/weather")
	assert.NoError(err)
	assert.True(created)
	assert.Equal("Weather", p.Title)
	assert.Equal("1.0.0", p.Version)
	assert.True(p.Published)
	if assert.Len(p.Plans, 2) {
		assert.Equal("bronze", p.Plans[0].Name)
		assert.Equal("bronze", p.Plans[0].Title)
		assert.Equal(&tables.PlanReference{ProductURL: "/products/weather-v2", Plan: "silver"}, p.Plans[0].SupersededBy)
		assert.Equal("gold", p.Plans[1].Name)
		assert.Equal("Gold", p.Plans[1].Title)
		assert.Equal("$10 per month", ParseBilling(p.Plans[1].BillingModel))
	}
}

func TestImportRejectsInvalidDocuments(t *testing.T) {
	store := mocks.NewStorer(t)
	service := NewService(zaptest.NewLogger(t), store)
	ctx := context.Background()

	_, _, err := service.Import(ctx, []byte("info:\n  title: Missing version\nplans:\n  a: {}\n"), "/products/x")
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, _, err = service.Import(ctx, []byte("info: [unterminated"), "/products/x")
	assert.ErrorIs(t, err, ErrInvalidDocument)

	_, _, err = service.Import(ctx, []byte(weatherDocument), "")
	assert.ErrorIs(t, err, ErrInvalidDocument)
}

func TestByURL(t *testing.T) {
	assert := assert.New(t)
	store := mocks.NewStorer(t)
	service := NewService(zaptest.NewLogger(t), store)
	ctx := context.Background()

	store.On("ProductByURL", ctx, "/products/missing", true).Return(nil, db.ErrNotFound)
	store.On("ProductByURL", ctx, "/products/broken", true).Return(nil, errors.New("boom"))
	store.On("ProductByURL", ctx, "/products/weather", true).Return(&tables.ProductTable{Title: "Weather"}, nil)

	p, err := service.ByURL(ctx, "/products/missing", true)
	assert.NoError(err)
	assert.Nil(p)

	_, err = service.ByURL(ctx, "/products/broken", true)
	assert.Error(err)

	p, err = service.ByURL(ctx, "/products/weather", true)
	assert.NoError(err)
	assert.Equal("Weather", p.Title)
}

func TestParseInfo(t *testing.T) {
	info, err := ParseInfo(weatherDocument)
	assert.NoError(t, err)
	assert.Equal(t, "Weather", info.Title)
	assert.Equal(t, "1.0.0", info.Version)
}

func TestRandomImageName(t *testing.T) {
	assert.Regexp(t, `^product_(0[1-9]|1[0-8])\.png$`, RandomImageName("Weather"))
}
