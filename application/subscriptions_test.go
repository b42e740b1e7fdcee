package application

import (
	"context"
	"errors"
	"testing"

	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/eisenwinter/apicportal/product"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const supersedingProductData = `info:
  name: weather-v2
  title: Weather <v2>
  version: 2.0.0
`

func weatherProducts() (*tables.ProductTable, *tables.ProductTable) {
	current := &tables.ProductTable{
		ID:        uuid.New(),
		Title:     "Weather & Co",
		Version:   "1.0.0",
		URL:       "/products/weather",
		Published: true,
		Plans: tables.JSONList[tables.PlanColumn]{
			{
				Name:         "gold",
				Title:        "Gold",
				BillingModel: map[string]interface{}{"currency": "USD", "price": 10, "period": 1, "period-unit": "month"},
				SupersededBy: &tables.PlanReference{ProductURL: "/products/weather-v2", Plan: "platinum"},
			},
			{Name: "free", Title: "Free tier"},
		},
	}
	superseding := &tables.ProductTable{
		ID:        uuid.New(),
		Title:     "Weather v2",
		Version:   "2.0.0",
		URL:       "/products/weather-v2",
		Published: true,
		Data:      supersedingProductData,
		Plans: tables.JSONList[tables.PlanColumn]{
			{Name: "basic", Title: "Basic"},
			{Name: "platinum", Title: "Platinum"},
		},
	}
	return current, superseding
}

func TestSubscriptionsResolvesPlans(t *testing.T) {
	assert := assert.New(t)
	f := newFixture(t, false)
	ctx := context.Background()
	current, superseding := weatherProducts()
	record := existingRecord(1)
	record.Subscriptions = tables.JSONList[tables.SubscriptionColumn]{
		{ID: "s1", ProductURL: "/products/weather", Plan: "gold", State: "enabled"},
		{ID: "s2", ProductURL: "/products/weather", Plan: "unknown<plan>", State: "pending"},
		{ID: "s3", ProductURL: "/products/gone", Plan: "gold", State: "enabled"},
	}

	f.modules.On("Exists", ModuleProduct).Return(true)
	f.products.On("ByURL", ctx, "/products/weather", false).Return(current, nil)
	f.products.On("ByURL", ctx, "/products/gone", false).Return(nil, nil)
	f.products.On("ByURL", ctx, "/products/weather-v2", true).Return(superseding, nil)

	views, err := f.service.Subscriptions(ctx, record)
	assert.NoError(err)
	if !assert.Len(views, 2) {
		return
	}

	gold := views[0]
	assert.Equal("Weather &amp; Co", gold.ProductTitle)
	assert.Equal(current.ID.String(), gold.ProductID)
	assert.Equal("/images/products/"+product.RandomImageName(current.Title), gold.ProductImage)
	assert.Equal("Gold", gold.PlanTitle)
	assert.Equal("$10 per month", gold.Cost)
	assert.Equal("s1", gold.SubscriptionID)
	if assert.NotNil(gold.SupersededBy) {
		assert.Equal(ProductRef("/products/weather-v2", "platinum"), gold.SupersededBy.ProductRef)
		assert.Equal("Platinum", gold.SupersededBy.PlanTitle)
		assert.Equal("Weather &lt;v2&gt;", gold.SupersededBy.ProductTitle)
		assert.Equal("2.0.0", gold.SupersededBy.ProductVersion)
	}

	unknown := views[1]
	assert.Equal("unknown&lt;plan&gt;", unknown.PlanName)
	assert.Equal("unknown&lt;plan&gt;", unknown.PlanTitle)
	assert.Equal("Free", unknown.Cost)
	assert.Nil(unknown.SupersededBy)
}

func TestSubscriptionsWithoutProductModule(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	current, _ := weatherProducts()
	record := existingRecord(1)
	record.Subscriptions = tables.JSONList[tables.SubscriptionColumn]{
		{ID: "s1", ProductURL: "/products/weather", Plan: "gold", State: "enabled"},
	}

	f.modules.On("Exists", ModuleProduct).Return(false)
	f.products.On("ByURL", ctx, "/products/weather", false).Return(current, nil)

	views, err := f.service.Subscriptions(ctx, record)
	assert.NoError(t, err)
	if assert.Len(t, views, 1) {
		assert.Equal(t, "Free", views[0].Cost)
		assert.Equal(t, "gold", views[0].PlanTitle)
		assert.Equal(t, "", views[0].ProductImage)
		assert.Nil(t, views[0].SupersededBy)
	}
}

func TestSubscriptionsPropagatesLookupErrors(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	record := existingRecord(1)
	record.Subscriptions = tables.JSONList[tables.SubscriptionColumn]{{ID: "s1", ProductURL: "/products/x", Plan: "p"}}

	f.modules.On("Exists", ModuleProduct).Return(true)
	f.products.On("ByURL", ctx, "/products/x", false).Return(nil, errors.New("db down"))

	_, err := f.service.Subscriptions(ctx, record)
	assert.Error(t, err)
}

func TestProductRefIsUnpaddedBase64URL(t *testing.T) {
	// "/p:a" encodes to L3A6YQ== with padding
	assert.Equal(t, "L3A6YQ", ProductRef("/p", "a"))
}
