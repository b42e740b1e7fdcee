// Package product keeps the products and plans applications subscribe to
package product

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/eisenwinter/apicportal/db"
	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/eisenwinter/apicportal/generator"
	"github.com/eisenwinter/apicportal/sanitize"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDocument is returned for product documents that fail validation
var ErrInvalidDocument = errors.New("invalid product document")

// Info is the info section of a product document
type Info struct {
	Name    string `yaml:"name"`
	Title   string `yaml:"title"   validate:"required"`
	Version string `yaml:"version" validate:"required"`
}

type planDocument struct {
	Title        string                 `yaml:"title"`
	BillingModel map[string]interface{} `yaml:"billing-model"`
	Billing      map[string]interface{} `yaml:"billing"`
	SupersededBy *tables.PlanReference  `yaml:"superseded-by"`
}

// Document is a product yaml document
type Document struct {
	Product string                  `yaml:"product"`
	Info    Info                    `yaml:"info"  validate:"required"`
	Plans   map[string]planDocument `yaml:"plans" validate:"required,min=1"`
	State   string                  `yaml:"state"`
}

// ParseInfo reads the info section of the stored product data
func ParseInfo(data string) (*Info, error) {
	var doc struct {
		Info Info `yaml:"info"`
	}
	if err := yaml.Unmarshal([]byte(data), &doc); err != nil {
		return nil, err
	}
	return &doc.Info, nil
}

// RandomImageName returns the placeholder image of a product
func RandomImageName(name string) string {
	return generator.PlaceholderImageName("product", name)
}

// Storer persists products
type Storer interface {
	UpsertProduct(ctx context.Context, p *tables.ProductTable) (bool, error)
	ProductByURL(ctx context.Context, url string, publishedOnly bool) (*tables.ProductTable, error)
}

// Service imports and looks up products
type Service struct {
	log      *zap.Logger
	store    Storer
	validate *validator.Validate
}

// NewService returns a product service
func NewService(log *zap.Logger, store Storer) *Service {
	return &Service{
		log:      log,
		store:    store,
		validate: validator.New(),
	}
}

// Import upserts the product described by the yaml document under the relative url
func (s *Service) Import(ctx context.Context, document []byte, url string) (*tables.ProductTable, bool, error) {
	var doc Document
	if err := yaml.Unmarshal(document, &doc); err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrInvalidDocument, err.Error())
	}
	if err := s.validate.Struct(doc); err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrInvalidDocument, err.Error())
	}
	if url == "" {
		return nil, false, fmt.Errorf("%w: missing product url", ErrInvalidDocument)
	}
	names := make([]string, 0, len(doc.Plans))
	for name := range doc.Plans {
		names = append(names, name)
	}
	sort.Strings(names)
	plans := make(tables.JSONList[tables.PlanColumn], 0, len(names))
	for _, name := range names {
		p := doc.Plans[name]
		model := p.BillingModel
		if model == nil {
			model = p.Billing
		}
		title := p.Title
		if title == "" {
			title = name
		}
		plans = append(plans, tables.PlanColumn{
			Name:         name,
			Title:        title,
			BillingModel: model,
			SupersededBy: p.SupersededBy,
		})
	}
	entity := &tables.ProductTable{
		Title:     doc.Info.Title,
		Version:   doc.Info.Version,
		URL:       url,
		Published: doc.State == "" || doc.State == "published",
		Plans:     plans,
		Data:      string(document),
	}
	created, err := s.store.UpsertProduct(ctx, entity)
	if err != nil {
		return nil, false, err
	}
	s.log.Info("product imported",
		sanitize.UserInputString("url", url),
		sanitize.UserInputString("title", entity.Title),
		zap.Bool("created", created))
	return entity, created, nil
}

// ByURL returns the product, nil if it does not exist
func (s *Service) ByURL(ctx context.Context, url string, publishedOnly bool) (*tables.ProductTable, error) {
	p, err := s.store.ProductByURL(ctx, url, publishedOnly)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.log.Debug("product not found", sanitize.UserInputString("url", url))
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

// PlansByName indexes the plans of a product by name
func PlansByName(p *tables.ProductTable) map[string]tables.PlanColumn {
	res := make(map[string]tables.PlanColumn, len(p.Plans))
	for _, plan := range p.Plans {
		res[plan.Name] = plan
	}
	return res
}
