package application

import (
	"context"
	"encoding/base64"

	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/eisenwinter/apicportal/product"
	"github.com/eisenwinter/apicportal/sanitize"
	"github.com/google/safehtml"
	"go.uber.org/zap"
)

func escape(s string) string {
	return safehtml.HTMLEscaped(s).String()
}

// ProductRef is the reference of a product plan used in links, the unpadded
// base64url encoding of product_url:plan
func ProductRef(productURL string, plan string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(productURL + ":" + plan))
}

func (s *Service) productImage(p *tables.ProductTable) string {
	if p.Image != nil && *p.Image != "" {
		return *p.Image
	}
	if s.cfg.ShowPlaceholderImages && s.modules.Exists(ModuleProduct) {
		return joinImagePath(s.cfg.ProductImagePath, product.RandomImageName(p.Title))
	}
	return ""
}

func (s *Service) supersededBy(ctx context.Context, ref *tables.PlanReference) (*SupersededBy, error) {
	res := &SupersededBy{
		ProductRef: ProductRef(ref.ProductURL, ref.Plan),
		Plan:       escape(ref.Plan),
	}
	target, err := s.products.ByURL(ctx, ref.ProductURL, true)
	if err != nil {
		return nil, err
	}
	if target != nil {
		res.ProductTitle = target.Title
		res.ProductVersion = target.Version
		if info, err := product.ParseInfo(target.Data); err == nil {
			if info.Title != "" {
				res.ProductTitle = info.Title
			}
			if info.Version != "" {
				res.ProductVersion = info.Version
			}
		} else {
			s.log.Debug("could not parse product data", sanitize.UserInputString("product_url", ref.ProductURL), zap.Error(err))
		}
		if plan, ok := product.PlansByName(target)[ref.Plan]; ok {
			res.PlanTitle = escape(plan.Title)
		}
		res.ProductTitle = escape(res.ProductTitle)
		res.ProductVersion = escape(res.ProductVersion)
	}
	if res.PlanTitle == "" {
		res.PlanTitle = escape(ref.Plan)
	}
	return res, nil
}

// Subscriptions resolves the stored subscriptions of the application against their
// products, subscriptions of unknown products are left out
func (s *Service) Subscriptions(ctx context.Context, record *tables.ApplicationTable) ([]*SubscriptionView, error) {
	views := make([]*SubscriptionView, 0, len(record.Subscriptions))
	productModule := s.modules.Exists(ModuleProduct)
	for _, sub := range record.Subscriptions {
		p, err := s.products.ByURL(ctx, sub.ProductURL, false)
		if err != nil {
			return nil, err
		}
		if p == nil {
			s.log.Debug("subscription references unknown product", sanitize.UserInputString("product_url", sub.ProductURL))
			continue
		}
		view := &SubscriptionView{
			ProductTitle:   escape(p.Title),
			ProductVersion: escape(p.Version),
			ProductID:      p.ID.String(),
			ProductImage:   s.productImage(p),
			PlanName:       escape(sub.Plan),
			State:          escape(sub.State),
			SubscriptionID: escape(sub.ID),
			Cost:           product.Free,
		}
		if productModule {
			if plan, ok := product.PlansByName(p)[sub.Plan]; ok {
				view.Cost = product.ParseBilling(plan.BillingModel)
				view.PlanTitle = escape(plan.Title)
				if plan.SupersededBy != nil {
					superseded, err := s.supersededBy(ctx, plan.SupersededBy)
					if err != nil {
						return nil, err
					}
					view.SupersededBy = superseded
				}
			}
		}
		if view.PlanTitle == "" {
			view.PlanTitle = escape(sub.Plan)
		}
		views = append(views, view)
	}
	return views, nil
}
