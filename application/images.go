package application

import (
	"context"
	"strings"

	"github.com/eisenwinter/apicportal/db/tables"
	"github.com/eisenwinter/apicportal/generator"
	"github.com/eisenwinter/apicportal/sanitize"
)

// RandomImageName picks the placeholder image for name, app_01.png to app_18.png
func RandomImageName(name string) string {
	return generator.PlaceholderImageName("app", name)
}

func joinImagePath(base string, image string) string {
	return strings.TrimRight(base, "/") + "/" + image
}

// PlaceholderImage returns the path of the placeholder image for name
func (s *Service) PlaceholderImage(name string) string {
	return joinImagePath(s.cfg.ApplicationImagePath, RandomImageName(name))
}

func isFullyQualified(u string) bool {
	return strings.HasPrefix(u, "https://") || strings.HasPrefix(u, "http://")
}

func (s *Service) fullyQualified(u string) string {
	if u == "" || isFullyQualified(u) {
		return u
	}
	if !strings.HasPrefix(u, "/") {
		u = "/" + u
	}
	return strings.TrimRight(s.cfg.Site, "/") + u
}

// ImageForApp returns the fully qualified image url of the application, the placeholder is
// picked by name which defaults to the title
func (s *Service) ImageForApp(record *tables.ApplicationTable, name string) string {
	image := ""
	if record.Image != nil && *record.Image != "" {
		image = *record.Image
	} else if s.cfg.ShowPlaceholderImages {
		if name == "" {
			name = record.Title
		}
		image = s.PlaceholderImage(name)
	}
	return s.fullyQualified(image)
}

// SetImage sets or clears the uploaded image of the application
func (s *Service) SetImage(ctx context.Context, appURL string, image *string) (bool, error) {
	record, err := s.recordForURL(ctx, appURL, "set image")
	if err != nil || record == nil {
		return false, err
	}
	if err := s.store.SetApplicationImage(ctx, record.ID, image); err != nil {
		return false, err
	}
	path := ""
	if image != nil {
		path = *image
	}
	s.log.Info("application image changed", sanitize.UserInputString("app_url", appURL), sanitize.UserInputString("image", path))
	return true, nil
}
