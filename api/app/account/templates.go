package account

import (
	"github.com/google/safehtml/template"
)

func mustLoadTemplate(fs template.TrustedFS, location string) (*template.Template, error) {
	template, err := template.ParseFS(fs, location)
	if err != nil {
		return nil, err
	}
	return template, nil
}
