package application

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/eisenwinter/apicportal/db/tables"
)

// NormalizeState lowercases enabled and disabled, everything else becomes enabled
func NormalizeState(state string) string {
	s := strings.ToLower(state)
	if s != StateEnabled && s != StateDisabled {
		return StateEnabled
	}
	return s
}

// NormalizeLifecycleState uppercases DEVELOPMENT and PRODUCTION, everything else becomes PRODUCTION
func NormalizeLifecycleState(state string) string {
	s := strings.ToUpper(state)
	if s != LifecycleDevelopment && s != LifecycleProduction {
		return LifecycleProduction
	}
	return s
}

// TruncateTitle cuts titles longer than 255 characters and marks the cut with an ellipsis
func TruncateTitle(title string) string {
	if utf8.RuneCountInString(title) <= maxTitleLength {
		return title
	}
	runes := []rune(title)
	return string(runes[:maxTitleLength-3]) + "..."
}

func titleFromPayload(p Payload) string {
	if t := p.String("title"); t != "" {
		return TruncateTitle(t)
	}
	if n := p.String("name"); n != "" {
		return TruncateTitle(n)
	}
	return DefaultTitle
}

// StripSecrets returns a deep copy of v with every client_secret removed
func StripSecrets(v interface{}) interface{} {
	switch t := v.(type) {
	case Payload:
		return stripMap(t)
	case map[string]interface{}:
		return stripMap(t)
	case tables.MapStructure:
		return stripMap(t)
	case []interface{}:
		res := make([]interface{}, len(t))
		for i, e := range t {
			res[i] = StripSecrets(e)
		}
		return res
	default:
		return v
	}
}

func stripMap(m map[string]interface{}) map[string]interface{} {
	res := make(map[string]interface{}, len(m))
	for k, e := range m {
		if k == secretKey {
			continue
		}
		res[k] = StripSecrets(e)
	}
	return res
}

func lastPathSegment(raw string) string {
	path := raw
	if u, err := url.Parse(raw); err == nil {
		path = u.Path
	}
	parts := strings.Split(path, "/")
	return parts[len(parts)-1]
}

// credentialsFromPayload rebuilds the credential list, either from app_credentials or
// from a single client_id and app_credential_urls pair
func credentialsFromPayload(p Payload, relative func(string) string) tables.JSONList[tables.CredentialColumn] {
	creds := make(tables.JSONList[tables.CredentialColumn], 0)
	if list := p.List("app_credentials"); len(list) > 0 {
		for _, entry := range list {
			c, ok := entry.(map[string]interface{})
			if !ok {
				continue
			}
			cred := Payload(c)
			column := tables.CredentialColumn{
				ID:       cred.String("id"),
				ClientID: cred.String("client_id"),
				Title:    cred.String("title"),
				Summary:  cred.String("summary"),
			}
			if cred.Has("url") {
				column.URL = relative(cred.String("url"))
			}
			creds = append(creds, column)
		}
		return creds
	}
	urls := p.StringList("app_credential_urls")
	if p.Has("client_id") && len(urls) == 1 {
		credURL := relative(urls[0])
		creds = append(creds, tables.CredentialColumn{
			ID:       lastPathSegment(credURL),
			ClientID: p.String("client_id"),
			URL:      credURL,
		})
	}
	return creds
}

func credentialFromInput(in *CredentialInput, relative func(string) string) tables.CredentialColumn {
	title := in.Title
	if title == "" {
		title = in.ID
	}
	credURL := in.URL
	if credURL != "" {
		credURL = relative(credURL)
	}
	return tables.CredentialColumn{
		ID:       in.ID,
		ClientID: in.ClientID,
		Title:    title,
		Summary:  in.Summary,
		URL:      credURL,
	}
}
