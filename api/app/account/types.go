package account

import (
	"github.com/eisenwinter/apicportal/user"
	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/gorilla/csrf"
)

var csrfTokenField = template.Must(template.New("csrfToken").Parse(`<input type="hidden" name="gorilla.csrf.Token" value="{{.}}">`))

func csfrTokenTag(token string) safehtml.HTML {
	field, err := csrfTokenField.ExecuteToHTML(token)
	if err != nil {
		return template.MustParseAndExecuteToHTML(``)
	}
	return field
}

type viewModeler interface {
	ViewData() map[string]interface{}
}

type changePasswordViewModel struct {
	CsrfToken      string
	ResetToken     string
	Mode           string
	RequireCurrent bool
	ShowPolicy     bool
	Policy         []user.PolicyRow
	Error          string
}

func (c *changePasswordViewModel) ViewData() map[string]interface{} {
	return map[string]interface{}{
		csrf.TemplateTag:  csfrTokenTag(c.CsrfToken),
		"reset_token":     c.ResetToken,
		"mode":            c.Mode,
		"require_current": c.RequireCurrent,
		"show_policy":     c.ShowPolicy,
		"policy":          c.Policy,
		"error":           c.Error,
	}
}

type fourOFourViewModel struct {
}

func (f *fourOFourViewModel) ViewData() map[string]interface{} {
	return map[string]interface{}{}
}
