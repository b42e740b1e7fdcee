package user

import (
	"unicode"
	"unicode/utf8"

	"github.com/eisenwinter/apicportal/config"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// policy status values
const (
	PolicyPass = "Pass"
	PolicyFail = "Fail"
)

// PolicyRow is one line of the password policy table
type PolicyRow struct {
	Policy     string `json:"policy"`
	Status     string `json:"status"`
	Constraint string `json:"constraint"`
	Passed     bool   `json:"passed"`
}

type constraint struct {
	policy      string
	description string
	check       func(password string) bool
}

func containsFunc(f func(rune) bool) func(string) bool {
	return func(password string) bool {
		for _, r := range password {
			if f(r) {
				return true
			}
		}
		return false
	}
}

func isSpecial(r rune) bool {
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func constraints(cfg *config.PasswordPolicyConfiguration) []constraint {
	if cfg == nil {
		return nil
	}
	p := message.NewPrinter(language.English)
	res := make([]constraint, 0, 5)
	if cfg.MinLength > 0 {
		minLength := cfg.MinLength
		res = append(res, constraint{
			policy:      "Password length",
			description: p.Sprintf("Password length must be at least %d characters.", minLength),
			check: func(password string) bool {
				return utf8.RuneCountInString(password) >= minLength
			},
		})
	}
	if cfg.RequireUpper {
		res = append(res, constraint{
			policy:      "Character types",
			description: "Password must contain at least one uppercase letter.",
			check:       containsFunc(unicode.IsUpper),
		})
	}
	if cfg.RequireLower {
		res = append(res, constraint{
			policy:      "Character types",
			description: "Password must contain at least one lowercase letter.",
			check:       containsFunc(unicode.IsLower),
		})
	}
	if cfg.RequireDigit {
		res = append(res, constraint{
			policy:      "Character types",
			description: "Password must contain at least one digit.",
			check:       containsFunc(unicode.IsDigit),
		})
	}
	if cfg.RequireSpecial {
		res = append(res, constraint{
			policy:      "Character types",
			description: "Password must contain at least one special character.",
			check:       containsFunc(isSpecial),
		})
	}
	return res
}

// PolicyStatus evaluates the password against every configured constraint
func PolicyStatus(cfg *config.PasswordPolicyConfiguration, password string) []PolicyRow {
	cs := constraints(cfg)
	rows := make([]PolicyRow, 0, len(cs))
	for _, c := range cs {
		passed := c.check(password)
		status := PolicyFail
		if passed {
			status = PolicyPass
		}
		rows = append(rows, PolicyRow{
			Policy:     c.policy,
			Status:     status,
			Constraint: c.description,
			Passed:     passed,
		})
	}
	return rows
}

// Failed returns the descriptions of the constraints the password violates
func Failed(rows []PolicyRow) []string {
	res := make([]string, 0)
	for _, r := range rows {
		if !r.Passed {
			res = append(res, r.Constraint)
		}
	}
	return res
}
