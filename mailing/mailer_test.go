package mailing

import (
	"testing"
	"time"

	"github.com/eisenwinter/apicportal/config"
	"github.com/google/safehtml/template"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"
)

func testPages() template.TrustedFS {
	return template.TrustedFSFromTrustedSource(template.TrustedSourceFromConstant("../templates"))
}

func TestNewMailerWithoutSMTPIsNoop(t *testing.T) {
	m, err := NewMailer(zaptest.NewLogger(t), nil, "https://portal.example.com", testPages())
	assert.NoError(t, err)
	assert.False(t, m.Enabled())
	assert.NoError(t, m.SendPasswordResetMail("a@example.com", "alice", "https://portal.example.com/x", time.Hour))
}

func TestNewMailerEnabled(t *testing.T) {
	m, err := NewMailer(zaptest.NewLogger(t), &config.SMTPConfiguration{
		Enable:  true,
		Host:    "localhost",
		Port:    2525,
		Address: "portal@example.com",
	}, "https://portal.example.com", testPages())
	assert.NoError(t, err)
	assert.True(t, m.Enabled())
	assert.NotNil(t, m.client)
}

func TestRenderProducesHTMLAndText(t *testing.T) {
	m, err := NewMailer(zaptest.NewLogger(t), nil, "https://portal.example.com", testPages())
	assert.NoError(t, err)
	model := m.baseModel("Reset your password", "Use the link below.")
	model["link"] = "https://portal.example.com/account/change-password?pass-reset-token=abc"
	model["link_text"] = "Change password"
	model["expiry_text"] = "expires soon"
	model["subject"] = "Reset your password"

	html, text, err := m.render(model)
	assert.NoError(t, err)
	assert.Contains(t, html, "pass-reset-token=abc")
	assert.Contains(t, html, "Reset your password")
	assert.Contains(t, text, "Use the link below.")
	assert.NotContains(t, text, "<table")
}
