// Package mailing sends the password reset mails of the portal
package mailing

import (
	"strings"
	"time"

	"github.com/eisenwinter/apicportal/config"
	"github.com/go-mail/mail"
	"github.com/google/safehtml/template"
	"github.com/jaytaylor/html2text"
	"go.uber.org/zap"
)

const emailTemplate = "email/template.html"

type Mailer struct {
	noop          bool
	client        *mail.Dialer
	log           *zap.Logger
	smtp          *config.SMTPConfiguration
	site          string
	emailTemplate *template.Template
}

func (m *Mailer) baseModel(title string, message string) map[string]interface{} {
	b := make(map[string]interface{})
	b["date"] = time.Now().Format("2006-01-02 15:04")
	b["site"] = m.site
	b["title"] = title
	b["message"] = message
	return b
}

// Enabled reports whether mails are actually delivered
func (m *Mailer) Enabled() bool {
	return !m.noop
}

// SendPasswordResetMail mails the one time change password link
func (m *Mailer) SendPasswordResetMail(email string, username string, link string, expiry time.Duration) error {
	if m.noop {
		m.log.Info("skipping email `PasswordReset` because smtp is disabled")
		return nil
	}
	subject := "Reset your password"
	base := m.baseModel(
		subject,
		"A password reset was requested for the account "+username+". Use the link below to choose a new password.",
	)
	base["link"] = link
	base["link_text"] = "Change password"
	base["expiry_text"] = "The link can be used once and expires in " + expiry.String() + "."
	base["subject"] = subject
	return m.send(email, subject, base)
}

func (m *Mailer) render(viewModel map[string]interface{}) (string, string, error) {
	buffer := new(strings.Builder)
	err := m.emailTemplate.Execute(buffer, viewModel)
	if err != nil {
		return "", "", err
	}
	html := buffer.String()
	text, err := html2text.FromString(html, html2text.Options{PrettyTables: true})
	if err != nil {
		return "", "", err
	}
	return html, text, nil
}

func (m *Mailer) send(email string, subject string, viewModel map[string]interface{}) error {
	html, text, err := m.render(viewModel)
	if err != nil {
		m.log.Error("unable to render email", zap.Error(err))
		return err
	}
	msg := mail.NewMessage()
	msg.SetAddressHeader("From", m.smtp.Address, m.smtp.DisplayName)
	msg.SetAddressHeader("To", email, "")
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)
	if err := m.client.DialAndSend(msg); err != nil {
		m.log.Error("unable to send email", zap.String("subject", subject), zap.Error(err))
		return err
	}
	return nil
}

// NewMailer parses the email template from files, smtp may be nil which disables delivery
func NewMailer(
	log *zap.Logger,
	smtp *config.SMTPConfiguration,
	site string,
	files template.TrustedFS,
) (*Mailer, error) {
	t, err := template.ParseFS(files, emailTemplate)
	if err != nil {
		return nil, err
	}
	s := &Mailer{
		noop:          smtp == nil || !smtp.Enable,
		log:           log.Named("mailer"),
		smtp:          smtp,
		site:          site,
		emailTemplate: t,
	}
	if !s.noop {
		s.client = mail.NewDialer(
			smtp.Host,
			smtp.Port,
			smtp.Username,
			smtp.Password,
		)
	}
	return s, nil
}
