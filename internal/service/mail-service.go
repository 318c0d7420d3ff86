package service

import (
	"bytes"
	"fmt"
	"html/template"
	"learning-service/internal/config"
	"net/smtp"
	"strings"
	"time"
)

const verificationCodeTemplate = `
<html>
  <body>
    <p>Hola {{.Name}},</p>
    <p>Your verification code is: <strong>{{.Code}}</strong></p>
    <p>The code expires in {{.ExpiryMinutes}} minutes.</p>
  </body>
</html>`

const welcomeTemplate = `
<html>
  <body>
    <p>Hola {{.Name}},</p>
    <p>Welcome to Cyber Sensei! Your account is ready.</p>
    <p>Log in any time to keep working through the modules.</p>
  </body>
</html>`

type mailData struct {
	Name          string
	Code          string
	ExpiryMinutes int
}

// MailService sends templated mails over plain SMTP.
type MailService struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

func NewMailService(cfg config.SMTPConfig) *MailService {
	t := template.New("mail")
	template.Must(t.New("verification_code").Parse(verificationCodeTemplate))
	template.Must(t.New("welcome").Parse(welcomeTemplate))
	return &MailService{cfg: cfg, templates: t}
}

func (m *MailService) SendVerificationCode(name, email, code string, ttl time.Duration) error {
	data := mailData{Name: name, Code: code, ExpiryMinutes: int(ttl.Minutes())}
	return m.sendTemplate("Account verification code", "verification_code", data, []string{email})
}

func (m *MailService) SendWelcome(name, email string) error {
	return m.sendTemplate("Welcome to Cyber Sensei", "welcome", mailData{Name: name}, []string{email})
}

func (m *MailService) sendTemplate(subject, name string, data mailData, recipients []string) error {
	var body bytes.Buffer
	if err := m.templates.ExecuteTemplate(&body, name, data); err != nil {
		return fmt.Errorf("error rendering mail template %s: %w", name, err)
	}

	message := fmt.Appendf(nil, "To: %s\r\n"+
		"Subject: %s\r\n"+
		"MIME-Version: 1.0\r\n"+
		"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
		"\r\n"+
		"%s\r\n", strings.Join(recipients, ","), subject, body.String())

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port

	return smtp.SendMail(addr, auth, m.cfg.From, recipients, message)
}
