// Package email provides email sending functionality
package email

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"strings"
)

// Config holds email configuration
type Config struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	FromName string
	UseTLS   bool
}

// Service handles email sending
type Service struct {
	config    *Config
	templates map[string]*template.Template
}

// NewService creates a new email service
func NewService(config *Config) *Service {
	s := &Service{
		config:    config,
		templates: make(map[string]*template.Template),
	}
	s.loadTemplates()
	return s
}

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// loadTemplates loads all email templates
func (s *Service) loadTemplates() {

	// Team Code Template - sent to the leader after team creation
	s.templates["team_code"] = template.Must(template.New("team_code").Parse(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #6366f1; color: white; padding: 24px; border-radius: 8px 8px 0 0; }
        .content { background: #f9fafb; padding: 24px; border-radius: 0 0 8px 8px; }
        .code { font-size: 28px; letter-spacing: 4px; background: white; padding: 12px 20px; border-radius: 6px; display: inline-block; margin-top: 12px; }
        .footer { margin-top: 24px; font-size: 12px; color: #6b7280; text-align: center; }
    </style>
</head>
<body>
<div class="container">
    <div class="header">
        <h2>Hello {{.LeaderName}}</h2>
    </div>
    <div class="content">
        <p>Your team <strong>{{.TeamName}}</strong> has been created successfully.</p>
        <div class="code">{{.TeamCode}}</div>
        <p style="margin-top: 16px;">Share this code with your team members so they can request to join.</p>
    </div>
    <div class="footer">
        ProjectMentor • Team Project Platform
    </div>
</div>
</body>
</html>
`))

	// Project Locked Template - sent to the leader after lock-project
	s.templates["project_locked"] = template.Must(template.New("project_locked").Parse(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #10b981; color: white; padding: 24px; border-radius: 8px 8px 0 0; }
        .content { background: #f9fafb; padding: 24px; border-radius: 0 0 8px 8px; }
        .project { background: white; border-radius: 8px; padding: 16px 20px; margin-top: 12px; }
        .footer { margin-top: 24px; font-size: 12px; color: #6b7280; text-align: center; }
    </style>
</head>
<body>
<div class="container">
    <div class="header">
        <h2>Hello {{.LeaderName}}!</h2>
    </div>
    <div class="content">
        <p>Your team <strong>{{.TeamName}}</strong> has selected the project:</p>
        <div class="project"><h3>{{.ProjectName}}</h3></div>
        <p style="margin-top: 16px;">Congratulations! Your project is now locked.</p>
    </div>
    <div class="footer">
        ProjectMentor • Team Project Platform
    </div>
</div>
</body>
</html>
`))

	// Welcome Template - sent to a member after their request is accepted
	s.templates["welcome"] = template.Must(template.New("welcome").Parse(`
<!DOCTYPE html>
<html>
<head>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Helvetica, Arial, sans-serif; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background: #6366f1; color: white; padding: 24px; border-radius: 8px 8px 0 0; }
        .content { background: #f9fafb; padding: 24px; border-radius: 0 0 8px 8px; }
        .footer { margin-top: 24px; font-size: 12px; color: #6b7280; text-align: center; }
    </style>
</head>
<body>
<div class="container">
    <div class="header">
        <h2>Hello {{.MemberName}}</h2>
    </div>
    <div class="content">
        <p>Your request to join <strong>{{.TeamName}}</strong> has been accepted!</p>
        <p>You can now access your Member Dashboard.</p>
    </div>
    <div class="footer">
        ProjectMentor • Team Project Platform
    </div>
</div>
</body>
</html>
`))
}

// Send sends an email
func (s *Service) Send(email *Email) error {
	if s.config.Host == "" {
		log.Println("[Email] Not configured, skipping send")
		return nil
	}

	// Build message
	var msg bytes.Buffer

	// Headers
	msg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", s.config.FromName, s.config.From))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(email.To, ", ")))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", email.Subject))
	msg.WriteString("MIME-Version: 1.0\r\n")

	if email.HTMLBody != "" {
		msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(email.HTMLBody)
	} else {
		msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(email.Body)
	}

	// Create auth
	auth := smtp.PlainAuth("", s.config.User, s.config.Password, s.config.Host)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	if s.config.UseTLS {
		// TLS connection
		tlsConfig := &tls.Config{
			ServerName: s.config.Host,
		}

		conn, err := tls.Dial("tcp", addr, tlsConfig)
		if err != nil {
			return fmt.Errorf("TLS dial error: %w", err)
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, s.config.Host)
		if err != nil {
			return fmt.Errorf("SMTP client error: %w", err)
		}
		defer client.Close()

		if err = client.Auth(auth); err != nil {
			return fmt.Errorf("auth error: %w", err)
		}

		if err = client.Mail(s.config.From); err != nil {
			return fmt.Errorf("mail error: %w", err)
		}

		for _, rcpt := range email.To {
			if err = client.Rcpt(rcpt); err != nil {
				return fmt.Errorf("rcpt error: %w", err)
			}
		}

		w, err := client.Data()
		if err != nil {
			return fmt.Errorf("data error: %w", err)
		}

		_, err = w.Write(msg.Bytes())
		if err != nil {
			return fmt.Errorf("write error: %w", err)
		}

		err = w.Close()
		if err != nil {
			return fmt.Errorf("close error: %w", err)
		}

		return client.Quit()
	}

	// Non-TLS
	return smtp.SendMail(addr, auth, s.config.From, email.To, msg.Bytes())
}

// SendWithTemplate sends an email using a template
func (s *Service) SendWithTemplate(to []string, subject, templateName string, data interface{}) error {
	tmpl, ok := s.templates[templateName]
	if !ok {
		return fmt.Errorf("template not found: %s", templateName)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}

	return s.Send(&Email{
		To:       to,
		Subject:  subject,
		HTMLBody: body.String(),
	})
}

// ============================================
// Convenience Methods
// ============================================

// TeamCodeData holds data for the team code email
type TeamCodeData struct {
	LeaderName string
	TeamName   string
	TeamCode   string
}

// SendTeamCode emails the team code to the leader
func (s *Service) SendTeamCode(to string, data TeamCodeData) error {
	return s.SendWithTemplate(
		[]string{to},
		"Your Team Code - ProjectMentor",
		"team_code",
		data,
	)
}

// ProjectLockedData holds data for the project locked email
type ProjectLockedData struct {
	LeaderName  string
	TeamName    string
	ProjectName string
}

// SendProjectLocked notifies the leader that the project is locked
func (s *Service) SendProjectLocked(to string, data ProjectLockedData) error {
	return s.SendWithTemplate(
		[]string{to},
		"Project Selected - ProjectMentor",
		"project_locked",
		data,
	)
}

// WelcomeData holds data for the welcome email
type WelcomeData struct {
	MemberName string
	TeamName   string
}

// SendWelcome notifies a member that their join request was accepted
func (s *Service) SendWelcome(to string, data WelcomeData) error {
	return s.SendWithTemplate(
		[]string{to},
		"Welcome to the Team! - ProjectMentor",
		"welcome",
		data,
	)
}
