package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
)

type EmailService struct {
	context.DefaultService

	smtpHost     string
	smtpPort     string
	smtpUsername string
	smtpPassword string
	fromEmail    string
	fromName     string

	templates map[string]*template.Template
}

const EMAIL_SVC = "email_svc"

func (svc EmailService) Id() string {
	return EMAIL_SVC
}

func (svc *EmailService) Configure(ctx *context.Context) error {
	svc.smtpHost = os.Getenv("SMTP_HOST")
	svc.smtpPort = os.Getenv("SMTP_PORT")
	svc.smtpUsername = os.Getenv("SMTP_USERNAME")
	svc.smtpPassword = os.Getenv("SMTP_PASSWORD")
	svc.fromEmail = os.Getenv("FROM_EMAIL")
	svc.fromName = os.Getenv("FROM_NAME")

	// Set defaults if not provided
	if svc.smtpPort == "" {
		svc.smtpPort = "587"
	}
	if svc.fromName == "" {
		svc.fromName = "MathFacts"
	}

	svc.templates = make(map[string]*template.Template)

	return svc.DefaultService.Configure(ctx)
}

func (svc *EmailService) Start() error {
	err := svc.loadTemplates()
	if err != nil {
		log.WithError(err).Error("Failed to load email templates")
		// Don't fail startup, just log the error
	}

	return nil
}

const welcomeEmailHTML = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Welcome to {{.AppName}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .header { background-color: #4F46E5; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; background-color: #f9f9f9; }
        .footer { padding: 20px; text-align: center; color: #666; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Welcome to {{.AppName}}!</h1>
        </div>
        <div class="content">
            <h2>Hi {{.Name}},</h2>
            <p>Your account is ready. Pick an operation and start practicing — each session is ten quick questions, and your dashboard keeps track of your accuracy and speed.</p>
            <p>Happy practicing!</p>
        </div>
        <div class="footer">
            <p>&copy; 2025 {{.AppName}}. All rights reserved.</p>
        </div>
    </div>
</body>
</html>
`

func (svc *EmailService) loadTemplates() error {
	welcome, err := template.New("welcome").Parse(welcomeEmailHTML)
	if err != nil {
		return fmt.Errorf("failed to parse welcome template: %w", err)
	}
	svc.templates["welcome"] = welcome

	return nil
}

// SendWelcomeEmail is a no-op when SMTP is not configured, so local setups
// work without a mail server.
func (svc *EmailService) SendWelcomeEmail(toEmail, name string) error {
	if !svc.isConfigured() {
		log.WithField("email", toEmail).Debug("SMTP not configured, skipping welcome email")
		return nil
	}

	tmpl, ok := svc.templates["welcome"]
	if !ok {
		return fmt.Errorf("welcome template not loaded")
	}

	var body bytes.Buffer
	err := tmpl.Execute(&body, map[string]string{
		"AppName": svc.fromName,
		"Name":    name,
	})
	if err != nil {
		return fmt.Errorf("failed to render welcome email: %w", err)
	}

	subject := fmt.Sprintf("Welcome to %s!", svc.fromName)
	return svc.send(toEmail, subject, body.String())
}

func (svc *EmailService) send(toEmail, subject, htmlBody string) error {
	from := fmt.Sprintf("%s <%s>", svc.fromName, svc.fromEmail)

	msg := bytes.Buffer{}
	msg.WriteString(fmt.Sprintf("From: %s\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", toEmail))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%s", svc.smtpHost, svc.smtpPort)
	auth := smtp.PlainAuth("", svc.smtpUsername, svc.smtpPassword, svc.smtpHost)

	if err := smtp.SendMail(addr, auth, svc.fromEmail, []string{toEmail}, msg.Bytes()); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	log.WithFields(log.Fields{
		"to":      toEmail,
		"subject": subject,
	}).Info("Email sent")
	return nil
}

func (svc *EmailService) isConfigured() bool {
	return svc.smtpHost != "" && svc.smtpUsername != "" && svc.fromEmail != ""
}
