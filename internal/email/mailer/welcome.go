// internal/email/mailer/welcome.go
package mailer

import (
	"github.com/hireloop/hireloop/internal/email"
	"github.com/hireloop/hireloop/internal/model"
)

// WelcomeTemplateData contains data for the welcome email template
type WelcomeTemplateData struct {
	Name        string
	AccountType model.AccountType
}

// SendWelcomeEmail sends the post-signup welcome email.
func SendWelcomeEmail(s *email.Service, to, name string, accountType model.AccountType) error {
	templateData := WelcomeTemplateData{
		Name:        name,
		AccountType: accountType,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "Hireloop",
		Subject:      "Welcome to Hireloop!",
		TemplateName: "welcome",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
