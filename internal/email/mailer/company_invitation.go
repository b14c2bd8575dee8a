// internal/email/mailer/company_invitation.go
package mailer

import (
	"fmt"

	"github.com/hireloop/hireloop/internal/email"
)

// InvitationTemplateData contains data for the invitation email template
type InvitationTemplateData struct {
	InviterName   string
	CompanyName   string
	CompanyHandle string
	RoleName      string
	Message       string
	InvitationURL string
}

// SendInvitationEmail sends a company invitation email to the recipient.
func SendInvitationEmail(s *email.Service, to, inviterName, companyName, companyHandle, roleName, message, invitationURL string) error {
	templateData := InvitationTemplateData{
		InviterName:   inviterName,
		CompanyName:   companyName,
		CompanyHandle: companyHandle,
		RoleName:      roleName,
		Message:       message,
		InvitationURL: invitationURL,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "Hireloop",
		Subject:      fmt.Sprintf("%s invited you to join %s on Hireloop", inviterName, companyName),
		TemplateName: "company_invitation",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
