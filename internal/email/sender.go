package email

import (
	"fmt"

	"expensetracker_backend/internal/config"
	"expensetracker_backend/internal/models"

	"gopkg.in/gomail.v2"
)

// SMTPSender delivers the lifecycle mails over SMTP. The verification and
// reset URLs embed the user id and the opaque token exactly as the public
// routes expect them.
type SMTPSender struct {
	cfg       *config.Config
	templates *TemplateManager
}

func NewSMTPSender(cfg *config.Config) (*SMTPSender, error) {
	tm, err := NewTemplateManager()
	if err != nil {
		return nil, err
	}

	if dir := cfg.Email.TemplatesDir; dir != "" {
		if err := tm.LoadTemplates(dir); err != nil {
			return nil, fmt.Errorf("load email templates from %s: %w", dir, err)
		}
	}

	return &SMTPSender{
		cfg:       cfg,
		templates: tm,
	}, nil
}

func (s *SMTPSender) SendAccountVerification(user *models.User) error {
	return s.sendTemplate(user, TemplateAccountVerification, SubjectAccountVerification, VerificationURL(s.cfg.App.BaseURL, user))
}

func (s *SMTPSender) SendResendTokenVerification(user *models.User) error {
	return s.sendTemplate(user, TemplateResendTokenVerification, SubjectResendTokenVerification, VerificationURL(s.cfg.App.BaseURL, user))
}

func (s *SMTPSender) SendForgotPassword(user *models.User) error {
	return s.sendTemplate(user, TemplateForgotPassword, SubjectForgotPassword, ResetPasswordURL(s.cfg.App.BaseURL, user))
}

func (s *SMTPSender) sendTemplate(user *models.User, templateName, subject, fullURL string) error {
	body, err := s.templates.Render(templateName, TemplateData{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
		FullURL:   fullURL,
	})
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.Email.FromEmail, s.cfg.Email.FromName)
	m.SetHeader("To", user.Email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		s.cfg.Email.SMTPHost,
		s.cfg.Email.SMTPPort,
		s.cfg.Email.SMTPUsername,
		s.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

// VerificationURL builds the link embedded in verification mails.
func VerificationURL(baseURL string, user *models.User) string {
	token := ""
	if user.AccountVerificationToken != nil {
		token = *user.AccountVerificationToken
	}
	return fmt.Sprintf("%s/verifyaccount/%s/token/%s", baseURL, user.ID, token)
}

// ResetPasswordURL builds the link embedded in forgot-password mails.
func ResetPasswordURL(baseURL string, user *models.User) string {
	token := ""
	if user.ResetPasswordToken != nil {
		token = *user.ResetPasswordToken
	}
	return fmt.Sprintf("%s/resetpassword/%s/%s", baseURL, user.ID, token)
}
