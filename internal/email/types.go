package email

import "expensetracker_backend/internal/models"

// Template names, also used as the lookup keys for directory overrides.
const (
	TemplateAccountVerification     = "account_verification"
	TemplateResendTokenVerification = "resend_token_verification"
	TemplateForgotPassword          = "forgot_password"
)

// Subjects for the three lifecycle mails.
const (
	SubjectAccountVerification     = "Expense Tracker - Account Verification"
	SubjectResendTokenVerification = "Expense Tracker - Request new token Verification"
	SubjectForgotPassword          = "Expense Tracker - Account Forgot Password"
)

// Sender dispatches the lifecycle notification mails. The account service only
// depends on this interface; tests substitute a recording implementation.
type Sender interface {
	SendAccountVerification(user *models.User) error
	SendResendTokenVerification(user *models.User) error
	SendForgotPassword(user *models.User) error
}

// TemplateData is what every lifecycle template renders against.
type TemplateData struct {
	FirstName string
	LastName  string
	Username  string
	FullURL   string
}
