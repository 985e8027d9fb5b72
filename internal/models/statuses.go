package models

type UserRole string
type CategoryStatus string
type PaymentMode string

const (
	UserRoleSuperAdmin UserRole = "Super Admin"
	UserRoleAdmin      UserRole = "Admin"
	UserRoleUser       UserRole = "User"

	CategoryStatusActive   CategoryStatus = "Active"
	CategoryStatusInactive CategoryStatus = "Inactive"

	PaymentModeCash          PaymentMode = "Cash"
	PaymentModeDebitCard     PaymentMode = "Debit Card"
	PaymentModeCreditCard    PaymentMode = "Credit Card"
	PaymentModeOnlineBanking PaymentMode = "Online Banking"
)

// PaymentModes lists every accepted paidVia value.
func PaymentModes() []PaymentMode {
	return []PaymentMode{
		PaymentModeCash,
		PaymentModeDebitCard,
		PaymentModeCreditCard,
		PaymentModeOnlineBanking,
	}
}

// CategoryStatuses lists every accepted category status.
func CategoryStatuses() []CategoryStatus {
	return []CategoryStatus{
		CategoryStatusActive,
		CategoryStatusInactive,
	}
}
