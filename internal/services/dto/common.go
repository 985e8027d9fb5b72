package dto

// Pagination is the list-response pagination block. Page is rendered as
// "P out of T" to match the published envelope.
type Pagination struct {
	Page  string `json:"page"`
	Limit int    `json:"limit"`
}
