package models

// ContactMessage is the transient value object carried through one
// submit-validate-send cycle. It is never persisted as-is; the email
// delivery log keeps its own record.
type ContactMessage struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Message string `json:"message" validate:"required"`
}
