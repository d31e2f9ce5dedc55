package request

type SignUpRequest struct {
	Username string `json:"username,omitempty" validate:"required,max=50"`
	Email    string `json:"email,omitempty" validate:"required,email,max=255"`
	Password string `json:"password,omitempty" validate:"required,min=6,max=100"`
}

type LoginRequest struct {
	Username string `json:"username,omitempty" validate:"required,max=50"`
	Password string `json:"password,omitempty" validate:"required,min=6,max=100"`
}

// TaskRequest carries both create and update payloads. Completed is a
// pointer on purpose: an omitted flag must leave the stored value alone
// on update, while title and description are always replaced.
type TaskRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Completed   *bool  `json:"completed,omitempty"`
}
