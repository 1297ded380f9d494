package transport

// CredentialsRequest carries an email+password sign-in.
type CredentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest exchanges or revokes a refresh token.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TaskRequest is the create/edit payload: the four user-editable fields.
type TaskRequest struct {
	Title       string `json:"title"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Time        string `json:"time"`
}

// StatusRequest changes a single task's status code.
type StatusRequest struct {
	Status int `json:"status"`
}
