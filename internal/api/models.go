package api

// Request/response structures for the HTTP surface.

// RegisterRequest defines the payload for the registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AccountResponse is the public view of an account. The password hash is
// never part of any response.
type AccountResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
}

// LoginResponse is the successful login payload: the account's public
// fields plus a freshly issued bearer token.
type LoginResponse struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// CreateTaskRequest defines the payload for the task creation endpoint.
type CreateTaskRequest struct {
	Description string `json:"description" validate:"required"`
}

// TaskResponse is a single task as returned to clients.
type TaskResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// DeleteTaskResponse confirms which task was deleted.
type DeleteTaskResponse struct {
	ID int64 `json:"id"`
}
