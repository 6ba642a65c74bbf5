package tasksdk

import (
	"encoding/json"
	"time"
)

// Shared request/response types. The validate tags are the single source of
// truth for field rules; the server runs them through its validation layer
// before any handler logic.

// SignupRequest is the body for POST /v1/auth/signup.
type SignupRequest struct {
	Name     string `json:"name"     validate:"required,min=2,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginRequest is the body for POST /v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest is the body for PUT /v1/auth/profile. Nil fields are
// left untouched; a supplied password is re-hashed server side.
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"     validate:"omitempty,min=2,max=50"`
	Bio      *string `json:"bio,omitempty"      validate:"omitempty,max=500"`
	Avatar   *string `json:"avatar,omitempty"   validate:"omitempty,url"`
	Password *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

// UserProfile is the public view of a user. The password hash never leaves
// the server.
type UserProfile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthResponse is returned by signup, login and profile update. Profile
// updates include a freshly issued token so its claims stay in sync with the
// stored profile.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserProfile `json:"user"`
}

// CreateTaskRequest is the body for POST /v1/tasks. Status and priority
// default to "pending" and "medium" when omitted. DueDate is RFC3339.
type CreateTaskRequest struct {
	Title       string  `json:"title"                 validate:"required,max=100"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=500"`
	Status      *string `json:"status,omitempty"      validate:"omitempty,oneof=pending in-progress completed"`
	Priority    *string `json:"priority,omitempty"    validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"dueDate,omitempty"     validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// NullString separates a JSON null from an absent field. An omitted field
// decodes to a nil *NullString; an explicit null decodes with Valid false.
type NullString struct {
	Value string
	Valid bool
}

// NullStringFrom wraps a concrete value.
func NullStringFrom(s string) *NullString {
	return &NullString{Value: s, Valid: true}
}

func (n *NullString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = NullString{}
		return nil
	}
	n.Valid = true
	return json.Unmarshal(b, &n.Value)
}

func (n NullString) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// UpdateTaskRequest is the body for PUT /v1/tasks/{id}. All fields are
// optional; supplying none still bumps the task's updated timestamp. An
// explicit `"dueDate": null` clears the stored deadline, while omitting the
// field keeps it.
type UpdateTaskRequest struct {
	Title       *string     `json:"title,omitempty"       validate:"omitempty,min=1,max=100"`
	Description *string     `json:"description,omitempty" validate:"omitempty,max=500"`
	Status      *string     `json:"status,omitempty"      validate:"omitempty,oneof=pending in-progress completed"`
	Priority    *string     `json:"priority,omitempty"    validate:"omitempty,oneof=low medium high"`
	DueDate     *NullString `json:"dueDate,omitempty"     validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

// TaskFilter narrows and orders GET /v1/tasks. Zero values mean "not
// applied". Filters are conjunctive.
type TaskFilter struct {
	Status   string `json:"status"   validate:"omitempty,oneof=pending in-progress completed"`
	Priority string `json:"priority" validate:"omitempty,oneof=low medium high"`
	Search   string `json:"search"   validate:"omitempty,max=100"`
	SortBy   string `json:"sortBy"   validate:"omitempty,oneof=createdAt updatedAt dueDate title status priority"`
	Order    string `json:"order"    validate:"omitempty,oneof=asc desc"`
}

// Task is the wire representation of a task.
type Task struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TaskListResponse wraps GET /v1/tasks.
type TaskListResponse struct {
	Tasks []Task `json:"tasks"`
}

// TaskStats is returned by GET /v1/tasks/stats. Total always equals the sum
// of the per-status buckets.
type TaskStats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}
