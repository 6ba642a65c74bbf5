package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Banup3/TaskManager/internal/taskman/domain"
	"github.com/Banup3/TaskManager/pkg/tasksdk"
)

// decodeBody parses a JSON request body into dst. Unknown fields are
// tolerated; a malformed body is a 400.
func decodeBody(r *http.Request, dst any) *tasksdk.APIError {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return tasksdk.ErrInvalidBody
	}
	return nil
}

func profileResponse(u domain.User) tasksdk.UserProfile {
	return tasksdk.UserProfile{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Bio:       u.Bio,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}

func taskResponse(t domain.Task) tasksdk.Task {
	return tasksdk.Task{
		ID:          t.ID,
		UserID:      t.UserID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		Priority:    string(t.Priority),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// parseDue converts a validated RFC3339 string into a timestamp. Validation
// has already run, so a parse failure is treated as nil.
func parseDue(s *string) *time.Time {
	if s == nil {
		return nil
	}
	ts, err := time.Parse(time.RFC3339, *s)
	if err != nil {
		return nil
	}
	return &ts
}
