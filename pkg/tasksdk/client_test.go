package tasksdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Banup3/TaskManager/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

func authOK(t *testing.T) tasksdk.AuthResponse {
	t.Helper()
	return tasksdk.AuthResponse{
		Token: "test-token",
		User: tasksdk.UserProfile{
			ID:        "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV",
			Name:      "Alice",
			Email:     "alice@example.com",
			CreatedAt: time.Now().UTC(),
		},
	}
}

func TestClient_SignupAndLogin(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/auth/signup", func(w http.ResponseWriter, r *http.Request) {
		var req tasksdk.SignupRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "Alice", req.Name)
		require.Equal(t, "alice@example.com", req.Email)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(authOK(t))
	})
	mux.HandleFunc("POST /v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(authOK(t))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := tasksdk.NewClient(srv.URL)

	session, err := client.Signup(context.Background(), "Alice", "alice@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, "test-token", session.Token())
	require.Equal(t, "Alice", session.User().Name)

	session, err = client.Login(context.Background(), "alice@example.com", "secret123")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", session.User().Email)
}

func TestClient_LoginFailureIsTyped(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tasksdk.ErrInvalidCredentials.WriteError(w)
	}))
	t.Cleanup(srv.Close)

	client := tasksdk.NewClient(srv.URL)
	_, err := client.Login(context.Background(), "alice@example.com", "wrong")
	require.Error(t, err)

	var apiErr *tasksdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, tasksdk.ErrorCodeUnauthorized, apiErr.Code)
	require.Equal(t, "invalid email or password", apiErr.Message)
}

func TestClient_ValidationErrorCarriesFields(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tasksdk.NewValidationError([]tasksdk.FieldError{
			{Field: "email", Message: "must be a valid email address"},
			{Field: "password", Message: "must be at least 6 characters"},
		}).WriteError(w)
	}))
	t.Cleanup(srv.Close)

	client := tasksdk.NewClient(srv.URL)
	_, err := client.Signup(context.Background(), "A", "nope", "x")
	require.Error(t, err)

	var apiErr *tasksdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, tasksdk.ErrorCodeValidation, apiErr.Code)
	require.Len(t, apiErr.Fields, 2)
	require.Equal(t, "email", apiErr.Fields[0].Field)
}

func TestClient_NonJSONErrorDegradesGracefully(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	client := tasksdk.NewClient(srv.URL)
	_, err := client.Login(context.Background(), "a@b.c", "secret123")
	require.Error(t, err)

	var apiErr *tasksdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, tasksdk.ErrorCodeServerError, apiErr.Code)
}

func TestSession_SendsBearerToken(t *testing.T) {
	t.Parallel()

	var gotAuthz string
	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/auth/me", func(w http.ResponseWriter, r *http.Request) {
		gotAuthz = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tasksdk.UserProfile{ID: "u1", Name: "Alice"})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	session := tasksdk.NewClient(srv.URL).NewSessionFromToken("abc123")
	profile, err := session.Me(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Bearer abc123", gotAuthz)
	require.Equal(t, "Alice", profile.Name)
	require.Equal(t, "Alice", session.User().Name, "Me should refresh the cached identity")
}

func TestSession_UpdateProfileSwapsToken(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /v1/auth/profile", func(w http.ResponseWriter, r *http.Request) {
		var req tasksdk.UpdateProfileRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Name)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tasksdk.AuthResponse{
			Token: "fresh-token",
			User:  tasksdk.UserProfile{ID: "u1", Name: *req.Name},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	session := tasksdk.NewClient(srv.URL).NewSessionFromToken("old-token")
	name := "Alice Cooper"
	profile, err := session.UpdateProfile(context.Background(), tasksdk.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Alice Cooper", profile.Name)
	require.Equal(t, "fresh-token", session.Token())
}

func TestSession_ListTasksEncodesFilter(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/tasks", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		require.Equal(t, "completed", q.Get("status"))
		require.Equal(t, "high", q.Get("priority"))
		require.Equal(t, "milk", q.Get("search"))
		require.Equal(t, "dueDate", q.Get("sortBy"))
		require.Equal(t, "asc", q.Get("order"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(tasksdk.TaskListResponse{Tasks: []tasksdk.Task{{ID: "t1"}}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	session := tasksdk.NewClient(srv.URL).NewSessionFromToken("tok")
	tasks, err := session.ListTasks(context.Background(), tasksdk.TaskFilter{
		Status:   "completed",
		Priority: "high",
		Search:   "milk",
		SortBy:   "dueDate",
		Order:    "asc",
	})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
}

func TestSession_DeleteTask(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /v1/tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "t1", r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	session := tasksdk.NewClient(srv.URL).NewSessionFromToken("tok")
	require.NoError(t, session.DeleteTask(context.Background(), "t1"))
}
