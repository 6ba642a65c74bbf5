// Package tasksdk is the Go client for the TaskManager API.
//
// It also hosts the request/response types and the typed API errors that the
// server handlers encode, so both sides of the wire agree on one contract.
//
// Typical usage:
//
//	client := tasksdk.NewClient("http://localhost:8080")
//	session, err := client.Login(ctx, "alice@example.com", "secret123")
//	if err != nil { ... }
//
//	cache := tasksdk.NewTaskCache(session)
//	if err := cache.Refresh(ctx, tasksdk.TaskFilter{}); err != nil { ... }
//	task, err := cache.Create(ctx, tasksdk.CreateTaskRequest{Title: "Buy milk"})
package tasksdk
