package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/Banup3/TaskManager/internal/taskman/domain"
)

type tasksRepo struct {
	db dbtx
}

const taskColumns = `id, user_id, title, description, status, priority, due_date, created_at, updated_at`

// Sortable columns, keyed by the API's camelCase names. Priority and status
// sort by rank rather than alphabetically so "high" outranks "low" and the
// lifecycle order pending -> in-progress -> completed holds.
var sortColumns = map[string]string{
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"dueDate":   "due_date",
	"title":     "title COLLATE NOCASE",
	"status":    "CASE status WHEN 'pending' THEN 0 WHEN 'in-progress' THEN 1 ELSE 2 END",
	"priority":  "CASE priority WHEN 'low' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END",
}

func (r *tasksRepo) scanTask(scanner interface{ Scan(...any) error }) (domain.Task, error) {
	var (
		t       domain.Task
		dueDate sql.NullTime
	)
	err := scanner.Scan(
		&t.ID,
		&t.UserID,
		&t.Title,
		&t.Description,
		&t.Status,
		&t.Priority,
		&dueDate,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return domain.Task{}, mapNotFound(err)
	}
	t.DueDate = mapNullTimePtr(dueDate)
	return t, nil
}

func (r *tasksRepo) GetTaskByID(ctx context.Context, id string) (domain.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	return r.scanTask(row)
}

func (r *tasksRepo) ListTasks(ctx context.Context, userID string, filter domain.TaskFilter) ([]domain.Task, error) {
	var (
		sb   strings.Builder
		args []any
	)
	sb.WriteString(`SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?`)
	args = append(args, userID)

	if filter.Status != "" {
		sb.WriteString(` AND status = ?`)
		args = append(args, string(filter.Status))
	}
	if filter.Priority != "" {
		sb.WriteString(` AND priority = ?`)
		args = append(args, string(filter.Priority))
	}
	if filter.Search != "" {
		sb.WriteString(` AND (title LIKE ? ESCAPE '\' OR description LIKE ? ESCAPE '\')`)
		pattern := "%" + escapeLike(filter.Search) + "%"
		args = append(args, pattern, pattern)
	}

	column, ok := sortColumns[filter.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "DESC"
	if strings.EqualFold(filter.Order, "asc") {
		direction = "ASC"
	}
	sb.WriteString(` ORDER BY ` + column + ` ` + direction + `, id ` + direction)

	rows, err := r.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		t, err := r.scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *tasksRepo) CreateTask(ctx context.Context, t domain.Task) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO tasks (id, user_id, title, description, status, priority, due_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)`,
		t.ID, t.UserID, t.Title, t.Description, string(t.Status), string(t.Priority), mapOptionalTime(t.DueDate),
	)
	return mapConstraint(err)
}

func (r *tasksRepo) UpdateTask(ctx context.Context, t domain.Task) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE tasks SET
			title = ?,
			description = ?,
			status = ?,
			priority = ?,
			due_date = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		t.Title, t.Description, string(t.Status), string(t.Priority), mapOptionalTime(t.DueDate), t.ID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *tasksRepo) DeleteTask(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *tasksRepo) CountTasksByStatus(ctx context.Context, userID string) (domain.TaskStats, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT status, COUNT(*) FROM tasks WHERE user_id = ? GROUP BY status`, userID)
	if err != nil {
		return domain.TaskStats{}, err
	}
	defer rows.Close()

	var stats domain.TaskStats
	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return domain.TaskStats{}, err
		}
		stats.Total += count
		switch domain.Status(status) {
		case domain.StatusPending:
			stats.Pending = count
		case domain.StatusInProgress:
			stats.InProgress = count
		case domain.StatusCompleted:
			stats.Completed = count
		}
	}
	return stats, rows.Err()
}

// escapeLike escapes LIKE wildcards in user-supplied search text.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
