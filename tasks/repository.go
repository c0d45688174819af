package tasks

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool the repository needs. Satisfied by
// both a pool and a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const (
	insertQuery = `INSERT INTO tasks (title, details) VALUES ($1, $2) RETURNING id`
	updateQuery = `UPDATE tasks SET title = $1, details = $2 WHERE id = $3`
	deleteQuery = `DELETE FROM tasks WHERE id = $1`

	// Marks completion by inserting a marker row; zero rows back means the
	// task id does not exist.
	doneQuery = `INSERT INTO done (task_id) SELECT id FROM tasks WHERE id = $1 RETURNING id`
	undoQuery = `DELETE FROM done WHERE task_id = $1`

	findAllQuery     = `SELECT id, title, details FROM tasks ORDER BY id`
	findOngoingQuery = `SELECT id, title, details FROM tasks
		WHERE id NOT IN (SELECT task_id FROM done) ORDER BY id`
	findByPatternQuery = `SELECT id, title, details FROM tasks WHERE title LIKE $1 ORDER BY id`
	findByIDQuery      = `SELECT id, title, details FROM tasks WHERE id = $1`
)

// Repository persists tasks in PostgreSQL.
type Repository struct {
	db Querier
}

// NewRepository wires a repository to the given query executor.
func NewRepository(db Querier) *Repository {
	return &Repository{db: db}
}

// Insert stores a validated creation command and returns the created task.
func (r *Repository) Insert(ctx context.Context, cmd InsertTask) (Task, error) {
	task := Task{Title: cmd.NonEmptyTitle, Details: cmd.Details}
	if err := r.db.QueryRow(ctx, insertQuery, cmd.NonEmptyTitle, cmd.Details).Scan(&task.ID); err != nil {
		return Task{}, fmt.Errorf("insert task: %w", err)
	}
	return task, nil
}

// Update applies a validated update command and returns the number of rows
// it touched. Zero means the id does not exist.
func (r *Repository) Update(ctx context.Context, cmd UpdateTask) (int64, error) {
	tag, err := r.db.Exec(ctx, updateQuery, cmd.NewTitle, cmd.Details, cmd.ID)
	if err != nil {
		return 0, fmt.Errorf("update task %d: %w", cmd.ID, err)
	}
	return tag.RowsAffected(), nil
}

// Delete removes a task by id and returns the number of rows it touched.
// Completion markers for the task go with it.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteQuery, id)
	if err != nil {
		return 0, fmt.Errorf("delete task %d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

// Done marks a task as completed and returns the marker row id. Returns zero
// when the task id does not exist.
func (r *Repository) Done(ctx context.Context, id int64) (int64, error) {
	var doneID int64
	err := r.db.QueryRow(ctx, doneQuery, id).Scan(&doneID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("mark task %d done: %w", id, err)
	}
	return doneID, nil
}

// Undo removes the completion markers for a task and returns how many were
// removed.
func (r *Repository) Undo(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, undoQuery, id)
	if err != nil {
		return 0, fmt.Errorf("undo task %d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

// FindAll lists every task ordered by id.
func (r *Repository) FindAll(ctx context.Context) ([]Task, error) {
	return r.queryTasks(ctx, findAllQuery)
}

// FindOngoing lists tasks with no completion marker.
func (r *Repository) FindOngoing(ctx context.Context) ([]Task, error) {
	return r.queryTasks(ctx, findOngoingQuery)
}

// FindByPattern lists tasks whose title contains the given fragment.
func (r *Repository) FindByPattern(ctx context.Context, title string) ([]Task, error) {
	return r.queryTasks(ctx, findByPatternQuery, "%"+title+"%")
}

// FindByID fetches a task by id. Returns nil without error when the id is
// unknown; the caller decides how absence maps to a response.
func (r *Repository) FindByID(ctx context.Context, id int64) (*Task, error) {
	var task Task
	err := r.db.QueryRow(ctx, findByIDQuery, id).Scan(&task.ID, &task.Title, &task.Details)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find task %d: %w", id, err)
	}
	return &task, nil
}

func (r *Repository) queryTasks(ctx context.Context, query string, args ...any) ([]Task, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Details); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	return tasks, nil
}
