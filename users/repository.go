package users

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
	insertQuery   = `INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id`
	updateQuery   = `UPDATE users SET username = $1, password = $2 WHERE id = $3`
	deleteQuery   = `DELETE FROM users WHERE id = $1`
	findAllQuery  = `SELECT id, username, password FROM users ORDER BY id`
	findByIDQuery = `SELECT id, username, password FROM users WHERE id = $1`
	loginQuery    = `SELECT id, username, password FROM users WHERE username = $1 AND password = $2`
)

// Repository persists users in PostgreSQL.
type Repository struct {
	db Querier
}

// NewRepository wires a repository to the given query executor.
func NewRepository(db Querier) *Repository {
	return &Repository{db: db}
}

// Insert stores a validated registration command and returns the created user.
func (r *Repository) Insert(ctx context.Context, cmd InsertUser) (User, error) {
	user := User{Username: cmd.ValidUsername, Password: cmd.ValidPassword}
	if err := r.db.QueryRow(ctx, insertQuery, cmd.ValidUsername, cmd.ValidPassword).Scan(&user.ID); err != nil {
		return User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// Update applies a validated update command and returns the number of rows
// it touched. Zero means the id does not exist.
func (r *Repository) Update(ctx context.Context, cmd UpdateUser) (int64, error) {
	tag, err := r.db.Exec(ctx, updateQuery, cmd.ValidUsername, cmd.ValidPassword, cmd.ID)
	if err != nil {
		return 0, fmt.Errorf("update user %d: %w", cmd.ID, err)
	}
	return tag.RowsAffected(), nil
}

// Delete removes a user by id and returns the number of rows it touched.
func (r *Repository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, deleteQuery, id)
	if err != nil {
		return 0, fmt.Errorf("delete user %d: %w", id, err)
	}
	return tag.RowsAffected(), nil
}

// FindAll lists every user ordered by id.
func (r *Repository) FindAll(ctx context.Context) ([]User, error) {
	rows, err := r.db.Query(ctx, findAllQuery)
	if err != nil {
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer rows.Close()

	var users []User
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.Password); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find all users: %w", err)
	}
	return users, nil
}

// FindByID fetches a user by id. Returns nil without error when the id is
// unknown; the caller decides how absence maps to a response.
func (r *Repository) FindByID(ctx context.Context, id int64) (*User, error) {
	var u User
	err := r.db.QueryRow(ctx, findByIDQuery, id).Scan(&u.ID, &u.Username, &u.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return &u, nil
}

// Login fetches the user matching the credentials exactly. Returns nil
// without error when no account matches.
func (r *Repository) Login(ctx context.Context, cmd LoginUser) (*User, error) {
	var u User
	err := r.db.QueryRow(ctx, loginQuery, cmd.Username, cmd.Password).Scan(&u.ID, &u.Username, &u.Password)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("login user: %w", err)
	}
	return &u, nil
}
