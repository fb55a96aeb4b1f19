package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amishharsoor/views-golang/internal/database"
	"github.com/amishharsoor/views-golang/internal/models"
)

const userColumns = "id, email, name, created_at, updated_at"

// UserStore mirrors the post adapter for the users table. In practice it
// only ever holds the seeded author row, but the operations are complete.
type UserStore struct {
	db      *sql.DB
	dialect database.Dialect
}

func NewUserStore(db *sql.DB, dialect database.Dialect) *UserStore {
	return &UserStore{db: db, dialect: dialect}
}

func (s *UserStore) List(order Order) ([]models.User, error) {
	query := "SELECT " + userColumns + " FROM users ORDER BY created_at " + string(order)
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func (s *UserStore) GetByID(id string) (*models.User, error) {
	query := s.dialect.Rebind("SELECT " + userColumns + " FROM users WHERE id = ?")
	return scanUser(s.db.QueryRow(query, id))
}

func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	query := s.dialect.Rebind("SELECT " + userColumns + " FROM users WHERE email = ?")
	return scanUser(s.db.QueryRow(query, email))
}

func (s *UserStore) Create(input models.CreateUserInput) (*models.User, error) {
	id := uuid.NewString()

	var name *string
	if input.Name != "" {
		name = &input.Name
	}

	now := time.Now().UTC()

	query := s.dialect.Rebind(`INSERT INTO users (id, email, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`)
	if _, err := s.db.Exec(query, id, input.Email, name, now, now); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return s.GetByID(id)
}

// Update applies only the supplied fields and bumps updated_at. Unknown
// ids return ErrNotFound.
func (s *UserStore) Update(id string, input models.UpdateUserInput) (*models.User, error) {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)

	if input.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *input.Email)
	}
	if input.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *input.Name)
	}

	sets = append(sets, "updated_at = ?")
	args = append(args, time.Now().UTC())
	args = append(args, id)

	query := s.dialect.Rebind("UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ?")
	result, err := s.db.Exec(query, args...)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return s.GetByID(id)
}

// Delete is idempotent like the post variant.
func (s *UserStore) Delete(id string) error {
	query := s.dialect.Rebind("DELETE FROM users WHERE id = ?")
	if _, err := s.db.Exec(query, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
