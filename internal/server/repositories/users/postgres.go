package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mborg/chatboard/internal/common"
	"github.com/mborg/chatboard/internal/dbx"
	"github.com/mborg/chatboard/internal/server/models"
	"github.com/mborg/chatboard/internal/validate"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const userColumns = `id, username, logged_in_until, created_at, updated_at, deleted_at`

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if err := validate.Required(user, "user"); err != nil {
		return nil, err
	}
	if err := validate.AlnumString(user.UserName, "username"); err != nil {
		return nil, err
	}

	query :=
		`INSERT INTO users (username, logged_in_until)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at
		 `

	created := *user
	err := r.db.QueryRowContext(ctx, query, user.UserName, user.LoggedInUntil).
		Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return nil, common.NewStorageError("users.Create", user.UserName, err)
	}

	return &created, nil
}

func (r *PostgresRepository) FindByUsername(ctx context.Context, username string) ([]*models.User, error) {
	if err := validate.AlnumString(username, "username"); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		`SELECT %s FROM users
		 WHERE username = $1 AND deleted_at IS NULL
		 `, userColumns)

	rows, err := r.db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, common.NewStorageError("users.FindByUsername", username, err)
	}
	defer rows.Close()

	found := []*models.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, common.NewStorageError("users.FindByUsername", username, err)
		}
		found = append(found, user)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewStorageError("users.FindByUsername", username, err)
	}

	return found, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*models.User, error) {
	if err := validate.PositiveInt(id, "id"); err != nil {
		return nil, err
	}

	query := fmt.Sprintf(
		`SELECT %s FROM users
		 WHERE id = $1 AND deleted_at IS NULL
		 `, userColumns)

	user, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, common.NewStorageError("users.FindByID", id, err)
	}

	return user, nil
}

func (r *PostgresRepository) Update(ctx context.Context, user *models.User) error {
	if err := validate.Required(user, "user"); err != nil {
		return err
	}
	if err := validate.PositiveInt(user.ID, "user.ID"); err != nil {
		return err
	}
	if err := validate.AlnumString(user.UserName, "username"); err != nil {
		return err
	}

	query :=
		`UPDATE users
		 SET username = $2, logged_in_until = $3, updated_at = now()
		 WHERE id = $1 AND deleted_at IS NULL
		 `

	res, err := r.db.ExecContext(ctx, query, user.ID, user.UserName, user.LoggedInUntil)
	if err != nil {
		return common.NewStorageError("users.Update", user.ID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return common.NewStorageError("users.Update", user.ID, err)
	}
	if affected == 0 {
		return common.NewStorageError("users.Update", user.ID, common.ErrNotFound)
	}

	return nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (*models.User, error) {
	user := &models.User{}
	err := s.Scan(&user.ID, &user.UserName, &user.LoggedInUntil,
		&user.CreatedAt, &user.UpdatedAt, &user.DeletedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}
