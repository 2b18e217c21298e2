package msgs

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

const msgJoin = `
	SELECT m.id, m.msg, m.user_id, m.created_at, m.updated_at, m.deleted_at,
	       u.id, u.username, u.logged_in_until, u.created_at, u.updated_at, u.deleted_at
	FROM msgs m
	JOIN users u ON u.id = m.user_id
	`

func (r *PostgresRepository) Create(ctx context.Context, text string, author *models.User) (*models.Msg, error) {
	if err := validate.NonEmptyString(text, "msg"); err != nil {
		return nil, err
	}
	if err := validate.Required(author, "author"); err != nil {
		return nil, err
	}
	if err := validate.AlnumString(author.UserName, "author.UserName"); err != nil {
		return nil, err
	}

	// Re-resolve the author row by username inside this transaction; the
	// caller's id may be stale.
	resolve :=
		`SELECT id, username, logged_in_until, created_at, updated_at, deleted_at
		 FROM users
		 WHERE username = $1 AND deleted_at IS NULL
		 ORDER BY id
		 LIMIT 1
		 `

	resolved := &models.User{}
	err := r.db.QueryRowContext(ctx, resolve, author.UserName).
		Scan(&resolved.ID, &resolved.UserName, &resolved.LoggedInUntil,
			&resolved.CreatedAt, &resolved.UpdatedAt, &resolved.DeletedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.NewStorageError("msgs.Create", author.UserName, fmt.Errorf("author: %w", common.ErrNotFound))
		}
		return nil, common.NewStorageError("msgs.Create", author.UserName, err)
	}

	insert :=
		`INSERT INTO msgs (msg, user_id)
		 VALUES ($1, $2)
		 RETURNING id, created_at, updated_at
		 `

	msg := &models.Msg{Text: text, AuthorID: resolved.ID, Author: resolved}
	err = r.db.QueryRowContext(ctx, insert, text, resolved.ID).
		Scan(&msg.ID, &msg.CreatedAt, &msg.UpdatedAt)
	if err != nil {
		return nil, common.NewStorageError("msgs.Create", author.UserName, err)
	}

	return msg, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id int64) (*models.Msg, error) {
	if err := validate.PositiveInt(id, "msgId"); err != nil {
		return nil, err
	}

	query := msgJoin + `WHERE m.id = $1 AND m.deleted_at IS NULL`

	msg, err := scanMsg(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, common.NewStorageError("msgs.FindByID", id, err)
	}

	return msg, nil
}

func (r *PostgresRepository) FindAll(ctx context.Context) ([]*models.Msg, error) {
	query := msgJoin + `WHERE m.deleted_at IS NULL ORDER BY m.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, common.NewStorageError("msgs.FindAll", nil, err)
	}
	defer rows.Close()

	found := []*models.Msg{}
	for rows.Next() {
		msg, err := scanMsg(rows)
		if err != nil {
			return nil, common.NewStorageError("msgs.FindAll", nil, err)
		}
		found = append(found, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, common.NewStorageError("msgs.FindAll", nil, err)
	}

	return found, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	if err := validate.PositiveInt(id, "msgId"); err != nil {
		return err
	}

	query :=
		`UPDATE msgs
		 SET deleted_at = now(), updated_at = now()
		 WHERE id = $1 AND deleted_at IS NULL
		 `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return common.NewStorageError("msgs.Delete", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return common.NewStorageError("msgs.Delete", id, err)
	}
	if affected == 0 {
		return common.NewStorageError("msgs.Delete", id, common.ErrNotFound)
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanMsg(s scanner) (*models.Msg, error) {
	msg := &models.Msg{Author: &models.User{}}
	err := s.Scan(
		&msg.ID, &msg.Text, &msg.AuthorID, &msg.CreatedAt, &msg.UpdatedAt, &msg.DeletedAt,
		&msg.Author.ID, &msg.Author.UserName, &msg.Author.LoggedInUntil,
		&msg.Author.CreatedAt, &msg.Author.UpdatedAt, &msg.Author.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return msg, nil
}
