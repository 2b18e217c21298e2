// Package services contains the chat board's business logic. ChatService is
// the only caller of the repositories: it validates inputs before touching
// storage and runs every public operation inside its own transaction scope,
// committed or rolled back before the call returns.
package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/mborg/chatboard/internal/common"
	"github.com/mborg/chatboard/internal/dbx"
	"github.com/mborg/chatboard/internal/logging"
	"github.com/mborg/chatboard/internal/server/config"
	"github.com/mborg/chatboard/internal/server/models"
	"github.com/mborg/chatboard/internal/server/repositories/repomanager"
	"github.com/mborg/chatboard/internal/validate"
)

// ChatService implements login, message authoring, lookup and deletion.
type ChatService struct {
	db            *sql.DB
	repomanager   repomanager.RepositoryManager
	logger        logging.Logger
	loginValidity time.Duration
	now           func() time.Time
}

// NewChatService constructs a ChatService with an explicitly injected
// database handle and repository manager.
func NewChatService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, logger logging.Logger) *ChatService {
	return &ChatService{
		db:            db,
		repomanager:   m,
		logger:        logger,
		loginValidity: cfg.LoginValidity,
		now:           time.Now,
	}
}

// Login authenticates by username alone: if the user exists, its server-held
// login window is extended to now plus the configured validity and the
// updated user is returned. An unknown username yields common.ErrLoginFailed
// and no state change. Minting the session credential is the caller's job.
func (s *ChatService) Login(ctx context.Context, username string) (*models.User, error) {
	if err := validate.AlnumString(username, "username"); err != nil {
		return nil, err
	}

	var loggedIn *models.User
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)

		found, err := repo.FindByUsername(ctx, username)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			return common.ErrLoginFailed
		}

		user := found[0]
		user.LoggedInUntil = s.now().Add(s.loginValidity)
		if err := repo.Update(ctx, user); err != nil {
			return err
		}

		loggedIn = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "user logged in", "username", username, "logged_in_until", loggedIn.LoggedInUntil)
	return loggedIn, nil
}

// IsLoggedIn is the server-side revocation check: it returns the user only if
// the username exists and its login window covers the current time, and
// (nil, nil) otherwise. It never mutates state; errors are reserved for
// storage failures.
func (s *ChatService) IsLoggedIn(ctx context.Context, username string) (*models.User, error) {
	if err := validate.AlnumString(username, "username"); err != nil {
		return nil, err
	}

	var loggedIn *models.User
	err := dbx.WithReadTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		found, err := s.repomanager.Users(tx).FindByUsername(ctx, username)
		if err != nil {
			return err
		}
		if len(found) == 0 {
			return nil
		}
		if user := found[0]; user.LoggedInAt(s.now()) {
			loggedIn = user
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return loggedIn, nil
}

// AddMsg appends a message to the conversation and returns the created record
// with the author hydrated.
func (s *ChatService) AddMsg(ctx context.Context, text string, author *models.User) (*models.Msg, error) {
	if err := validate.NonEmptyString(text, "msg"); err != nil {
		return nil, err
	}
	if err := validate.Required(author, "author"); err != nil {
		return nil, err
	}

	var created *models.Msg
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		var createErr error
		created, createErr = s.repomanager.Msgs(tx).Create(ctx, text, author)
		return createErr
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "message added", "msg_id", created.ID, "author", created.Author.UserName)
	return created, nil
}

// FindMsg returns the message with the given id or common.ErrNotFound.
func (s *ChatService) FindMsg(ctx context.Context, id int64) (*models.Msg, error) {
	if err := validate.PositiveInt(id, "msgId"); err != nil {
		return nil, err
	}

	var msg *models.Msg
	err := dbx.WithReadTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		var findErr error
		msg, findErr = s.repomanager.Msgs(tx).FindByID(ctx, id)
		return findErr
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

// FindAllMsgs returns the whole non-deleted conversation, oldest first.
func (s *ChatService) FindAllMsgs(ctx context.Context) ([]*models.Msg, error) {
	var found []*models.Msg
	err := dbx.WithReadTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		var findErr error
		found, findErr = s.repomanager.Msgs(tx).FindAll(ctx)
		return findErr
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// DeleteMsg soft-deletes the message with the given id. The ownership check
// (requester is the author) belongs to the caller, which holds the verified
// identity. A missing message yields an error wrapping common.ErrNotFound.
func (s *ChatService) DeleteMsg(ctx context.Context, id int64) error {
	if err := validate.PositiveInt(id, "msgId"); err != nil {
		return err
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.repomanager.Msgs(tx).Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	s.logger.Info(ctx, "message deleted", "msg_id", id)
	return nil
}
