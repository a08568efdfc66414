package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"nyaay-saathi/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const userSchema = `
CREATE TABLE IF NOT EXISTS users (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL UNIQUE,
	password   TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL,
	last_login TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS chats (
	id         TEXT PRIMARY KEY,
	user_email TEXT NOT NULL REFERENCES users(email) ON DELETE CASCADE,
	title      TEXT NOT NULL,
	messages   JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS chats_user_email_idx ON chats (user_email, created_at);
`

const pgUniqueViolation = "23505"

type PostgresUserRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgresUserRepository(db *pgxpool.Pool, logger *zap.Logger) *PostgresUserRepository {
	return &PostgresUserRepository{
		db:     db,
		logger: logger,
	}
}

// EnsureSchema creates the users and chats tables if they do not exist.
func (r *PostgresUserRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, userSchema); err != nil {
		return fmt.Errorf("failed to create user schema: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) Create(ctx context.Context, user *models.User) error {
	query := squirrel.Insert("users").
		Columns("id", "name", "email", "password", "created_at", "last_login").
		Values(user.ID, user.Name, user.Email, user.Password, user.CreatedAt, user.LastLogin).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err = r.db.Exec(ctx, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return ErrUserExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := squirrel.Select("id", "name", "email", "password", "created_at", "last_login").
		From("users").
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var user models.User
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.CreatedAt, &user.LastLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

func (r *PostgresUserRepository) UpdateLastLogin(ctx context.Context, email string, at time.Time) error {
	query := squirrel.Update("users").
		Set("last_login", at).
		Where(squirrel.Eq{"email": email}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *PostgresUserRepository) AddChat(ctx context.Context, email string, chat *models.SavedChat) error {
	messages, err := json.Marshal(chat.Messages)
	if err != nil {
		return fmt.Errorf("failed to encode chat messages: %w", err)
	}

	query := squirrel.Insert("chats").
		Columns("id", "user_email", "title", "messages", "created_at").
		Values(chat.ID, email, chat.Title, messages, chat.Timestamp).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("failed to save chat: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) ListChats(ctx context.Context, email string) ([]*models.SavedChat, error) {
	if _, err := r.GetByEmail(ctx, email); err != nil {
		return nil, err
	}

	query := squirrel.Select("id", "title", "messages", "created_at").
		From("chats").
		Where(squirrel.Eq{"user_email": email}).
		OrderBy("created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list chats: %w", err)
	}
	defer rows.Close()

	chats := []*models.SavedChat{}
	for rows.Next() {
		chat, err := scanChat(rows)
		if err != nil {
			return nil, err
		}
		chats = append(chats, chat)
	}

	return chats, rows.Err()
}

func (r *PostgresUserRepository) GetChat(ctx context.Context, email, chatID string) (*models.SavedChat, error) {
	query := squirrel.Select("id", "title", "messages", "created_at").
		From("chats").
		Where(squirrel.Eq{"id": chatID, "user_email": email}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	chat, err := scanChat(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrChatNotFound
		}
		return nil, err
	}
	return chat, nil
}

func (r *PostgresUserRepository) DeleteChat(ctx context.Context, email, chatID string) error {
	query := squirrel.Delete("chats").
		Where(squirrel.Eq{"id": chatID, "user_email": email}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("failed to delete chat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrChatNotFound
	}
	return nil
}

func scanChat(row pgx.Row) (*models.SavedChat, error) {
	var (
		chat     models.SavedChat
		messages []byte
	)
	if err := row.Scan(&chat.ID, &chat.Title, &messages, &chat.Timestamp); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(messages, &chat.Messages); err != nil {
		return nil, fmt.Errorf("failed to decode chat messages: %w", err)
	}
	return &chat, nil
}
