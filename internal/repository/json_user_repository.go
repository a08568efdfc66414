package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"nyaay-saathi/internal/models"

	"go.uber.org/zap"
)

type userDB struct {
	Users map[string]*models.User `json:"users"`
}

// JSONUserRepository keeps every account in a single JSON document. Each
// operation reloads the file, applies its change and rewrites it through a
// temp file and rename, under a mutex. The mutex only covers this process:
// two processes sharing the file can still overwrite each other's updates.
type JSONUserRepository struct {
	mu     sync.Mutex
	path   string
	logger *zap.Logger
}

func NewJSONUserRepository(path string, logger *zap.Logger) *JSONUserRepository {
	return &JSONUserRepository{
		path:   path,
		logger: logger,
	}
}

// load returns an empty database when the file is missing or unreadable and
// writes that empty database back, replacing a corrupt file.
func (r *JSONUserRepository) load() (*userDB, error) {
	data, err := os.ReadFile(r.path)
	if err == nil {
		var db userDB
		if err := json.Unmarshal(data, &db); err == nil {
			if db.Users == nil {
				db.Users = make(map[string]*models.User)
			}
			return &db, nil
		}
		r.logger.Warn("User database is corrupt, starting empty", zap.String("path", r.path))
	} else if !errors.Is(err, os.ErrNotExist) {
		r.logger.Warn("Failed to read user database, starting empty", zap.String("path", r.path), zap.Error(err))
	}

	db := &userDB{Users: make(map[string]*models.User)}
	if err := r.save(db); err != nil {
		return nil, err
	}
	return db, nil
}

func (r *JSONUserRepository) save(db *userDB) error {
	data, err := json.MarshalIndent(db, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode user database: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create user database directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write user database: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write user database: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to replace user database: %w", err)
	}
	return nil
}

// update runs fn on the loaded database and saves it if fn succeeds.
func (r *JSONUserRepository) update(fn func(db *userDB) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	db, err := r.load()
	if err != nil {
		return err
	}
	if err := fn(db); err != nil {
		return err
	}
	return r.save(db)
}

func (r *JSONUserRepository) view(fn func(db *userDB) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	db, err := r.load()
	if err != nil {
		return err
	}
	return fn(db)
}

func (r *JSONUserRepository) Create(_ context.Context, user *models.User) error {
	return r.update(func(db *userDB) error {
		if _, ok := db.Users[user.Email]; ok {
			return ErrUserExists
		}
		stored := *user
		if stored.ChatHistory == nil {
			stored.ChatHistory = []*models.SavedChat{}
		}
		db.Users[user.Email] = &stored
		return nil
	})
}

func (r *JSONUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	var user *models.User
	err := r.view(func(db *userDB) error {
		u, ok := db.Users[email]
		if !ok {
			return ErrUserNotFound
		}
		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *JSONUserRepository) UpdateLastLogin(_ context.Context, email string, at time.Time) error {
	return r.update(func(db *userDB) error {
		u, ok := db.Users[email]
		if !ok {
			return ErrUserNotFound
		}
		u.LastLogin = at
		return nil
	})
}

func (r *JSONUserRepository) AddChat(_ context.Context, email string, chat *models.SavedChat) error {
	return r.update(func(db *userDB) error {
		u, ok := db.Users[email]
		if !ok {
			return ErrUserNotFound
		}
		u.ChatHistory = append(u.ChatHistory, chat)
		return nil
	})
}

func (r *JSONUserRepository) ListChats(_ context.Context, email string) ([]*models.SavedChat, error) {
	var chats []*models.SavedChat
	err := r.view(func(db *userDB) error {
		u, ok := db.Users[email]
		if !ok {
			return ErrUserNotFound
		}
		chats = u.ChatHistory
		return nil
	})
	if err != nil {
		return nil, err
	}
	if chats == nil {
		chats = []*models.SavedChat{}
	}
	return chats, nil
}

func (r *JSONUserRepository) GetChat(_ context.Context, email, chatID string) (*models.SavedChat, error) {
	var chat *models.SavedChat
	err := r.view(func(db *userDB) error {
		u, ok := db.Users[email]
		if !ok {
			return ErrUserNotFound
		}
		for _, c := range u.ChatHistory {
			if c.ID == chatID {
				chat = c
				return nil
			}
		}
		return ErrChatNotFound
	})
	if err != nil {
		return nil, err
	}
	return chat, nil
}

func (r *JSONUserRepository) DeleteChat(_ context.Context, email, chatID string) error {
	return r.update(func(db *userDB) error {
		u, ok := db.Users[email]
		if !ok {
			return ErrUserNotFound
		}
		kept := u.ChatHistory[:0]
		for _, c := range u.ChatHistory {
			if c.ID != chatID {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(u.ChatHistory) {
			return ErrChatNotFound
		}
		u.ChatHistory = kept
		return nil
	})
}
