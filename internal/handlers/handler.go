package handlers

import (
	"context"

	"github.com/rs/zerolog"

	"stroydoc/internal/access"
	"stroydoc/internal/models"
	"stroydoc/internal/schema"
)

// RecordStore — то, что обработчикам нужно от репозитория записей.
type RecordStore interface {
	Search(ctx context.Context, cat *access.Category, q string) ([]map[string]any, error)
	Insert(ctx context.Context, cat *access.Category, rec schema.Record) (int64, error)
	Delete(ctx context.Context, cat *access.Category, id int64) error
	EstimateExists(ctx context.Context, id int64) (bool, error)
}

type UserStore interface {
	ByUsername(ctx context.Context, username string) (*models.User, error)
}

type Handler struct {
	records RecordStore
	users   UserStore
	log     zerolog.Logger
}

func New(records RecordStore, users UserStore, log zerolog.Logger) *Handler {
	return &Handler{records: records, users: users, log: log}
}
