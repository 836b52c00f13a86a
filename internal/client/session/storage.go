package session

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/UhCardoso/travel-manager-front/internal/client/repositories/metadata"
	"github.com/UhCardoso/travel-manager-front/internal/dbx"
)

// Durable storage keys.
const (
	KeyAuthToken = "authToken"
	KeyUserData  = "userData"
)

// Storage persists the session pair. Save and Remove touch both keys in
// one transaction.
type Storage interface {
	Load(ctx context.Context) (token string, userData []byte, err error)
	Save(ctx context.Context, token string, userData []byte) error
	Remove(ctx context.Context) error
}

// SQLiteStorage keeps the pair in the metadata table.
type SQLiteStorage struct {
	db *sql.DB
}

func NewSQLiteStorage(db *sql.DB) *SQLiteStorage {
	return &SQLiteStorage{db: db}
}

func (s *SQLiteStorage) Load(ctx context.Context) (string, []byte, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, KeyAuthToken)
	if err != nil {
		return "", nil, err
	}
	user, err := repo.Get(ctx, KeyUserData)
	if err != nil {
		return "", nil, err
	}
	return string(token), user, nil
}

func (s *SQLiteStorage) Save(ctx context.Context, token string, userData []byte) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyAuthToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, KeyUserData, userData)
	})
}

func (s *SQLiteStorage) Remove(ctx context.Context) error {
	if err := metadata.NewSQLiteRepository(s.db).Delete(ctx, KeyAuthToken, KeyUserData); err != nil {
		return fmt.Errorf("remove session: %w", err)
	}
	return nil
}
