package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
)

const kvTable = "kv_store"

// PostgresStore guarda cada chave como uma linha de uma tabela chave-valor
// (key TEXT, value JSONB). Driver para quem já opera um Postgres; não há
// notificação entre instâncias neste driver.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("erro ao conectar ao PostgreSQL: %w", err)
	}

	createTable := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
		key TEXT PRIMARY KEY,
		value JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`, kvTable)

	if _, err := db.ExecContext(ctx, createTable); err != nil {
		return nil, fmt.Errorf("erro ao preparar a tabela %s: %w", kvTable, err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Get(key string) ([]byte, error) {
	query, args, err := squirrel.
		Select("value").
		From(kvTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var value []byte
	err = s.db.QueryRow(query, args...).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a chave %s: %w", key, err)
	}

	return value, nil
}

func (s *PostgresStore) Set(key string, value []byte) error {
	query, args, err := squirrel.
		Insert(kvTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar a chave %s: %w", key, err)
	}

	return nil
}

func (s *PostgresStore) Delete(key string) error {
	query, args, err := squirrel.
		Delete(kvTable).
		Where(squirrel.Eq{"key": key}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := s.db.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao remover a chave %s: %w", key, err)
	}

	return nil
}

func (s *PostgresStore) Keys() ([]string, error) {
	query, args, err := squirrel.
		Select("key").
		From(kvTable).
		OrderBy("key ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar chaves: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}

// Subscribe não tem efeito neste driver: alterações de outras instâncias não
// são detectadas via Postgres.
func (s *PostgresStore) Subscribe(fn func(key string)) {}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
