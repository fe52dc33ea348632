// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/smartstore-sales-api/infrastructure/database/postgres"
	"github.com/vfg2006/smartstore-sales-api/internal/domain"
)

const (
	storesTable = "stores"
)

var storeColumns = []string{"id", "name", "url", "created_at", "updated_at"}

type StoreRepository interface {
	Add(ctx context.Context, store *domain.Store) (*domain.Store, error)
	GetByID(ctx context.Context, id string) (*domain.Store, error)
	GetByURL(ctx context.Context, url string) (*domain.Store, error)
	List(ctx context.Context) ([]*domain.Store, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type storeRepository struct {
	conn postgres.Queryer
}

func NewStoreRepository(conn postgres.Queryer) StoreRepository {
	return &storeRepository{
		conn: conn,
	}
}

func (r *storeRepository) Add(ctx context.Context, store *domain.Store) (*domain.Store, error) {
	query, args, err := squirrel.
		Insert(storesTable).
		Columns("id", "name", "url").
		Values(store.ID, store.Name, store.URL).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&store.CreatedAt, &store.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao inserir loja: %w", err)
	}

	return store, nil
}

func (r *storeRepository) GetByID(ctx context.Context, id string) (*domain.Store, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

func (r *storeRepository) GetByURL(ctx context.Context, url string) (*domain.Store, error) {
	return r.getOne(ctx, squirrel.Eq{"url": url})
}

func (r *storeRepository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Store, error) {
	query, args, err := squirrel.
		Select(storeColumns...).
		From(storesTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	store := &domain.Store{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(
		&store.ID,
		&store.Name,
		&store.URL,
		&store.CreatedAt,
		&store.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear loja: %w", err)
	}

	return store, nil
}

func (r *storeRepository) List(ctx context.Context) ([]*domain.Store, error) {
	query, args, err := squirrel.
		Select(storeColumns...).
		From(storesTable).
		OrderBy("name ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	stores := make([]*domain.Store, 0)
	for rows.Next() {
		store := &domain.Store{}
		if err := rows.Scan(&store.ID, &store.Name, &store.URL, &store.CreatedAt, &store.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear loja: %w", err)
		}
		stores = append(stores, store)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return stores, nil
}

func (r *storeRepository) Delete(ctx context.Context, id string) (bool, error) {
	query, args, err := squirrel.
		Delete(storesTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover loja: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}
