package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wordforge-app/wordforge/internal/dal"
)

func (r *Repository) GetState(ctx context.Context, scope, key string) ([]byte, error) {
	query := dal.GetStateQuery(scope, key)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	var value []byte
	if err := r.client.QueryRowContext(ctx, sqlQuery, args...).Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dal.ErrNotFound
		}
		return nil, fmt.Errorf("get state: %w", err)
	}
	return value, nil
}

func (r *Repository) PutState(ctx context.Context, scope, key string, value []byte) error {
	query := dal.PutStateQuery(scope, key, value)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err := r.client.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("put state: %w", err)
	}
	return nil
}

func (r *Repository) ListScopes(ctx context.Context) ([]string, error) {
	query := dal.ListScopesQuery()

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	rows, err := r.client.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("list scopes: %w", err)
	}
	defer rows.Close()

	res := make([]string, 0)
	for rows.Next() {
		var scope string
		if err := rows.Scan(&scope); err != nil {
			return nil, fmt.Errorf("scan scope: %w", err)
		}
		res = append(res, scope)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate scopes: %w", rows.Err())
	}

	return res, nil
}

func (r *Repository) DeleteState(ctx context.Context, scope, key string) error {
	query := dal.DeleteStateQuery(scope, key)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build delete query: %w", err)
	}

	if _, err := r.client.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("delete state: %w", err)
	}
	return nil
}
