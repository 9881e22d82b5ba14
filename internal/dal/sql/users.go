package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/wordforge-app/wordforge/internal/dal"
)

func (r *Repository) UpsertBotUser(ctx context.Context, user dal.BotUser) error {
	query := dal.UpsertBotUserQuery(user)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("build upsert query: %w", err)
	}

	if _, err := r.client.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("upsert bot user: %w", err)
	}
	return nil
}

func (r *Repository) FindBotUser(ctx context.Context, chatID int64) (*dal.BotUser, error) {
	query := dal.FindBotUserQuery(chatID)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select query: %w", err)
	}

	var user dal.BotUser
	row := r.client.QueryRowContext(ctx, sqlQuery, args...)
	if err := row.Scan(&user.ChatID, &user.Username, &user.FirstName, &user.LastName, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, dal.ErrNotFound
		}
		return nil, fmt.Errorf("find bot user: %w", err)
	}
	return &user, nil
}

func (r *Repository) FindBotUsers(ctx context.Context, offset, limit uint64) ([]dal.BotUser, int, error) {
	selectQuery, countQuery := dal.FindBotUsersQuery(offset, limit)

	eg, ctx := errgroup.WithContext(ctx)
	res := make([]dal.BotUser, 0, limit)
	total := 0

	eg.Go(func() error {
		sqlQuery, args, err := selectQuery.ToSql()
		if err != nil {
			return fmt.Errorf("build select query: %w", err)
		}

		rows, err := r.client.QueryContext(ctx, sqlQuery, args...)
		if err != nil {
			return fmt.Errorf("find bot users: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var user dal.BotUser
			if err := rows.Scan(&user.ChatID, &user.Username, &user.FirstName, &user.LastName, &user.CreatedAt); err != nil {
				return fmt.Errorf("scan bot user: %w", err)
			}
			res = append(res, user)
		}

		if rows.Err() != nil {
			return fmt.Errorf("iterate bot users: %w", rows.Err())
		}

		return nil
	})

	eg.Go(func() error {
		sqlQuery, args, err := countQuery.ToSql()
		if err != nil {
			return fmt.Errorf("build count query: %w", err)
		}

		if err := r.client.QueryRowContext(ctx, sqlQuery, args...).Scan(&total); err != nil {
			return fmt.Errorf("get total: %w", err)
		}

		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}

	return res, total, nil
}
