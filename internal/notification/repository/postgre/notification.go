package postgres

import (
	"context"
	"database/sql"
	"errors"

	"lead-notification-srv/internal/model"
	"lead-notification-srv/internal/notification/repository"
	postgresPkg "lead-notification-srv/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
)

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.Notification, error) {
	var row notificationRow
	err := queries.Raw(createQuery,
		opts.UserID,
		string(opts.Type),
		opts.Title,
		opts.Message,
		postgresPkg.NullString(opts.LeadID),
	).Bind(ctx, r.db, &row)
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.Create.Bind: %v", err)
		return model.Notification{}, err
	}
	return row.toModel(), nil
}

func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.Notification, error) {
	var rows []notificationRow
	if err := queries.Raw(listQuery, opts.UserID, listLimit(opts.Limit)).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.List.Bind: %v", err)
		return nil, err
	}

	res := make([]model.Notification, len(rows))
	for i, row := range rows {
		res[i] = row.toModel()
	}
	return res, nil
}

func (r *implRepository) CountUnread(ctx context.Context, userID string) (int, error) {
	var row countRow
	if err := queries.Raw(countUnreadQuery, userID).Bind(ctx, r.db, &row); err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.CountUnread.Bind: %v", err)
		return 0, err
	}
	return row.Count, nil
}

func (r *implRepository) MarkRead(ctx context.Context, opts repository.MarkReadOptions) (model.Notification, error) {
	if err := postgresPkg.IsUUID(opts.ID); err != nil {
		return model.Notification{}, repository.ErrNotFound
	}

	var row notificationRow
	if err := queries.Raw(markReadQuery, opts.ID, opts.UserID).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Notification{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.notification.repository.postgres.MarkRead.Bind: %v", err)
		return model.Notification{}, err
	}
	return row.toModel(), nil
}

func (r *implRepository) MarkAllRead(ctx context.Context, userID string) (int64, error) {
	res, err := queries.Raw(markAllReadQuery, userID).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.MarkAllRead.Exec: %v", err)
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.notification.repository.postgres.MarkAllRead.RowsAffected: %v", err)
		return 0, err
	}
	return n, nil
}
