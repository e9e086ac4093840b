package postgres

import (
	"context"
	"database/sql"
	"errors"

	"lead-notification-srv/internal/model"
	"lead-notification-srv/internal/user/repository"

	"github.com/aarondl/sqlboiler/v4/queries"
)

func (r *implRepository) Detail(ctx context.Context, id string) (model.User, error) {
	var row userRow
	if err := queries.Raw(detailQuery, id).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.Detail.Bind: %v", err)
		return model.User{}, err
	}
	return row.toModel(), nil
}

func (r *implRepository) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	var rows []userRow
	if err := queries.Raw(listByRoleQuery, string(role)).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.ListByRole.Bind: %v", err)
		return nil, err
	}

	res := make([]model.User, len(rows))
	for i, row := range rows {
		res[i] = row.toModel()
	}
	return res, nil
}
