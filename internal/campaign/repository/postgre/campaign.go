package postgres

import (
	"context"
	"database/sql"
	"errors"

	"lead-notification-srv/internal/campaign/repository"
	"lead-notification-srv/internal/model"

	"github.com/aarondl/sqlboiler/v4/queries"
)

const detailQuery = `SELECT id, name FROM campaigns WHERE id = $1`

type campaignRow struct {
	ID   string `boil:"id"`
	Name string `boil:"name"`
}

func (r *implRepository) Detail(ctx context.Context, id string) (model.Campaign, error) {
	var row campaignRow
	if err := queries.Raw(detailQuery, id).Bind(ctx, r.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Campaign{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.campaign.repository.postgres.Detail.Bind: %v", err)
		return model.Campaign{}, err
	}
	return model.Campaign{ID: row.ID, Name: row.Name}, nil
}
