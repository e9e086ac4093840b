package session

import (
	"context"
	"database/sql"
	"fmt"

	"lead-notification-srv/internal/identity"
	"lead-notification-srv/internal/model"
	"lead-notification-srv/pkg/log"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/pkg/errors"
)

type sessionRow struct {
	Sess   types.JSON `boil:"sess"`
	Expire null.Time  `boil:"expire"`
}

type postgresStore struct {
	l     log.Logger
	db    *sql.DB
	query string
}

// NewPostgresStore reads sessions from a table with (sid, sess jsonb, expire) columns.
func NewPostgresStore(l log.Logger, db *sql.DB, table string) Store {
	if table == "" {
		table = "sessions"
	}
	return &postgresStore{
		l:     l,
		db:    db,
		query: fmt.Sprintf(`SELECT sess, expire FROM %q WHERE sid = $1 AND expire > NOW()`, table),
	}
}

func (s *postgresStore) Get(ctx context.Context, sid string) (model.Session, error) {
	var row sessionRow
	if err := queries.Raw(s.query, sid).Bind(ctx, s.db, &row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Session{}, identity.ErrSessionNotFound
		}
		s.l.Errorf(ctx, "internal.identity.session.postgresStore.Get.Bind: %v", err)
		return model.Session{}, err
	}

	data, err := decodeSessionData(row.Sess)
	if err != nil {
		s.l.Warnf(ctx, "internal.identity.session.postgresStore.Get: %v", err)
		return model.Session{}, identity.ErrSessionNotFound
	}
	return model.Session{
		SID:    sid,
		UserID: data.Passport.User,
		Expire: row.Expire.Time,
	}, nil
}
