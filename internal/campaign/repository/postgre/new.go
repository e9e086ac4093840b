package postgres

import (
	"database/sql"

	"lead-notification-srv/internal/campaign/repository"
	pkgLog "lead-notification-srv/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	db *sql.DB
}

func New(l pkgLog.Logger, db *sql.DB) repository.Repository {
	return &implRepository{l: l, db: db}
}
