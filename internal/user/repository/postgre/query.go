package postgres

import (
	"lead-notification-srv/internal/model"

	"github.com/aarondl/null/v8"
)

const (
	detailQuery     = `SELECT id, username, role FROM users WHERE id = $1`
	listByRoleQuery = `SELECT id, username, role FROM users WHERE role = $1 ORDER BY id`
)

type userRow struct {
	ID       string      `boil:"id"`
	Username null.String `boil:"username"`
	Role     null.String `boil:"role"`
}

func (r userRow) toModel() model.User {
	return model.User{
		ID:       r.ID,
		Username: r.Username.String,
		Role:     model.ParseRole(r.Role.String),
	}
}
