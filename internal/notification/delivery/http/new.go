package http

import (
	"lead-notification-srv/internal/notification"
	"lead-notification-srv/pkg/discord"
	"lead-notification-srv/pkg/log"
)

type Handler struct {
	l          log.Logger
	uc         notification.UseCase
	dispatcher notification.Dispatcher
	discord    discord.IDiscord
}

func New(l log.Logger, uc notification.UseCase, dispatcher notification.Dispatcher, d discord.IDiscord) *Handler {
	return &Handler{
		l:          l,
		uc:         uc,
		dispatcher: dispatcher,
		discord:    d,
	}
}
