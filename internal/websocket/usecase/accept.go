package usecase

import (
	"context"
	"fmt"

	"lead-notification-srv/internal/identity"
	ws "lead-notification-srv/internal/websocket"
)

func (uc *implUseCase) Accept(ctx context.Context, input ws.AcceptInput) (ws.ConnectionInfo, error) {
	c := newConnection(uc.hub, uc.l, uc.cfg.SendBufferSize, uc.cfg.WriteWait)
	c.transition(ws.ConnStateConnecting, ws.ConnStateAuthenticating)

	id, err := uc.resolver.ResolveIdentity(ctx, input.Cookie)
	if err != nil {
		c.terminate()
		if identity.IsUnauthorized(err) {
			uc.l.Debugf(ctx, "internal.websocket.usecase.Accept: rejected: %v", err)
		} else {
			uc.l.Errorf(ctx, "internal.websocket.usecase.Accept.ResolveIdentity: %v", err)
		}
		return ws.ConnectionInfo{}, ws.ErrUnauthorized
	}
	c.userID = id.UserID
	c.role = id.Role

	if uc.cfg.MaxConnections > 0 && int(uc.hub.active.Load()) >= uc.cfg.MaxConnections {
		c.terminate()
		uc.hub.totalRejected.Add(1)
		uc.l.Warnf(ctx, "internal.websocket.usecase.Accept: max connections reached, rejecting user: %s", id.UserID)
		return ws.ConnectionInfo{}, ws.ErrMaxConnectionsReached
	}

	transport, err := input.Upgrade()
	if err != nil {
		c.terminate()
		return ws.ConnectionInfo{}, fmt.Errorf("%w: %v", ws.ErrUpgradeFailed, err)
	}
	c.transport = transport

	if err := uc.hub.join(c); err != nil {
		c.terminate()
		_ = transport.Close()
		return ws.ConnectionInfo{}, err
	}
	c.start(uc.cfg.MaxMessageSize)

	return c.info(), nil
}
