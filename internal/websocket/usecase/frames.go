package usecase

import (
	"encoding/json"

	"lead-notification-srv/internal/model"
	ws "lead-notification-srv/internal/websocket"
)

var (
	connectedFrame = mustFrame(ws.Frame{Type: ws.FrameConnected, Message: ws.ConnectedMessage})
	pongFrame      = mustFrame(ws.Frame{Type: ws.FramePong})
)

func mustFrame(f ws.Frame) []byte {
	b, err := json.Marshal(f)
	if err != nil {
		panic(err)
	}
	return b
}

func notificationFrame(n model.Notification) ([]byte, error) {
	return json.Marshal(ws.Frame{Type: ws.FrameNotification, Data: &n})
}
