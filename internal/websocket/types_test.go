package websocket

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConnStateTransitions(t *testing.T) {
	all := []ConnState{ConnStateConnecting, ConnStateAuthenticating, ConnStateOpen, ConnStateClosing, ConnStateClosed}
	allowed := map[[2]ConnState]bool{
		{ConnStateConnecting, ConnStateAuthenticating}: true,
		{ConnStateAuthenticating, ConnStateOpen}:       true,
		{ConnStateAuthenticating, ConnStateClosed}:     true,
		{ConnStateOpen, ConnStateClosing}:              true,
		{ConnStateClosing, ConnStateClosed}:            true,
	}

	for _, from := range all {
		for _, to := range all {
			t.Run(from.String()+"->"+to.String(), func(t *testing.T) {
				assert.Equal(t, allowed[[2]ConnState{from, to}], from.CanTransition(to))
			})
		}
	}
}
