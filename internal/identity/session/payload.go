package session

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

// sessionData is the part of a serialized login session the service reads.
type sessionData struct {
	Cookie struct {
		Expires *time.Time `json:"expires"`
	} `json:"cookie"`
	Passport struct {
		User string `json:"user"`
	} `json:"passport"`
}

func decodeSessionData(raw []byte) (sessionData, error) {
	var data sessionData
	if err := json.Unmarshal(raw, &data); err != nil {
		return sessionData{}, errors.Wrap(err, "session: decode payload")
	}
	return data, nil
}
