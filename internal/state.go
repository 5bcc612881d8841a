package internal

import (
	"github.com/Al2Klimov/DullDB"
	"github.com/Al2Klimov/FUeL.go"
	log "github.com/sirupsen/logrus"
)

// State is what the CLI remembers between invocations.
type State struct {
	AccessToken string `json:"access_token"`
	AccountID   int64  `json:"account_id"`
}

// LoadState reads the state file. A file not written, yet, yields an empty State.
func LoadState(db string) (*State, fuel.ErrorWithStack) {
	log.WithField("file", db).Trace("loading state")

	state := &State{}
	if err := dulldb.Select(db, state); err != nil {
		return nil, err
	}

	return state, nil
}

func SaveState(db string, state *State) fuel.ErrorWithStack {
	log.WithFields(log.Fields{"file": db, "account_id": state.AccountID}).Debug("saving state")
	return dulldb.Replace(db, state)
}
