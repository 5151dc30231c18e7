package legacy

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"applause-ledger/internal/domain/history"
	"applause-ledger/internal/domain/people"
)

func TestFromPerson_FrontendKeys(t *testing.T) {
	raw, err := json.Marshal(FromPerson(people.Person{
		ID: "5", Name: "Sofia López", PhotoURL: "https://img/s.jpg", ApplauseCount: 5, PendingFood: true,
	}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"5","name":"Sofia López","position":"","photo":"https://img/s.jpg",
		"applauseCount":5,"foodBrought":0,"pendingFood":true,"lastApplause":null}`, string(raw))
}

func TestFromEntry_UsesSymbols(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	e := history.Entry{ID: "1709287200000-a", Timestamp: at, Actor: "Ana", Target: "1", TargetName: "María García", Action: history.ActionRevoke}

	raw, err := json.Marshal(FromEntry(e))
	require.NoError(t, err)

	assert.JSONEq(t, `{"id":"1709287200000-a","date":"2024-03-01T10:00:00Z","from":"Ana","to":"1",
		"toName":"María García","action":"-1"}`, string(raw))
}

func TestEnvelopes_EmptyListsAreArrays(t *testing.T) {
	raw, err := json.Marshal(PeopleEnvelope{People: fromPeople(nil)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"people":[]}`, string(raw))

	raw, err = json.Marshal(HistoryEnvelope{History: fromEntries(nil)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"history":[]}`, string(raw))
}
