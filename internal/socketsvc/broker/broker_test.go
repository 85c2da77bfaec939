package broker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/collectyourcards/card-services/internal/comm"
	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heartbeatMsg(t *testing.T, id string, ts time.Time) *nats.Msg {
	t.Helper()
	data, err := json.Marshal(comm.ServiceHeartbeat{ID: id, Timestamp: ts})
	require.NoError(t, err)
	return &nats.Msg{Subject: comm.HeartbeatTopic, Data: data}
}

func TestHeartbeatTracksLiveness(t *testing.T) {
	b := NewBroker(nil, nil)

	assert.False(t, b.ServiceAlive("card-001"), "unknown instance is not alive")

	b.handleHeartbeat(heartbeatMsg(t, "card-001", time.Now().UTC()))
	assert.True(t, b.ServiceAlive("card-001"))
}

func TestHeartbeatExpires(t *testing.T) {
	b := NewBroker(nil, nil)

	b.LastHeartbeatMap.Store("card-001", time.Now().UTC().Add(-time.Minute))
	assert.False(t, b.ServiceAlive("card-001"), "stale heartbeat is not alive")
}

func TestShutdownDropsInstance(t *testing.T) {
	b := NewBroker(nil, nil)

	b.handleHeartbeat(heartbeatMsg(t, "card-001", time.Now().UTC()))
	require.True(t, b.ServiceAlive("card-001"))

	data, err := json.Marshal(comm.ServiceShutdown{ID: "card-001"})
	require.NoError(t, err)
	b.handleShutdown(&nats.Msg{Subject: comm.ShutdownTopic, Data: data})

	assert.False(t, b.ServiceAlive("card-001"))
}

func TestMalformedHeartbeatIgnored(t *testing.T) {
	b := NewBroker(nil, nil)

	b.handleHeartbeat(&nats.Msg{Subject: comm.HeartbeatTopic, Data: []byte("not json")})
	assert.False(t, b.ServiceAlive(""))
}

func TestActivityFansOut(t *testing.T) {
	var got []*comm.WSMessage
	b := NewBroker(nil, func(m *comm.WSMessage) { got = append(got, m) })

	payload, err := json.Marshal(comm.CollectionActivity{Type: comm.ActivityCardAdded, UserId: 7, CardId: 42})
	require.NoError(t, err)
	msg, err := json.Marshal(comm.WSMessage{Type: "activity", Data: payload})
	require.NoError(t, err)

	b.handleMessages(&nats.Msg{Subject: comm.ActivityTopic, Data: msg})

	require.Len(t, got, 1)
	assert.Equal(t, "activity", got[0].Type)
}

func TestUnknownMessageNotBroadcast(t *testing.T) {
	var calls int
	b := NewBroker(nil, func(m *comm.WSMessage) { calls++ })

	msg, err := json.Marshal(comm.WSMessage{Type: "mystery"})
	require.NoError(t, err)
	b.handleMessages(&nats.Msg{Subject: comm.ActivityTopic, Data: msg})

	assert.Equal(t, 0, calls)
}
