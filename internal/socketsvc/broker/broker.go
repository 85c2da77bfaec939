package broker

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/collectyourcards/card-services/internal/comm"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

// Broker bridges the NATS activity stream to the websocket layer and
// tracks which card service instances are alive.
type Broker struct {
	Conn      *nats.Conn
	Broadcast func(*comm.WSMessage)

	LastHeartbeatMap   sync.Map // serviceId -> last heartbeat timestamp
	heartbeatThreshold time.Duration
}

func NewBroker(conn *nats.Conn, broadcast func(*comm.WSMessage)) *Broker {
	return &Broker{
		Conn:               conn,
		Broadcast:          broadcast,
		heartbeatThreshold: time.Second * 15,
	}
}

// consume activity events from the card service
func (b *Broker) Subscribe(topic string) (*nats.Subscription, error) {
	sub, err := b.Conn.Subscribe(topic, b.handleMessages)
	if err != nil {
		return nil, err
	}

	return sub, nil
}

func (b *Broker) Publish(topic string, payload []byte) error {
	err := b.Conn.Publish(topic, payload)
	if err != nil {
		log.Errorf("Error publishing to topic %s: %s", topic, err)
		return err
	}

	return nil
}

// SubscribeHeartbeats consumes liveness announcements and shutdown
// notices from the card service instances.
func (b *Broker) SubscribeHeartbeats() (*nats.Subscription, *nats.Subscription, error) {
	hbSub, err := b.Conn.Subscribe(comm.HeartbeatTopic, b.handleHeartbeat)
	if err != nil {
		return nil, nil, err
	}
	downSub, err := b.Conn.Subscribe(comm.ShutdownTopic, b.handleShutdown)
	if err != nil {
		hbSub.Unsubscribe()
		return nil, nil, err
	}
	return hbSub, downSub, nil
}

func (b *Broker) handleHeartbeat(msgNats *nats.Msg) {
	hb := &comm.ServiceHeartbeat{}
	if err := json.Unmarshal(msgNats.Data, hb); err != nil {
		log.Errorf("Error %s", err)
		return
	}
	b.LastHeartbeatMap.Store(hb.ID, hb.Timestamp)
}

func (b *Broker) handleShutdown(msgNats *nats.Msg) {
	notice := &comm.ServiceShutdown{}
	if err := json.Unmarshal(msgNats.Data, notice); err != nil {
		log.Errorf("Error %s", err)
		return
	}
	b.LastHeartbeatMap.Delete(notice.ID)
	log.Infof("Service instance %s announced shutdown", notice.ID)
}

// ServiceAlive reports whether the instance heartbeat arrived within
// the liveness window.
func (b *Broker) ServiceAlive(serviceId string) bool {
	v, ok := b.LastHeartbeatMap.Load(serviceId)
	if !ok {
		return false
	}
	return time.Since(v.(time.Time)) <= b.heartbeatThreshold
}

// handleMessages receives collection activity from the card service
// and fans it out to every connected client.
func (b *Broker) handleMessages(msgNats *nats.Msg) {
	message := &comm.WSMessage{}
	err := json.Unmarshal(msgNats.Data, &message)
	if err != nil {
		log.Errorf("Error %s", err)
		return
	}

	switch message.Type {
	case "activity":
		b.Broadcast(message)
	default:
		log.Warnf("Unknown message type: %s", message.Type)
	}
}
