package broker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/collectyourcards/card-services/internal/cardsvc/service"
	"github.com/collectyourcards/card-services/internal/comm"
	"github.com/nats-io/nats.go"
	log "github.com/sirupsen/logrus"
)

// Broker fans collection activity out of the card service: each event
// goes to NATS for the socket service and into the expiring activity
// feed. Failures are logged, never propagated to the mutation that
// produced the event.
type Broker struct {
	Conn            *nats.Conn
	ActivityService *service.ActivityService
	UserService     *service.UserService
}

func NewBroker(nc *nats.Conn, activityService *service.ActivityService, userService *service.UserService) *Broker {
	return &Broker{
		Conn:            nc,
		ActivityService: activityService,
		UserService:     userService,
	}
}

// StartHeartbeat announces liveness on the heartbeat topic every
// interval until the returned stop function is called.
func (b *Broker) StartHeartbeat(serviceId string, interval time.Duration) func() {
	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				hb := comm.ServiceHeartbeat{ID: serviceId, Timestamp: time.Now().UTC()}
				data, err := json.Marshal(hb)
				if err != nil {
					log.Errorf("Error marshaling heartbeat %s", err)
					continue
				}
				if err := b.Conn.Publish(comm.HeartbeatTopic, data); err != nil {
					log.Errorf("Error publishing to topic %s: %s", comm.HeartbeatTopic, err)
				}
			case <-stop:
				return
			}
		}
	}()
	return func() { close(stop) }
}

// PublishShutdown announces a graceful stop so subscribers drop the
// instance immediately instead of waiting out the heartbeat window.
func (b *Broker) PublishShutdown(serviceId string) {
	data, err := json.Marshal(comm.ServiceShutdown{ID: serviceId})
	if err != nil {
		log.Errorf("Error marshaling shutdown notice %s", err)
		return
	}
	if err := b.Conn.Publish(comm.ShutdownTopic, data); err != nil {
		log.Errorf("Error publishing to topic %s: %s", comm.ShutdownTopic, err)
	}
}

// PublishActivity sends one event to the socket service and records it
// in the feed.
func (b *Broker) PublishActivity(a comm.CollectionActivity) {
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now().UTC()
	}

	if a.UserName == "" && b.UserService != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		user, err := b.UserService.GetUser(ctx, a.UserId)
		cancel()
		if err != nil {
			log.Errorf("Error [UserService.GetUser] %s", err)
		} else if user != nil {
			a.UserName = user.Name
		}
	}

	if b.ActivityService != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := b.ActivityService.Record(ctx, a); err != nil {
			log.Errorf("Error [ActivityService.Record] %s", err)
		}
	}

	if b.Conn == nil {
		return
	}

	data, err := json.Marshal(a)
	if err != nil {
		log.Errorf("Error marshaling activity event %s", err)
		return
	}
	msg := comm.WSMessage{Type: "activity", Data: data}
	bytes, err := json.Marshal(msg)
	if err != nil {
		log.Errorf("Error marshaling activity message %s", err)
		return
	}
	if err := b.Conn.Publish(comm.ActivityTopic, bytes); err != nil {
		log.Errorf("Error publishing to topic %s: %s", comm.ActivityTopic, err)
	}
}
