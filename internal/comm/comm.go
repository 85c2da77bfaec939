package comm

import (
	"encoding/json"
	"time"
)

// Topics the card service publishes on and the socket service
// subscribes to.
const (
	ActivityTopic  = "collection.activity"
	HeartbeatTopic = "service.heartbeat"
	ShutdownTopic  = "service.shutdown"
)

type WSMessage struct {
	Type     string          `json:"type"` // e.g. "activity", "subscribe"
	Data     json.RawMessage `json:"data"`
	SocketId string          `json:"socketid"`
}

// Activity event types.
const (
	ActivityCardAdded   = "card_added"
	ActivityCardRemoved = "card_removed"
	ActivityCardUpdated = "card_updated"
	ActivityFavorite    = "favorite_toggled"
	ActivityListRemoval = "removed_from_list"
)

// CollectionActivity is the event published whenever a user mutates
// their collection. Fanned out to websocket clients and kept in the
// expiring activity feed.
type CollectionActivity struct {
	Type       string    `json:"type"`
	UserId     int64     `json:"user_id"`
	UserName   string    `json:"user_name,omitempty"`
	CardId     int64     `json:"card_id"`
	CardNumber string    `json:"card_number,omitempty"`
	SeriesName string    `json:"series_name,omitempty"`
	PlayerName string    `json:"player_name,omitempty"`
	ListSlug   string    `json:"list_slug,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

type ServiceHeartbeat struct {
	ID        string    `json:"id"` // service id
	Timestamp time.Time `json:"timestamp"`
}

type ServiceShutdown struct {
	ID string `json:"id"` // service id
}
