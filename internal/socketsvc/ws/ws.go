package ws

import (
	"sync"

	"github.com/collectyourcards/card-services/internal/comm"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

// Ws tracks the live socket connections the activity feed fans out to.
type Ws struct {
	connMap sync.Map // socketId -> *websocket.Conn
	writeMu sync.Map // socketId -> *sync.Mutex, gorilla allows one writer per conn
}

func NewWs() *Ws {
	return &Ws{}
}

// handle socket message from web clients
func (s *Ws) SocketMessage(socketId string, message *comm.WSMessage) {
	switch message.Type {
	case "ping":
		s.sendTo(socketId, &comm.WSMessage{Type: "pong", SocketId: socketId})
	default:
		log.Warnf("unknown event received: %s", message.Type)
	}
}

func (s *Ws) StoreConnection(socketId string, conn *websocket.Conn) {
	s.connMap.Store(socketId, conn)
	s.writeMu.Store(socketId, &sync.Mutex{})
}

func (s *Ws) GetConnection(socketId string) (*websocket.Conn, bool) {
	conn, ok := s.connMap.Load(socketId)
	if !ok {
		return nil, false
	}
	return conn.(*websocket.Conn), true
}

func (s *Ws) HandleDisconnect(socketId string) {
	s.connMap.Delete(socketId)
	s.writeMu.Delete(socketId)
}

func (s *Ws) ConnectionCount() int {
	count := 0
	s.connMap.Range(func(key, value any) bool {
		count++
		return true
	})
	return count
}

// Broadcast writes the message to every connected socket. Sockets
// that fail to write are dropped from the registry.
func (s *Ws) Broadcast(m *comm.WSMessage) {
	s.connMap.Range(func(key, value any) bool {
		socketId := key.(string)
		if !s.sendTo(socketId, m) {
			log.Infof("Dropping unwritable socket: %s", socketId)
			s.HandleDisconnect(socketId)
			value.(*websocket.Conn).Close()
		}
		return true
	})
}

func (s *Ws) sendTo(socketId string, m *comm.WSMessage) bool {
	conn, ok := s.GetConnection(socketId)
	if !ok {
		return false
	}
	mu, ok := s.writeMu.Load(socketId)
	if !ok {
		return false
	}
	mu.(*sync.Mutex).Lock()
	defer mu.(*sync.Mutex).Unlock()

	if err := conn.WriteJSON(m); err != nil {
		log.Errorf("Failed to write to socket %s: %v", socketId, err)
		return false
	}
	return true
}
