package ws

// Hub menyimpan koneksi client dashboard dan mem-broadcast event dari service
// (hasil prediksi, donasi terverifikasi) ke seluruh client yang terhubung.

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"
)

var ErrHubBusy = errors.New("live feed broadcast queue is full")

// Client mewakili koneksi WebSocket
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

// Message adalah wrapper setiap event: {"type": ..., "data": ...}.
type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub mengelola semua koneksi client
type Hub struct {
	Broadcast  chan []byte
	Register   chan *Client
	Unregister chan *Client

	clients map[*Client]bool
	count   int32
	done    chan struct{}
}

func NewHub() *Hub {
	return &Hub{
		Broadcast:  make(chan []byte, 64),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		clients:    make(map[*Client]bool),
		done:       make(chan struct{}),
	}
}

// Run adalah satu-satunya goroutine yang menyentuh map clients.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				h.remove(client)
			}
			return
		case client := <-h.Register:
			h.clients[client] = true
			atomic.StoreInt32(&h.count, int32(len(h.clients)))
			log.WithField("clients", len(h.clients)).Debug("live feed client registered")
		case client := <-h.Unregister:
			if _, ok := h.clients[client]; ok {
				h.remove(client)
				log.WithField("clients", len(h.clients)).Debug("live feed client unregistered")
			}
		case message := <-h.Broadcast:
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// client lambat, putuskan
					h.remove(client)
				}
			}
		}
	}
}

func (h *Hub) remove(client *Client) {
	delete(h.clients, client)
	close(client.Send)
	atomic.StoreInt32(&h.count, int32(len(h.clients)))
}

// Count mengembalikan jumlah client yang sedang terdaftar.
func (h *Hub) Count() int {
	return int(atomic.LoadInt32(&h.count))
}

// Done tertutup setelah Run berhenti.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}

// Publish membungkus data lalu mengantrekannya untuk broadcast tanpa memblokir pemanggil.
func (h *Hub) Publish(msgType string, data interface{}) error {
	messageJSON, err := json.Marshal(Message{Type: msgType, Data: data})
	if err != nil {
		return err
	}
	select {
	case h.Broadcast <- messageJSON:
		return nil
	default:
		return ErrHubBusy
	}
}
