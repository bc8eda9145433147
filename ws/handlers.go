package ws

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// frontend dan backend berjalan di origin berbeda
		return true
	},
}

func ServeWS(hub *Hub) echo.HandlerFunc {
	return func(c echo.Context) error {
		conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
		if err != nil {
			log.WithError(err).Warn("websocket upgrade failed")
			return nil
		}
		client := &Client{Conn: conn, Send: make(chan []byte, 256)}

		select {
		case hub.Register <- client:
		case <-hub.Done():
			conn.Close()
			return nil
		}

		go client.writePump()
		go client.readPump(hub)
		return nil
	}
}

// readPump hanya membaca untuk mendeteksi koneksi yang ditutup client.
func (c *Client) readPump(hub *Hub) {
	defer func() {
		select {
		case hub.Unregister <- c:
		case <-hub.Done():
		}
		c.Conn.Close()
	}()
	for {
		if _, _, err := c.Conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (c *Client) writePump() {
	for message := range c.Send {
		if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
			break
		}
	}
	c.Conn.Close()
}
