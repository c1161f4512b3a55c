package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

// Clients connect from arbitrary origins; identity is self-asserted
// anyway, so origin checking buys nothing here.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// HandleWS upgrades the connection and hands it to the hub.
func (ctx *Context) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	ctx.Hub.Attach(conn)
}
