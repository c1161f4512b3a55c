package main

import (
	"log"
	"net/http"

	"github.com/dontclickthat/server/internal/config"
	"github.com/dontclickthat/server/internal/handlers"
	"github.com/dontclickthat/server/internal/matchmaking"
	"github.com/dontclickthat/server/internal/store"
	"github.com/dontclickthat/server/internal/ws"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("invalid configuration: ", err)
	}

	gameStore := store.NewGameStore()
	queue := matchmaking.NewQueue(cfg.Policy)

	hub := ws.NewHub(gameStore, queue, ws.Options{
		GridWidth:  cfg.GridWidth,
		GridHeight: cfg.GridHeight,
		MineCount:  cfg.MineCount,
	})
	go hub.Run()

	ctx := &handlers.Context{
		Hub:       hub,
		GameStore: gameStore,
		Queue:     queue,
	}

	http.HandleFunc("/ws", ctx.HandleWS)
	http.HandleFunc("/health", ctx.HandleHealth)
	http.HandleFunc("/ping", ctx.HandlePing)

	log.Printf("Server starting on :%s (%dx%d board, %d mines, matchmaking policy %s)",
		cfg.Port, cfg.GridWidth, cfg.GridHeight, cfg.MineCount, cfg.Policy)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, nil))
}
