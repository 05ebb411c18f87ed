package main

import (
	"net/http"
	"os"

	"github.com/matryer/way"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/mazeway/server"
)

type Server struct {
	router       *way.Router
	ReplayServer *server.ReplayServer
}

func main() {
	Server := Server{
		ReplayServer: server.NewReplayServer(),
	}
	Server.routes()
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
		log.Printf("Defaulting to port %s", port)
	}
	log.Fatalln(http.ListenAndServe(":"+port, Server.router))
}
