package mux

import (
	"net/http"

	"seotda-server/pkg/room"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version  string
	registry *room.Registry
}

// NewMux returns a new HTTP mux
func NewMux(version string, registry *room.Registry) *Mux {
	this := &Mux{
		Router:   gmux.NewRouter(),
		version:  version,
		registry: registry,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/room").Handler(this.postRoom())
	r.Methods(http.MethodGet).Path("/room").Handler(this.getRooms())
	r.Methods(http.MethodGet).Path("/room/{id:[A-Za-z0-9_-]+}").Handler(this.getRoomID())
	r.Methods(http.MethodGet).Path("/ws").Handler(this.getWS())

	return this
}
