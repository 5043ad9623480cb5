package main

import (
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"seotda-server/internal/config"
	"seotda-server/internal/mux"
	"seotda-server/pkg/db"
	"seotda-server/pkg/game"
	"seotda-server/pkg/room"
	"seotda-server/pkg/store"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", ":8000", "the listen address")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	var roomStore store.RoomStore
	if cfg.PGDSN != "" {
		db.LoadInstance(cfg.PGDSN)
		db.Migrate(cfg.MigrationsPath)
		roomStore = store.NewPostgres(db.Instance())
	} else {
		logrus.Info("no database configured, rooms are kept in memory")
		roomStore = store.NewMemory()
	}

	registry := room.NewRegistry(roomStore, game.Options{
		StartingChips: cfg.Game.StartingChips,
		MinBet:        cfg.Game.MinBet,
		MaxBet:        cfg.Game.MaxBet,
	})

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	srv := &http.Server{
		Addr:         *addr,
		Handler:      loggingHandler(c.Handler(mux.NewMux(Version, registry))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func loggingHandler(next http.Handler) http.Handler {
	if config.Instance().Log.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
