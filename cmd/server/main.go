package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"president-server/internal/config"
	"president-server/internal/mux"
	"president-server/internal/store"
	"president-server/pkg/room"
)

const readTimeout = time.Second * 5
const writeTimeout = time.Second * 10

// Version is the server version
var Version = "v0.0.0-dev"

var addr = flag.String("addr", "", "the listen address (overrides the configuration)")

func main() {
	flag.Parse()

	cfg := config.Instance()
	setupLogger(cfg.Log)

	records, err := store.Open(context.Background(), cfg.Store, logrus.StandardLogger())
	if err != nil {
		logrus.WithError(err).Fatal("could not open the game records")
	}
	defer records.Close()

	pitBoss := room.NewPitBoss(logrus.StandardLogger(), records, cfg.Game.Options())
	pitBoss.IdleTimeout = cfg.Room.IdleTimeout()
	pitBoss.StartShift()

	c := cors.New(cors.Options{
		AllowedHeaders: []string{"Origin", "Accept", "Content-Type", "X-Requested-With"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	listen := cfg.Addr
	if *addr != "" {
		listen = *addr
	}

	srv := &http.Server{
		Addr:         listen,
		Handler:      loggingHandler(cfg.Log, c.Handler(mux.NewMux(Version, pitBoss, records, logrus.StandardLogger()))),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}

	logrus.WithField("addr", srv.Addr).WithField("version", Version).Info("listening")
	logrus.Fatal(srv.ListenAndServe())
}

func loggingHandler(cfg config.LogConfig, next http.Handler) http.Handler {
	if cfg.DisableAccessLogs {
		return next
	}

	return handlers.CombinedLoggingHandler(os.Stdout, next)
}

func setupLogger(cfg config.LogConfig) {
	if lvl := cfg.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(cfg.Format) == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
