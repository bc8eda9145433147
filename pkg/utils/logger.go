package utils

import (
	"os"

	log "github.com/sirupsen/logrus"
)

// SetupLogger mengatur logger global: JSON di production, teks berwarna selain itu.
func SetupLogger(appEnv, level string) {
	if appEnv == "production" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	log.SetOutput(os.Stdout)

	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.WithField("level", level).Warn("unknown log level, falling back to info")
		lvl = log.InfoLevel
	}
	log.SetLevel(lvl)
}
