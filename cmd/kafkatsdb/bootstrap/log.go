package bootstrap

import (
	"os"

	log "github.com/sirupsen/logrus"
)

func SetupLogging(logFile, level string) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.TraceLevel
	}
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "01-02 15:04:05",
	})

	if logFile != "stdout" {
		f, err := os.OpenFile(logFile, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			panic(err)
		}

		log.SetOutput(f)
		log.SetFormatter(&log.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "01-02 15:04:05",
		})
	}
}
