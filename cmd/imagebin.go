package main

import (
	"flag"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/indieinfra/imagebin/config"
	"github.com/indieinfra/imagebin/server"
)

func main() {
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	configFile := flag.String("config", "config.yml", "Path to the configuration file (i.e., /etc/imagebin.yaml)")
	flag.Parse()

	if len(strings.TrimSpace(*configFile)) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	logger.Printf("loading configuration from %q...", *configFile)
	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.Debug {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	logger.Printf("starting http server...")
	if err := server.StartServer(cfg, &logger); err != nil {
		logger.Fatal().Err(err).Msg("http server terminated")
	}
}
