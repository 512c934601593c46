package main

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"simgate/anylogic"
	"simgate/config"
	"simgate/handler"
	"simgate/logging"
	"simgate/simulation"
)

const version = "1.1.0"

func main() {
	config.ParseArgs()
	if config.CliArgs.Version {
		fmt.Println("simgate", version)
		return
	}

	if config.CliArgs.Debug {
		logging.InitLogger(logrus.DebugLevel)
	} else {
		logging.InitLogger(logrus.InfoLevel)
		gin.SetMode(gin.ReleaseMode)
	}
	log := logging.GetLogger()

	cfg, err := config.LoadConfig(config.CliArgs.ConfigFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize the Cloud client and the simulation service
	client := anylogic.NewClient(cfg.APIRoot, cfg.APIKey,
		anylogic.WithTimeout(cfg.RequestTimeout),
		anylogic.WithPollInterval(cfg.PollInterval),
	)
	service := simulation.NewService(client, simulation.OutputNames{
		MeanQueueSize:     cfg.Outputs.MeanQueueSize,
		ServerUtilization: cfg.Outputs.ServerUtilization,
	})

	router := handler.NewRouter(handler.NewSimulationHandler(service, cfg.Defaults))

	// Define the server
	server := &http.Server{
		Addr:    cfg.ListenAddress,
		Handler: router,
	}

	log.Infof("Starting server on %s (API root %s)", cfg.ListenAddress, cfg.APIRoot)
	// Start listening and serving
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
