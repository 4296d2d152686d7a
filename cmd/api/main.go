package main

import (
	"os"

	"github.com/yigit/airlinehub/internal/pkg/logger"
)

// @title Airline Hub API
// @version 1.0
// @description API for managing airlines and the airports they serve

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Error details are logged by the failing command
		logger.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
