package main

import (
	"github.com/nodhq/nod/backend/internal/server"
	"github.com/nodhq/nod/backend/internal/util"
	"github.com/nodhq/nod/backend/pkg/logger"
	"github.com/nodhq/nod/backend/pkg/logger/console"

	_ "github.com/lib/pq"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	server.Init()
}
