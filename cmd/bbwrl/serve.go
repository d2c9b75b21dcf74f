package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/patrikgergely/bbwrl/internal/service"
)

// ServeCmd runs the solver as a long-running websocket service (component
// J), for out-of-process collaborators such as a trainer or tuner.
type ServeCmd struct {
	Addr string `help:"listen address" default:":8080"`
}

func (c *ServeCmd) Run(app *appContext) error {
	level := log.InfoLevel
	if cli.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "bbwrl",
		Level:  level,
	})

	srv := service.NewServer(c.Addr, app.cfg, logger, quartz.NewReal())
	return srv.Start()
}
