// Command bbwrl is the operator-facing surface for the blackjack
// reward-distribution engine: advise on a hand, size a bet, run the
// solver as a websocket service, or play an interactive shoe by hand.
//
// Grounded on cmd/solver/main.go's kong.Parse structure and explicit
// per-command dispatch from the teacher repo.
package main

import (
	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"

	"github.com/patrikgergely/bbwrl/internal/logging"
	"github.com/patrikgergely/bbwrl/internal/rules"
)

var cli struct {
	Debug  bool   `help:"enable debug logging"`
	Decks  int    `help:"number of decks in the shoe" default:"4"`
	Config string `help:"path to an HCL rule-variation file; defaults to Vegas Strip rules"`

	Advise AdviseCmd `cmd:"" help:"recommend an action for a two-card hand"`
	Bet    BetCmd    `cmd:"" help:"compute the Kelly-optimal bet size"`
	Serve  ServeCmd  `cmd:"" help:"run the solver as a websocket service"`
	Play   PlayCmd   `cmd:"" help:"launch the interactive terminal advisor"`
}

// appContext is the shared dependency bundle every leaf command's Run
// method receives via kong's bind mechanism.
type appContext struct {
	cfg   rules.Config
	decks int
	log   zerolog.Logger
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("bbwrl"),
		kong.Description("blackjack reward-distribution engine"),
		kong.UsageOnError(),
	)

	zl := logging.Setup(cli.Debug)

	cfg := rules.VegasStrip()
	if cli.Config != "" {
		loaded, err := rules.LoadFile(cli.Config)
		if err != nil {
			zl.Fatal().Err(err).Str("path", cli.Config).Msg("loading rule configuration")
		}
		cfg = loaded
	}
	if cli.Decks > 0 {
		cfg.ShoeSize = cli.Decks
	}
	zl.Debug().Interface("rules", cfg).Msg("resolved rule configuration")

	app := &appContext{cfg: cfg, decks: cfg.ShoeSize, log: zl}

	err := ctx.Run(app)
	ctx.FatalIfErrorf(err)
}
