package main

import (
	"fmt"
	rand "math/rand/v2"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/cardsim/internal/blackjack"
	"github.com/lox/cardsim/internal/montecarlo"
	"github.com/lox/cardsim/internal/randutil"
	"github.com/lox/cardsim/internal/report"
	"github.com/lox/cardsim/internal/ridebus"
	"github.com/lox/cardsim/internal/simconfig"
	"github.com/lox/cardsim/internal/slots"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"V" help:"Show version"`
	Verbose bool             `short:"v" help:"Verbose logging"`
	Config  string           `default:"cardsim.hcl" help:"HCL configuration file"`

	Blackjack BlackjackCmd `cmd:"" help:"Simulate blackjack played by basic strategy"`
	Ridebus   RideBusCmd   `cmd:"" help:"Simulate Ride the Bus strategies"`
	Slots     SlotsCmd     `cmd:"" help:"Simulate the slot machine"`
	All       AllCmd       `cmd:"" help:"Run every simulation"`
}

// simFlags are the run controls shared by every subcommand. Zero values
// defer to the configuration file.
type simFlags struct {
	Iterations       int   `default:"0" help:"Number of trials (0 uses config)"`
	Seed             int64 `default:"0" help:"RNG seed (0 for time-based)"`
	ProgressInterval int   `default:"0" help:"Trials between progress updates (0 uses config)"`
	Workers          int   `default:"0" help:"Parallel workers (0 uses config)"`
}

type runContext struct {
	cfg    *simconfig.Config
	logger *log.Logger
	engine *montecarlo.Engine

	iterations       int
	seed             int64
	progressInterval int
	workers          int
}

func (f simFlags) setup(cli *CLI) (*runContext, error) {
	cfg, err := simconfig.Load(cli.Config)
	if err != nil {
		return nil, err
	}

	level := log.WarnLevel
	if cli.Verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	rc := &runContext{
		cfg:              cfg,
		logger:           logger,
		engine:           montecarlo.New(montecarlo.Config{Logger: logger}),
		iterations:       cfg.Simulation.Iterations,
		seed:             cfg.Simulation.Seed,
		progressInterval: cfg.Simulation.ProgressInterval,
		workers:          cfg.Simulation.Workers,
	}
	if f.Iterations > 0 {
		rc.iterations = f.Iterations
	}
	if f.Seed != 0 {
		rc.seed = f.Seed
	}
	if f.ProgressInterval > 0 {
		rc.progressInterval = f.ProgressInterval
	}
	if f.Workers > 0 {
		rc.workers = f.Workers
	}
	if rc.seed == 0 {
		rc.seed = time.Now().UnixNano()
	}
	return rc, nil
}

// run executes a simulation, parallel when more than one worker is
// configured. Each worker derives an independent RNG from the run seed.
func (rc *runContext) run(newTrial func(rng *rand.Rand) montecarlo.TrialFunc) (*montecarlo.Report, error) {
	if rc.workers > 1 {
		return rc.engine.RunParallel(func(worker int) montecarlo.TrialFunc {
			return newTrial(randutil.New(rc.seed + int64(worker)))
		}, rc.iterations, rc.workers)
	}
	return rc.engine.Run(newTrial(randutil.New(rc.seed)), rc.iterations, rc.progressInterval), nil
}

// BlackjackCmd simulates basic strategy blackjack and optionally dealer bust
// rates per up card.
type BlackjackCmd struct {
	simFlags
	Decks      int     `default:"0" help:"Decks in the shoe (0 uses config)"`
	Wager      float64 `default:"0" help:"Wager per hand (0 uses config)"`
	DealerBust bool    `help:"Also measure dealer bust probability per up card"`
}

func (c *BlackjackCmd) Run(cli *CLI) error {
	rc, err := c.setup(cli)
	if err != nil {
		return err
	}
	decks := rc.cfg.Blackjack.Decks
	if c.Decks > 0 {
		decks = c.Decks
	}
	wager := rc.cfg.Blackjack.Wager
	if c.Wager > 0 {
		wager = c.Wager
	}

	rc.logger.Info("starting blackjack simulation",
		"iterations", rc.iterations, "decks", decks, "seed", rc.seed)

	rep, err := rc.run(func(rng *rand.Rand) montecarlo.TrialFunc {
		return func() montecarlo.Result {
			return blackjack.SimulateBasicStrategy(rng, decks, wager)
		}
	})
	if err != nil {
		return err
	}
	fmt.Print(report.Render("Blackjack: basic strategy", rep))
	printBlackjackHeadline(rep)

	if c.DealerBust {
		bustRep, err := rc.run(func(rng *rand.Rand) montecarlo.TrialFunc {
			return func() montecarlo.Result {
				return blackjack.SimulateDealerBust(rng)
			}
		})
		if err != nil {
			return err
		}
		fmt.Print(report.Render("Blackjack: dealer bust by up card", bustRep))
	}
	return nil
}

func printBlackjackHeadline(rep *montecarlo.Report) {
	pcts := rep.Percentages["result"]
	fmt.Printf("Win: %.2f%%  Blackjack: %.2f%%  Push: %.2f%%  Lose: %.2f%%\n",
		pcts["win"], pcts["blackjack"], pcts["push"], pcts["lose"])
	if stats, ok := rep.Numeric["net_win"]; ok {
		fmt.Printf("Average net win per hand: %.4f\n", stats.Mean)
		fmt.Printf("House edge: %.2f%%\n", -stats.Mean*100)
	}
}

// RideBusCmd simulates one of the Ride the Bus strategies.
type RideBusCmd struct {
	simFlags
	Wager    float64 `default:"0" help:"Wager per game (0 uses config)"`
	Strategy string  `default:"" help:"Strategy: color, inout, or suit (default uses config)"`
}

func (c *RideBusCmd) Run(cli *CLI) error {
	rc, err := c.setup(cli)
	if err != nil {
		return err
	}
	wager := rc.cfg.RideBus.Wager
	if c.Wager > 0 {
		wager = c.Wager
	}
	strategy := rc.cfg.RideBus.Strategy
	if c.Strategy != "" {
		strategy = c.Strategy
	}

	var simulate func(*rand.Rand, float64) montecarlo.Result
	var title string
	switch strategy {
	case "color", ridebus.StrategyCashoutAfterColor:
		simulate = ridebus.SimulateCashoutAfterColor
		title = "Ride the Bus: cash out after color"
	case "inout", ridebus.StrategyCashoutAfterInOut:
		simulate = ridebus.SimulateCashoutAfterInOut
		title = "Ride the Bus: cash out after inside/outside"
	case "suit", ridebus.StrategyRideToSuit:
		simulate = ridebus.SimulateRideToSuit
		title = "Ride the Bus: ride to the suit"
	default:
		return fmt.Errorf("unknown strategy %q", strategy)
	}

	rc.logger.Info("starting ride the bus simulation",
		"iterations", rc.iterations, "strategy", strategy, "seed", rc.seed)

	rep, err := rc.run(func(rng *rand.Rand) montecarlo.TrialFunc {
		return func() montecarlo.Result {
			return simulate(rng, wager)
		}
	})
	if err != nil {
		return err
	}
	fmt.Print(report.Render(title, rep))
	if stats, ok := rep.Numeric["net_win"]; ok {
		fmt.Printf("Average net win per game: %.4f (EV %.2f%%)\n",
			stats.Mean, stats.Mean*100)
	}
	return nil
}

// SlotsCmd simulates slot machine spins.
type SlotsCmd struct {
	simFlags
	Bet int `default:"1" help:"Bet per spin"`
}

func (c *SlotsCmd) Run(cli *CLI) error {
	rc, err := c.setup(cli)
	if err != nil {
		return err
	}

	rc.logger.Info("starting slots simulation",
		"iterations", rc.iterations, "seed", rc.seed)

	rep, err := rc.run(func(rng *rand.Rand) montecarlo.TrialFunc {
		machine := slots.New(rng, 3, 10)
		return func() montecarlo.Result {
			return machine.Simulate(c.Bet)
		}
	})
	if err != nil {
		return err
	}
	fmt.Print(report.Render("Slots", rep))
	if stats, ok := rep.Numeric["net_win"]; ok {
		fmt.Printf("Average net win per spin: %.4f\n", stats.Mean)
	}
	return nil
}

// AllCmd runs every simulation back to back.
type AllCmd struct {
	simFlags
}

func (c *AllCmd) Run(cli *CLI) error {
	bj := &BlackjackCmd{simFlags: c.simFlags, DealerBust: true}
	if err := bj.Run(cli); err != nil {
		return err
	}
	for _, strategy := range []string{"color", "inout", "suit"} {
		rb := &RideBusCmd{simFlags: c.simFlags, Strategy: strategy}
		if err := rb.Run(cli); err != nil {
			return err
		}
	}
	sl := &SlotsCmd{simFlags: c.simFlags, Bet: 1}
	return sl.Run(cli)
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("cardsim"),
		kong.Description("Monte Carlo simulator for chance-based card games"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
