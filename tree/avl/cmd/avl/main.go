package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero"

const logTag = "avl"

func main() {
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "avl"
	app.Usage = "build, inspect and soak test AVL trees"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " copy log output to the console",
		},
		cli.StringFlag{
			Name:  "log-dir",
			Value: os.TempDir(),
			Usage: " write avl.log into `DIR`",
		},
		cli.StringFlag{
			Name:  "log-level",
			Value: "info",
			Usage: " log `LEVEL` [trace|debug|info|warn|error|critical]",
		},
	}

	app.Commands = []cli.Command{
		{
			Name:  "random",
			Usage: "build a tree of 0..N-1 inserted in random order",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "num, n",
					Value: 10,
					Usage: " number of `ITEMS` in the tree",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 0,
					Usage: " random `SEED` (default current unix time in ns)",
				},
				cli.IntFlag{
					Name:  "delete, d",
					Value: 0,
					Usage: " delete `COUNT` random items after building",
				},
			},
			Action: runRandom,
		},
		{
			Name:      "build",
			Usage:     "insert the given integers in order, then delete",
			ArgsUsage: "ITEM...",
			Flags: []cli.Flag{
				cli.IntSliceFlag{
					Name:  "delete, d",
					Usage: " delete `ITEM` after all inserts (repeatable)",
				},
			},
			Action: runBuild,
		},
		{
			Name:  "soak",
			Usage: "run random insert/delete rounds and check every invariant after each step",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "rounds, r",
					Value: 100,
					Usage: " number of independent `ROUNDS`",
				},
				cli.IntFlag{
					Name:  "num, n",
					Value: 200,
					Usage: " key space `SIZE` of each round",
				},
				cli.IntFlag{
					Name:  "workers, w",
					Value: 4,
					Usage: " run at most `COUNT` rounds at once",
				},
				cli.Int64Flag{
					Name:  "seed, s",
					Value: 0,
					Usage: " base random `SEED` (default current unix time in ns)",
				},
			},
			Action: runSoak,
		},
		{
			Name:  "version",
			Usage: "display avl version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	logging := false

	app.Before = func(c *cli.Context) error {
		err := logger.Initialise(logger.Configuration{
			Directory: c.GlobalString("log-dir"),
			File:      app.Name + ".log",
			Size:      1048576,
			Count:     10,
			Console:   c.GlobalBool("verbose"),
			Levels: map[string]string{
				logger.DefaultTag: c.GlobalString("log-level"),
			},
		})
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		logging = true
		return nil
	}

	app.After = func(c *cli.Context) error {
		if logging {
			logger.Finalise()
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(app.ErrWriter, "error: %s\n", err)
		exitwithstatus.Exit(1)
	}
}
