package main

import (
	"fmt"
	"os"

	"github.com/magaliet/genything/cli"
	"github.com/magaliet/genything/internal/config"
)

const usage = `genything - reproducible test data and failing-seed bookkeeping

Usage:
  genything <command> [arguments]

Commands:
  init                          Create genything.ini in the current directory
  list [property]               List recorded failing seeds
  forget <property> [seed...]   Delete recorded seeds (all of them if none given)
  sample <generator> [flags]    Print values drawn from a named generator
  generators                    List the generators sample knows

Sample flags:
  -n <count>    Number of values (default from genything.ini, else 10)
  -seed <seed>  Seed to draw from (0 picks one and prints it)
  -size <size>  Size hint (default 30)

Environment:
  GENYTHING_STORE_URL   Overrides [store] url
  GENYTHING_LOG         json, pretty or text to log store activity to stderr

Options:
  -h, --help    Show this help message
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(0)
	}

	cmd, args := os.Args[1], os.Args[2:]

	switch cmd {
	case "-h", "--help", "help":
		fmt.Print(usage)
		os.Exit(0)

	case "init":
		cwd, err := os.Getwd()
		if err != nil {
			cli.FatalErr("failed to get current directory", err)
		}
		if err := initCmd(cwd); err != nil {
			cli.FatalErr("init failed", err)
		}

	case "generators":
		generatorsCmd()

	case "list", "forget", "sample":
		cfg, err := config.Load("")
		if err != nil {
			cli.FatalErr("failed to load config", err)
		}
		switch cmd {
		case "list":
			err = listCmd(cfg, args)
		case "forget":
			err = forgetCmd(cfg, args)
		case "sample":
			err = sampleCmd(cfg, args)
		}
		if err != nil {
			cli.FatalErr(cmd+" failed", err)
		}

	default:
		cli.Fatal(fmt.Sprintf("unknown command: %s (run 'genything --help' for usage)", cmd))
	}
}
