package elevutils

import (
	_ "embed"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > githash.txt"
//go:embed githash.txt
var gitHash string

const devVersion = "dev"

// GetGitHash returns the embedded commit hash, or "dev" for builds where
// go generate was not run.
func GetGitHash() string {
	if hash := strings.TrimSpace(gitHash); hash != "" {
		return hash
	}
	return devVersion
}

type CmdArgs struct {
	ConfigPath string
	Identifier string
	Seed       int64
	SeedSet    bool
	LogLevel   zerolog.Level
}

func ProcessCmdArgs() CmdArgs {
	args, err := parseCmdArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}
	return args
}

func parseCmdArgs(flags *flag.FlagSet, arguments []string) (CmdArgs, error) {
	help := flags.Bool("help", false, "Show Help Window")
	version := flags.Bool("version", false, "Show Version")
	identifier := flags.String("id", "", "Set the identifier of the simulation run. Defaults to random string")
	seed := flags.Int64("seed", 0, "Seed for the random arrival stream. Overrides the seed property")
	logLevel := zerolog.InfoLevel
	flags.Func("loglevel", "Log level (trace, debug, info, warn, error, disabled). Defaults to info", func(name string) error {
		level, err := zerolog.ParseLevel(name)
		if err != nil || level == zerolog.NoLevel {
			return fmt.Errorf("unknown log level %q", name)
		}
		logLevel = level
		return nil
	})

	if err := flags.Parse(arguments); err != nil {
		return CmdArgs{}, err
	}

	if *version {
		fmt.Println("Version:", GetGitHash())
		os.Exit(0)
	}

	if *help {
		fmt.Println("Usage: ./elevsim [OPTIONS] [PROPERTIES_FILE]")
		fmt.Println("Discrete-tick elevator dispatch simulation")
		fmt.Println()
		fmt.Println("PROPERTIES_FILE may be a key=value .properties file or a .yaml file.")
		fmt.Println("Without it the default simulation settings are used.")
		fmt.Println()
		fmt.Println("Options:")
		flags.PrintDefaults()
		os.Exit(0)
	}

	args := CmdArgs{
		ConfigPath: flags.Arg(0),
		Identifier: *identifier,
		Seed:       *seed,
		LogLevel:   logLevel,
	}
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			args.SeedSet = true
		}
	})
	return args, nil
}
