package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/dinaMadelen/elevsim/internal/elevconfig"
	"github.com/dinaMadelen/elevsim/internal/elevmetadata"
	"github.com/dinaMadelen/elevsim/internal/elevutils"
	"github.com/dinaMadelen/elevsim/internal/logger"
	"github.com/dinaMadelen/elevsim/internal/simulation"
)

var Logger = logger.GetLoggerConfigured(zerolog.InfoLevel)

func main() {
	args := elevutils.ProcessCmdArgs()
	logger.GetLoggerConfigured(args.LogLevel)

	Logger.Info().Msg("Starting Elevator Simulation")

	if args.ConfigPath == "" {
		Logger.Warn().Msg("No properties file name provided. Using default simulation settings.")
	}

	props := elevconfig.Load(args.ConfigPath)
	if args.ConfigPath != "" && !props.FileLoaded() {
		Logger.Warn().Msg("Properties file not loaded correctly. Default values are used.")
	}

	switch {
	case args.SeedSet:
		props.Seed, props.SeedSet = args.Seed, true
	case !props.SeedSet:
		props.Seed, props.SeedSet = time.Now().UnixNano(), true
	}

	metaData := elevmetadata.NewSimMetaData(elevutils.GetGitHash(), args.Identifier, props.Seed)
	metaData.ConfigPath = args.ConfigPath
	metaData.ConfigLoaded = props.FileLoaded()
	Logger.Info().Msgf("Simulation: %v", metaData.String())

	report := simulation.NewSimulation(props).Run()
	if err := report.Write(os.Stdout); err != nil {
		Logger.Fatal().Err(err).Msg("Failed to write report")
	}
}
