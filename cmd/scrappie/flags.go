package main

import (
	"os"

	"github.com/urfave/cli/v3"

	"github.com/scottcoutts/scrappie/internal/logger"
	"github.com/scottcoutts/scrappie/internal/squiggle"
)

var (
	modelPath string
	logLevel  string
	logFormat string
)

func modelFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "model",
			Aliases:     []string{"m"},
			Usage:       "path to a JSON model file (defaults to the embedded model)",
			Destination: &modelPath,
		},
	}
}

func loggingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &logLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (pretty, json, text)",
			Value:       "pretty",
			Destination: &logFormat,
		},
	}
}

// newLogger builds the process logger from the logging flags; the pretty
// handler is only used when stderr is an interactive terminal.
func newLogger() logger.Logger {
	level := logger.ParseLevel(logLevel)
	switch logFormat {
	case "json":
		return logger.JSON(os.Stderr, level)
	case "text":
		return logger.Text(os.Stderr, level)
	default:
		if stderrIsTTY() {
			return logger.Pretty(os.Stderr, level)
		}
		return logger.Text(os.Stderr, level)
	}
}

func loadModel() (*squiggle.Model, error) {
	if modelPath == "" {
		return squiggle.Default(), nil
	}
	return squiggle.FromFile(modelPath)
}
