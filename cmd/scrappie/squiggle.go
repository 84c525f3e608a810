package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/scottcoutts/scrappie/internal/fasta"
	"github.com/scottcoutts/scrappie/internal/logger"
	"github.com/scottcoutts/scrappie/internal/matrix"
	"github.com/scottcoutts/scrappie/internal/squiggle"
)

func squiggleCmd() *cli.Command {
	var (
		limit   int64
		output  string
		prefix  string
		rescale bool
	)

	return &cli.Command{
		Name:      "squiggle",
		Usage:     "Predict the expected signal for reads in FASTA/FASTQ files",
		ArgsUsage: "fasta [fasta ...]",
		Flags: append(append(modelFlags(),
			&cli.Int64Flag{
				Name:        "limit",
				Aliases:     []string{"l"},
				Usage:       "maximum number of reads to process (0 is unlimited)",
				Destination: &limit,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "write to file rather than stdout",
				Destination: &output,
			},
			&cli.StringFlag{
				Name:        "prefix",
				Aliases:     []string{"p"},
				Usage:       "prefix to prepend to the name of each read",
				Destination: &prefix,
			},
			&cli.BoolFlag{
				Name:        "rescale",
				Usage:       "rescale network output (--rescale=false to disable)",
				Value:       true,
				Destination: &rescale,
			},
		), loggingFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := LoadConfig()
			applySquiggleConfig(cmd, cfg, &rescale)

			log := newLogger()
			matrix.SetLogger(log)

			files := cmd.Args().Slice()
			if len(files) == 0 {
				return errors.New("no input files given")
			}
			model, err := loadModel()
			if err != nil {
				return err
			}

			out := io.Writer(os.Stdout)
			if output != "" {
				fh, err := os.Create(output)
				if err != nil {
					return err
				}
				defer fh.Close()
				out = fh
			}
			return runSquiggle(log, model, files, out, prefix, rescale, limit)
		},
	}
}

// runSquiggle processes reads across all input files. Failures are scoped to
// the smallest unit: an unreadable file or a bad read is logged and skipped,
// only output errors abort the run.
func runSquiggle(log logger.Logger, model *squiggle.Model, files []string, out io.Writer, prefix string, rescale bool, limit int64) error {
	var started int64
	for _, path := range files {
		if limit > 0 && started >= limit {
			break
		}
		fh, err := os.Open(path)
		if err != nil {
			log.Warn("failed to open input", "path", path, "error", err)
			continue
		}

		r := fasta.NewReader(fh)
		for {
			if limit > 0 && started >= limit {
				break
			}
			rec, err := r.Read()
			if err == io.EOF {
				break
			}
			if err != nil {
				// Framing is lost after a malformed record; skip the
				// rest of this file.
				log.Warn("malformed record, skipping rest of file", "path", path, "error", err)
				break
			}
			started++

			sq, err := model.Predict(rec.Seq, rescale)
			if err != nil {
				log.Warn("skipping read", "read", rec.Name, "error", err)
				continue
			}
			if err := sq.WriteTSV(out, prefix+rec.Name); err != nil {
				fh.Close()
				return err
			}
		}
		fh.Close()
	}
	return nil
}
