package main

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/datareduce/advanced"
	"github.com/osuushi/datareduce/curveio"
	"github.com/osuushi/datareduce/curves"
	"github.com/rs/zerolog"
)

type generateOptions struct {
	kind   string
	points int
	seed   int64
	name   string
	out    string
}

func runGenerate(opts generateOptions, stdout io.Writer, logger zerolog.Logger) error {
	seed := opts.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	curve, err := curves.Generate(opts.kind, rand.New(rand.NewSource(seed)), opts.points, opts.name)
	if err != nil {
		return err
	}
	logger.Info().Str("name", curve.Name).Str("kind", opts.kind).Int64("seed", seed).Int("points", len(curve.Points)).Msg("generated curve")
	return writePoints(opts.out, curveio.CSV, curve.Points, stdout)
}

func runStrategies(stdout io.Writer, au aurora.Aurora) error {
	for i, strategy := range advanced.Strategies() {
		if _, err := fmt.Fprintf(stdout, "%d. %s\n", i+1, au.Bold(strategy)); err != nil {
			return err
		}
	}
	return nil
}
