package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/datareduce/advanced"
	"github.com/osuushi/datareduce/curveio"
	"github.com/osuushi/datareduce/render"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type reduceOptions struct {
	strategy     string
	target       int
	inputFormat  string
	outputFormat string
	input        string
	out          string
	png          string
	show         bool
	width        int
	height       int
}

func runReduce(opts reduceOptions, stdin io.Reader, stdout io.Writer, logger zerolog.Logger, au aurora.Aurora) error {
	strategy, err := advanced.ParseStrategy(opts.strategy)
	if err != nil {
		return err
	}
	reducer, err := advanced.NewReducer(strategy)
	if err != nil {
		return err
	}

	inputFormat, err := resolveFormat(opts.inputFormat, opts.input)
	if err != nil {
		return err
	}
	outputFormat := inputFormat
	if opts.outputFormat != "" {
		if outputFormat, err = curveio.ParseFormat(opts.outputFormat); err != nil {
			return err
		}
	}

	points, err := readPoints(opts.input, inputFormat, stdin)
	if err != nil {
		return err
	}
	logger.Debug().Str("input", opts.input).Stringer("format", inputFormat).Int("points", len(points)).Msg("read input")

	result, err := reducer.Reduce(points, opts.target)
	if err != nil {
		return err
	}
	if result.IsNoOp() {
		logger.Warn().Int("target", opts.target).Int("points", len(points)).Msg(result.Warning.Error())
	}

	if err := writePoints(opts.out, outputFormat, result.Points, stdout); err != nil {
		return err
	}

	if opts.png != "" {
		options := render.DefaultOptions()
		options.Width, options.Height = opts.width, opts.height
		if err := render.SavePNG(opts.png, points, result.Points, options); err != nil {
			return err
		}
		logger.Debug().Str("png", opts.png).Msg("rendered overlay")
		if opts.show {
			// stdout may be carrying the reduced data
			render.Cat(opts.png, os.Stderr)
		}
	}

	// Keep stdout clean for the data itself
	summary := fmt.Sprintf("%s: %d → %d points", au.Cyan(strategy), len(points), au.Bold(len(result.Points)))
	if result.IsNoOp() {
		summary += au.Yellow(" (unchanged)").String()
	}
	logger.Info().Msg(summary)
	return nil
}

// An explicit format wins, then the extension. stdin defaults to csv.
func resolveFormat(name, path string) (curveio.Format, error) {
	if name != "" {
		return curveio.ParseFormat(name)
	}
	if path == "-" || path == "" {
		return curveio.CSV, nil
	}
	return curveio.FormatFromPath(path)
}

func readPoints(path string, format curveio.Format, stdin io.Reader) (advanced.Sequence, error) {
	if path == "-" || path == "" {
		return curveio.Read(stdin, format)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening input")
	}
	defer f.Close()
	return curveio.Read(f, format)
}

// Output is buffered so a failed write never leaves a partial file behind.
func writePoints(path string, format curveio.Format, points advanced.Sequence, stdout io.Writer) error {
	var buf bytes.Buffer
	if err := curveio.Write(&buf, points, format); err != nil {
		return err
	}
	if path == "-" || path == "" {
		_, err := stdout.Write(buf.Bytes())
		return err
	}
	return errors.Wrap(os.WriteFile(path, buf.Bytes(), 0o644), "writing output")
}
