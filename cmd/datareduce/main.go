package main

import (
	"os"
	"strconv"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/datareduce/config"
	"github.com/osuushi/datareduce/curveio"
	"github.com/osuushi/datareduce/curves"
	"github.com/rs/zerolog"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Command line front end for reducing curves. Input is a two column table (or
// GeoJSON LineString, or JSON columns) of points in curve order. Output is the
// reduced table in the same order.
func main() {
	cfg, err := config.Get()
	if err != nil {
		fatalLogger := zerolog.New(os.Stderr)
		fatalLogger.Fatal().Err(err).Msg("loading configuration")
	}

	app := kingpin.New("datareduce", "Shape preserving point reduction for 2D curves.")
	logLevel := app.Flag("log-level", "Log level.").Default(cfg.LogLevel).String()
	noColor := app.Flag("no-color", "Disable colored output.").Bool()

	reduceCmd := app.Command("reduce", "Reduce a curve to fewer points.")
	reduceOpts := reduceOptions{}
	reduceCmd.Flag("strategy", "Reduction strategy (Visvalingam-Whyatt or Downsampling).").Short('s').Default(cfg.DefaultStrategy).StringVar(&reduceOpts.strategy)
	reduceCmd.Flag("target", "Number of points to keep.").Short('n').Default(strconv.Itoa(cfg.DefaultTarget)).IntVar(&reduceOpts.target)
	reduceCmd.Flag("format", "Input format. Guessed from the file extension, or csv for stdin.").Short('f').EnumVar(&reduceOpts.inputFormat, curveio.FormatNames()...)
	reduceCmd.Flag("output-format", "Output format. Defaults to the input format.").EnumVar(&reduceOpts.outputFormat, curveio.FormatNames()...)
	reduceCmd.Flag("out", "Output file, or - for stdout.").Short('o').Default("-").StringVar(&reduceOpts.out)
	reduceCmd.Flag("png", "Also render the original and reduced curves to this PNG file.").StringVar(&reduceOpts.png)
	reduceCmd.Flag("show", "Print the rendered PNG inline (iTerm only).").BoolVar(&reduceOpts.show)
	reduceCmd.Flag("width", "Rendered image width.").Default(strconv.Itoa(cfg.RenderWidth)).IntVar(&reduceOpts.width)
	reduceCmd.Flag("height", "Rendered image height.").Default(strconv.Itoa(cfg.RenderHeight)).IntVar(&reduceOpts.height)
	reduceCmd.Arg("input", "Input file, or - for stdin.").Default("-").StringVar(&reduceOpts.input)

	generateCmd := app.Command("generate", "Write a synthetic test curve as CSV.")
	generateOpts := generateOptions{}
	generateCmd.Flag("kind", "Kind of curve.").Short('k').Default("random").EnumVar(&generateOpts.kind, curves.Kinds()...)
	generateCmd.Flag("points", "Number of points.").Short('m').Default("1000").IntVar(&generateOpts.points)
	generateCmd.Flag("seed", "Random seed. Zero picks one from the clock.").Int64Var(&generateOpts.seed)
	generateCmd.Flag("name", "Name of the curve. Defaults to a random readable name.").StringVar(&generateOpts.name)
	generateCmd.Flag("out", "Output file, or - for stdout.").Short('o').Default("-").StringVar(&generateOpts.out)

	strategiesCmd := app.Command("strategies", "List the reduction strategies.")

	serveCmd := app.Command("serve", "Serve reductions over HTTP.")
	bindAddr := serveCmd.Flag("bind", "Address to listen on.").Default(cfg.BindAddr).String()

	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg.LogLevel = *logLevel
	zerolog.SetGlobalLevel(cfg.Level())
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05", NoColor: *noColor}).With().Timestamp().Logger()
	au := aurora.NewAurora(!*noColor)
	cfg.Log(logger)

	switch command {
	case reduceCmd.FullCommand():
		err = runReduce(reduceOpts, os.Stdin, os.Stdout, logger, au)
	case generateCmd.FullCommand():
		err = runGenerate(generateOpts, os.Stdout, logger)
	case strategiesCmd.FullCommand():
		err = runStrategies(os.Stdout, au)
	case serveCmd.FullCommand():
		cfg.BindAddr = *bindAddr
		err = runServe(cfg, logger)
	}
	if err != nil {
		logger.Error().Err(err).Msg(command)
		os.Exit(1)
	}
}
