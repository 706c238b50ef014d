// Package app implements the datagen command line.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"WeightLossDataGenerator/internal/batch"
	"WeightLossDataGenerator/internal/dataset"
	"WeightLossDataGenerator/internal/generator"
	"WeightLossDataGenerator/internal/observability"
	"WeightLossDataGenerator/internal/sink"
)

const (
	defaultRows = 5000
	// MaxRows is the largest dataset the CLI will try to build in memory.
	MaxRows = 10_000_000
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ErrBadArgs marks argument errors detected after flag parsing.
var ErrBadArgs = errors.New("invalid arguments")

// Options holds the parsed command line.
type Options struct {
	Rows   int
	Seed   *int64
	OutDir string
	Stdout bool
	Plan   string
}

// NewFlagSet returns the datagen FlagSet with its usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), `%s: synthetic weight-loss dataset generator

Usage of %s:
`, name, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opts Options
	rows := fs.String("rows", strconv.Itoa(defaultRows), "number of rows (lenient: \"12.9\" -> 12, invalid -> 1)")
	seed := fs.String("seed", "", "random seed (random when empty)")
	fs.StringVar(&opts.OutDir, "out", ".", "directory to write the CSV into")
	fs.BoolVar(&opts.Stdout, "stdout", false, "write the CSV to stdout instead of a file")
	fs.StringVar(&opts.Plan, "plan", "", "YAML plan generating several datasets")

	if err := fs.Parse(argv); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("%w: unexpected %s", ErrBadArgs, strings.Join(fs.Args(), " "))
	}
	if opts.Plan != "" && opts.Stdout {
		return opts, fmt.Errorf("%w: -plan and -stdout cannot be combined", ErrBadArgs)
	}

	opts.Rows = generator.ParseRowCount(*rows)
	if s := strings.TrimSpace(*seed); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return opts, fmt.Errorf("%w: -seed %q is not an integer", ErrBadArgs, *seed)
		}
		opts.Seed = &v
	}
	return opts, nil
}

// Run executes datagen with argv and returns the process exit code.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

// RunContext is Run with a caller-supplied context.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	logger := log.New(stderr, "", 0)

	fs := NewFlagSet("datagen")
	fs.SetOutput(stderr)
	opts, err := ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK
		}
		// flag has already reported its own errors
		if errors.Is(err, ErrBadArgs) {
			logger.Println(err)
		}
		return ExitUsage
	}

	if opts.Plan != "" {
		return runPlan(ctx, logger, opts)
	}

	if opts.Rows > MaxRows {
		logger.Printf("-rows %d exceeds the limit of %d", opts.Rows, MaxRows)
		return ExitError
	}

	var dst sink.Sink
	if opts.Stdout {
		dst = sink.NewWriter(stdout)
	} else {
		disk, err := sink.NewDisk(opts.OutDir)
		if err != nil {
			logger.Println(err)
			return ExitError
		}
		dst = disk
	}

	ds := dataset.Build(observability.ChannelCLI, opts.Rows, dataset.ResolveSeed(opts.Seed))
	location, err := dst.Save(ctx, ds.Data, ds.Filename)
	if err != nil {
		logger.Println(err)
		return ExitError
	}
	if !opts.Stdout {
		logger.Printf("wrote %s (%d rows, seed %d)", location, ds.Rows, ds.Seed)
	}
	return ExitOK
}

func runPlan(ctx context.Context, logger *log.Logger, opts Options) int {
	plan, err := batch.LoadPlan(opts.Plan)
	if err != nil {
		logger.Println(err)
		return ExitError
	}

	for i, entry := range plan.Datasets {
		if entry.Rows > MaxRows {
			logger.Printf("%s: dataset %d: rows %d exceeds the limit of %d", opts.Plan, i+1, entry.Rows, MaxRows)
			return ExitError
		}
	}

	dir := plan.OutputDir
	if dir == "" {
		dir = opts.OutDir
	}
	disk, err := sink.NewDisk(dir)
	if err != nil {
		logger.Println(err)
		return ExitError
	}

	results, err := batch.Run(ctx, plan, disk)
	for _, r := range results {
		logger.Printf("wrote %s (%d rows, seed %d)", r.Location, r.Rows, r.Seed)
	}
	if err != nil {
		logger.Println(err)
		return ExitError
	}
	return ExitOK
}
