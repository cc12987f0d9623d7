// Command postcode validates UK postcode formats from the command line or
// over HTTP.
//
//	postcode check "DN55 1PT" W1A
//	postcode bulk -f customers.txt -format json
//	postcode serve
//
// By default a single-digit-only area written with two digits, such as
// FY11 1PY, is accepted. Pass -strict, or set POSTCODE_STRICT_DISTRICTS=true,
// to reject those codes; library callers use
// postcode.New(postcode.WithStrictDistricts()).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/ukpostcode/modules/postcodes"
	"github.com/dmitrymomot/ukpostcode/pkg/bulk"
	"github.com/dmitrymomot/ukpostcode/pkg/config"
	"github.com/dmitrymomot/ukpostcode/pkg/httpserver"
	"github.com/dmitrymomot/ukpostcode/pkg/logger"
	"github.com/dmitrymomot/ukpostcode/pkg/postcode"
	"github.com/dmitrymomot/ukpostcode/pkg/requestid"
)

// Exit codes.
const (
	exitOK      = 0
	exitInvalid = 1
	exitUsage   = 2
	exitError   = 3
)

const usage = `usage: postcode <command> [flags]

commands:
  check [-strict] CODE...        validate codes given as arguments
  bulk  [-strict] [-f FILE] [-format text|json|yaml] [-workers N]
                                 validate one code per line from FILE or stdin
  serve [-strict] [-addr ADDR]   serve the HTTP API
`

var errUsage = errors.New("invalid usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type app struct {
	cfg    Config
	log    *slog.Logger
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "postcode: %v\n", err)
		return exitError
	}

	a := &app{
		cfg: cfg,
		log: logger.New(
			logger.WithEnvironment(cfg.AppEnv, cfg.ServiceName),
			logger.WithLevelName(cfg.LogLevel),
			logger.WithFormat(logger.Format(cfg.LogFormat)),
			logger.WithOutput(stderr),
			logger.WithContextExtractors(requestid.LoggerExtractor()),
		),
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}

	var err error
	switch cmd, rest := args[0], args[1:]; cmd {
	case "check":
		var invalid bool
		invalid, err = a.check(rest)
		if err == nil && invalid {
			return exitInvalid
		}
	case "bulk":
		var invalid bool
		invalid, err = a.bulk(ctx, rest)
		if err == nil && invalid {
			return exitInvalid
		}
	case "serve":
		err = a.serve(ctx, rest)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage), errors.Is(err, flag.ErrHelp):
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(stderr, "postcode: %v\n", err)
		}
		fmt.Fprint(stderr, usage)
		return exitUsage
	default:
		a.log.ErrorContext(ctx, "command failed", logger.Error(err))
		return exitError
	}
}

func (a *app) flags(name string) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	strict := fs.Bool("strict", a.cfg.StrictDistricts, "reject single-digit-only areas written with two digits")
	return fs, strict
}

func (a *app) parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

func newValidator(strict bool) *postcode.Validator {
	if strict {
		return postcode.New(postcode.WithStrictDistricts())
	}
	return postcode.Default()
}

// check prints one line per code and reports whether any was invalid.
func (a *app) check(args []string) (bool, error) {
	fs, strict := a.flags("check")
	if err := a.parse(fs, args); err != nil {
		return false, err
	}
	if fs.NArg() == 0 {
		return false, fmt.Errorf("%w: check needs at least one postcode", errUsage)
	}

	v := newValidator(*strict)
	invalid := false
	for _, code := range fs.Args() {
		res := v.Check(code)
		if res.Valid {
			fmt.Fprintf(a.stdout, "%s\tvalid\t%s\n", code, res.Rule)
			continue
		}
		invalid = true
		fmt.Fprintf(a.stdout, "%s\tinvalid\t%s\n", code, res.Reason())
	}
	return invalid, nil
}

func (a *app) bulk(ctx context.Context, args []string) (bool, error) {
	fs, strict := a.flags("bulk")
	file := fs.String("f", "", "read postcodes from `FILE` instead of stdin")
	format := fs.String("format", string(bulk.FormatText), "output format: text, json or yaml")
	workers := fs.Int("workers", a.cfg.Workers, "number of concurrent workers (0 = GOMAXPROCS)")
	if err := a.parse(fs, args); err != nil {
		return false, err
	}

	outFormat, err := bulk.ParseFormat(*format)
	if err != nil {
		return false, fmt.Errorf("%w: %v", errUsage, err)
	}

	in := a.stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			return false, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	candidates, err := bulk.ReadLines(in)
	if err != nil {
		return false, err
	}

	items, err := bulk.Check(ctx, newValidator(*strict), candidates, *workers)
	if err != nil {
		return false, err
	}
	summary := bulk.Summarize(items)
	a.log.DebugContext(ctx, "bulk check finished",
		logger.Component("bulk"),
		logger.Count(summary.Total),
		slog.Int("invalid", summary.Invalid),
	)

	if err := bulk.Encode(a.stdout, outFormat, items); err != nil {
		return false, fmt.Errorf("write report: %w", err)
	}
	return summary.Invalid > 0, nil
}

func (a *app) serve(ctx context.Context, args []string) error {
	fs, strict := a.flags("serve")
	addr := fs.String("addr", a.cfg.HTTP.Addr, "listen address")
	if err := a.parse(fs, args); err != nil {
		return err
	}

	logger.SetAsDefault(a.log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	h := postcodes.NewHandler(postcodes.Options{
		Validator: newValidator(*strict),
		Logger:    a.log,
		Metrics:   postcodes.NewMetrics(reg),
		MaxBatch:  a.cfg.MaxBatch,
		Workers:   a.cfg.Workers,
	})
	if err := h.Ready(ctx); err != nil {
		return err
	}

	router := postcodes.Router(postcodes.RouterOptions{
		Postcodes: h,
		Metrics:   promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
		Logger:    a.log,
		Ready:     []func(context.Context) error{h.Ready},
	})

	opts := []httpserver.Option{httpserver.WithLogger(a.log.With(logger.Component("http")))}
	if *addr != "" {
		opts = append(opts, httpserver.WithAddr(*addr))
	}
	a.log.InfoContext(ctx, "starting postcode service", slog.Bool("strict_districts", *strict))
	return httpserver.NewFromConfig(a.cfg.HTTP, opts...).Run(ctx, router)
}
