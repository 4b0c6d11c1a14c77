// Command stepwise runs a traced algorithm once and prints its response, or
// serves the HTTP API.
//
//	stepwise -algo kmp -input ABABDABACDABABCABAB -params '{"pattern":"ABABCABAB"}'
//	stepwise -algo astar -input 'S..;.#.;..G' -format yaml
//	stepwise -serve -config stepwise.yaml
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/stepwise/engine"
	"github.com/katalvlaran/stepwise/internal/config"
	"github.com/katalvlaran/stepwise/playback"
	"github.com/katalvlaran/stepwise/server"
	"github.com/katalvlaran/stepwise/trace"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "stepwise:", err)
		}
		os.Exit(1)
	}
}

type options struct {
	configPath string
	serve      bool
	addr       string
	algo       string
	input      string
	params     string
	format     string
	logLevel   string
	play       bool
	interval   time.Duration
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("stepwise", flag.ContinueOnError)
	fs.SetOutput(stderr)
	o := &options{}
	fs.StringVar(&o.configPath, "config", "", "YAML config file")
	fs.BoolVar(&o.serve, "serve", false, "serve the HTTP API")
	fs.StringVar(&o.addr, "addr", "", "listen address (overrides config)")
	fs.StringVar(&o.algo, "algo", "", "algorithm name (see -algo list)")
	fs.StringVar(&o.input, "input", "", "algorithm input; '-' reads stdin")
	fs.StringVar(&o.params, "params", "", "algorithm params as a JSON object")
	fs.StringVar(&o.format, "format", "json", "output format: json | yaml")
	fs.StringVar(&o.logLevel, "log-level", "", "debug | info | warn | error (overrides config)")
	fs.BoolVar(&o.play, "play", false, "replay the steps on stderr at the playback interval")
	fs.DurationVar(&o.interval, "interval", 0, "playback interval (overrides config)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if o.format != "json" && o.format != "yaml" {
		return nil, fmt.Errorf("unknown format %q", o.format)
	}
	if !o.serve && o.algo == "" {
		return nil, errors.New("one of -serve or -algo is required")
	}

	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if o.configPath != "" {
		if cfg, err = config.LoadFile(o.configPath); err != nil {
			return err
		}
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.addr != "" {
		cfg.Server.Addr = o.addr
	}
	if o.interval > 0 {
		cfg.Playback.Interval = o.interval
	}
	lvl, err := cfg.Log.SlogLevel()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewJSONHandler(stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)

	if o.serve {
		srv := server.New(server.Config{
			Addr:            cfg.Server.Addr,
			StoreCapacity:   cfg.Store.Capacity,
			MaxBodyBytes:    cfg.Server.MaxBodyBytes,
			Limits:          cfg.Limits,
			ReadTimeout:     cfg.Server.ReadTimeout,
			WriteTimeout:    cfg.Server.WriteTimeout,
			ShutdownTimeout: cfg.Server.ShutdownTimeout,
			Logger:          logger,
		})
		return srv.ListenAndServe(ctx)
	}

	if o.algo == "list" {
		return write(stdout, o.format, engine.Algorithms())
	}

	req := engine.Request{Algorithm: o.algo, Input: o.input}
	if o.input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		req.Input = string(data)
	}
	if o.params != "" {
		if err := json.Unmarshal([]byte(o.params), &req.Params); err != nil {
			return fmt.Errorf("%w: %v", engine.ErrBadParams, err)
		}
	}
	if req.Algorithm == "hashring" {
		if _, ok := req.Params["replicas"]; !ok {
			if req.Params == nil {
				req.Params = engine.Params{}
			}
			req.Params["replicas"] = cfg.Ring.Replicas
		}
	}

	start := time.Now()
	resp, err := engine.Run(ctx, req, engine.WithLimits(cfg.Limits))
	if err != nil {
		return err
	}
	logger.Debug("algorithm finished", "algorithm", resp.Algorithm, "steps", resp.Steps.Len(), "elapsed", time.Since(start))

	if o.play && !resp.Steps.Empty() {
		if err := replay(ctx, resp.Steps, cfg.Playback.Interval, stderr); err != nil {
			return err
		}
	}

	return write(stdout, o.format, resp)
}

// replay prints one line per step until the trace ends or ctx is done.
func replay(ctx context.Context, steps trace.Trace[any], interval time.Duration, w io.Writer) error {
	c := playback.New(steps)
	if first, err := c.Current(); err == nil {
		fmt.Fprintf(w, "[%d/%d] %s: %s\n", first.Index+1, c.Len(), first.Kind, first.Description)
	}
	err := c.Play(ctx, interval, func(s trace.Step[any]) {
		fmt.Fprintf(w, "[%d/%d] %s: %s\n", s.Index+1, c.Len(), s.Kind, s.Description)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

func write(w io.Writer, format string, v any) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
