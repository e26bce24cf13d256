package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cwbudde/algo-rfchannel/dsp/core"
	"github.com/cwbudde/algo-rfchannel/dsp/window"
	"github.com/cwbudde/algo-rfchannel/internal/config"
	"github.com/cwbudde/algo-rfchannel/internal/logging"
	"github.com/cwbudde/algo-rfchannel/internal/render"
	"github.com/cwbudde/algo-rfchannel/internal/scenario"
	"github.com/spf13/cobra"
)

type runOptions struct {
	configPath string
	params     []string
	domain     string
	window     string
	seed       uint64
	format     string
	out        string
	logLevel   string
}

func newRunCmd() *cobra.Command {
	var o runOptions

	cmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "Run a scenario and write its result",
		Long: "Run a scenario and write its result.\n\n" +
			"Parameters come from the params mapping of --config and are overridden\n" +
			"by --param key=value pairs. Flags override the matching config fields.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.resolve(cmd, args)
			if err != nil {
				return err
			}
			return runScenario(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	f := cmd.Flags()
	f.StringVarP(&o.configPath, "config", "c", "", "YAML scenario file")
	f.StringArrayVarP(&o.params, "param", "p", nil, "scenario parameter override key=value (repeatable)")
	f.StringVar(&o.domain, "domain", "time", "output domain (time, frequency)")
	f.StringVar(&o.window, "window", "rectangular", "analysis window of the frequency domain (rectangular, hann, hamming, blackman, flat-top, kaiser)")
	f.Uint64Var(&o.seed, "seed", 0, "random seed (default: config seed or current time)")
	f.StringVarP(&o.format, "format", "f", "csv", "output format (csv, json, png, html)")
	f.StringVarP(&o.out, "out", "o", "", "output file (default: stdout)")
	f.StringVar(&o.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	return cmd
}

// resolve merges the config file, the positional scenario and the flags.
func (o runOptions) resolve(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.Config{Params: config.Params{}}
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if len(args) == 1 {
		cfg.Scenario = args[0]
	}
	if cfg.Scenario == "" {
		return config.Config{}, fmt.Errorf("%w: no scenario given; see channelsim list", core.ErrInvalidParameter)
	}
	if err := cfg.SetOverrides(o.params); err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("domain") || cfg.Domain == "" {
		cfg.Domain = o.domain
	}
	if flags.Changed("window") || cfg.Window == "" {
		cfg.Window = o.window
	}
	if flags.Changed("format") || cfg.Output.Format == "" {
		cfg.Output.Format = o.format
	}
	if flags.Changed("out") {
		cfg.Output.Path = o.out
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = o.logLevel
	}
	switch {
	case flags.Changed("seed"):
		seed := o.seed
		cfg.Seed = &seed
	case cfg.Seed == nil:
		seed := uint64(time.Now().UnixNano())
		cfg.Seed = &seed
	}
	return cfg, nil
}

func runScenario(ctx context.Context, cfg config.Config, stdout, stderr io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	domain, err := scenario.ParseDomain(cfg.Domain)
	if err != nil {
		return err
	}
	win, err := window.ParseType(cfg.Window)
	if err != nil {
		return err
	}
	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	logCfg := logging.ConfigFromEnv(cfg.Log)
	logCfg.Output = stderr
	ctx, log := logging.WithRunLogger(ctx, logging.New(logCfg))
	log.Info(ctx, "run starting",
		logging.String("scenario", cfg.Scenario),
		logging.Any("seed", *cfg.Seed))

	res, err := scenario.Run(ctx, cfg.Scenario, scenario.Env{
		Params: cfg.Params,
		Domain: domain,
		Window: win,
		Seed:   *cfg.Seed,
	})
	if err != nil {
		return err
	}

	series := render.Series{
		Title:   res.Name,
		XLabel:  res.XLabel,
		YLabel:  res.YLabel,
		X:       res.X,
		Y:       res.Y,
		Summary: res.Summary,
		Extra:   res.Extra,
	}

	path := cfg.Output.Path
	if path == "" || path == "-" {
		if err := render.Write(stdout, series, format); err != nil {
			return fmt.Errorf("failed to write %s output: %w", format, err)
		}
		return nil
	}

	if err := writeFile(path, series, format); err != nil {
		return err
	}
	log.Info(ctx, "result written",
		logging.String("path", path),
		logging.String("format", format.String()),
		logging.Int("points", len(series.Y)))
	return nil
}

func writeFile(path string, s render.Series, f render.Format) (err error) {
	clean := filepath.Clean(path)
	file, err := os.Create(clean)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()

	if err := render.Write(file, s, f); err != nil {
		return fmt.Errorf("failed to write %s output: %w", f, err)
	}
	return nil
}
