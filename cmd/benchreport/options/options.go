/*
Copyright 2026 The Dapr Authors
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at
    http://www.apache.org/licenses/LICENSE-2.0
Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package options

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
	"gonum.org/v1/plot/vg"

	"github.com/dapr/benchreport/pkg/chart"
	"github.com/dapr/kit/logger"
)

// envPrefix is prepended to every environment override, e.g. BENCHREPORT_DPI.
const envPrefix = "benchreport"

type Options struct {
	Root         string
	LatencyFile  string
	ParallelFile string
	OutDir       string
	LatencyName  string
	ParallelName string
	DPI          int
	Width        vg.Length
	Height       vg.Length
	Format       string
	Logger       logger.Options
}

// env holds the environment overrides. Its values become the flag defaults,
// so an explicit flag always wins.
type env struct {
	Root         string `envconfig:"ROOT" default:"."`
	LatencyFile  string `envconfig:"LATENCY_FILE" default:"backend/bench-latency.json"`
	ParallelFile string `envconfig:"PARALLEL_FILE" default:"backend/bench-parallel.json"`
	OutDir       string `envconfig:"OUT_DIR" default:"docs/bench"`
	LatencyName  string `envconfig:"LATENCY_NAME" default:"latency"`
	ParallelName string `envconfig:"PARALLEL_NAME" default:"parallel"`
	DPI          int    `envconfig:"DPI" default:"180"`
	Width        string `envconfig:"WIDTH" default:"11in"`
	Height       string `envconfig:"HEIGHT" default:"6in"`
	Format       string `envconfig:"FORMAT" default:"png"`
}

func New(origArgs []string) (*Options, error) {
	var defaults env
	if err := envconfig.Process(envPrefix, &defaults); err != nil {
		return nil, fmt.Errorf("invalid environment configuration: %w", err)
	}

	var (
		opts          Options
		width, height string
	)

	fs := pflag.NewFlagSet("benchreport", pflag.ContinueOnError)
	fs.SortFlags = true

	fs.StringVar(&opts.Root, "root", defaults.Root, "Directory that relative input and output paths are resolved against")
	fs.StringVar(&opts.LatencyFile, "latency-file", defaults.LatencyFile, "Result of the single-connection latency run")
	fs.StringVar(&opts.ParallelFile, "parallel-file", defaults.ParallelFile, "Result of the concurrent run")
	fs.StringVar(&opts.OutDir, "out-dir", defaults.OutDir, "Directory the charts and summary table are written to")
	fs.StringVar(&opts.LatencyName, "latency-name", defaults.LatencyName, "Display name of the latency run")
	fs.StringVar(&opts.ParallelName, "parallel-name", defaults.ParallelName, "Display name of the concurrent run")
	fs.IntVar(&opts.DPI, "dpi", defaults.DPI, "Resolution of raster charts")
	fs.StringVar(&width, "width", defaults.Width, "Chart width, e.g. '11in' or '28cm'")
	fs.StringVar(&height, "height", defaults.Height, "Chart height, e.g. '6in' or '15cm'")
	fs.StringVar(&opts.Format, "format", defaults.Format, fmt.Sprintf("Chart image format, one of %v", chart.Formats()))

	opts.Logger = logger.DefaultOptions()
	opts.Logger.AttachCmdFlags(fs.StringVar, fs.BoolVar)

	if err := fs.Parse(longFlags(fs, origArgs)); err != nil {
		return nil, err
	}

	var errs []error
	var err error
	if opts.Width, err = vg.ParseLength(width); err != nil {
		errs = append(errs, fmt.Errorf("invalid value for width: %w", err))
	}
	if opts.Height, err = vg.ParseLength(height); err != nil {
		errs = append(errs, fmt.Errorf("invalid value for height: %w", err))
	}
	if opts.LatencyName == "" || opts.ParallelName == "" {
		errs = append(errs, errors.New("run display names must not be empty"))
	}
	if len(errs) == 0 {
		errs = append(errs, opts.ChartOptions().Validate())
	}
	if err = errors.Join(errs...); err != nil {
		return nil, err
	}

	opts.LatencyFile = opts.resolve(opts.LatencyFile)
	opts.ParallelFile = opts.resolve(opts.ParallelFile)
	opts.OutDir = opts.resolve(opts.OutDir)

	return &opts, nil
}

// longFlags doubles up single-dash flags, "-dpi" to "--dpi", since pflag
// reserves single dashes for shorthands. No shorthand flags are defined.
// Only arguments naming a registered flag are rewritten, so values that start
// with a dash, such as "--width -3in", are passed through untouched.
func longFlags(fs *pflag.FlagSet, origArgs []string) []string {
	args := make([]string, 0, len(origArgs))
	expectValue := false
	for i, a := range origArgs {
		if expectValue {
			expectValue = false
			args = append(args, a)
			continue
		}
		if a == "--" {
			return append(args, origArgs[i:]...)
		}
		if len(a) < 2 || a[0] != '-' {
			args = append(args, a)
			continue
		}

		name, _, hasValue := strings.Cut(strings.TrimLeft(a, "-"), "=")
		f := fs.Lookup(name)
		if f == nil && name != "help" {
			args = append(args, a)
			continue
		}
		if a[1] != '-' {
			a = "-" + a
		}
		args = append(args, a)
		// Flags without an inline value consume the next argument, unless
		// they are bool-like and default to true when given bare.
		expectValue = f != nil && !hasValue && f.NoOptDefVal == ""
	}
	return args
}

// ChartOptions returns the renderer configuration for the parsed flags.
func (o *Options) ChartOptions() chart.Options {
	return chart.Options{
		OutDir: o.OutDir,
		Width:  o.Width,
		Height: o.Height,
		DPI:    o.DPI,
		Format: o.Format,
	}
}

func (o *Options) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(o.Root, path)
}
