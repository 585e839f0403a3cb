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
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/dapr/benchreport/pkg/chart"
)

func TestDefaults(t *testing.T) {
	root := t.TempDir()
	opts, err := New([]string{"--root", root})
	require.NoError(t, err)

	assert.Equal(t, root, opts.Root)
	assert.Equal(t, filepath.Join(root, "backend", "bench-latency.json"), opts.LatencyFile)
	assert.Equal(t, filepath.Join(root, "backend", "bench-parallel.json"), opts.ParallelFile)
	assert.Equal(t, filepath.Join(root, "docs", "bench"), opts.OutDir)
	assert.Equal(t, "latency", opts.LatencyName)
	assert.Equal(t, "parallel", opts.ParallelName)
	assert.Equal(t, 180, opts.DPI)
	assert.Equal(t, 11*vg.Inch, opts.Width)
	assert.Equal(t, 6*vg.Inch, opts.Height)
	assert.Equal(t, chart.FormatPNG, opts.Format)
	assert.Equal(t, "info", opts.Logger.OutputLevel)
	assert.False(t, opts.Logger.JSONFormatEnabled)
}

func TestFlags(t *testing.T) {
	root := t.TempDir()
	abs := filepath.Join(t.TempDir(), "parallel.json")

	t.Run("long flags", func(t *testing.T) {
		opts, err := New([]string{
			"--root", root,
			"--latency-file", "runs/one.json",
			"--parallel-file", abs,
			"--out-dir", "charts",
			"--latency-name", "single",
			"--parallel-name", "burst",
			"--dpi", "96",
			"--width", "20cm",
			"--height", "300pt",
			"--format", "svg",
			"--log-level", "debug",
		})
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(root, "runs", "one.json"), opts.LatencyFile)
		assert.Equal(t, abs, opts.ParallelFile)
		assert.Equal(t, filepath.Join(root, "charts"), opts.OutDir)
		assert.Equal(t, "single", opts.LatencyName)
		assert.Equal(t, "burst", opts.ParallelName)
		assert.Equal(t, 96, opts.DPI)
		assert.InDelta(t, float64(20*vg.Centimeter), float64(opts.Width), 1e-9)
		assert.InDelta(t, 300.0, float64(opts.Height), 1e-9)
		assert.Equal(t, chart.FormatSVG, opts.Format)
		assert.Equal(t, "debug", opts.Logger.OutputLevel)
	})

	t.Run("single dash flags", func(t *testing.T) {
		opts, err := New([]string{"-root", root, "-dpi", "72", "-format", "pdf"})
		require.NoError(t, err)
		assert.Equal(t, 72, opts.DPI)
		assert.Equal(t, chart.FormatPDF, opts.Format)
	})
}

func TestDashLeadingValues(t *testing.T) {
	root := t.TempDir()

	t.Run("separate argument", func(t *testing.T) {
		opts, err := New([]string{"-root", root, "--latency-name", "-x", "-parallel-name", "-dpi"})
		require.NoError(t, err)
		assert.Equal(t, "-x", opts.LatencyName)
		assert.Equal(t, "-dpi", opts.ParallelName)
		assert.Equal(t, 180, opts.DPI)
	})

	t.Run("inline value", func(t *testing.T) {
		opts, err := New([]string{"-root=" + root, "-latency-name=-x"})
		require.NoError(t, err)
		assert.Equal(t, "-x", opts.LatencyName)
	})

	t.Run("file path", func(t *testing.T) {
		opts, err := New([]string{"--root", root, "--latency-file", "-run.json"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "-run.json"), opts.LatencyFile)
	})

	t.Run("bool flag does not consume the next argument", func(t *testing.T) {
		opts, err := New([]string{"-log-as-json", "-root", root})
		require.NoError(t, err)
		assert.True(t, opts.Logger.JSONFormatEnabled)
		assert.Equal(t, root, opts.Root)
	})
}

func TestLongFlags(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("width", "", "")
	fs.Bool("verbose", false, "")

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"doubles registered flags", []string{"-width", "3in"}, []string{"--width", "3in"}},
		{"keeps dash-leading values", []string{"-width", "-3in"}, []string{"--width", "-3in"}},
		{"inline values", []string{"-width=-3in"}, []string{"--width=-3in"}},
		{"bool flags take no value", []string{"-verbose", "-width", "1in"}, []string{"--verbose", "--width", "1in"}},
		{"unknown flags are left alone", []string{"-colour", "red"}, []string{"-colour", "red"}},
		{"help", []string{"-help"}, []string{"--help"}},
		{"terminator", []string{"--", "-width"}, []string{"--", "-width"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, longFlags(fs, tt.args))
		})
	}
}

func TestEnvironment(t *testing.T) {
	root := t.TempDir()
	t.Setenv("BENCHREPORT_ROOT", root)
	t.Setenv("BENCHREPORT_OUT_DIR", "reports")
	t.Setenv("BENCHREPORT_DPI", "90")
	t.Setenv("BENCHREPORT_FORMAT", "svg")

	t.Run("overrides defaults", func(t *testing.T) {
		opts, err := New(nil)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "reports"), opts.OutDir)
		assert.Equal(t, 90, opts.DPI)
		assert.Equal(t, chart.FormatSVG, opts.Format)
	})

	t.Run("flags take precedence", func(t *testing.T) {
		opts, err := New([]string{"--dpi", "300", "--format", "png"})
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(root, "reports"), opts.OutDir)
		assert.Equal(t, 300, opts.DPI)
		assert.Equal(t, chart.FormatPNG, opts.Format)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("BENCHREPORT_DPI", "lots")
		_, err := New(nil)
		require.ErrorContains(t, err, "invalid environment configuration")
	})
}

func TestInvalid(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{"bad width", []string{"--width", "wide"}, "invalid value for width"},
		{"bad height", []string{"--height", "12furlongs"}, "invalid value for height"},
		{"zero dpi", []string{"--dpi", "0"}, "chart dpi must be positive"},
		{"negative width", []string{"--width", "-3in"}, "chart size must be positive"},
		{"unknown format", []string{"--format", "bmp"}, `unsupported chart format "bmp"`},
		{"empty name", []string{"--latency-name", ""}, "run display names must not be empty"},
		{"unknown flag", []string{"--colour", "red"}, "unknown flag: --colour"},
		{"not a number", []string{"--dpi", "high"}, `invalid argument "high"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.args)
			require.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestHelp(t *testing.T) {
	for _, arg := range []string{"--help", "-help"} {
		_, err := New([]string{arg})
		require.ErrorIs(t, err, pflag.ErrHelp, arg)
	}
}

func TestChartOptions(t *testing.T) {
	opts, err := New([]string{"--root", t.TempDir(), "--dpi", "120", "--format", "svg"})
	require.NoError(t, err)

	c := opts.ChartOptions()
	assert.Equal(t, opts.OutDir, c.OutDir)
	assert.Equal(t, 120, c.DPI)
	assert.Equal(t, chart.FormatSVG, c.Format)
	assert.Equal(t, opts.Width, c.Width)
	assert.Equal(t, opts.Height, c.Height)
	require.NoError(t, c.Validate())
}
