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

// Package chart draws the benchmark comparison charts.
package chart

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"gonum.org/v1/plot/vg"

	"github.com/dapr/kit/logger"
)

var log = logger.NewLogger("dapr.benchreport.chart")

// Supported output formats.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
	FormatPDF = "pdf"
)

var formats = []string{FormatPNG, FormatSVG, FormatPDF}

// Formats returns the supported output formats.
func Formats() []string {
	return slices.Clone(formats)
}

// Options configures a Renderer.
type Options struct {
	// OutDir is the directory charts are written into. It must exist.
	OutDir string
	Width  vg.Length
	Height vg.Length
	// DPI only applies to raster output.
	DPI    int
	Format string
}

// DefaultOptions returns an 11x6 inch, 180 DPI PNG configuration.
func DefaultOptions() Options {
	return Options{
		OutDir: ".",
		Width:  11 * vg.Inch,
		Height: 6 * vg.Inch,
		DPI:    180,
		Format: FormatPNG,
	}
}

// Validate checks that o describes a drawable chart.
func (o Options) Validate() error {
	var errs []error
	if o.Width <= 0 || o.Height <= 0 {
		errs = append(errs, fmt.Errorf("chart size must be positive, got %vx%v", o.Width, o.Height))
	}
	if o.DPI <= 0 {
		errs = append(errs, fmt.Errorf("chart dpi must be positive, got %d", o.DPI))
	}
	if !slices.Contains(formats, o.Format) {
		errs = append(errs, fmt.Errorf("unsupported chart format %q, must be one of %v", o.Format, formats))
	}
	return errors.Join(errs...)
}

// Renderer writes comparison charts into a directory.
type Renderer struct {
	opts Options
}

// New returns a Renderer for opts.
func New(opts Options) (*Renderer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{opts: opts}, nil
}

// Filename returns base with the extension of the configured format.
func (r *Renderer) Filename(base string) string {
	return base + "." + r.opts.Format
}

// Path returns where a chart written as file ends up.
func (r *Renderer) Path(file string) string {
	return filepath.Join(r.opts.OutDir, file)
}

func (r *Renderer) write(wt io.WriterTo, title, file string) (err error) {
	path := r.Path(file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s chart: %w", title, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s chart: %w", title, cerr)
		}
	}()

	if _, err = wt.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write %s chart: %w", title, err)
	}

	log.Infof("Wrote %q chart to %s", title, path)
	return nil
}
