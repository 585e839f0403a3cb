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

package app

import (
	"errors"

	"github.com/spf13/pflag"

	"github.com/dapr/benchreport/cmd/benchreport/options"
	"github.com/dapr/benchreport/pkg/buildinfo"
	"github.com/dapr/kit/logger"
	"github.com/dapr/kit/signals"
)

var log = logger.NewLogger("dapr.benchreport")

func Run(args []string) {
	opts, err := options.New(args)
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatal(err)
	}

	// Apply options to all loggers.
	if err = logger.ApplyOptionsToLoggers(&opts.Logger); err != nil {
		log.Fatal(err)
	}

	log.Infof("Starting benchreport -- version %s -- commit %s", buildinfo.Version(), buildinfo.Commit())
	log.Infof("Log level set to: %s", opts.Logger.OutputLevel)
	log.Debugf("Reading %s and %s, writing to %s", opts.LatencyFile, opts.ParallelFile, opts.OutDir)

	ctx := signals.Context()
	p := &Pipeline{
		LatencyFile:  opts.LatencyFile,
		ParallelFile: opts.ParallelFile,
		LatencyName:  opts.LatencyName,
		ParallelName: opts.ParallelName,
		Chart:        opts.ChartOptions(),
	}
	if err = p.Run(ctx); err != nil {
		log.Fatalf("error building benchmark report: %v", err)
	}

	log.Infof("Benchmark report written to %s", opts.OutDir)
}
