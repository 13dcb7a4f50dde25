// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command chanscale multiplies the red, green and blue channels of an image
// by independent factors.
//
// Usage:
//
//	chanscale [flags] input red green blue output
//	chanscale -v photo.jpg 1.2 1 0.8 warm.jpg
//	chanscale --strategy scalar in.png -1 1 1 out.png
//
// Flags must come before the input path; everything after it is read as
// arguments, so negative factors need no quoting. Factors are clamped to
// [0, 2]. The input may be JPEG, PNG, GIF, BMP, TIFF
// or WebP; the output format follows the extension of the output path
// (.jpg, .jpeg, .png, .bmp, .tif, .tiff).
//
// Exit status is 0 on success, 1 for usage errors, 2 when the input cannot
// be loaded and 3 when the output cannot be saved.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/cpuid/v2"
	"github.com/pbnjay/memory"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-chanscale/hwy"
	hwyimage "github.com/ajroetker/go-chanscale/hwy/contrib/image"
)

const (
	exitOK    = 0
	exitUsage = 1
	exitLoad  = 2
	exitSave  = 3
)

// samplePixels is how many leading pixels the verbose log shows.
const samplePixels = 3

// simdFeatures are the cpuid features relevant to the dispatch levels.
var simdFeatures = []string{"SSE2", "AVX2", "AVX512F", "AVX512BW", "ASIMD", "SVE", "SVE2"}

// exitError carries the process exit status for err.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// usageError marks a malformed command line; run prints the usage text
// after it.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

type cliOptions struct {
	strategy string
	lanes    int
	quality  int
	verbose  bool

	stderr io.Writer
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with args and returns the exit status.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}
	cmd := newRootCmd(stderr)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(stderr, "chanscale: %v\n", err)

	var ue *usageError
	if errors.As(err, &ue) {
		fmt.Fprint(stderr, cmd.UsageString())
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUsage
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	o := &cliOptions{stderr: stderr}
	cmd := &cobra.Command{
		Use:   "chanscale [flags] input red green blue output",
		Short: "Scale the red, green and blue channels of an image",
		Long: `chanscale multiplies each pixel's red, green and blue samples by the
given factors, clamped to [0, 2], and writes the result. Products above
255 saturate.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(5)(cmd, args); err != nil {
				return &usageError{err: err}
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(args)
		},
	}

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.StringVar(&o.strategy, "strategy", "", "adjustment strategy: scalar, planar or interleaved (default from HWY_ADJUST_STRATEGY or the CPU)")
	flags.IntVar(&o.lanes, "lanes", 0, "vector width in bytes for the vector strategies (default: detected)")
	flags.IntVar(&o.quality, "quality", 90, "JPEG output quality, 1-100")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "log CPU, dispatch and pixel details")
	return cmd
}

func (o *cliOptions) run(args []string) error {
	input, output := args[0], args[4]
	factors, err := parseFactors(args[1:4])
	if err != nil {
		return &usageError{err: err}
	}

	var engineOpts []hwyimage.Option
	if o.strategy != "" {
		s, err := hwyimage.ParseStrategy(o.strategy)
		if err != nil {
			return &usageError{err: err}
		}
		engineOpts = append(engineOpts, hwyimage.WithStrategy(s))
	}
	if o.lanes > 0 {
		engineOpts = append(engineOpts, hwyimage.WithLanes(o.lanes))
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(o.stderr, &slog.HandlerOptions{Level: level}))
	hwyimage.SetLogger(logger)
	defer hwyimage.SetLogger(nil)

	logger.Debug("cpu",
		slog.String("brand", cpuid.CPU.BrandName),
		slog.String("vendor", cpuid.CPU.VendorString),
		slog.Int("cores", cpuid.CPU.PhysicalCores),
		slog.Uint64("memory_mib", memory.TotalMemory()/1024/1024),
		slog.Any("features", lo.Filter(cpuid.CPU.FeatureSet(), func(f string, _ int) bool {
			return lo.Contains(simdFeatures, f)
		})))
	logger.Debug("dispatch",
		slog.String("target", hwy.CurrentName()),
		slog.Int("width", hwy.CurrentWidth()),
		slog.Int("lanes", hwy.MaxLanes[uint8]()))

	eng, err := hwyimage.NewEngine(engineOpts...)
	if err != nil {
		return fmt.Errorf("configuring engine: %w", err)
	}

	img, format, err := loadRGB(input)
	if err != nil {
		return &exitError{code: exitLoad, err: err}
	}
	logger.Debug("loaded",
		slog.String("path", input),
		slog.String("format", format),
		slog.Int("width", img.Width),
		slog.Int("height", img.Height),
		slog.Any("first", firstPixels(img)))

	if err := eng.AdjustImage(img, factors); err != nil {
		return &exitError{code: exitLoad, err: err}
	}
	logger.Debug("adjusted", slog.Any("first", firstPixels(img)))

	if err := saveRGB(output, img, o.quality); err != nil {
		return &exitError{code: exitSave, err: err}
	}
	logger.Info("wrote image",
		slog.String("path", output),
		slog.String("strategy", eng.Strategy().String()),
		slog.Float64("red", float64(factors.Red)),
		slog.Float64("green", float64(factors.Green)),
		slog.Float64("blue", float64(factors.Blue)))
	return nil
}

// parseFactors parses the red, green and blue arguments and clamps them.
func parseFactors(args []string) (hwyimage.ChannelFactors, error) {
	var v [3]float32
	for i, name := range []string{"red", "green", "blue"} {
		f, err := strconv.ParseFloat(strings.TrimSpace(args[i]), 32)
		if err != nil {
			return hwyimage.ChannelFactors{}, fmt.Errorf("invalid %s factor %q", name, args[i])
		}
		v[i] = float32(f)
	}
	return hwyimage.ChannelFactors{Red: v[0], Green: v[1], Blue: v[2]}.Clamp(), nil
}

// firstPixels returns the leading samples as ints so the text handler
// prints numbers rather than a byte string.
func firstPixels(img *hwyimage.RGB) []int {
	n := min(samplePixels, img.Width*img.Height)
	return lo.FlatMap(lo.Range(n), func(i, _ int) []int {
		r, g, b := img.At(i%img.Width, i/img.Width)
		return []int{int(r), int(g), int(b)}
	})
}
