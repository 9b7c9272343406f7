// Command shellforge generates 3D-printable enclosure parts from a
// declarative request. Requests come in as JSON or as Lisp scripts;
// output is a directory of STL and 3MF meshes per part.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/chazu/shellforge/pkg/compose"
	"github.com/chazu/shellforge/pkg/config"
	"github.com/chazu/shellforge/pkg/export"
	"github.com/chazu/shellforge/pkg/kernel/sdfx"
	"github.com/chazu/shellforge/pkg/script"
)

func main() {
	var (
		inPath     = flag.String("in", "", "JSON request file ('-' for stdin)")
		scriptPath = flag.String("script", "", "Lisp request script")
		outDir     = flag.String("out", "out", "output directory")
		jobID      = flag.String("job", "", "job identifier (default: random UUID)")
		mode       = flag.String("mode", "", "footprint mode override: bbox or wrapper")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	if err := run(*inPath, *scriptPath, *outDir, *jobID, *mode, log); err != nil {
		log.Fatal().Err(err).Msg("generation failed")
	}
}

func run(inPath, scriptPath, outDir, jobID, mode string, log zerolog.Logger) error {
	req, err := loadRequest(inPath, scriptPath)
	if err != nil {
		return err
	}

	switch mode {
	case "":
	case "bbox":
		req.WrapperMode = false
	case "wrapper":
		req.WrapperMode = true
	default:
		return fmt.Errorf("unknown mode %q, expected bbox or wrapper", mode)
	}

	k := sdfx.New()
	res, err := compose.New(k, log).Generate(req)
	if err != nil {
		return err
	}

	for _, s := range res.Skipped {
		log.Warn().Str("stage", s.Stage).Str("detail", s.Detail).
			Str("reason", s.Reason).Msg("feature skipped")
	}

	job := export.NewJob(outDir, jobID, log)
	artifacts, err := job.WriteParts(k, res)
	if err != nil {
		return err
	}

	log.Info().
		Str("job", job.ID).
		Float64("inner_w", res.Inner.Width).
		Float64("inner_d", res.Inner.Depth).
		Float64("inner_h", res.Inner.Height).
		Float64("outer_w", res.Outer.Width).
		Float64("outer_d", res.Outer.Depth).
		Float64("outer_h", res.Outer.Height).
		Msg("enclosure generated")

	fmt.Printf("inner: %.2f x %.2f x %.2f mm\n", res.Inner.Width, res.Inner.Depth, res.Inner.Height)
	fmt.Printf("outer: %.2f x %.2f x %.2f mm\n", res.Outer.Width, res.Outer.Depth, res.Outer.Height)
	for name, path := range artifacts {
		fmt.Printf("%s: %s\n", name, path)
	}
	return nil
}

// loadRequest decodes the request from exactly one of the two input forms.
func loadRequest(inPath, scriptPath string) (*config.Request, error) {
	switch {
	case inPath != "" && scriptPath != "":
		return nil, fmt.Errorf("-in and -script are mutually exclusive")

	case scriptPath != "":
		src, err := os.ReadFile(scriptPath)
		if err != nil {
			return nil, err
		}
		req, evalErrs, err := script.NewEngine().Evaluate(string(src))
		if err != nil {
			return nil, err
		}
		if len(evalErrs) > 0 {
			return nil, fmt.Errorf("%s: %w", scriptPath, evalErrs[0])
		}
		return req, nil

	case inPath != "":
		var r io.Reader
		if inPath == "-" {
			r = os.Stdin
		} else {
			f, err := os.Open(inPath)
			if err != nil {
				return nil, err
			}
			defer f.Close()
			r = f
		}
		req := &config.Request{}
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(req); err != nil {
			return nil, fmt.Errorf("decode request: %w", err)
		}
		return req, nil
	}

	return nil, fmt.Errorf("one of -in or -script is required")
}
