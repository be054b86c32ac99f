// Package convert turns input files into BSON files, one adapter per file.
package convert

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/NethermindEth/bsonbridge/adapter"
	"github.com/NethermindEth/bsonbridge/bsonw"
	"github.com/NethermindEth/bsonbridge/source"
	"github.com/NethermindEth/bsonbridge/utils"
	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"
	"go.mongodb.org/mongo-driver/bson"
)

// Result describes one converted file.
type Result struct {
	Input     string
	Output    string
	Documents int
	Bytes     int64
}

// OutputPath returns where the BSON for input is written.
func OutputPath(outputDir, input string) string {
	base := filepath.Base(input)
	return filepath.Join(outputDir, strings.TrimSuffix(base, filepath.Ext(base))+".bson")
}

// Files converts every input concurrently, with at most cfg.Workers files in
// flight. Results are in input order. The first error cancels the
// remaining conversions.
func Files(ctx context.Context, cfg *Config, inputs []string, log utils.SimpleLogger) ([]Result, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "create output directory %s", cfg.OutputDir)
	}

	results := make([]Result, len(inputs))
	p := pool.New().WithErrors().WithContext(ctx).WithCancelOnError().WithMaxGoroutines(cfg.Workers)
	for i, input := range inputs {
		p.Go(func(ctx context.Context) error {
			r, err := File(ctx, cfg, input, log)
			if err != nil {
				return errors.Wrapf(err, "convert %s", input)
			}
			results[i] = r
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// File converts a single input file.
func File(ctx context.Context, cfg *Config, input string, log utils.SimpleLogger) (Result, error) {
	result := Result{Input: input, Output: OutputPath(cfg.OutputDir, input)}

	format, err := cfg.format(input)
	if err != nil {
		return result, err
	}

	in, err := os.Open(input)
	if err != nil {
		return result, err
	}
	defer in.Close()

	src, err := source.New(format, in)
	if err != nil {
		return result, err
	}

	out, err := os.Create(result.Output)
	if err != nil {
		return result, err
	}
	defer out.Close()

	sw := bsonw.NewStreamWriter(out, cfg.Settings())
	a := adapter.New(sw, adapter.WithCloseOutput(true), adapter.WithLogger(log))
	for {
		if err = ctx.Err(); err != nil {
			break
		}
		if err = src.Next(a); err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
			} else {
				err = errors.Wrapf(err, "document %d (path %q)", sw.Documents()+1, a.State().Path())
			}
			break
		}
	}
	if closeErr := a.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return result, err
	}

	result.Documents, result.Bytes = sw.Documents(), sw.Written()
	log.Infow("Converted file", "input", input, "output", result.Output,
		"format", format.String(), "documents", result.Documents, "bytes", result.Bytes)
	return result, out.Close()
}

// Rewrite replays every document of the BSON file input into output,
// reading legacy GUIDs with cfg.From and writing all GUIDs with cfg.To.
func Rewrite(ctx context.Context, cfg *RewriteConfig, input, output string, log utils.SimpleLogger) (Result, error) {
	result := Result{Input: input, Output: output}

	in, err := os.Open(input)
	if err != nil {
		return result, err
	}
	defer in.Close()

	out, err := os.Create(output)
	if err != nil {
		return result, err
	}
	defer out.Close()

	sw := bsonw.NewStreamWriter(out, bsonw.Settings{
		GUIDRepresentation: cfg.To,
		MaxDocumentSize:    cfg.MaxDocumentSize,
	})
	a := adapter.New(sw, adapter.WithCloseOutput(true), adapter.WithLogger(log))
	for {
		if err = ctx.Err(); err != nil {
			break
		}
		var doc bson.Raw
		if doc, err = bson.NewFromIOReader(in); err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
			}
			break
		}
		if err = adapter.Replay(a, doc, cfg.From); err != nil {
			err = errors.Wrapf(err, "document %d", sw.Documents()+1)
			break
		}
	}
	if closeErr := a.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return result, err
	}

	result.Documents, result.Bytes = sw.Documents(), sw.Written()
	log.Infow("Rewrote file", "input", input, "output", output,
		"from", cfg.From.String(), "to", cfg.To.String(), "documents", result.Documents)
	return result, out.Close()
}
