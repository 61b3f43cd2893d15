package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	resourcestore "github.com/dalemusser/gentlelibrary/internal/app/store/resources"
	"github.com/dalemusser/gentlelibrary/internal/app/system/csvutil"
	"github.com/dalemusser/gentlelibrary/internal/app/transform"
	"go.uber.org/zap"
)

type buildOptions struct {
	In     string
	Out    string
	Limits csvutil.Options
}

// buildData runs one transform from opts.In to opts.Out and prints a
// one-line summary to w.
func buildData(opts buildOptions, logger *zap.Logger, w io.Writer) error {
	input, err := os.ReadFile(opts.In)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Error("input file not found", zap.String("in", opts.In))
		return fmt.Errorf("input file not found: %s", opts.In)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.In, err)
	}

	res, err := transform.Transform(bytes.NewReader(input), opts.Limits)
	switch {
	case errors.Is(err, transform.ErrNoRows):
		logger.Error("no rows after the header", zap.String("in", opts.In))
		return fmt.Errorf("%s: %w", opts.In, err)
	case err != nil:
		logger.Error("transform failed", zap.String("in", opts.In), zap.Error(err))
		return fmt.Errorf("%s: %w", opts.In, err)
	}

	for _, s := range res.Skipped {
		logger.Debug("row skipped",
			zap.Int("line", s.Line),
			zap.String("title", s.Title),
			zap.String("reason", s.Reason))
	}

	a := resourcestore.NewArtifact(opts.In, input, res.Resources)
	if err := resourcestore.WriteFile(opts.Out, a); err != nil {
		logger.Error("write failed", zap.String("out", opts.Out), zap.Error(err))
		return err
	}

	logger.Info("catalog generated",
		zap.Int("resources", len(res.Resources)),
		zap.Int("skipped", len(res.Skipped)),
		zap.String("out", opts.Out),
		zap.String("build_id", a.BuildID))

	fmt.Fprintf(w, "Generated %d resources -> %s\n", len(res.Resources), opts.Out)
	if len(res.Skipped) > 0 {
		fmt.Fprintf(w, "%s\n", res.Summary())
	}
	return nil
}
