package voxel

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/terravox/voxview/internal/domain"
	"github.com/terravox/voxview/internal/ports"
)

// Result is the outcome of loading a line source: the classified
// coordinates plus, under the skip policy, the lines that failed to parse.
type Result struct {
	Classification *domain.Classification
	Rejected       []domain.RejectedLine
	Lines          int // total lines read, blank lines included
}

// Load drains the line source in order, parses every non-blank line and
// classifies the records. Lines that are empty after trimming are skipped.
//
// The default policy is fail fast: the first parse error aborts the load
// and comes back as a domain.RejectedLine carrying the 1-based line number
// and raw content. WithSkipBadLines switches to skip-and-collect. Either
// way a failure never corrupts what was already classified; the Result
// returned alongside an error holds everything parsed up to that point.
//
// Load never closes the source; the caller owns its lifecycle.
func Load(ctx context.Context, src ports.LineSource, opts ...Option) (Result, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := Parser{StrictFlags: o.strictFlags}
	res := Result{Classification: domain.NewClassification()}

	for {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		line, err := src.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return res, nil
			}
			return res, fmt.Errorf("read line %d: %w", res.Lines+1, err)
		}
		res.Lines++

		if strings.TrimSpace(line) == "" {
			continue
		}

		rec, perr := p.Parse(line)
		if perr != nil {
			rej := domain.RejectedLine{Number: res.Lines, Raw: line, Err: perr}
			if !o.skipBadLines {
				return res, rej
			}
			res.Rejected = append(res.Rejected, rej)
			continue
		}
		res.Classification.Add(rec)
	}
}
