// Package app wires the voxel pipeline together: line source in, loader
// through, renderer out.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/terravox/voxview/internal/adapters/fs"
	"github.com/terravox/voxview/internal/domain"
	"github.com/terravox/voxview/internal/ports"
	"github.com/terravox/voxview/pkg/voxel"
)

// debounceDelay absorbs the bursts of write events editors and generators
// produce for a single logical update.
const debounceDelay = 100 * time.Millisecond

// Viewer loads a terrain map and hands the classification to a renderer.
// It owns the line source lifecycle for each pass: the input file is
// opened, drained and closed per load, so watch and serve modes always
// read a fresh handle.
type Viewer struct {
	Input    string
	Renderer ports.Renderer
	Options  ports.RenderOptions

	SkipBadLines bool
	StrictFlags  bool

	Log zerolog.Logger
}

// Run performs one load-and-render pass.
func (v *Viewer) Run(ctx context.Context) error {
	res, err := v.load(ctx)
	if err != nil {
		return err
	}
	if len(res.Classification.Solid) == 0 {
		v.Log.Warn().Msg("no solid voxels: rendering empty scene")
	}
	return v.Renderer.Render(ctx, res.Classification, v.Options)
}

func (v *Viewer) load(ctx context.Context) (voxel.Result, error) {
	src, err := fs.OpenLineFile(v.Input)
	if err != nil {
		return voxel.Result{}, fmt.Errorf("open %s: %w", v.Input, err)
	}
	defer src.Close()

	var opts []voxel.Option
	if v.SkipBadLines {
		opts = append(opts, voxel.WithSkipBadLines())
	}
	if v.StrictFlags {
		opts = append(opts, voxel.WithStrictFlags())
	}

	res, err := voxel.Load(ctx, src, opts...)
	if err != nil {
		var rej domain.RejectedLine
		if errors.As(err, &rej) {
			return res, fmt.Errorf("%s:%d: rejected line %q: %w", v.Input, rej.Number, rej.Raw, rej.Err)
		}
		return res, err
	}

	for _, rej := range res.Rejected {
		v.Log.Warn().Int("line", rej.Number).Str("raw", rej.Raw).Err(rej.Err).Msg("skipped bad line")
	}
	v.Log.Info().
		Int("lines", res.Lines).
		Int("solid", len(res.Classification.Solid)).
		Int("non_solid", len(res.Classification.NonSolid)).
		Int("rejected", len(res.Rejected)).
		Msg("terrain map loaded")

	return res, nil
}

// Watch renders once, then re-runs the pass whenever the input file
// changes. It returns nil when the context is canceled.
func (v *Viewer) Watch(ctx context.Context) error {
	if err := v.Run(ctx); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: renames and atomic replaces would
	// otherwise detach the watch.
	dir := filepath.Dir(v.Input)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	v.Log.Info().Str("input", v.Input).Msg("watching for changes")

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()
	reload := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(v.Input) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			v.Log.Error().Err(err).Msg("watcher error")

		case <-reload:
			if err := v.Run(ctx); err != nil {
				// A half-written file parses badly; keep the last good
				// render and wait for the next event.
				v.Log.Error().Err(err).Msg("reload failed")
			}
		}
	}
}

// Serve renders on demand over HTTP, so a browser tab can simply be
// refreshed after the map changes. The renderer must implement
// ports.PageRenderer.
func (v *Viewer) Serve(ctx context.Context, addr string) error {
	pr, ok := v.Renderer.(ports.PageRenderer)
	if !ok {
		return fmt.Errorf("renderer %T cannot serve pages", v.Renderer)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		res, err := v.load(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := pr.RenderTo(w, res.Classification, v.Options); err != nil {
			v.Log.Error().Err(err).Msg("render failed")
		}
	})

	srv := &http.Server{Addr: addr, Handler: mux}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	v.Log.Info().Str("addr", addr).Msg("serving voxel view")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}
