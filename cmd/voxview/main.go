package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/terravox/voxview/internal/adapters/echarts"
	"github.com/terravox/voxview/internal/app"
	"github.com/terravox/voxview/internal/cliconfig"
	"github.com/terravox/voxview/internal/ports"
	"github.com/terravox/voxview/internal/terrain"
)

const longHelp = `Render a voxel terrain map as an interactive 3D point cloud.

voxview reads one voxel record per line ("x,y,z,flag", the flag matched
case-insensitively against "true"), partitions the records into solid and
non-solid sets, and writes the solid set as an echarts-gl scatter page you
can orbit and zoom in a browser.

Configuration precedence: flags > VOXVIEW_* environment > config file
(default $HOME/.voxview/config.toml) > built-in defaults.`

var exampleUsage = strings.TrimSpace(`
  voxview --input terrain_map.txt --out voxels.html
  voxview --serve :8377 --show-non-solid
  voxview --watch --skip-bad-lines
  voxview gen --size 64 --height 16 --seed 7 --out terrain_map.txt
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	log := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "voxview",
		Short:   "Render a voxel terrain map as an interactive 3D point cloud",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first, then env, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			if cfg.Verbose {
				log = log.Level(zerolog.DebugLevel)
			} else {
				log = log.Level(zerolog.InfoLevel)
			}
			log.Debug().Interface("config", cfg).Msg("configuration")

			viewer := &app.Viewer{
				Input:    cfg.Input,
				Renderer: echarts.NewHTMLRenderer(cfg.Out),
				Options: ports.RenderOptions{
					UpAxis:       ports.Axis(cfg.UpAxis),
					FieldOfView:  cfg.FieldOfView,
					MarkerColor:  cfg.MarkerColor,
					MarkerSize:   cfg.MarkerSize,
					ShowNonSolid: cfg.ShowNonSolid,
					Title:        filepath.Base(cfg.Input),
				},
				SkipBadLines: cfg.SkipBadLines,
				StrictFlags:  cfg.StrictFlags,
				Log:          log,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			switch {
			case cfg.ServeAddr != "":
				return viewer.Serve(ctx, cfg.ServeAddr)
			case cfg.Watch:
				return viewer.Watch(ctx)
			default:
				if err := viewer.Run(ctx); err != nil {
					return err
				}
				log.Info().Str("out", cfg.Out).Msg("wrote voxel view")
				return nil
			}
		},
	}

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.voxview/config.toml)")
	root.Flags().StringVar(&cfg.Input, "input", cfg.Input, "terrain map file to read")
	root.Flags().StringVar(&cfg.Out, "out", cfg.Out, "HTML file to write")
	root.Flags().StringVar(&cfg.UpAxis, "up-axis", cfg.UpAxis, "axis that points up (x, y or z)")
	root.Flags().Float64Var(&cfg.FieldOfView, "fov", cfg.FieldOfView, "camera field of view in degrees")
	root.Flags().StringVar(&cfg.MarkerColor, "marker-color", cfg.MarkerColor, "marker color for solid voxels")
	root.Flags().IntVar(&cfg.MarkerSize, "marker-size", cfg.MarkerSize, "marker size in pixels")
	root.Flags().BoolVar(&cfg.ShowNonSolid, "show-non-solid", cfg.ShowNonSolid, "also draw non-solid voxels as a dim series")
	root.Flags().BoolVar(&cfg.SkipBadLines, "skip-bad-lines", cfg.SkipBadLines, "skip unparseable lines instead of aborting")
	root.Flags().BoolVar(&cfg.StrictFlags, "strict-flags", cfg.StrictFlags, "reject solidity tokens other than true/false")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-render whenever the input file changes")
	root.Flags().StringVar(&cfg.ServeAddr, "serve", cfg.ServeAddr, "serve the view over HTTP on this address instead of writing a file")
	root.Flags().BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "enable debug logging")

	root.AddCommand(genCommand(log))

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("voxview")
		os.Exit(1)
	}
}

func genCommand(log zerolog.Logger) *cobra.Command {
	var (
		out    string
		size   int
		height int
		seed   int64
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a sample perlin-noise terrain map",
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 || height <= 0 {
				return fmt.Errorf("size and height must be positive")
			}
			g := terrain.NewGenerator(size, height, seed)
			if err := g.WriteFile(out); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			log.Info().
				Str("out", out).
				Int("size", size).
				Int("height", height).
				Int64("seed", seed).
				Msg("terrain map generated")
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "terrain_map.txt", "file to write")
	cmd.Flags().IntVar(&size, "size", 64, "grid width and depth")
	cmd.Flags().IntVar(&height, "height", 16, "grid height")
	cmd.Flags().Int64Var(&seed, "seed", 1, "noise seed")

	return cmd
}
