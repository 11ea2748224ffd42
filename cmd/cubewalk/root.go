package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/cubewalk/config"
	"github.com/katalvlaran/cubewalk/cube"
	"github.com/katalvlaran/cubewalk/grid"
	"github.com/katalvlaran/cubewalk/input"
	"github.com/katalvlaran/cubewalk/password"
	"github.com/katalvlaran/cubewalk/walk"
)

// flags holds the command-line overrides.
type flags struct {
	configPath string
	inputPath  string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           "cubewalk [demo|real]",
		Short:         "Walk a monkey map on the flat net and on the folded cube",
		Args:          cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs:     []string{"demo", "real"},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "demo"
			if len(args) == 1 {
				name = args[0]
			}
			return run(cmd, f, name)
		},
	}
	cmd.Flags().StringVar(&f.configPath, "config", config.DefaultPath, "configuration file")
	cmd.Flags().StringVar(&f.inputPath, "input", "", "notes file (overrides the configured input)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "debug|info|warn|error (overrides log.level)")
	cmd.Flags().StringVar(&f.logFormat, "log-format", "", "text|json (overrides log.format)")
	return cmd
}

func run(cmd *cobra.Command, f flags, name string) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}
	if f.logLevel != "" {
		cfg.Log.Level = f.logLevel
	}
	if f.logFormat != "" {
		cfg.Log.Format = f.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
	if err != nil {
		return err
	}

	file := f.inputPath
	if file == "" {
		if file, err = cfg.InputFile(name); err != nil {
			return err
		}
	}
	var notes *input.Notes
	if file == "" {
		logger.Info("using built-in notes", "input", name)
		notes = input.Demo()
	} else {
		logger.Info("loading notes", "input", name, "file", file)
		if notes, err = input.Load(file); err != nil {
			return err
		}
	}

	// Both walks run before anything is printed, so a map that does not
	// fold produces no partial output.
	c, err := cube.Fold(notes.Grid, cube.WithLogger(logger))
	if err != nil {
		return err
	}
	logger.Info("folded cube", "face_size", c.Size())

	flat, err := walk.NewFlat(notes.Grid)
	if err != nil {
		return err
	}
	if _, err := walk.Run(flat, notes.Path, walk.WithLogger(logger)); err != nil {
		return fmt.Errorf("flat walk: %w", err)
	}
	start, err := notes.Grid.Start()
	if err != nil {
		return err
	}
	surface, err := walk.NewSurface(c, start)
	if err != nil {
		return err
	}
	if _, err := walk.Run(surface, notes.Path, walk.WithLogger(logger)); err != nil {
		return fmt.Errorf("cube walk: %w", err)
	}

	out := cmd.OutOrStdout()
	printFinal(out, "flat", flat.Position(), flat)
	printFinal(out, "cube", surface.FlatPosition(), surface)
	return nil
}

// oriented is satisfied by both walkers.
type oriented interface {
	Direction() grid.Direction
}

func printFinal(w io.Writer, label string, pos grid.Position, o oriented) {
	dir := o.Direction()
	fmt.Fprintf(w, "%s: row %d, column %d, facing %s", label, pos.Row+1, pos.Col+1, dir)
	if s, ok := o.(*walk.Surface); ok {
		local := s.Position()
		fmt.Fprintf(w, " (face %s, local row %d, column %d)", s.Face(), local.Row, local.Col)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s: password %s\n", label, password.Explain(pos, dir))
}

func newLogger(w io.Writer, l config.Log) (*slog.Logger, error) {
	level, err := l.SlogLevel()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
