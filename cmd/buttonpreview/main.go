// SPDX-License-Identifier: Unlicense OR MIT

// Command buttonpreview shows the styled button in its light and dark
// themes, normal and selected.
package main

import (
	"fmt"
	"os"

	"gioui.org/app"
	"gioui.org/op"
	"gioui.org/unit"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gioplay/styledbutton/font/brand"
	"github.com/gioplay/styledbutton/internal/config"
	"github.com/gioplay/styledbutton/internal/f32color"
)

type options struct {
	config   string
	fonts    string
	logLevel string
	out      string
}

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "buttonpreview"})
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func newRootCmd(logger *log.Logger) *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "buttonpreview",
		Short:         "Preview the styled button themes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(opts.logLevel)
			if err != nil {
				return fmt.Errorf("log level: %w", err)
			}
			logger.SetLevel(lvl)
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "preview configuration file (TOML)")
	root.PersistentFlags().StringVar(&opts.fonts, "fonts", "", "directory holding Inter-Medium.otf, Inter-Regular.otf and Inter-Bold.otf")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	run := &cobra.Command{
		Use:   "run",
		Short: "Open the preview window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWindow(opts, logger)
		},
	}
	shot := &cobra.Command{
		Use:   "screenshot",
		Short: "Render the preview offscreen to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := load(opts, logger)
			if err != nil {
				return err
			}
			if err := screenshot(p, cfg.Width, cfg.Height, opts.out); err != nil {
				return err
			}
			logger.Info("wrote screenshot", "file", opts.out)
			return nil
		},
	}
	shot.Flags().StringVarP(&opts.out, "out", "o", "preview.png", "output PNG file")
	presets := &cobra.Command{
		Use:   "presets",
		Short: "Print the resolved button colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.config, logger)
			if err != nil {
				return err
			}
			printPresets(cmd, cfg.Resolve(logger))
			return nil
		},
	}
	root.AddCommand(run, shot, presets)
	root.RunE = run.RunE
	return root
}

// load reads the configuration and builds the preview from it.
func load(opts *options, logger *log.Logger) (*preview, config.Preview, error) {
	cfg, err := config.Load(opts.config, logger)
	if err != nil {
		return nil, config.Preview{}, err
	}
	p := cfg.Resolve(logger)
	if opts.fonts != "" {
		p.Fonts = opts.fonts
	}
	faces := brand.Register(p.Fonts, logger)
	ui, err := newPreview(p, faces)
	if err != nil {
		return nil, config.Preview{}, err
	}
	return ui, p, nil
}

func runWindow(opts *options, logger *log.Logger) error {
	ui, p, err := load(opts, logger)
	if err != nil {
		return err
	}
	go func() {
		w := new(app.Window)
		w.Option(
			app.Title("Styled buttons"),
			app.Size(unit.Dp(p.Width), unit.Dp(p.Height)),
		)
		if err := loop(w, ui); err != nil {
			logger.Error("window", "err", err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
	return nil
}

func loop(w *app.Window, ui *preview) error {
	var ops op.Ops
	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			ui.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func printPresets(cmd *cobra.Command, p config.Preview) {
	out := cmd.OutOrStdout()
	for _, t := range []struct {
		name string
		bg   string
		hl   string
		fg   string
	}{
		{"light", f32color.ToHex(p.Light.Background), f32color.ToHex(p.Light.HighlightedBackground), f32color.ToHex(p.Light.Foreground)},
		{"dark", f32color.ToHex(p.Dark.Background), f32color.ToHex(p.Dark.HighlightedBackground), f32color.ToHex(p.Dark.Foreground)},
	} {
		fmt.Fprintf(out, "%s\tbackground=%s\thighlighted=%s\tforeground=%s\n", t.name, t.bg, t.hl, t.fg)
	}
}
