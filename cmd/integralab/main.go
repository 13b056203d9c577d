package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/san-kum/integralab/internal/animate"
	"github.com/san-kum/integralab/internal/config"
	"github.com/san-kum/integralab/internal/engine"
	"github.com/san-kum/integralab/internal/export"
	"github.com/san-kum/integralab/internal/numeric"
	"github.com/san-kum/integralab/internal/tui"
	"github.com/san-kum/integralab/internal/viz"
)

// app carries the state shared by every command.
type app struct {
	configFile string
	verbose    bool

	cfg    *config.Config
	log    *zap.Logger
	engine *engine.Engine
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:           "integralab",
		Short:         "integration lab: antiderivatives, areas and accumulation",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.RunMenu(a.engine)
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", "config file path (yaml or toml)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging to stderr")

	rootCmd.AddCommand(
		a.integrateCmd(),
		a.areaCmd(),
		a.plotCmd(),
		a.compareCmd(),
		a.animateCmd(),
		a.exportCmd(),
		a.presetsCmd(),
	)
	return rootCmd
}

func (a *app) setup() error {
	cfg := config.DefaultConfig()
	if a.configFile != "" {
		loaded, err := config.Load(a.configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	a.cfg = cfg

	a.log = zap.NewNop()
	if a.verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("failed to build logger: %w", err)
		}
		a.log = l
	}
	a.engine = engine.New(engine.WithConfig(cfg), engine.WithLogger(a.log))
	return nil
}

func (a *app) integrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "integrate [expression]",
		Short: "indefinite integral of a supported integrand",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.engine.Integrate(strings.Join(args, " "))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if !res.Matched {
				fmt.Fprintf(w, "no rule for %s\n\n", res.Integrand)
				for _, s := range res.Steps {
					fmt.Fprintf(w, "  %s\n", s)
				}
				return nil
			}
			fmt.Fprintf(w, "∫ %s dx = %s\n", res.Integrand, res.Formula)
			fmt.Fprintf(w, "latex: %s\n", res.LaTeX)
			if res.Rule != "" {
				fmt.Fprintf(w, "rule:  %s\n", res.Rule)
			}
			fmt.Fprintln(w)
			for i, s := range res.Steps {
				fmt.Fprintf(w, "%d. %s\n", i+1, s)
			}
			return nil
		},
	}
}

func (a *app) areaCmd() *cobra.Command {
	var (
		from, to   float64
		partitions int
		rule       string
	)
	cmd := &cobra.Command{
		Use:   "area [expression]",
		Short: "approximate a definite integral",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("n") {
				partitions = a.cfg.Integral.Partitions
			}
			if !cmd.Flags().Changed("rule") {
				rule = a.cfg.Integral.Rule
			}
			approx, err := a.engine.Approximate(args[0], from, to, partitions, rule)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "∫ %s dx from %g to %g ≈ %.6f\n", args[0], from, to, approx.Value)
			fmt.Fprintf(w, "rule: %s, partitions: %d\n", approx.Rule, approx.Partitions)
			if approx.Skipped > 0 {
				fmt.Fprintf(w, "skipped %d undefined points\n", approx.Skipped)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&from, "from", 0, "lower limit")
	cmd.Flags().Float64Var(&to, "to", 1, "upper limit")
	cmd.Flags().IntVar(&partitions, "n", numeric.DefaultPartitions, "number of partitions")
	cmd.Flags().StringVar(&rule, "rule", config.DefaultRule, "rule: "+strings.Join(numeric.RuleNames(), ", "))
	return cmd
}

// terminalWidth returns the width of stdout, or fallback when it is not a
// terminal.
func terminalWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

func (a *app) plotCmd() *cobra.Command {
	var (
		xMin, xMax float64
		samples    int
		useCanvas  bool
		height     int
		out        string
	)
	cmd := &cobra.Command{
		Use:   "plot [expression]",
		Short: "plot a function in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("samples") {
				samples = a.cfg.Plot.Samples
			}
			p, err := a.engine.SamplePlot(args[0], xMin, xMax, samples)
			if err != nil {
				return err
			}
			width := terminalWidth(80) - 10
			if width < 20 {
				width = 20
			}
			w := cmd.OutOrStdout()
			if useCanvas || out != "" {
				canvas, err := drawCanvas(p, width, height)
				if err != nil {
					return err
				}
				if out != "" {
					if err := os.WriteFile(out, []byte(export.CanvasToSVG(canvas, a.cfg.Export.Scale)), 0644); err != nil {
						return fmt.Errorf("failed to write %s: %w", out, err)
					}
					fmt.Fprintf(w, "wrote %s\n", out)
					return nil
				}
				fmt.Fprint(w, canvas.String())
			} else {
				data := make([]float64, len(p.Samples))
				for i, s := range p.Samples {
					data[i] = s.Y
					if s.Absent() {
						data[i] = math.NaN()
					}
				}
				graph := asciigraph.Plot(data,
					asciigraph.Height(height),
					asciigraph.Width(width),
					asciigraph.Caption(fmt.Sprintf("f(x) = %s on [%g, %g]", p.Expr, xMin, xMax)),
				)
				fmt.Fprintln(w, graph)
			}
			fmt.Fprintf(w, "y in [%.3f, %.3f], %d points, %d undefined\n",
				p.Viewport.YMin, p.Viewport.YMax, p.Stats.Present, p.Stats.Absent)
			return nil
		},
	}
	cmd.Flags().Float64Var(&xMin, "xmin", -5, "left edge")
	cmd.Flags().Float64Var(&xMax, "xmax", 5, "right edge")
	cmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "sample count")
	cmd.Flags().BoolVar(&useCanvas, "canvas", false, "draw on a braille canvas")
	cmd.Flags().IntVar(&height, "height", 15, "plot height in rows")
	cmd.Flags().StringVar(&out, "out", "", "write the braille canvas as svg")
	return cmd
}

// drawCanvas draws axes and curve of p on a braille canvas of w x h cells.
func drawCanvas(p *engine.Plot, w, h int) (*viz.Canvas, error) {
	canvas := viz.NewCanvas(w, h)
	m, err := viz.NewMapper(p.Viewport, canvas.Frame(2))
	if err != nil {
		return nil, err
	}
	viz.DrawAxes(canvas, m)
	for _, path := range viz.CurvePaths(p.Samples, m) {
		canvas.Polyline(path, viz.StyleFor(viz.RoleCurve))
	}
	return canvas, nil
}

func (a *app) compareCmd() *cobra.Command {
	var (
		from, to   float64
		partitions int
	)
	cmd := &cobra.Command{
		Use:   "compare [expression] [rule1] [rule2] ...",
		Short: "compare approximation rules on the same integral",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rules := args[1:]
			if len(rules) == 0 {
				rules = numeric.RuleNames()
			}
			if !cmd.Flags().Changed("n") {
				partitions = a.cfg.Integral.Partitions
			}
			ref, err := a.engine.Approximate(args[0], from, to, partitions*100, "simpson")
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "∫ %s dx from %g to %g, reference %.8f\n\n", args[0], from, to, ref.Value)
			fmt.Fprintln(w, "RULE\tN\tVALUE\tERROR\tSKIPPED")
			for _, rule := range rules {
				approx, err := a.engine.Approximate(args[0], from, to, partitions, rule)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%s\t%d\t%.8f\t%.2e\t%d\n",
					approx.Rule, approx.Partitions, approx.Value, math.Abs(approx.Value-ref.Value), approx.Skipped)
			}
			return w.Flush()
		},
	}
	cmd.Flags().Float64Var(&from, "from", 0, "lower limit")
	cmd.Flags().Float64Var(&to, "to", 1, "upper limit")
	cmd.Flags().IntVar(&partitions, "n", numeric.DefaultPartitions, "number of partitions")
	return cmd
}

func (a *app) animateCmd() *cobra.Command {
	var (
		from, to, step float64
		fps            int
		preset         string
		plain          bool
	)
	cmd := &cobra.Command{
		Use:   "animate [expression]",
		Short: "animate the accumulated area A(x)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			tuned := flags.Changed("from") || flags.Changed("to") || flags.Changed("step") || flags.Changed("fps")
			if len(args) == 0 && preset == "" && !tuned && !plain {
				return tui.RunMenu(a.engine)
			}
			anim := &a.cfg.Animation
			if preset != "" {
				p := config.GetPreset("animation", preset)
				if p == nil {
					return fmt.Errorf("unknown preset: %s (available: %s)",
						preset, strings.Join(config.ListPresets("animation"), ", "))
				}
				a.cfg.ApplyPreset(p)
			}
			if len(args) == 1 {
				anim.Expression = args[0]
			}
			if flags.Changed("from") {
				anim.A = from
			}
			if flags.Changed("to") {
				anim.B = to
			}
			if flags.Changed("step") {
				anim.Step = step
			}
			if flags.Changed("fps") {
				anim.FPS = fps
			}
			if plain {
				r := tui.NewLiveRenderer(cmd.OutOrStdout(), anim.Expression, anim.FPS)
				sess, err := a.engine.NewAnimationSession(anim.Expression, anim.A, anim.B, anim.Step, animate.WithFrameFunc(r.OnFrame))
				if err != nil {
					return err
				}
				r.Play(sess)
				return nil
			}
			sess, err := a.engine.NewAnimationSession(anim.Expression, anim.A, anim.B, anim.Step)
			if err != nil {
				return err
			}
			return tui.Run(tui.NewModel(a.engine, sess, anim.Expression, anim.FPS))
		},
	}
	cmd.Flags().Float64Var(&from, "from", config.DefaultA, "start of the sweep")
	cmd.Flags().Float64Var(&to, "to", config.DefaultB, "end of the sweep")
	cmd.Flags().Float64Var(&step, "step", config.DefaultStep, "x advance per frame")
	cmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	cmd.Flags().StringVar(&preset, "preset", "", "animation preset")
	cmd.Flags().BoolVar(&plain, "plain", false, "print frames without the full screen viewer")
	return cmd
}

func (a *app) exportCmd() *cobra.Command {
	var (
		from, to float64
		format   string
		out      string
	)
	cmd := &cobra.Command{
		Use:   "export [expression]",
		Short: "export the definite integral picture as svg, png or json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = a.cfg.Export.Format
				if ext := strings.TrimPrefix(filepath.Ext(out), "."); out != "" && ext != "" {
					format = ext
				}
			}
			if out == "" {
				out = "integral." + format
			}
			if err := a.export(args[0], from, to, format, out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return nil
		},
	}
	cmd.Flags().Float64Var(&from, "from", 0, "lower limit")
	cmd.Flags().Float64Var(&to, "to", 1, "upper limit")
	cmd.Flags().StringVar(&format, "format", config.DefaultFormat, "svg, png or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file")
	return cmd
}

func (a *app) export(text string, from, to float64, format, out string) error {
	switch format {
	case "svg":
		scene, _, err := a.engine.DefiniteScene(text, from, to, a.cfg.Frame())
		if err != nil {
			return err
		}
		return writeFile(out, export.SceneToSVG(scene))
	case "png":
		fig, _, err := a.engine.DefiniteFigure(text, from, to)
		if err != nil {
			return err
		}
		scale := a.cfg.Export.Scale
		return export.SavePNG(out, fig, a.cfg.Plot.Width*scale, a.cfg.Plot.Height*scale)
	case "json":
		r, err := a.engine.Report(text, from, to)
		if err != nil {
			return err
		}
		return export.SaveJSON(out, r)
	}
	return fmt.Errorf("%w: unknown export format %q", config.ErrInvalidConfig, format)
}

func writeFile(path string, src io.WriterTo) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()
	if _, err := src.WriteTo(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (a *app) presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets [group]",
		Short: "list preset integrands",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			groups := config.ListGroups()
			if len(args) == 1 {
				if config.ListPresets(args[0]) == nil {
					return fmt.Errorf("unknown preset group: %s (available: %s)", args[0], strings.Join(groups, ", "))
				}
				groups = args
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			for _, g := range groups {
				fmt.Fprintf(w, "%s:\n", g)
				for _, name := range config.ListPresets(g) {
					p := config.GetPreset(g, name)
					fmt.Fprintf(w, "  %s\t%s\t[%g, %g]\n", name, p.Expression, p.Lower, p.Upper)
				}
			}
			return w.Flush()
		},
	}
}
