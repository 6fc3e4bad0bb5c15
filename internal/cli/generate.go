package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/jmylchreest/brandpal/internal/brand"
	"github.com/jmylchreest/brandpal/internal/colour"
	"github.com/jmylchreest/brandpal/internal/config"
	"github.com/jmylchreest/brandpal/internal/metrics"
	"github.com/jmylchreest/brandpal/internal/palette"
	"github.com/jmylchreest/brandpal/internal/security"
	"github.com/jmylchreest/brandpal/internal/seed"
)

// generateOptions holds the generate command flags.
type generateOptions struct {
	root *rootOptions

	industry    string
	tone        string
	theme       string
	seed        string
	useContext  bool
	context     brand.Context
	request     string
	format      string
	output      string
	preview     bool
	metricsFile string
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{root: root}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate three brand palettes",
		Long: `Generate three brand palettes for an industry.

Each palette assigns colours to the primary, secondary, accent, neutral and
background roles, corrects them once for WCAG contrast and colour-blind
distinguishability, and suggests typography, an icon style, imagery and logo
concepts. Omit --seed for a fresh random seed; it is echoed back so the run
can be reproduced.

Examples:
  # Three palettes for a clinic, reproducible
  brandpal generate -i healthcare --tone conservative --seed 42

  # Dark theme, JSON output
  brandpal generate -i technology --theme dark --format json

  # Read a request document
  echo '{"industry":"beauty","brandTone":"playful","seed":7}' | brandpal generate --request -

  # Let business context refine the hue rules
  brandpal generate -i restaurant --use-context --business-name "Bella" --notes "wood-fired pizza"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.industry, "industry", "i", "", "industry, e.g. healthcare or \"real estate\" (required unless --request)")
	f.StringVar(&opts.tone, "tone", root.env.Tone, "brand tone (see 'brandpal tones')")
	f.StringVar(&opts.theme, "theme", root.env.Theme, "theme preference (light, dark, neutral)")
	f.StringVar(&opts.seed, "seed", "", "seed in 0.."+fmt.Sprint(int64(seed.MaxSeed))+" or 'random' (default random)")
	f.BoolVar(&opts.useContext, "use-context", false, "let business context refine the industry hue rules")
	addContextFlags(f, &opts.context)
	f.StringVar(&opts.request, "request", "", "read a JSON request from a file, or '-' for stdin")
	f.StringVar(&opts.format, "format", root.env.Format, "output format (text, json)")
	f.StringVarP(&opts.output, "output", "o", "", "write output to a file instead of stdout")
	f.BoolVar(&opts.preview, "preview", false, "always show colour swatches (default: only on a terminal)")
	f.StringVar(&opts.metricsFile, "metrics-file", root.env.MetricsFile, "write Prometheus metrics to this textfile")

	return cmd
}

// addContextFlags registers the business context fields.
func addContextFlags(f *pflag.FlagSet, ctx *brand.Context) {
	f.StringVar(&ctx.BusinessName, "business-name", "", "business name (context)")
	f.StringVar(&ctx.Tagline, "tagline", "", "tagline (context)")
	f.StringVar(&ctx.Values, "values", "", "brand values (context)")
	f.StringVar(&ctx.Audience, "audience", "", "target audience (context)")
	f.StringVar(&ctx.Competitors, "competitors", "", "competitors (context)")
	f.StringVar(&ctx.Notes, "notes", "", "free-form notes (context)")
}

var contextFlagNames = []string{"business-name", "tagline", "values", "audience", "competitors", "notes"}

// runGenerate executes the generate command.
func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	logger, err := opts.root.newLogger(cmd, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	logger = logger.With("run", uuid.NewString())

	format := strings.ToLower(opts.format)
	if format != config.FormatText && format != config.FormatJSON {
		return fmt.Errorf("unknown output format: %s (valid formats: %s, %s)", opts.format, config.FormatText, config.FormatJSON)
	}
	for _, path := range []string{opts.output, opts.metricsFile} {
		if path == "" {
			continue
		}
		if err := security.ValidateOutputPath(path); err != nil {
			return fmt.Errorf("invalid output path: %w", err)
		}
	}

	in, seedCfg, err := opts.buildInput(cmd)
	if err != nil {
		return err
	}
	if err := ValidateInput(&in); err != nil {
		return err
	}
	if in.Seed == nil {
		v, err := seed.Resolve(seedCfg)
		if err != nil {
			return err
		}
		in.Seed = &v
		logger.Debug("no seed given, drew one", "seed", v)
	}

	genOpts := []palette.Option{palette.WithLogger(logger.Named("engine"))}
	var recorder *metrics.Recorder
	if opts.metricsFile != "" {
		recorder = metrics.NewRecorder()
		genOpts = append(genOpts, palette.WithObserver(recorder))
	}

	start := time.Now()
	resp, err := palette.NewGenerator(genOpts...).Generate(in)
	if err != nil {
		return fmt.Errorf("failed to generate palettes: %w", err)
	}
	logger.Info("generated palettes", "industry", in.Industry, "seed", *in.Seed, "elapsed", time.Since(start))

	render := func(w io.Writer) error {
		if format == config.FormatJSON {
			return writeJSON(w, resp)
		}
		preview := opts.preview || (opts.output == "" && isTerminal(w) && !opts.root.env.NoColor)
		return writeReport(w, resp, preview, stylesFor(w))
	}

	if opts.output == "" {
		if err := render(cmd.OutOrStdout()); err != nil {
			return err
		}
	} else {
		if err := writeFile(opts.output, render); err != nil {
			return err
		}
		if !opts.root.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "Palettes written to: %s\n", opts.output)
		}
	}

	if recorder != nil {
		if err := recorder.WriteTextfile(opts.metricsFile); err != nil {
			return err
		}
		logger.Debug("wrote metrics", "path", opts.metricsFile)
	}

	return nil
}

// buildInput assembles the request from --request and the flags. Flags
// given explicitly override the request document.
func (o *generateOptions) buildInput(cmd *cobra.Command) (palette.GenerateInput, seed.Config, error) {
	var in palette.GenerateInput
	fromRequest := o.request != ""
	if fromRequest {
		if err := o.readRequest(cmd.InOrStdin(), &in); err != nil {
			return in, seed.Config{}, err
		}
	}

	flags := cmd.Flags()
	use := func(name string) bool { return !fromRequest || flags.Changed(name) }

	if use("industry") {
		in.Industry = o.industry
	}
	if use("tone") && o.tone != "" {
		in.BrandTone = brand.Tone(o.tone)
	}
	if use("theme") && o.theme != "" {
		in.ThemePreference = colour.Theme(o.theme)
	}
	if use("use-context") {
		in.UseContext = o.useContext
	}
	for _, name := range contextFlagNames {
		if flags.Changed(name) {
			if in.Context == nil {
				in.Context = &brand.Context{}
			}
			mergeContext(in.Context, o.context)
			break
		}
	}

	seedCfg, err := seed.Parse(o.seed)
	if err != nil {
		return in, seed.Config{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if use("seed") && seedCfg.Mode == seed.ModeManual {
		in.Seed = seedCfg.Value
	}

	return in, seedCfg, nil
}

func (o *generateOptions) readRequest(stdin io.Reader, in *palette.GenerateInput) error {
	r := stdin
	if o.request != "-" {
		file, err := os.Open(o.request)
		if err != nil {
			return fmt.Errorf("failed to open request: %w", err)
		}
		defer file.Close()
		r = file
	}
	r = security.NewLimitedReader(r, security.MaxRequestBytes)
	if err := json.NewDecoder(r).Decode(in); err != nil {
		return fmt.Errorf("%w: failed to parse request: %v", ErrInvalidInput, err)
	}
	return nil
}

// mergeContext copies the non-empty fields of src into dst.
func mergeContext(dst *brand.Context, src brand.Context) {
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&dst.BusinessName, src.BusinessName},
		{&dst.Tagline, src.Tagline},
		{&dst.Values, src.Values},
		{&dst.Audience, src.Audience},
		{&dst.Competitors, src.Competitors},
		{&dst.Notes, src.Notes},
	} {
		if f.src != "" {
			*f.dst = f.src
		}
	}
}

// isTerminal reports whether w is an interactive terminal.
// writeFile creates path and renders into it, reporting a failed close.
func writeFile(path string, render func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cerr)
		}
	}()
	return render(file)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
