package pdficon

import "github.com/rs/zerolog"

// DefaultLabel is the text painted on frames large enough to carry one.
const DefaultLabel = "PDF"

// RenderOption configures rendering behavior.
type RenderOption func(*renderConfig)

type renderConfig struct {
	palette  Palette
	typeface *Typeface
	label    string
	log      zerolog.Logger
	encoder  ContainerEncoder
}

func newRenderConfig(opts []RenderOption) renderConfig {
	cfg := renderConfig{
		palette: DefaultPalette(),
		label:   DefaultLabel,
		log:     zerolog.Nop(),
		encoder: ICOEncoder{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithPalette selects the colours used for every frame.
func WithPalette(p Palette) RenderOption {
	return func(cfg *renderConfig) {
		cfg.palette = p
	}
}

// WithTypeface sets an already resolved typeface. Without it the embedded
// font is resolved once per render.
func WithTypeface(t Typeface) RenderOption {
	return func(cfg *renderConfig) {
		cfg.typeface = &t
	}
}

// WithLabel overrides the label text.
func WithLabel(label string) RenderOption {
	return func(cfg *renderConfig) {
		if label != "" {
			cfg.label = label
		}
	}
}

// WithLogger routes diagnostics (font and encoder fallbacks) to log.
func WithLogger(log zerolog.Logger) RenderOption {
	return func(cfg *renderConfig) {
		cfg.log = log
	}
}

// WithContainerEncoder replaces the icon container encoder.
func WithContainerEncoder(enc ContainerEncoder) RenderOption {
	return func(cfg *renderConfig) {
		if enc != nil {
			cfg.encoder = enc
		}
	}
}
