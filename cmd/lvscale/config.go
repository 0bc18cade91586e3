package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/katalvlaran/lvscale/interpolate"
	"github.com/katalvlaran/lvscale/numeric"
	"github.com/katalvlaran/lvscale/scale"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scaleConfig is the on-disk scale definition:
//
//	kind: log
//	domain: [1, 1000]
//	range: [0, 300]
//	options:
//	  base: 10
//	  clamp: true
type scaleConfig struct {
	Kind    string        `mapstructure:"kind"`
	Domain  []interface{} `mapstructure:"domain"`
	Range   []interface{} `mapstructure:"range"`
	Options optionConfig  `mapstructure:"options"`
}

type optionConfig struct {
	Clamp        bool        `mapstructure:"clamp"`
	Round        bool        `mapstructure:"round"`
	Nice         int         `mapstructure:"nice"`
	Base         *float64    `mapstructure:"base"`
	Exponent     *float64    `mapstructure:"exponent"`
	Constant     *float64    `mapstructure:"constant"`
	Padding      *float64    `mapstructure:"padding"`
	PaddingInner *float64    `mapstructure:"padding-inner"`
	PaddingOuter *float64    `mapstructure:"padding-outer"`
	Align        *float64    `mapstructure:"align"`
	Unknown      interface{} `mapstructure:"unknown"`
	Interpolate  string      `mapstructure:"interpolate"`
	Location     string      `mapstructure:"location"`
}

// addScaleFlags registers the flags that can replace or override a config
// file.
func addScaleFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().String("kind", "", "Scale kind (linear, log, pow, sqrt, symlog, time, utc, band, ...)")
	cmd.Flags().StringSlice("domain", nil, "Comma separated domain values")
	cmd.Flags().StringSlice("range", nil, "Comma separated range values")
	cmd.Flags().Bool("clamp", false, "Clamp outputs to the range")
	cmd.Flags().Int("nice", 0, "Extend the domain to nice values for this many ticks")
	v.BindPFlag("kind", cmd.Flags().Lookup("kind"))
	v.BindPFlag("options.clamp", cmd.Flags().Lookup("clamp"))
	v.BindPFlag("options.nice", cmd.Flags().Lookup("nice"))
}

// loadConfig reads the config file named by --config, if any, and applies
// flag overrides.
func loadConfig(cmd *cobra.Command, v *viper.Viper) (scaleConfig, error) {
	var cfg scaleConfig
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		log.WithField("file", v.ConfigFileUsed()).Debug("Using config file")
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config: %w", err)
	}
	if f := cmd.Flags().Lookup("domain"); f != nil && f.Changed {
		vals, _ := cmd.Flags().GetStringSlice("domain")
		cfg.Domain = strings2any(vals)
	}
	if f := cmd.Flags().Lookup("range"); f != nil && f.Changed {
		vals, _ := cmd.Flags().GetStringSlice("range")
		cfg.Range = strings2any(vals)
	}
	if cfg.Kind == "" {
		cfg.Kind = "linear"
	}
	cfg.Domain = normalize(cfg.Domain)
	cfg.Range = normalize(cfg.Range)
	return cfg, nil
}

func strings2any(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// normalize turns numeric strings into float64 so that "10" on the
// command line blends as a number, not as text.
func normalize(vs []interface{}) []interface{} {
	out := make([]interface{}, len(vs))
	for i, v := range vs {
		out[i] = parseArg(v)
	}
	return out
}

func parseArg(v interface{}) interface{} {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if x, ok := numeric.ToNumber(s); ok {
		return x
	}
	return s
}

// options translates the config into scale options. Option constructors
// panic on out-of-range values; that is reported as an error here.
func (c scaleConfig) options() (opts []scale.Option, err error) {
	defer func() {
		if r := recover(); r != nil {
			opts, err = nil, fmt.Errorf("options: %v", r)
		}
	}()
	o := c.Options
	opts = append(opts, scale.WithClamp(o.Clamp), scale.WithRound(o.Round), scale.WithNice(o.Nice))
	if o.Base != nil {
		opts = append(opts, scale.WithBase(*o.Base))
	}
	if o.Exponent != nil {
		opts = append(opts, scale.WithExponent(*o.Exponent))
	}
	if o.Constant != nil {
		opts = append(opts, scale.WithConstant(*o.Constant))
	}
	if o.Padding != nil {
		opts = append(opts, scale.WithPadding(*o.Padding))
	}
	if o.PaddingInner != nil {
		opts = append(opts, scale.WithPaddingInner(*o.PaddingInner))
	}
	if o.PaddingOuter != nil {
		opts = append(opts, scale.WithPaddingOuter(*o.PaddingOuter))
	}
	if o.Align != nil {
		opts = append(opts, scale.WithAlign(*o.Align))
	}
	if o.Unknown != nil {
		opts = append(opts, scale.WithUnknown(parseArg(o.Unknown)))
	}
	if o.Interpolate != "" {
		space, err := interpolate.ParseSpace(o.Interpolate)
		if err != nil {
			return nil, err
		}
		opts = append(opts, scale.WithInterpolation(space))
	}
	if o.Location != "" {
		loc, err := time.LoadLocation(o.Location)
		if err != nil {
			return nil, fmt.Errorf("location %q: %w", o.Location, err)
		}
		opts = append(opts, scale.WithLocation(loc))
	}
	return opts, nil
}

// build constructs the scale described by c.
func (c scaleConfig) build() (scale.Scale, error) {
	opts, err := c.options()
	if err != nil {
		return nil, err
	}
	s, err := scale.Make(c.Kind, c.Domain, c.Range, opts...)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"kind":   s.Kind(),
		"domain": s.Domain(),
		"range":  s.Range(),
	}).Debug("Scale built")
	return s, nil
}

// formatValue prints scale outputs: numbers the way JavaScript would,
// instants as RFC 3339 and missing values as "unknown".
func formatValue(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return "unknown"
	case float64:
		if t != t {
			return "unknown"
		}
		return interpolate.FormatNumber(t)
	case time.Time:
		return t.Format(time.RFC3339Nano)
	case fmt.Stringer:
		return t.String()
	}
	return strings.TrimSpace(fmt.Sprint(v))
}
