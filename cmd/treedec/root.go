package main

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/treedec/algorithm"
	"github.com/katalvlaran/treedec/config"
)

// flagKeys maps command line flags onto configuration keys.
var flagKeys = map[string]string{
	"log-level":             "logging.level",
	"log-format":            "logging.format",
	"trace":                 "observability.trace",
	"metrics":               "observability.metrics",
	"kind":                  "decompose.kind",
	"ordering":              "decompose.ordering",
	"jobs":                  "decompose.jobs",
	"normalize":             "decompose.normalize",
	"empty-root":            "decompose.empty_root",
	"empty-leaves":          "decompose.empty_leaves",
	"identical-join-parent": "decompose.identical_join_parent",
	"leaves-as-introduce":   "decompose.leaves_as_introduce",
	"compress":              "decompose.compress",
	"max-children":          "decompose.max_children",
	"induced":               "decompose.induced",
	"covering":              "decompose.covering",
}

// app is the state shared by all subcommands of one invocation.
type app struct {
	v          *viper.Viper
	configFile string

	cfg      *config.Config
	logger   *zap.Logger
	provider *sdktrace.TracerProvider
	registry *prometheus.Registry
	metrics  *algorithm.Metrics
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}
	config.SetDefaults(a.v)

	root := &cobra.Command{
		Use:   "treedec",
		Short: "Bucket elimination tree, path and graph decompositions",
		Long: `treedec reads PACE .gr (p tw) and .hgr (p htd) files, computes
decompositions by bucket elimination and optionally normalizes and labels them.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "config file (YAML)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "console", "log format: console or json")
	pf.Bool("trace", false, "export spans to stderr")
	pf.Bool("metrics", false, "log gathered metrics at exit")

	root.AddCommand(newDecomposeCmd(a), newValidateCmd(a), newConfigCmd(a))

	return root
}

// setup loads configuration and builds the logger, tracer and registry.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var bindErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = a.v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return errors.Wrap(bindErr, "bind flags")
	}
	if err := config.ReadFile(a.v, a.configFile); err != nil {
		return err
	}
	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if a.logger, err = config.NewLogger(cfg.Logging); err != nil {
		return err
	}
	if cfg.Observability.Trace {
		exp, err := stdouttrace.New(stdouttrace.WithWriter(cmd.ErrOrStderr()), stdouttrace.WithPrettyPrint())
		if err != nil {
			return errors.Wrap(err, "create span exporter")
		}
		a.provider = sdktrace.NewTracerProvider(sdktrace.WithSyncer(exp))
	}
	if cfg.Observability.Metrics {
		a.registry = prometheus.NewRegistry()
		a.metrics = algorithm.NewMetrics(a.registry)
	}

	return nil
}

func (a *app) teardown(cmd *cobra.Command) error {
	if a.registry != nil {
		if err := logMetrics(a.logger, a.registry); err != nil {
			return err
		}
	}
	if a.provider != nil {
		if err := a.provider.Shutdown(cmd.Context()); err != nil {
			return errors.Wrap(err, "shutdown tracer provider")
		}
	}
	_ = a.logger.Sync()

	return nil
}

// algorithmOptions translates the loaded configuration into decomposer options.
func (a *app) algorithmOptions() ([]algorithm.Option, error) {
	ordering, err := config.OrderingAlgorithm(a.cfg.Decompose.Ordering)
	if err != nil {
		return nil, err
	}
	opts := []algorithm.Option{
		algorithm.WithOrdering(ordering),
		algorithm.WithLogger(a.logger),
	}
	if a.provider != nil {
		opts = append(opts, algorithm.WithTracer(a.provider.Tracer("treedec")))
	}
	if a.metrics != nil {
		opts = append(opts, algorithm.WithMetrics(a.metrics))
	}

	return opts, nil
}

// logMetrics writes every gathered sample to the logger.
func logMetrics(l *zap.Logger, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return errors.Wrap(err, "gather metrics")
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fields := []zap.Field{zap.String("name", mf.GetName())}
			for _, lp := range m.GetLabel() {
				fields = append(fields, zap.String(lp.GetName(), lp.GetValue()))
			}
			switch {
			case m.GetCounter() != nil:
				fields = append(fields, zap.Float64("value", m.GetCounter().GetValue()))
			case m.GetGauge() != nil:
				fields = append(fields, zap.Float64("value", m.GetGauge().GetValue()))
			case m.GetHistogram() != nil:
				fields = append(fields,
					zap.Uint64("count", m.GetHistogram().GetSampleCount()),
					zap.Float64("sum", m.GetHistogram().GetSampleSum()),
				)
			}
			l.Info("metric", fields...)
		}
	}

	return nil
}
