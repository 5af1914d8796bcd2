package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/botirk38/pairscore"
	"github.com/botirk38/pairscore/internal/logging"
	"github.com/botirk38/pairscore/internal/metrics"
	"github.com/botirk38/pairscore/options"
)

const version = "0.1.0"

var red = color.New(color.FgRed).SprintFunc()

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the CLI and returns the process exit status
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}

	root, err := a.rootCommand()
	if err != nil {
		fmt.Fprintf(stderr, "%s %v\n", red("Error:"), err)
		return 1
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "%s %v\n", red("Error:"), err)
		return 1
	}
	return a.exitCode
}

// app holds the state of one CLI invocation
type app struct {
	stdout   io.Writer
	stderr   io.Writer
	viper    *viper.Viper
	exitCode int
}

// session is a configured pipeline plus what it needs to finish the run
type session struct {
	cfg      appConfig
	pipeline *pairscore.Pipeline
	registry *prometheus.Registry
}

func (a *app) rootCommand() (*cobra.Command, error) {
	root := &cobra.Command{
		Use:   "pairscore",
		Short: "Compare the two integer columns of an input file",
		Long: `pairscore reads lines of two whitespace-separated integers and reports
the total distance between the sorted columns and the similarity score
of the left column weighted by its frequency in the right column.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(cmd, a.runAll)
		},
	}

	registerFlags(root.PersistentFlags())
	v, err := newViper(root.PersistentFlags())
	if err != nil {
		return nil, err
	}
	a.viper = v

	root.AddCommand(
		&cobra.Command{
			Use:   "distance",
			Short: "Print the sorted columns and the total distance between them",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withSession(cmd, a.runDistance)
			},
		},
		&cobra.Command{
			Use:   "similarity",
			Short: "Print the similarity score",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.withSession(cmd, a.runSimilarity)
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the version",
			Args:  cobra.NoArgs,
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintln(a.stdout, "pairscore", version)
			},
		},
	)

	return root, nil
}

func (a *app) withSession(cmd *cobra.Command, run func(context.Context, *session) (int, error)) error {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(a.viper, configFile)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(logging.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: a.stderr,
	}).With("command", cmd.Name())

	opts := []options.Option{
		options.WithStore(cfg.Store, cfg.storeConfig()),
		options.WithLogger(logger),
	}

	s := &session{cfg: cfg}
	if cfg.MetricsOut != "" {
		s.registry = prometheus.NewRegistry()
		opts = append(opts, options.WithMetrics(metrics.MustNewMetrics(s.registry)))
	}

	p, err := pairscore.New(opts...)
	if err != nil {
		return fmt.Errorf("init %s store: %w", cfg.Store, err)
	}
	defer func() {
		if err := p.Close(); err != nil {
			logger.Warn("close store", "error", err)
		}
	}()
	s.pipeline = p

	score, runErr := run(cmd.Context(), s)

	if s.registry != nil {
		if err := metrics.WriteTextfile(cfg.MetricsOut, s.registry); err != nil {
			logger.Error("write metrics", "path", cfg.MetricsOut, "error", err)
		}
	}

	if runErr != nil {
		return runErr
	}
	if cfg.ScoreExit {
		a.exitCode = exitStatus(score)
	}
	return nil
}

// exitStatus keeps the low 8 bits of score, which is all a process status can carry
func exitStatus(score int) int {
	return score & 0xff
}

func (a *app) runAll(ctx context.Context, s *session) (int, error) {
	report, err := s.pipeline.Run(ctx, s.cfg.Input)
	if err != nil {
		return 0, err
	}
	return report.Similarity, writeReport(a.stdout, s.cfg.Format, report)
}

func (a *app) runDistance(ctx context.Context, s *session) (int, error) {
	lists, err := s.pipeline.Read(s.cfg.Input)
	if err != nil {
		return 0, err
	}
	result, err := s.pipeline.Distance(ctx, lists)
	if err != nil {
		return 0, err
	}
	return result.Total, writeDistance(a.stdout, s.cfg.Format, distanceReport{
		Input:    s.cfg.Input,
		Lines:    lists.Lines,
		Distance: result,
	})
}

func (a *app) runSimilarity(ctx context.Context, s *session) (int, error) {
	lists, err := s.pipeline.Read(s.cfg.Input)
	if err != nil {
		return 0, err
	}
	score, err := s.pipeline.Similarity(ctx, lists)
	if err != nil {
		return 0, err
	}
	return score, writeSimilarity(a.stdout, s.cfg.Format, similarityReport{
		Input:      s.cfg.Input,
		Lines:      lists.Lines,
		Pairs:      lists.Count,
		Similarity: score,
	})
}
