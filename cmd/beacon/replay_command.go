package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"beacon/internal/config"
	"beacon/internal/diag"
	"beacon/internal/logging"
	"beacon/internal/replay"
	"beacon/internal/sinks"
)

func newReplayCommand(configFlag *string) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <trace>",
		Short: "Replay a recorded diagnostic trace through configured sinks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Load(*configFlag)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, err := logging.New(logging.Options{
				Level:  cfg.Logging.Level,
				Format: cfg.Logging.Format,
				Output: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			logger = logging.NewComponentLogger(logger, "replay").
				With(slog.String(logging.FieldRunID, uuid.NewString()))

			router, cleanup, err := buildRouter(cfg, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			defer cleanup()

			file, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open trace: %w", err)
			}
			defer file.Close()

			logger.Info("replaying trace", slog.String("trace", args[0]))
			summary, err := replay.Run(router, file)
			if err != nil {
				return fmt.Errorf("replay: %w", err)
			}

			logger.Info("replay complete",
				slog.Int("ops", summary.Ops),
				slog.Int("messages", summary.Messages),
				slog.Bool("terminate_requested", summary.TerminateRequested))

			fmt.Fprintln(cmd.OutOrStdout(), renderSummary(summary))
			return nil
		},
	}
}

// buildRouter assembles the sinks a replay dispatches into: a console
// sink for generic messages, a messenger printing debug-utils messages in
// the same format, and optionally a structured slog sink.
func buildRouter(cfg *config.Config, out io.Writer) (*diag.Router, func(), error) {
	cleanup := func() {}

	verbosity, ok := diag.ParseVerbosity(cfg.Verbosity)
	if !ok {
		// Load validated the value already; be safe regardless.
		verbosity = diag.VerbosityInfo
	}
	severities := verbosity.Severities()

	router := diag.NewRouter()
	router.AddSink(diag.NewConsoleSink(out, severities))
	router.AddSink(sinks.NewMessenger(
		diag.SeverityToDebugUtils(severities),
		diag.DebugTypeGeneral|diag.DebugTypeValidation|diag.DebugTypePerformance,
		func(severity diag.DebugSeverity, types diag.DebugType, data *diag.CallbackData) bool {
			_, _ = io.WriteString(out, diag.FormatMessage(
				diag.SeverityFromDebugUtils(severity),
				diag.TypeFromDebugUtils(types),
				data))
			return false
		}))

	if cfg.Structured.Enabled {
		writer, closer, err := openStructuredOutput(cfg.Structured.Path)
		if err != nil {
			return nil, nil, err
		}
		cleanup = closer

		structuredLogger, err := logging.New(logging.Options{
			Level:  "debug", // the sink's severity mask does the filtering
			Format: cfg.Structured.Format,
			Output: writer,
		})
		if err != nil {
			closer()
			return nil, nil, err
		}
		router.AddSink(sinks.NewSlogSink(structuredLogger, severities))
	}

	return router, cleanup, nil
}

func openStructuredOutput(path string) (io.Writer, func(), error) {
	switch path {
	case "stdout":
		return os.Stdout, func() {}, nil
	case "stderr":
		return os.Stderr, func() {}, nil
	default:
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open structured output %s: %w", path, err)
		}
		return file, func() { _ = file.Close() }, nil
	}
}

func renderSummary(summary *replay.Summary) string {
	rows := make([][]string, 0, 5)
	for _, severity := range []diag.Severity{diag.SeverityError, diag.SeverityWarning, diag.SeverityInfo, diag.SeverityVerbose} {
		if count := summary.BySeverity[severity]; count > 0 {
			rows = append(rows, []string{severity.String(), strconv.Itoa(count)})
		}
	}
	rows = append(rows, []string{"Total", strconv.Itoa(summary.Messages)})

	out := renderTable([]string{"Severity", "Messages"}, rows)
	if summary.TerminateRequested {
		out += "\nA sink requested termination during replay."
	}
	return out
}
