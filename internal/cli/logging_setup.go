package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/catalogview/internal/config"
	"github.com/rshade/catalogview/internal/logging"
	"github.com/rshade/catalogview/internal/tui"
)

// setupLogging configures logging from the resolved config and the --debug flag,
// then stores the logger and a trace id in the command context.
func setupLogging(cmd *cobra.Command, cfg *config.Config, debug bool) logging.LogPathResult {
	loggingCfg := cfg.Logging
	if debug {
		loggingCfg.Level = "debug"
		loggingCfg.Format = logging.FormatConsole
	}

	var lc logging.Config
	if takesOverTerminal(cmd) {
		lc = loggingCfg.ToInteractiveLoggingConfig()
	} else {
		if debug {
			loggingCfg.File = ""
		}
		lc = loggingCfg.ToLoggingConfig()
	}
	lc.Writer = cmd.ErrOrStderr()
	lc.Caller = debug

	result := logging.NewLoggerWithPath(lc)
	logger = logging.ComponentLogger(result.Logger, "cli")

	if result.UsingFile && debug {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).Str("command", cmd.Name()).Msg("command started")

	return result
}

// takesOverTerminal reports whether cmd is about to start a full-screen session.
func takesOverTerminal(cmd *cobra.Command) bool {
	if _, ok := cmd.Annotations[annotationInteractive]; !ok {
		return false
	}
	plain, _ := cmd.Flags().GetBool("plain")
	return tui.DetectOutputMode(plain) == tui.OutputModeInteractive
}

// cleanupLogging closes the log file handle.
func cleanupLogging(logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
