// Package logging provides structured logging for the parliament chamber.
//
// It wraps log/slog with a JSON handler. Child loggers carry persistent
// context such as the proposal under debate or the speaking politician, so a
// log file can be filtered per proposal after a session.
//
// # Basic Usage
//
//	logger, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
//	if err != nil {
//	    return err
//	}
//	defer logger.Close()
//
//	logger.WithProposal("law1").Info("vote cast", "choice", "for")
//
// Output:
//
//	{"time":"...","level":"INFO","msg":"vote cast","proposal_id":"law1","choice":"for"}
//
// The TUI always passes a directory so that log output never reaches the
// terminal it is drawing on. CLI commands log to stderr when no directory
// is configured.
package logging
