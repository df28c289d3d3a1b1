// Package logging provides structured logging for numberstepper.
//
// This package wraps zap logger with convenience functions for the few
// logging patterns the stepper needs.
//
// # Log Levels
//
//   - Debug: value commits, keyboard visibility transitions
//   - Info: program start and exit
//   - Warn: malformed configuration, unparsable pending text
//   - Error: startup failures
//
// # Configuration
//
// Logging is silent unless NUMBERSTEPPER_LOG_LEVEL is set. The interactive
// stepper draws on stdout, so log lines go to stderr, or to the file named
// by NUMBERSTEPPER_LOG_FILE:
//
//	NUMBERSTEPPER_LOG_LEVEL=debug NUMBERSTEPPER_LOG_FILE=/tmp/stepper.log numberstepper
package logging
