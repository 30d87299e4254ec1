package errors

import (
	"fmt"
	"io"
	"os"

	"github.com/julianstephens/agenda/internal/logger"
)

const prefix = "Error: "

var (
	stderr   io.Writer = os.Stderr
	exitFunc           = os.Exit
)

// Format formats an error message with a consistent "Error: " prefix
func Format(err error) string {
	if err == nil {
		return ""
	}
	return prefix + err.Error()
}

// Formatf formats an error message with a consistent "Error: " prefix using a format string
func Formatf(format string, args ...interface{}) string {
	return prefix + fmt.Sprintf(format, args...)
}

// Fatal logs err, prints it to stderr and exits with code 1. A nil error is a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("command failed", "error", err)
	fmt.Fprintln(stderr, Format(err))
	exitFunc(1)
}

// Fatalf is Fatal for a formatted message
func Fatalf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	logger.Error("command failed", "error", msg)
	fmt.Fprintln(stderr, prefix+msg)
	exitFunc(1)
}
