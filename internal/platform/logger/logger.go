// Package logger provides structured logging for Greykeep tooling.
// Domain packages never log; only drivers and infrastructure do.
package logger

import (
	"log"
	"os"
	"strings"
)

// Logger provides leveled logging with context prefixes.
type Logger struct {
	infoLogger  *log.Logger
	warnLogger  *log.Logger
	errorLogger *log.Logger
}

// NewLogger creates a new logger instance.
func NewLogger() *Logger {
	return &Logger{
		infoLogger:  log.New(os.Stdout, "[KEEP-INFO] ", log.Ldate|log.Ltime|log.Lshortfile),
		warnLogger:  log.New(os.Stdout, "[KEEP-WARN] ", log.Ldate|log.Ltime|log.Lshortfile),
		errorLogger: log.New(os.Stderr, "[KEEP-ERROR] ", log.Ldate|log.Ltime|log.Lshortfile),
	}
}

// Info logs informational messages.
func (l *Logger) Info(msg string) {
	l.infoLogger.Println(msg)
}

// Warn logs warning messages.
func (l *Logger) Warn(msg string) {
	l.warnLogger.Println(msg)
}

// Error logs error messages.
func (l *Logger) Error(msg string) {
	l.errorLogger.Println(msg)
}

// Report logs a multi-line block (such as an inventory summary) line by
// line, keeping each line under the info prefix.
func (l *Logger) Report(header string, block string) {
	l.infoLogger.Printf("[REPORT:%s]", header)
	for _, line := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
		l.infoLogger.Print(line)
	}
}
