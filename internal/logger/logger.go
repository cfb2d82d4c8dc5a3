package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

var (
	instance *Logger
	once     sync.Once
)

// Logger provides TUI-safe logging: nothing is written to the terminal,
// everything goes to files under the data directory.
type Logger struct {
	fileLogger    *log.Logger
	commandLogger *log.Logger
	logFile       *os.File
	commandFile   *os.File
	mu            sync.Mutex
}

// Init initializes the global logger instance under dir/logs
func Init(dir string) error {
	var err error
	once.Do(func() {
		instance, err = newLogger(dir)
	})
	return err
}

// newLogger creates a new logger instance
func newLogger(dir string) (*Logger, error) {
	logsDir := filepath.Join(dir, "logs")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	logPath := filepath.Join(logsDir, "tedit.log")
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	// Ex commands get their own history file
	commandPath := filepath.Join(logsDir, "commands.log")
	commandFile, err := os.OpenFile(commandPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logFile.Close()
		return nil, fmt.Errorf("failed to open command log file: %w", err)
	}

	return &Logger{
		fileLogger:    log.New(logFile, "", log.LstdFlags|log.Lshortfile),
		commandLogger: log.New(commandFile, "", log.LstdFlags),
		logFile:       logFile,
		commandFile:   commandFile,
	}, nil
}

// Info logs an info message
func Info(format string, args ...interface{}) {
	if instance != nil {
		instance.log("INFO", format, args...)
	}
}

// Error logs an error message
func Error(format string, args ...interface{}) {
	if instance != nil {
		instance.log("ERROR", format, args...)
	}
}

// Debug logs a debug message
func Debug(format string, args ...interface{}) {
	if instance != nil {
		instance.log("DEBUG", format, args...)
	}
}

// Plugin logs a highlighter, linter or shell invocation
func Plugin(name string, detail string) {
	if instance != nil {
		instance.log("PLUGIN", "%s(%s)", name, detail)
	}
}

// Command records an executed command line in the command history file
func Command(line string) {
	if instance != nil {
		instance.mu.Lock()
		defer instance.mu.Unlock()
		instance.commandLogger.Printf(":%s", line)
	}
}

// log writes a formatted message to the main log file
func (l *Logger) log(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	message := fmt.Sprintf(format, args...)
	l.fileLogger.Output(3, fmt.Sprintf("[%s] %s", level, message))
}

// Close closes both log files
func Close() error {
	if instance != nil {
		var err1, err2 error
		if instance.logFile != nil {
			err1 = instance.logFile.Close()
		}
		if instance.commandFile != nil {
			err2 = instance.commandFile.Close()
		}
		if err1 != nil {
			return err1
		}
		return err2
	}
	return nil
}

// SetOutput allows changing the output destination (useful for testing)
func SetOutput(w io.Writer) {
	if instance != nil {
		instance.mu.Lock()
		defer instance.mu.Unlock()
		instance.fileLogger.SetOutput(w)
	}
}
