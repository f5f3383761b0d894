package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ServiceLogger writes leveled log lines to stdout and a timestamped file
// under logs/, one file per process run.
type ServiceLogger struct {
	file       *os.File
	logger     *log.Logger
	multiWrite io.Writer
}

func NewServiceLogger(serviceName string) (*ServiceLogger, error) {
	// Sanitize service name for file system
	sanitized := strings.ReplaceAll(strings.ToLower(serviceName), " ", "_")

	// Create logs directory if it doesn't exist
	logsDir := "logs"
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	// Create log file with timestamp
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logPath := filepath.Join(logsDir, fmt.Sprintf("%s_%s.log", sanitized, timestamp))

	file, err := os.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}

	// Create multi-writer for both file and stdout
	multiWrite := io.MultiWriter(os.Stdout, file)
	logger := log.New(multiWrite, "", log.Ldate|log.Ltime|log.Lmicroseconds)

	return &ServiceLogger{
		file:       file,
		logger:     logger,
		multiWrite: multiWrite,
	}, nil
}

func (sl *ServiceLogger) LogInfo(format string, v ...interface{}) {
	sl.log("INFO", format, v...)
}

func (sl *ServiceLogger) LogError(format string, v ...interface{}) {
	sl.log("ERROR", format, v...)
}

func (sl *ServiceLogger) LogDebug(format string, v ...interface{}) {
	sl.log("DEBUG", format, v...)
}

func (sl *ServiceLogger) log(level string, format string, v ...interface{}) {
	message := fmt.Sprintf(format, v...)
	sl.logger.Printf("[%s] %s", level, message)
}

func (sl *ServiceLogger) Close() error {
	return sl.file.Close()
}
