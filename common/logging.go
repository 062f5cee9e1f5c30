// Package common provides the shared logging infrastructure of the driver.
// It implements log output routing that directs error messages to stderr
// while sending other log levels to stdout, enabling proper stream
// separation for containerized and scripted environments.
//
// The logging system is built on logrus for structured logging with custom
// output handling. The driver itself logs request dispatch and response
// bodies at debug and trace level only; applications control verbosity and
// formatting through the global Logger instance.
package common

import (
	"bytes"
	"os"

	"github.com/sirupsen/logrus"
)

// OutputSplitter routes formatted log output to stdout or stderr based on
// the log level of the message.
//
// The splitter examines each formatted message for the error level
// indicator produced by the logrus formatters and routes accordingly:
// error messages go to stderr, everything else goes to stdout. Container
// orchestrators and log aggregation tools can then treat the two streams
// differently.
type OutputSplitter struct{}

// Write implements io.Writer. Messages containing "level=error" are
// written to stderr, all other messages to stdout.
func (splitter *OutputSplitter) Write(p []byte) (n int, err error) {
	if bytes.Contains(p, []byte("level=error")) {
		return os.Stderr.Write(p)
	}
	return os.Stdout.Write(p)
}

// Logger is the global logger instance of the driver. It is pre-configured
// with the OutputSplitter for stream separation; applications may adjust
// level and formatter:
//
//	common.Logger.SetLevel(logrus.DebugLevel)
//	common.Logger.SetFormatter(&logrus.JSONFormatter{})
var Logger = newLogger()

func newLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&OutputSplitter{})
	return logger
}
