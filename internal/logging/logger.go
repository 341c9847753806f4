package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/2beens/fitstats/pkg"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

// Setup configures the global logrus logger and returns a func that flushes
// Sentry and closes the log file.
func Setup(params LoggerSetupParams) func() {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	logrus.SetLevel(GetLevel(params.LogLevel))

	sentryEnabled := params.SentryEnabled && params.SentryDSN != ""
	if params.SentryEnabled && !sentryEnabled {
		logrus.Warnln("sentry enabled but SENTRY_DSN not set, skipping")
	}
	if sentryEnabled {
		err := sentry.Init(sentry.ClientOptions{
			Environment:      params.Environment,
			Dsn:              params.SentryDSN,
			TracesSampleRate: 1.0,
			ServerName:       params.SentryServerName,
		})
		if err != nil {
			logrus.Errorf("sentry.Init: %s", err)
			sentryEnabled = false
		} else {
			logrus.AddHook(NewSentryHook([]logrus.Level{
				logrus.PanicLevel,
				logrus.FatalLevel,
				logrus.ErrorLevel,
			}))
			logrus.Infoln("sentry set up")
		}
	}

	var logFile io.Closer
	switch {
	case params.LogFileName == "":
		logrus.SetOutput(os.Stdout)
		logrus.Println("writing logs only to STDOUT")
	default:
		if !strings.HasSuffix(params.LogFileName, ".log") {
			params.LogFileName += ".log"
		}
		lumberJackLogger := &lumberjack.Logger{
			Filename:   params.LogFileName,
			MaxSize:    50, // megabytes
			MaxBackups: 10,
			LocalTime:  false,
			Compress:   true,
		}
		logFile = lumberJackLogger

		if params.LogToStdout {
			logrus.SetOutput(pkg.NewCombinedWriter(os.Stdout, lumberJackLogger))
			logrus.Println("writing logs to file and STDOUT")
		} else {
			logrus.SetOutput(lumberJackLogger)
		}
	}

	return func() {
		if sentryEnabled {
			sentry.Flush(5 * time.Second)
		}
		if logFile != nil {
			_ = logFile.Close()
		}
	}
}

func GetLevel(level string) logrus.Level {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return logrus.TraceLevel
	}
	return parsed
}
