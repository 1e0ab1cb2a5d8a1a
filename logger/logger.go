package logger

import (
	"io"
	"os"
	"path"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"github.com/pkg/errors"
	"github.com/rifflock/lfshook"
	"github.com/sirupsen/logrus"
)

const DefaultTimeFormat = "2006-01-02 15:04:05.000"

var logger = logrus.New()

type Configuration struct {
	Level         logrus.Level
	TimeFormat    string
	LogPath       string
	EnableFileLog bool
	// Output defaults to stderr
	Output io.Writer
}

// ParseLevel maps a properties value such as "debug" onto a logrus level,
// falling back to info for an empty value.
func ParseLevel(level string) (logrus.Level, error) {
	if level == "" {
		return logrus.InfoLevel, nil
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel, errors.Wrapf(err, "parse log level %q", level)
	}
	return lvl, nil
}

func Configure(config *Configuration) error {
	logger.Level = config.Level

	timeFormat := config.TimeFormat
	if timeFormat == "" {
		timeFormat = DefaultTimeFormat
	}

	logger.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: timeFormat,
		FullTimestamp:   true,
	})

	logger.ReplaceHooks(make(logrus.LevelHooks))
	if config.EnableFileLog {
		writerMap := lfshook.WriterMap{}
		for _, level := range []logrus.Level{logrus.DebugLevel, logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel} {
			writer, err := setupWriter(config.LogPath, level.String())
			if err != nil {
				return err
			}
			writerMap[level] = writer
		}
		// 文件中需要禁用颜色代码
		fileFormatter := &logrus.TextFormatter{
			TimestampFormat: timeFormat,
			FullTimestamp:   true,
			DisableColors:   true,
		}
		logger.AddHook(lfshook.NewHook(writerMap, fileFormatter))
	}

	if config.Output != nil {
		logger.SetOutput(config.Output)
	} else {
		logger.SetOutput(os.Stderr)
	}
	return nil
}

func setupWriter(logPath string, level string) (*rotatelogs.RotateLogs, error) {
	logFullPath := path.Join(logPath, level)
	writer, err := rotatelogs.New(
		logFullPath+".%Y%m%d.log",
		rotatelogs.WithMaxAge(7*24*time.Hour),
		rotatelogs.WithRotationTime(24*time.Hour),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "rotate log writer for %s", level)
	}
	return writer, nil
}

func InfoF(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

func DebugF(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

func WarnF(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

func ErrorF(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// WithField returns an entry carrying one structured field.
func WithField(key string, value interface{}) *logrus.Entry {
	return logger.WithField(key, value)
}

func IsEnabledDebug() bool {
	return logger.IsLevelEnabled(logrus.DebugLevel)
}
