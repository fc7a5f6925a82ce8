package utils

import (
	"io"
	"os"

	"github.com/natefinch/lumberjack"
	"github.com/sirupsen/logrus"
)

func SetVerbose(v bool) {
	if v {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}
}

func IsVerbose() bool {
	return logrus.IsLevelEnabled(logrus.DebugLevel)
}

// SetLogFile keeps logging to stderr and also writes to a rotated file.
func SetLogFile(filename string) {
	if filename == "" {
		return
	}
	logrus.SetOutput(io.MultiWriter(os.Stderr, &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    100,
		MaxBackups: 10,
		MaxAge:     60,
		Compress:   true,
	}))
}
