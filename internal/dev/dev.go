package dev

import (
	"fmt"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"io"
	"os"
	"sync"
)

var debugSet = os.Getenv("COPYCODE_DEBUG")
var debugPath = os.Getenv("COPYCODE_DEBUG_PATH")

var (
	logger     *logrus.Logger
	loggerOnce sync.Once
)

func Logger() *logrus.Logger {
	loggerOnce.Do(func() {
		logger = logrus.New()
		logger.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
		logger.SetLevel(logrus.DebugLevel)
		if debugSet == "" {
			logger.SetOutput(io.Discard)
			return
		}
		if debugPath == "" {
			debugPath = "copycode.log"
		}
		file, err := os.OpenFile(debugPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			logger.SetOutput(os.Stderr)
			logger.Fatal(err)
		}
		logger.SetOutput(file)
	})
	return logger
}

func Enabled() bool {
	return debugSet != ""
}

func Debug(msg string) {
	if debugSet != "" {
		Logger().Debug(msg)
	}
}

func DebugFields(msg string, fields logrus.Fields) {
	if debugSet != "" {
		Logger().WithFields(fields).Debug(msg)
	}
}

func DebugMsg(component string, msg tea.Msg) {
	if debugSet == "" {
		return
	}
	switch msg.(type) {
	case tea.MouseMsg:
	// skip logging messages that are too frequent
	default:
		Debug(fmt.Sprintf("Update %s: %T", component, msg))
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			Debug(fmt.Sprintf("  Key: '%v'", keyMsg.String()))
		}
	}
}
