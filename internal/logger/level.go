package logger

import (
	"strings"

	"github.com/pkg/errors"
)

type Level int

const (
	LevelOff Level = iota
	LevelError
	LevelInfo
	LevelDebug
	LevelTrace
)

var levelMap = map[string]Level{
	"OFF":   LevelOff,
	"ERROR": LevelError,
	"INFO":  LevelInfo,
	"DEBUG": LevelDebug,
	"TRACE": LevelTrace,
}

func ParseLevel(s string) (Level, error) {
	level, ok := levelMap[strings.ToUpper(s)]
	if !ok {
		return -1, errors.Errorf("invalid level: %s", s)
	}
	return level, nil
}
