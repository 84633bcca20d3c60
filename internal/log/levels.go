package log

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Level string

const (
	DebugLevel Level = "debug"
	InfoLevel  Level = "info"
	WarnLevel  Level = "warn"
	ErrorLevel Level = "error"
)

func (l Level) IsValid() bool {
	_, ok := levelsMapping[Level(strings.ToLower(string(l)))]
	return ok
}

//String, Set and Type make Level usable as a pflag.Value.
func (l *Level) String() string {
	return string(*l)
}

func (l *Level) Set(s string) error {
	lvl := Level(strings.ToLower(s))
	if !lvl.IsValid() {
		return fmt.Errorf("logging level %q does not exist", s)
	}
	*l = lvl
	return nil
}

func (l *Level) Type() string {
	return "level"
}

func (l Level) zapLevel() zapcore.Level {
	return levelsMapping[Level(strings.ToLower(string(l)))]
}

var levelsMapping = map[Level]zapcore.Level{
	DebugLevel: zap.DebugLevel,
	InfoLevel:  zap.InfoLevel,
	WarnLevel:  zap.WarnLevel,
	ErrorLevel: zap.ErrorLevel,
}
