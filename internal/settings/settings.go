package settings

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/pflag"

	"psync/internal/log"
)

const defaultLogFile = "psync.log"

type Settings struct {
	Source      string
	Dest        string
	SyncPaths   []string
	IgnorePaths []string
	Excludes    []string
	LogLevel    log.Level
	LogToStd    bool
	LogFile     string
	Quiet       bool
}

//Default returns the settings that flags start from.
func Default() *Settings {
	return &Settings{LogLevel: log.InfoLevel, LogFile: defaultLogFile}
}

//AddFlags binds the command line flags onto stg.
func AddFlags(flagSet *pflag.FlagSet, stg *Settings) {
	flagSet.StringArrayVarP(&stg.SyncPaths, "sync", "s", nil,
		"sync only this path (relative to the source), can be repeated; by default everything is synced")
	flagSet.StringArrayVarP(&stg.IgnorePaths, "ignore", "i", nil,
		"skip the directory with exactly this path (relative to the source), can be repeated")
	flagSet.StringArrayVarP(&stg.Excludes, "exclude", "x", nil,
		"skip entries matching this gitignore pattern together with everything below them, can be repeated")
	flagSet.BoolVar(&stg.LogToStd, "log2std", false,
		"if true, then logs are written to the console, otherwise - to the log file")
	flagSet.StringVar(&stg.LogFile, "logfile", stg.LogFile, "path of the log file")
	flagSet.BoolVarP(&stg.Quiet, "quiet", "q", false, "do not print a line for every copied file and made directory")
	flagSet.Var(&stg.LogLevel, "loglvl",
		fmt.Sprintf("level of logging, permitted values are: %v, %v, %v, %v",
			log.DebugLevel, log.InfoLevel, log.WarnLevel, log.ErrorLevel),
	)
}

//Error is an invalid command line: bad flags, wrong positional arguments or inconsistent settings.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

//SetPaths takes the source and destination paths from the positional arguments and validates the result.
func (stg *Settings) SetPaths(args []string) error {
	if len(args) != 2 {
		return &Error{Err: errors.New("exactly two arguments (the source and the destination paths) must present")}
	}
	stg.Source, stg.Dest = args[0], args[1]
	if err := stg.Validate(); err != nil {
		return &Error{Err: err}
	}
	return nil
}

func (stg *Settings) Validate() error {
	if stg.Source == "" {
		return errors.New("the source path is empty")
	}
	if stg.Dest == "" {
		return errors.New("the destination path is empty")
	}

	srcAbs, err := filepath.Abs(stg.Source)
	if err != nil {
		return fmt.Errorf("path %q cannot be converted to absolute: %v", stg.Source, err)
	}
	destAbs, err := filepath.Abs(stg.Dest)
	if err != nil {
		return fmt.Errorf("path %q cannot be converted to absolute: %v", stg.Dest, err)
	}
	if srcAbs == destAbs {
		return errors.New("the source and the destination cannot be the same")
	}

	if !stg.LogLevel.IsValid() {
		return fmt.Errorf("logging level %q does not exist", stg.LogLevel)
	}
	if !stg.LogToStd && stg.LogFile == "" {
		return errors.New("the log file must be set when logs are not written to the console")
	}
	return nil
}
