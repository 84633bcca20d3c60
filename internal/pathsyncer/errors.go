package pathsyncer

import "errors"

//ErrConfiguration matches (with errors.Is) every *ConfigurationError.
var ErrConfiguration = errors.New("invalid path syncer configuration")

//ConfigurationError is returned by New when a required setting is missing.
type ConfigurationError struct {
	Field string
}

func (e *ConfigurationError) Error() string {
	return e.Field + " is missing"
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}
