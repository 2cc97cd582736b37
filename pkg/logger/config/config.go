package config

import "errors"

// levels follow zapcore.Level values
const (
	DEBUG_LEVEL = -1
	INFO_LEVEL  = 0
	WARN_LEVEL  = 1
	ERROR_LEVEL = 2
)

type Configuration struct {
	Level      int
	TimeFormat string
}

func (c Configuration) Validate() error {
	if c.Level < DEBUG_LEVEL || c.Level > ERROR_LEVEL {
		return errors.New("LOG_LEVEL must be between -1 (debug) and 2 (error)")
	}
	if c.TimeFormat == "" {
		return errors.New("LOG_TIME_FORMAT must not be empty")
	}
	return nil
}
