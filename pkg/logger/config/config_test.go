package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Configuration
		wantErr bool
	}{
		{name: "info rfc3339", cfg: Configuration{Level: INFO_LEVEL, TimeFormat: time.RFC3339Nano}},
		{name: "debug", cfg: Configuration{Level: DEBUG_LEVEL, TimeFormat: time.RFC3339}},
		{name: "level too low", cfg: Configuration{Level: -5, TimeFormat: time.RFC3339}, wantErr: true},
		{name: "level too high", cfg: Configuration{Level: 9, TimeFormat: time.RFC3339}, wantErr: true},
		{name: "empty time format", cfg: Configuration{Level: INFO_LEVEL}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
