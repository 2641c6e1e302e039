package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.NoError(t, cfg.Validate())
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, "~/.gosh_history", cfg.HistoryFile)
	assert.Equal(t, 500, cfg.HistoryLimit)
}

func TestValidate(t *testing.T) {
	cases := map[string]struct {
		mutate  func(*Configuration)
		wantErr bool
	}{
		"default is valid": {
			mutate: func(c *Configuration) {},
		},
		"bad color mode": {
			mutate:  func(c *Configuration) { c.Color = "sometimes" },
			wantErr: true,
		},
		"missing history file": {
			mutate:  func(c *Configuration) { c.HistoryFile = "" },
			wantErr: true,
		},
		"negative history limit": {
			mutate:  func(c *Configuration) { c.HistoryLimit = -1 },
			wantErr: true,
		},
		"empty prompt is allowed": {
			mutate: func(c *Configuration) { c.Prompt = "" },
		},
	}

	for tn, tc := range cases {
		t.Run(tn, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)

			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
