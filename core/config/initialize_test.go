package config

import (
	"io/ioutil"
	"log"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
)

func TestInitialize(t *testing.T) {
	fsys := afero.NewMemMapFs()
	logger := log.New(ioutil.Discard, "", 0)

	cfg, err := Initialize(fsys, ".", logger)
	if err != nil {
		t.Fatal(err)
	}
	assert.NoError(t, cfg.Validate())

	// Check that the written config loads back.
	loaded, err := Load(fsys, ".")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, cfg, loaded)

	t.Run("is idempotent", func(t *testing.T) {
		again, err := Initialize(fsys, ".", logger)
		assert.NoError(t, err)
		assert.Equal(t, cfg, again)
	})
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), ".")
	assert.Error(t, err)
}

func TestLoadConfigFilePath(t *testing.T) {
	fsys := afero.NewMemMapFs()
	logger := log.New(ioutil.Discard, "", 0)
	if _, err := Initialize(fsys, ".", logger); err != nil {
		t.Fatal(err)
	}

	// Load accepts the path of the file itself, not just its directory.
	cfg, err := Load(fsys, ConfigurationName)
	assert.NoError(t, err)
	assert.NoError(t, cfg.Validate())
}
