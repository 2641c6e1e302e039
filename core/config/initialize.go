package config

import (
	"log"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default configuration into dir unless one already
// exists, then loads whatever is there.
func Initialize(fsys afero.Fs, dir string, logger *log.Logger) (*Configuration, error) {
	path := filepath.Join(dir, ConfigurationName)

	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return nil, err
	}

	if exists {
		logger.Printf("%s already exists, leaving it untouched", path)
	} else {
		if err := afero.WriteFile(fsys, path, defaultConfigData, 0644); err != nil {
			return nil, err
		}
		logger.Printf("wrote %s", path)
	}

	return Load(fsys, dir)
}
