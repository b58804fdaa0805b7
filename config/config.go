package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
	"golang.org/x/xerrors"
)

// Config is the front-end configuration. Sections mirror the TOML file on
// disk; anything the file omits keeps its default.
type Config struct {
	Global GlobalConfig `toml:"global"`
	Browse BrowseConfig `toml:"browse"`
	GLSA   GLSAConfig   `toml:"glsa"`
}

type GlobalConfig struct {
	EixBin       string `toml:"eix_bin"`
	GLSACheckBin string `toml:"glsa_check_bin"`
}

type BrowseConfig struct {
	SearchFlags       []string `toml:"search_flags"`
	MinimumCharacters int      `toml:"minimum_characters"`
}

type GLSAConfig struct {
	RepoPath string `toml:"repo_path"`
}

// New returns the default configuration.
func New() Config {
	return Config{
		Global: GlobalConfig{
			EixBin:       "eix",
			GLSACheckBin: "glsa-check",
		},
		Browse: BrowseConfig{
			SearchFlags:       []string{"-f", "2"},
			MinimumCharacters: 3,
		},
		GLSA: GLSAConfig{
			RepoPath: "/var/db/repos/gentoo/metadata/glsa",
		},
	}
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "portmeta", "portmeta.toml")
}

// Load reads the configuration file at path, overlaying it on the
// defaults. A missing file is not an error; unknown keys are ignored.
func Load(appFs afero.Fs, path string) (Config, error) {
	cfg := New()

	data, err := afero.ReadFile(appFs, path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, xerrors.Errorf("failed to read config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, xerrors.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
