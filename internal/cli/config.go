package cli

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Defaults holds run settings read from an optional TOML config file.
// Zero values mean "not set"; explicit flags always win. The struct is
// built once per invocation and passed down, never read from globals.
type Defaults struct {
	Iterations  int    `toml:"iterations"`
	Decimals    *int   `toml:"decimals"` // pointer: 0 is a valid setting
	Freeze      int    `toml:"freeze"`
	NumFrames   int    `toml:"num_frames"`
	OutputDir   string `toml:"output_dir"`
	RampIn      *bool  `toml:"ramp_in"`
	RampOut     *bool  `toml:"ramp_out"`
	ForwardOnly *bool  `toml:"forward_only"`
}

// loadDefaults reads the defaults file. An explicit path must exist; the
// XDG fallback (~/.config/datamorph/config.toml) is optional and an
// absent file yields empty defaults.
func loadDefaults(path string) (Defaults, error) {
	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return Defaults{}, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	var d Defaults
	if _, err := toml.DecodeFile(path, &d); err != nil {
		if !explicit && os.IsNotExist(err) {
			return Defaults{}, nil
		}
		return Defaults{}, err
	}
	return d, nil
}
