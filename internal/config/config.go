// Package config loads controller settings from a YAML file and the environment.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/joomcode/errorx"
	"github.com/kelseyhightower/envconfig"
	"github.com/mgnsk/viewcam/pkg/camctl"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes the environment variables overriding settings,
// for example VIEWCAM_ORBIT_SENSITIVITY.
const EnvPrefix = "VIEWCAM"

// Load returns the default settings overlaid with the YAML file at path, if
// path is not empty, and then with the environment.
func Load(path string) (camctl.Settings, error) {
	s := camctl.DefaultSettings()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return camctl.Settings{}, errorx.Decorate(err, "config: reading %s", path)
		}
		if err := decode(bytes.NewReader(b), &s); err != nil {
			return camctl.Settings{}, errorx.Decorate(err, "config: decoding %s", path)
		}
	}

	if err := envconfig.Process(EnvPrefix, &s); err != nil {
		return camctl.Settings{}, errorx.Decorate(err, "config: environment")
	}

	if err := s.Validate(); err != nil {
		return camctl.Settings{}, err
	}

	return s, nil
}

func decode(r io.Reader, s *camctl.Settings) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
