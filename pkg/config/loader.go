package config

import (
	goerrors "errors"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/go-viper/mapstructure/v2"
	ktoml "github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"

	"github.com/arthur-debert/flexion/pkg/errors"
	"github.com/arthur-debert/flexion/pkg/logging"
)

// rawBytesProvider feeds already-read bytes into koanf, which keeps file
// access on the injected afero filesystem.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, goerrors.New("not implemented")
}

// defaults returns the programmatic base configuration
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"locale": "en",
	}
}

// Load reads a rules file from fsys. The parser is picked by extension:
// .toml, or .yaml/.yml. Environment variables with the FLEXION_ prefix
// override file values (FLEXION_LOCALE overrides "locale").
func Load(fsys afero.Fs, path string) (*Config, error) {
	raw, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read rules file %s", path)
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		parser = ktoml.Parser()
	case ".yaml", ".yml":
		parser = kyaml.Parser()
	default:
		return nil, errors.Newf(errors.ErrConfigLoad, "unsupported rules file extension %q", filepath.Ext(path))
	}

	k := koanf.New(".")

	// 1. Programmatic defaults
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. The rules file itself
	if err := k.Load(&rawBytesProvider{bytes: raw}, parser); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse rules file %s", path)
	}

	// 3. Environment overrides
	if err := k.Load(env.Provider("FLEXION_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "FLEXION_")), "_", ".")
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to unmarshal rules file %s", path)
	}

	return &cfg, nil
}

// Discover looks for a rules file in the XDG config directory, trying
// rules.toml then rules.yaml. A missing file is not an error: Discover
// returns an empty config and an empty path.
func Discover(fsys afero.Fs) (*Config, string, error) {
	logger := logging.GetLogger("config")

	candidates := []string{
		filepath.Join(xdg.ConfigHome, "flexion", "rules.toml"),
		filepath.Join(xdg.ConfigHome, "flexion", "rules.yaml"),
	}

	for _, path := range candidates {
		exists, err := afero.Exists(fsys, path)
		if err != nil {
			return nil, "", errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat %s", path)
		}
		if !exists {
			continue
		}

		logger.Debug().Str("path", path).Msg("Found rules file")
		cfg, err := Load(fsys, path)
		if err != nil {
			return nil, "", err
		}
		return cfg, path, nil
	}

	logger.Debug().Msg("No rules file found, using built-in defaults")
	return &Config{}, "", nil
}
