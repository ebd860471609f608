package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix        = "APP_"
	defaultConfigDir = "configs"

	// fileSuffix marks an environment variable whose value is the path of a
	// file holding the real value, as mounted by Docker and Kubernetes
	// secrets.
	fileSuffix = "_file"
)

// Option configures Load.
type Option func(*loader)

// WithConfigDir sets the directory holding base.yaml and the profile files.
// Defaults to "configs" relative to the working directory.
func WithConfigDir(dir string) Option {
	return func(l *loader) {
		l.dir = dir
	}
}

// Load builds the configuration for profile from four layers, later ones
// winning:
//
//  1. built-in defaults
//  2. {dir}/base.yaml
//  3. {dir}/{profile}.yaml
//  4. APP_* environment variables
//
// Environment names are matched against the keys the earlier layers
// produced, so underscores inside a key survive:
//
//	APP_SERVER_READ_TIMEOUT                  -> server.read_timeout
//	APP_CLIENT_RETRY_MAX_ATTEMPTS            -> client.retry.max_attempts
//	APP_DIGIFACT_CREDENTIALS_1_PASSWORD      -> digifact.credentials.1.password
//	APP_DIGIFACT_CREDENTIALS_1_PASSWORD_FILE -> digifact.credentials.1.password, read from the named file
//
// The result is validated before it is returned.
func Load(profile string, opts ...Option) (*Config, error) {
	if err := validateProfile(profile); err != nil {
		return nil, err
	}

	l := &loader{k: koanf.New("."), dir: defaultConfigDir}
	for _, opt := range opts {
		opt(l)
	}

	if err := l.defaults(); err != nil {
		return nil, err
	}
	for _, name := range []string{"base", profile} {
		if err := l.yamlFile(name); err != nil {
			return nil, err
		}
	}
	if err := l.environment(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

type loader struct {
	k   *koanf.Koanf
	dir string
}

func (l *loader) defaults() error {
	for key, value := range defaults() {
		if err := l.k.Set(key, value); err != nil {
			return fmt.Errorf("setting default %s: %w", key, err)
		}
	}
	return nil
}

func (l *loader) yamlFile(name string) error {
	path := filepath.Join(l.dir, name+".yaml")
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

func (l *loader) environment() error {
	known := envKeys(l.k.Keys())

	// TransformFunc cannot fail, so unreadable secret files are collected
	// and reported once the provider is done.
	var fileErrs []error

	provider := env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(name, value string) (string, any) {
			name = strings.ToLower(strings.TrimPrefix(name, envPrefix))

			if base, ok := strings.CutSuffix(name, fileSuffix); ok {
				if _, isKey := known[name]; !isKey {
					secret, err := readSecret(value)
					if err != nil {
						fileErrs = append(fileErrs, fmt.Errorf("%s%s: %w", envPrefix, strings.ToUpper(name), err))
						return "", nil
					}
					name, value = base, secret
				}
			}

			if key, ok := known[name]; ok {
				return key, value
			}
			return strings.ReplaceAll(name, "_", "."), value
		},
	})
	if err := l.k.Load(provider, nil); err != nil {
		return fmt.Errorf("loading env vars: %w", err)
	}
	return errors.Join(fileErrs...)
}

func readSecret(path string) (string, error) {
	b, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}

// envKeys maps the env form of every known key ("server_read_timeout") to
// the key itself ("server.read_timeout").
func envKeys(keys []string) map[string]string {
	m := make(map[string]string, len(keys))
	for _, key := range keys {
		m[strings.ReplaceAll(key, ".", "_")] = key
	}
	return m
}

func validateProfile(profile string) error {
	switch {
	case strings.TrimSpace(profile) == "":
		return errors.New("profile must not be empty")
	case strings.ContainsAny(profile, `/\`):
		return fmt.Errorf("profile must not contain path separators, got %q", profile)
	case strings.Contains(profile, ".."):
		return fmt.Errorf("profile must not contain path traversal, got %q", profile)
	}
	return nil
}
