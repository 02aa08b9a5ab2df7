package entities

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/sethvargo/go-envconfig"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment variable that overrides a setting.
const EnvPrefix = "SUBMISSION_TRIGGER_"

const (
	ModeTags = "tags"
	ModeHead = "head"

	BackendGoGit = "gogit"
	BackendGit   = "git"

	BufferingNone = "none"
	BufferingLine = "line"
	BufferingFull = "full"
)

// Settings is the runtime configuration of the trigger.
type Settings struct {
	// Mode selects when a tree is materialized: "tags" only when refs were
	// pushed, "head" on every run.
	Mode     string           `yaml:"mode"     env:"MODE"                validate:"oneof=tags head"`
	Checkout CheckoutSettings `yaml:"checkout" env:", prefix=CHECKOUT_"`
	Scratch  ScratchSettings  `yaml:"scratch"  env:", prefix=SCRATCH_"`
	Output   OutputSettings   `yaml:"output"   env:", prefix=OUTPUT_"`
	Report   ReportSettings   `yaml:"report"   env:", prefix=REPORT_"`
}

// CheckoutSettings configures how a ref is materialized.
type CheckoutSettings struct {
	Backend    string `yaml:"backend"     env:"BACKEND"     validate:"oneof=gogit git"`
	DefaultRef string `yaml:"default_ref" env:"DEFAULT_REF" validate:"required"`
}

// ScratchSettings configures the temporary working tree.
type ScratchSettings struct {
	BaseDir string `yaml:"base_dir" env:"BASE_DIR"`
	Prefix  string `yaml:"prefix"   env:"PREFIX"   validate:"required"`
	Keep    bool   `yaml:"keep"     env:"KEEP"`
}

// OutputSettings makes stdout buffering and encoding explicit.
type OutputSettings struct {
	Buffering string `yaml:"buffering" env:"BUFFERING" validate:"oneof=none line full"`
	Encoding  string `yaml:"encoding"  env:"ENCODING"  validate:"required"`
}

// ReportSettings tunes the report block.
type ReportSettings struct {
	KeyPrefixLength int  `yaml:"key_prefix_length" env:"KEY_PREFIX_LENGTH" validate:"gte=0"`
	Fingerprint     bool `yaml:"fingerprint"       env:"FINGERPRINT"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() Settings {
	return Settings{
		Mode: ModeTags,
		Checkout: CheckoutSettings{
			Backend:    BackendGoGit,
			DefaultRef: "HEAD",
		},
		Scratch: ScratchSettings{
			Prefix: "submission-",
		},
		Output: OutputSettings{
			Buffering: BufferingLine,
			Encoding:  "utf-8",
		},
		Report: ReportSettings{
			KeyPrefixLength: 40, //nolint:mnd // the report shows the first 40 key characters
		},
	}
}

// NewSettings builds the settings from the defaults, the optional config file
// at path and the environment, in that order of precedence (lowest first).
func NewSettings(ctx context.Context, path string, lookuper envconfig.Lookuper) (*Settings, error) {
	settings := DefaultSettings()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
		if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
			return nil, fmt.Errorf("%w: failed to parse config file: %w", ErrInvalidSettings, unmarshalErr)
		}
	}

	for _, field := range []*string{
		&settings.Mode,
		&settings.Checkout.Backend,
		&settings.Checkout.DefaultRef,
		&settings.Scratch.BaseDir,
		&settings.Scratch.Prefix,
		&settings.Output.Buffering,
		&settings.Output.Encoding,
	} {
		*field = expandEnv(*field)
	}

	if lookuper != nil {
		if err := envconfig.ProcessWith(ctx, &envconfig.Config{
			Target:           &settings,
			Lookuper:         envconfig.PrefixLookuper(EnvPrefix, lookuper),
			DefaultOverwrite: true,
		}); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
		}
	}

	return &settings, nil
}

// Validate checks the settings for unsupported values.
func (it *Settings) Validate() error {
	err := validate.Struct(it)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return fmt.Errorf("%w: %s has unsupported value %q", ErrInvalidSettings, first.Namespace(), first.Value())
	}
	return fmt.Errorf("%w: %w", ErrInvalidSettings, err)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".submission-trigger.yaml",
		".submission-trigger.yml",
		"submission-trigger.yaml",
		"submission-trigger.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnv expands environment variable references (${VAR}).
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}

	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
