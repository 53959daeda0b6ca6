// Package config reads and writes the INI-style repository configuration
// stored in <metadata dir>/config.
package config

import (
	"bytes"
	"io"
	"strings"

	"github.com/go-ini/ini"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

const (
	// CoreSection holds the settings that describe the repository layout.
	CoreSection = "core"

	FormatVersionKey = "repositoryformatversion"
	FileModeKey      = "filemode"
	BareKey          = "bare"
)

var (
	// ErrMissingKey is returned when a required key is not set.
	ErrMissingKey = errors.New("missing key")

	// ErrInvalidValue is returned when a value does not have the expected form.
	ErrInvalidValue = errors.New("invalid value")

	// ErrDuplicateKey is returned by Load when a key is set more than once
	// in a section.
	ErrDuplicateKey = errors.New("duplicate key")
)

// Shadows are kept while parsing only so that Load can reject repeated keys.
var loadOptions = ini.LoadOptions{
	InsensitiveKeys:            true,
	AllowShadows:               true,
	AllowDuplicateShadowValues: true,
}

// Config is a sectioned key/value configuration.
type Config struct {
	file *ini.File
}

// New returns an empty configuration.
func New() *Config {
	return &Config{file: ini.Empty(loadOptions)}
}

// Default returns the configuration written into a freshly created repository.
func Default() *Config {
	c := New()
	c.Set(CoreSection, FormatVersionKey, "0")
	c.Set(CoreSection, FileModeKey, "false")
	c.Set(CoreSection, BareKey, "false")
	return c
}

// Load parses configuration text.
func Load(data []byte) (*Config, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, err
	}
	for _, sec := range f.Sections() {
		for _, k := range sec.Keys() {
			if len(k.ValueWithShadows()) > 1 {
				return nil, errors.Wrapf(ErrDuplicateKey, "%s.%s", sec.Name(), k.Name())
			}
		}
	}
	return &Config{file: f}, nil
}

// Get returns the value of key in section, and whether it is set.
func (c *Config) Get(section, key string) (string, bool) {
	sec, err := c.file.GetSection(section)
	if err != nil || !sec.HasKey(key) {
		return "", false
	}
	return sec.Key(key).String(), true
}

// Set assigns value to key in section, creating the section if needed.
// Changes are in memory until Save or WriteTo.
func (c *Config) Set(section, key, value string) {
	c.file.Section(section).Key(key).SetValue(value)
}

// Sections returns a copy of the configuration as section -> key -> value.
func (c *Config) Sections() map[string]map[string]string {
	out := make(map[string]map[string]string)
	for _, sec := range c.file.Sections() {
		keys := sec.Keys()
		if sec.Name() == ini.DefaultSection && len(keys) == 0 {
			continue
		}
		kv := make(map[string]string, len(keys))
		for _, k := range keys {
			kv[k.Name()] = k.Value()
		}
		out[sec.Name()] = kv
	}
	return out
}

// FormatVersion returns core.repositoryformatversion, which must be a
// non-negative decimal integer, with leading zeros stripped. The value is
// kept as text so versions of any size can be reported.
func (c *Config) FormatVersion() (string, error) {
	v, ok := c.Get(CoreSection, FormatVersionKey)
	if !ok {
		return "", errors.Wrapf(ErrMissingKey, "%s.%s", CoreSection, FormatVersionKey)
	}
	if v == "" || strings.Trim(v, "0123456789") != "" {
		return "", errors.Wrapf(ErrInvalidValue, "%s.%s: %q", CoreSection, FormatVersionKey, v)
	}
	if v = strings.TrimLeft(v, "0"); v == "" {
		v = "0"
	}
	return v, nil
}

// WriteTo serializes the configuration to w.
func (c *Config) WriteTo(w io.Writer) (int64, error) {
	return c.file.WriteTo(w)
}

// Save writes the configuration to path, replacing any existing file.
func (c *Config) Save(fs afero.Fs, path string) error {
	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return err
	}
	if !bytes.HasSuffix(buf.Bytes(), []byte("\n")) {
		buf.WriteByte('\n')
	}
	return afero.WriteFile(fs, path, buf.Bytes(), 0644)
}
