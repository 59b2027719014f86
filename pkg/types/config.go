package types

// Config holds backend selection and parameters for Store.Attach.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
	// Prefix is prepended to every table name, dictionary tables included.
	Prefix string `json:"prefix" yaml:"prefix"`
}

// Supported backend names.
const (
	BackendSQLite = "sqlite"
)

// DefaultPrefix is used when Config.Prefix is empty.
const DefaultPrefix = "rb_"

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed, returning a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if len(c.Prefix) > 16 {
		return ErrPrefixInvalid
	}
	for _, r := range c.Prefix {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '_' {
			return ErrPrefixInvalid
		}
	}
	return nil
}

// TablePrefix returns the effective prefix.
func (c Config) TablePrefix() string {
	if c.Prefix == "" {
		return DefaultPrefix
	}
	return c.Prefix
}
