package conf

import (
	"fmt"
	"sort"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/zeptools/gw-dbconn/db/sqldb"
)

const (
	EnvPrefix = "GWDBCONN_"
	DefaultDB = "main"
)

// Conf is the database catalog of an app, keyed by database name.
type Conf struct {
	Default   string                 `json:"default"` // name used when none is given
	Databases map[string]*sqldb.Conf `json:"databases"`
}

// Load builds a Conf from, lowest to highest precedence:
// defaults, the YAML file at path (optional), GWDBCONN_ env vars and changed flags.
//
// Env vars use `__` as the key separator: GWDBCONN_DATABASES__MAIN__PW=secret.
// Flags --type, --dsn, --host, --port, --user, --pw and --name set the
// fields of the database selected by --db, which also becomes the default.
func Load(path string, flags *pflag.FlagSet) (*Conf, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]any{
		"default": DefaultDB,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, flagKey(flags, k)), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var c Conf
	if err := k.UnmarshalWithConf("", &c, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// flagFields maps database flags to sqldb.Conf keys.
var flagFields = map[string]string{
	"type": "type",
	"dsn":  "dsn",
	"host": "host",
	"port": "port",
	"user": "user",
	"pw":   "pw",
	"name": "db",
	"tz":   "tz",
}

func flagKey(flags *pflag.FlagSet, k *koanf.Koanf) func(f *pflag.Flag) (string, any) {
	target := k.String("default")
	if f := flags.Lookup("db"); f != nil && f.Changed {
		target = f.Value.String()
	}
	return func(f *pflag.Flag) (string, any) {
		if !f.Changed {
			return "", nil
		}
		if f.Name == "db" {
			return "default", posflag.FlagVal(flags, f)
		}
		if field, ok := flagFields[f.Name]; ok {
			return "databases." + target + "." + field, posflag.FlagVal(flags, f)
		}
		return "", nil
	}
}

// Validate checks every database entry and that Default names one of them.
// A catalog with a single database makes it the default unless another name was chosen.
func (c *Conf) Validate() error {
	for _, name := range c.Names() {
		d := c.Databases[name]
		if d == nil {
			return fmt.Errorf("database %q: empty entry", name)
		}
		if err := d.Validate(); err != nil {
			return fmt.Errorf("database %q: %w", name, err)
		}
	}
	if len(c.Databases) == 1 && c.Default == DefaultDB {
		if _, ok := c.Databases[c.Default]; !ok {
			c.Default = c.Names()[0]
		}
	}
	if len(c.Databases) > 0 {
		if _, ok := c.Databases[c.Default]; !ok {
			return fmt.Errorf("default database %q is not configured", c.Default)
		}
	}
	return nil
}

// Names lists the configured database names in sorted order.
func (c *Conf) Names() []string {
	names := make([]string, 0, len(c.Databases))
	for name := range c.Databases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Database returns the named entry, or the default one when name is empty.
func (c *Conf) Database(name string) (*sqldb.Conf, error) {
	if name == "" {
		name = c.Default
	}
	d, ok := c.Databases[name]
	if !ok {
		return nil, fmt.Errorf("database %q is not configured", name)
	}
	return d, nil
}
