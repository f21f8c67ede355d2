package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// File points at an optional TOML file providing flag defaults.
type File struct {
	Path string
}

// Values mirrors the TOML schema of the defaults file.
type Values struct {
	Output    string `toml:"output"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
	JSON      bool   `toml:"json"`
}

// Flags returns CLI flags for the defaults file
func (c *File) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "TOML file providing flag defaults",
			Destination: &c.Path,
			Sources:     cli.EnvVars("CARTON_CONFIG"),
		},
	}
}

// Apply loads the defaults file, if configured, into values the user did not
// set explicitly. Flags and environment variables win over the file.
func (c *File) Apply(cmd *cli.Command, loggerCfg *Logger, inspectCfg *Inspect) error {
	if c.Path == "" {
		return nil
	}
	values, err := Load(c.Path)
	if err != nil {
		return err
	}
	Merge(values, cmd.IsSet, loggerCfg, inspectCfg)
	return nil
}

// Load parses a TOML defaults file.
func Load(path string) (*Values, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read config file", goerr.V("path", path))
	}
	var v Values
	if err := toml.Unmarshal(raw, &v); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file", goerr.V("path", path))
	}
	return &v, nil
}

// Merge applies file values to any setting whose flag was not set explicitly.
func Merge(v *Values, isSet func(name string) bool, loggerCfg *Logger, inspectCfg *Inspect) {
	if v.Output != "" && !isSet("output") {
		inspectCfg.OutputDir = v.Output
	}
	if v.LogLevel != "" && !isSet("log-level") {
		loggerCfg.Level = v.LogLevel
	}
	if v.LogFormat != "" && !isSet("log-format") {
		loggerCfg.Format = v.LogFormat
	}
	if v.JSON && !isSet("json") {
		inspectCfg.JSON = true
	}
}
