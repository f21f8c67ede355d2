package config

import (
	"github.com/urfave/cli/v3"
)

// Inspect holds extraction and listing configuration
type Inspect struct {
	OutputDir string
	ListOnly  bool
	JSON      bool
}

// Flags returns CLI flags for inspection configuration
func (c *Inspect) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Output directory for extracted files",
			Value:       ".",
			Destination: &c.OutputDir,
			Sources:     cli.EnvVars("CARTON_OUTPUT"),
		},
		&cli.BoolFlag{
			Name:        "list",
			Aliases:     []string{"l"},
			Usage:       "List embedded files without extracting",
			Destination: &c.ListOnly,
		},
		&cli.BoolFlag{
			Name:        "json",
			Usage:       "Print the listing as JSON",
			Destination: &c.JSON,
			Sources:     cli.EnvVars("CARTON_JSON"),
		},
	}
}
