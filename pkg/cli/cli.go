package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/carton/pkg/cli/config"
	"github.com/m-mizutani/carton/pkg/domain/model"
	"github.com/m-mizutani/carton/pkg/domain/types"
	"github.com/m-mizutani/carton/pkg/infra/container"
	"github.com/m-mizutani/carton/pkg/usecase"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg  config.Logger
		inspectCfg config.Inspect
		fileCfg    config.File
		logger     *slog.Logger
	)

	flags := append(loggerCfg.Flags(), inspectCfg.Flags()...)
	flags = append(flags, fileCfg.Flags()...)

	app := &cli.Command{
		Name:      "carton",
		Usage:     "Identify and extract files embedded in container formats (ZIP, JAR, OLE)",
		Version:   types.Version,
		ArgsUsage: "<filepath>",
		Flags:     flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := fileCfg.Apply(c, &loggerCfg, &inspectCfg); err != nil {
				return nil, err
			}

			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.New("expected exactly one container file path")
			}
			path := c.Args().First()

			if err := os.MkdirAll(inspectCfg.OutputDir, 0755); err != nil {
				return goerr.Wrap(err, "failed to create output directory",
					goerr.V("dir", inspectCfg.OutputDir))
			}

			uc := usecase.NewInspect(container.New())
			report, err := uc.Inspect(ctx, &model.InspectRequest{
				Path:      path,
				OutputDir: inspectCfg.OutputDir,
				ListOnly:  inspectCfg.ListOnly,
			})
			if err != nil {
				return err
			}

			if inspectCfg.ListOnly {
				return printListing(c.Root().Writer, report, inspectCfg.JSON)
			}
			return nil
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
