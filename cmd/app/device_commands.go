package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/lifelog-app/lifelog/cmd/app/commands"
	"github.com/lifelog-app/lifelog/internal/app"
	"github.com/lifelog-app/lifelog/internal/config"
)

func getDeviceCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-device",
			Usage: "Register a new device and print its credential",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "name",
					Aliases:  []string{"n"},
					Required: true,
					Usage:    "Human-readable device name",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				deviceUseCase, err := container.DeviceUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateDevice(
					ctx,
					deviceUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("name"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "list-devices",
			Usage: "List registered devices",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "offset",
					Aliases: []string{"o"},
					Value:   0,
					Usage:   "Number of devices to skip",
				},
				&cli.IntFlag{
					Name:    "limit",
					Aliases: []string{"l"},
					Value:   50,
					Usage:   "Maximum number of devices to list",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				deviceUseCase, err := container.DeviceUseCase()
				if err != nil {
					return err
				}

				return commands.RunListDevices(
					ctx,
					deviceUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					int(cmd.Int("offset")),
					int(cmd.Int("limit")),
				)
			},
		},
		{
			Name:  "deactivate-device",
			Usage: "Deactivate a device so it can no longer authenticate",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "id",
					Aliases:  []string{"i"},
					Required: true,
					Usage:    "Device ID (UUID)",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				deviceUseCase, err := container.DeviceUseCase()
				if err != nil {
					return err
				}

				return commands.RunDeactivateDevice(
					ctx,
					deviceUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("id"),
				)
			},
		},
	}
}
