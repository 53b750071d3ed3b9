package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/secretkey/cmd/app/commands"
	"github.com/allisson/secretkey/internal/app"
	"github.com/allisson/secretkey/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "normalize-key",
			Usage: "Derive a 16-byte AES key from a passphrase and print it base64-encoded",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "passphrase",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Passphrase to truncate or pad to 16 bytes",
				},
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				cipherUseCase, err := container.CipherUseCase()
				if err != nil {
					return err
				}

				return commands.RunNormalizeKey(
					ctx,
					cipherUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("passphrase"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "secret-key",
			Usage: "Print the managed secret key, creating the key file if needed",
			Flags: []cli.Flag{
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer commands.CloseContainer(container, container.Logger())

				secretKeyUseCase, err := container.SecretKeyUseCase()
				if err != nil {
					return err
				}

				return commands.RunSecretKey(
					ctx,
					secretKeyUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cfg.SecretKeyPath,
					cmd.String("format"),
				)
			},
		},
	}
}
