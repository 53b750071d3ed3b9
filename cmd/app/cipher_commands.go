package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/secretkey/cmd/app/commands"
	"github.com/allisson/secretkey/internal/app"
	"github.com/allisson/secretkey/internal/config"
)

func getCipherCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "encrypt",
			Usage: "Encrypt text with AES and print the base64 ciphertext",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "plaintext",
					Aliases:  []string{"t"},
					Required: true,
					Usage:    "Text to encrypt",
				},
				&cli.StringFlag{
					Name:    "key",
					Aliases: []string{"k"},
					Usage:   "Base64 AES key (omit to use the managed secret key)",
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

				return commands.RunEncrypt(
					ctx,
					cipherUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("plaintext"),
					cmd.String("key"),
					cmd.String("format"),
				)
			},
		},
		{
			Name:  "decrypt",
			Usage: "Decrypt a base64 AES ciphertext and print the text",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "ciphertext",
					Aliases:  []string{"c"},
					Required: true,
					Usage:    "Base64 ciphertext to decrypt",
				},
				&cli.StringFlag{
					Name:    "key",
					Aliases: []string{"k"},
					Usage:   "Base64 AES key (omit to use the managed secret key)",
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

				return commands.RunDecrypt(
					ctx,
					cipherUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("ciphertext"),
					cmd.String("key"),
					cmd.String("format"),
				)
			},
		},
	}
}
