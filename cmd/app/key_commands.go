package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/piiguard/cmd/app/commands"
	"github.com/allisson/piiguard/internal/app"
	"github.com/allisson/piiguard/internal/config"
)

func getKeyCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-keypair",
			Usage: "Generate the RSA key pair that wraps backup keys",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "public-key",
					Usage: "Public key output path (defaults to RSA_PUBLIC_KEY_PATH)",
				},
				&cli.StringFlag{
					Name:  "private-key",
					Usage: "Private key output path (defaults to RSA_PRIVATE_KEY_PATH)",
				},
				&cli.StringFlag{
					Name:    "passphrase",
					Sources: cli.EnvVars("RSA_PRIVATE_KEY_PASSPHRASE"),
					Usage:   "Encrypt the private key as PKCS#8 with this passphrase",
				},
				&cli.IntFlag{
					Name:  "bits",
					Value: commands.DefaultKeyBits,
					Usage: "RSA modulus size",
				},
				&cli.BoolFlag{
					Name:  "force",
					Usage: "Overwrite existing key files",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				params := commands.CreateKeypairParams{
					PublicKeyPath:  cfg.RSAPublicKeyPath,
					PrivateKeyPath: cfg.RSAPrivateKeyPath,
					Passphrase:     cmd.String("passphrase"),
					Bits:           int(cmd.Int("bits")),
					Force:          cmd.Bool("force"),
				}
				if v := cmd.String("public-key"); v != "" {
					params.PublicKeyPath = v
				}
				if v := cmd.String("private-key"); v != "" {
					params.PrivateKeyPath = v
				}

				return commands.RunCreateKeypair(container.Logger(), params, commands.DefaultIO())
			},
		},
	}
}
