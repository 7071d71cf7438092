package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/piiguard/cmd/app/commands"
	"github.com/allisson/piiguard/internal/app"
	"github.com/allisson/piiguard/internal/config"
)

func getUserCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-user",
			Usage: "Create a user directly in the database (bootstrap the first admin)",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "id",
					Usage: "User id (defaults to a generated UUIDv7)",
				},
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Email address",
				},
				&cli.StringFlag{
					Name:    "full-name",
					Aliases: []string{"n"},
					Usage:   "Full name",
				},
				&cli.StringFlag{
					Name:    "role",
					Aliases: []string{"r"},
					Value:   "admin",
					Usage:   "Role: admin or user",
				},
				&cli.StringFlag{
					Name:  "password",
					Usage: "Password (omit to be prompted)",
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
				if err := cfg.Validate(); err != nil {
					return err
				}
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				userUseCase, err := container.UserUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateUser(
					ctx,
					userUseCase,
					container.Logger(),
					commands.CreateUserParams{
						ID:       cmd.String("id"),
						Email:    cmd.String("email"),
						FullName: cmd.String("full-name"),
						Role:     cmd.String("role"),
						Password: cmd.String("password"),
						Format:   cmd.String("format"),
					},
					commands.DefaultIO(),
				)
			},
		},
	}
}
