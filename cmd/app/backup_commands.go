package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/piiguard/cmd/app/commands"
	"github.com/allisson/piiguard/internal/app"
	backupService "github.com/allisson/piiguard/internal/backup/service"
	"github.com/allisson/piiguard/internal/config"
)

func backupDirFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "dir",
		Aliases: []string{"d"},
		Value:   "backups",
		Usage:   "Directory holding the encrypted artifact and its hash file",
	}
}

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Value:   "text",
		Usage:   "Output format: 'text' or 'json'",
	}
}

func getBackupCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "backup",
			Usage: "Dump the database and write an encrypted backup",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "input",
					Aliases: []string{"i"},
					Usage:   "Encrypt an existing dump file instead of running BACKUP_DUMP_COMMAND",
				},
				backupDirFlag(),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				backupUseCase, err := container.BackupUseCase()
				if err != nil {
					return err
				}

				return commands.RunBackup(
					ctx,
					backupUseCase,
					container.CommandRunner(),
					container.Logger(),
					commands.BackupParams{
						InputPath: cmd.String("input"),
						Dir:       cmd.String("dir"),
						Format:    cmd.String("format"),
					},
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "restore",
			Usage: "Verify and decrypt a backup, then write and/or replay the dump",
			Flags: []cli.Flag{
				backupDirFlag(),
				&cli.StringFlag{
					Name:    "output",
					Aliases: []string{"o"},
					Usage:   "Write the decrypted dump to this file",
				},
				&cli.BoolFlag{
					Name:  "skip-verify",
					Usage: "Restore even when the artifact does not match its recorded hash",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				backupUseCase, err := container.BackupUseCase()
				if err != nil {
					return err
				}

				var replayer backupService.Replayer
				if runner := container.CommandRunner(); runner.CanReplay() {
					replayer = runner
				}

				return commands.RunRestore(
					ctx,
					backupUseCase,
					replayer,
					container.Logger(),
					commands.RestoreParams{
						Dir:        cmd.String("dir"),
						OutputPath: cmd.String("output"),
						SkipVerify: cmd.Bool("skip-verify"),
					},
					commands.DefaultIO(),
				)
			},
		},
		{
			Name:  "verify-backup",
			Usage: "Check an encrypted backup against its recorded SHA-256",
			Flags: []cli.Flag{
				backupDirFlag(),
				formatFlag(),
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				backupUseCase, err := container.BackupUseCase()
				if err != nil {
					return err
				}

				return commands.RunVerifyBackup(
					ctx,
					backupUseCase,
					container.Logger(),
					cmd.String("dir"),
					cmd.String("format"),
					commands.DefaultIO(),
				)
			},
		},
	}
}
