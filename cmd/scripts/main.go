package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli"
	"golang.org/x/exp/slog"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	app := cli.NewApp()
	app.Name = "raffle-scripts"
	app.Usage = "operational helpers for the raffle service"
	app.Commands = []cli.Command{
		importEntriesCommand,
		issueTokenCommand,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}
