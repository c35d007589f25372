package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/wordcycle/internal/cli"
	"codeberg.org/snonux/wordcycle/internal/logging"
	"codeberg.org/snonux/wordcycle/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	cli.ApplyConfig(cmd, flags)

	// The terminal UI owns stdout and stderr, so its logs go to a file
	logFile := flags.LogFile
	if flags.TUIMode && logFile == "" {
		logFile = cli.DefaultLogFile()
	}

	logger, closeLog, err := logging.New(flags.LogLevel, logFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var path string
	if len(args) > 0 {
		path = args[0]
	}

	proc := processor.NewProcessor(flags, logging.Component(logger, "processor"))

	switch {
	case flags.Archive:
		archivePath, err := proc.Archive()
		if err != nil {
			return fmt.Errorf("failed to archive exports: %w", err)
		}
		fmt.Printf("Archived exports to: %s\n", archivePath)
		return nil

	case flags.ListModels:
		return proc.ListModels(ctx)

	case flags.Enrich || flags.GenerateAnki:
		if flags.Enrich {
			outputPath, err := proc.Enrich(ctx, path)
			if err != nil {
				return err
			}
			if outputPath != "" {
				fmt.Printf("Enriched word list saved to: %s\n", outputPath)
				// Export the enriched list rather than the original
				path = outputPath
			}
		}

		if flags.GenerateAnki {
			fmt.Printf("\nGenerating Anki import file...\n")
			outputPath, err := proc.GenerateAnkiFile(path)
			if err != nil {
				return fmt.Errorf("failed to generate Anki file: %w", err)
			}
			fmt.Printf("Anki package created: %s\n", outputPath)
		}
		return nil

	case flags.TUIMode:
		return proc.RunTUIMode(path)

	default:
		// No batch mode requested - launch GUI mode by default
		return proc.RunGUIMode(path)
	}
}
