package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// Config keys exposed through `atelier config`.
const (
	cfgKeyEngineK1     = "engine.k1"
	cfgKeyEngineB      = "engine.b"
	cfgKeyDefaultLimit = "search.default_limit"
	cfgKeyArchiveDir   = "archive.dir"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `View and change configuration.

Keys:
  engine.k1             BM25 term-frequency saturation (> 0)
  engine.b              BM25 length normalisation (0 to 1)
  search.default_limit  default result cap (> 0)
  archive.dir           archive directory override`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("[Engine]")
	cmd.Printf("  k1: %g\n", settings.Engine.K1)
	cmd.Printf("  b: %g\n", settings.Engine.B)
	cmd.Println()

	cmd.Println("[Search]")
	cmd.Printf("  default_limit: %d\n", settings.Search.DefaultLimit)
	cmd.Println()

	cmd.Println("[Archive]")
	if settings.Archive.Dir != "" {
		cmd.Printf("  dir: %s\n", settings.Archive.Dir)
	} else {
		cmd.Printf("  dir: (default)\n")
	}
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	switch args[0] {
	case cfgKeyEngineK1:
		cmd.Printf("%g\n", settings.Engine.K1)
	case cfgKeyEngineB:
		cmd.Printf("%g\n", settings.Engine.B)
	case cfgKeyDefaultLimit:
		cmd.Printf("%d\n", settings.Search.DefaultLimit)
	case cfgKeyArchiveDir:
		cmd.Printf("%s\n", settings.Archive.Dir)
	default:
		return fmt.Errorf("unknown config key %q", args[0])
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]

	switch key {
	case cfgKeyEngineK1, cfgKeyEngineB:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s: %w", value, key, err)
		}
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		k1, b := settings.Engine.K1, settings.Engine.B
		if key == cfgKeyEngineK1 {
			k1 = parsed
		} else {
			b = parsed
		}
		if err := settingsService.SetEngine(k1, b); err != nil {
			return fmt.Errorf("invalid engine settings: %w", err)
		}

	case cfgKeyDefaultLimit:
		limit, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s: %w", value, key, err)
		}
		if err := settingsService.SetDefaultLimit(limit); err != nil {
			return fmt.Errorf("invalid default limit: %w", err)
		}

	case cfgKeyArchiveDir:
		if err := settingsService.SetArchiveDir(value); err != nil {
			return fmt.Errorf("invalid archive dir: %w", err)
		}

	default:
		return fmt.Errorf("unknown config key %q", key)
	}

	cmd.Printf("%s = %s\n", key, value)
	return nil
}
