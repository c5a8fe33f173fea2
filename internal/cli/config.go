package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vijay-prabhu/okapi/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init <path>",
	Short: "Create default configuration file",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	path, err := config.WriteDefault(args[0])
	if errors.Is(err, os.ErrExist) {
		fmt.Fprintf(out, "Config file already exists at %s\n", path)
		fmt.Fprintf(out, "Use 'okapi config show -c %s' to view it\n", path)
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Created config file at %s\n", path)
	fmt.Fprintf(out, "Use it with 'okapi -c %s <file>'\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := cfg.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	out := cmd.OutOrStdout()
	if configPath != "" {
		fmt.Fprintf(out, "# Config file: %s\n\n", configPath)
	} else {
		fmt.Fprintf(out, "# Built-in defaults\n\n")
	}
	fmt.Fprint(out, string(data))
	return nil
}
