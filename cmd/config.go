package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alignhq/align/internal/ai"
	"github.com/alignhq/align/internal/config"
	"github.com/alignhq/align/internal/ui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change settings",
	RunE:  runConfigShow,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configSetKeyCmd)
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ui.Header("Settings")
	for _, name := range config.ValidKeyNames() {
		entry, _ := config.LookupKey(name)
		value := entry.Get(cfg)
		if value == "" {
			value = ui.Muted.Render("(unset)")
		}
		ui.Kv(name, value)
	}
	fmt.Println()
	return nil
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List settable keys with defaults",
	RunE: func(_ *cobra.Command, _ []string) error {
		ui.Header("Config keys")
		for _, name := range config.ValidKeyNames() {
			entry, _ := config.LookupKey(name)
			fmt.Printf("  %-24s %s %s\n",
				ui.Accent.Render(name),
				entry.Desc,
				ui.Muted.Render(fmt.Sprintf("(%s, default %q)", entry.Type, entry.DefaultStr)))
		}
		fmt.Println()
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting's value",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		entry, ok := config.LookupKey(args[0])
		if !ok {
			return unknownKeyError(args[0])
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		fmt.Println(entry.Get(cfg))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		entry, ok := config.LookupKey(args[0])
		if !ok {
			return unknownKeyError(args[0])
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := entry.Set(cfg, args[1]); err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		ui.Ok(args[0] + " = " + entry.Get(cfg))
		return nil
	},
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Reset a setting to its default",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		entry, ok := config.LookupKey(args[0])
		if !ok {
			return unknownKeyError(args[0])
		}
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		entry.Unset(cfg)
		if err := config.Save(cfg); err != nil {
			return err
		}
		ui.Ok(args[0] + " reset to default.")
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print config and data locations",
	RunE: func(_ *cobra.Command, _ []string) error {
		paths := config.GetPaths()
		ui.Kv("Config", paths.ConfigDir)
		ui.Kv("Data", paths.DataDir)
		ui.Kv("State", paths.StateDir)
		return nil
	},
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key <provider>",
	Short: "Store an API key for an AI provider",
	Long:  `Store an API key for a provider (gemini, claude). The key is read from a hidden prompt and saved with owner-only permissions.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		provider := strings.ToLower(args[0])
		known := false
		for _, name := range ai.Names() {
			if name == provider {
				known = true
			}
		}
		if !known {
			return fmt.Errorf("unknown provider %q (available: %s)", args[0], strings.Join(ai.Names(), ", "))
		}

		key, err := readSecret("API key for " + provider + ": ")
		if err != nil {
			return err
		}
		if key == "" {
			return fmt.Errorf("key must not be empty")
		}

		ks := ai.NewKeyStore()
		if err := ks.Load(); err != nil {
			return err
		}
		ks.Set(provider, key)
		if err := ks.Save(); err != nil {
			return err
		}
		ui.Ok("Key saved for " + provider + ".")
		return nil
	},
}

func unknownKeyError(key string) error {
	return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(config.ValidKeyNames(), ", "))
}
