package cli

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
)

// configKind is the value type a configuration key accepts.
type configKind int

const (
	kindString configKind = iota
	kindBool
	kindInt
	kindFloat
)

// configKeys lists the settings lexport reads.
var configKeys = map[string]configKind{
	"aws.region":              kindString,
	"aws.profile":             kindString,
	"export.dir":              kindString,
	"export.pretty":           kindBool,
	"export.archive":          kindBool,
	"export.concurrency":      kindInt,
	"lex.requests_per_second": kindFloat,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or change settings",
	Long:  `Settings are stored in config.toml in the configuration directory. Flags take precedence.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Show one or all settings",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	if len(args) == 1 {
		if _, ok := configKeys[args[0]]; !ok {
			return fmt.Errorf("unknown setting: %s", args[0])
		}
		val, ok := configStore.Get(args[0])
		if !ok {
			cmd.Printf("%s is not set\n", args[0])
			return nil
		}
		cmd.Printf("%v\n", val)
		return nil
	}

	keys := make([]string, 0, len(configKeys))
	for k := range configKeys {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		if val, ok := configStore.Get(k); ok {
			cmd.Printf("%s = %v\n", k, val)
		} else {
			cmd.Printf("%s (not set)\n", k)
		}
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}

	key, raw := args[0], args[1]
	kind, ok := configKeys[key]
	if !ok {
		return fmt.Errorf("unknown setting: %s", key)
	}

	val, err := parseConfigValue(kind, raw)
	if err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}

	if err := configStore.Set(key, val); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	cmd.Printf("%s = %v\n", key, val)
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if configStore == nil {
		return errors.New("config store not configured")
	}
	cmd.Println(configStore.Path())
	return nil
}

func parseConfigValue(kind configKind, raw string) (any, error) {
	switch kind {
	case kindBool:
		return strconv.ParseBool(raw)
	case kindInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		if n < 0 {
			return nil, errors.New("must not be negative")
		}
		return n, nil
	case kindFloat:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, err
		}
		if f < 0 {
			return nil, errors.New("must not be negative")
		}
		return f, nil
	default:
		return raw, nil
	}
}
