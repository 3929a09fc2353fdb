package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/fivetwenty-io/congress-client/internal/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	configDirName  = ".congress"
	configFileName = "config.yml"

	configSetArgCount = 2
)

// Config represents the CLI configuration file.
type Config struct {
	APIKey  string `json:"api_key,omitempty"  yaml:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Output  string `json:"output,omitempty"   yaml:"output,omitempty"`
	Verbose bool   `json:"verbose"            yaml:"verbose"`
}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage congress CLI configuration including the API key and output settings",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigSetAPIKeyCommand())
	cmd.AddCommand(newConfigPathCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective CLI configuration with the API key masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := maskConfig(loadConfig())

			return renderOutput(config, func() error {
				return renderTable([]string{"Property", "Value"}, [][]string{
					{"API Key", formatConfigValue(config.APIKey)},
					{"Base URL", formatConfigValue(config.BaseURL)},
					{"Output", formatConfigValue(config.Output)},
					{"Verbose", strconv.FormatBool(config.Verbose)},
				})
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: api_key, base_url, output, verbose",
		Args:  cobra.ExactArgs(configSetArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			value := args[1]
			if args[0] == keyAPIKey {
				value = constants.MaskedSecret
			}

			_, _ = fmt.Fprintf(os.Stdout, "Set %s to %s\n", args[0], value)

			return nil
		},
	}
}

func newConfigSetAPIKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-api-key [API_KEY]",
		Short: "Store the api.data.gov API key",
		Long:  "Store the api.data.gov API key in the config file. Prompts without echo when no key is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var apiKey string

			if len(args) == 1 {
				apiKey = args[0]
			} else {
				_, _ = fmt.Fprint(os.Stdout, "API key: ")

				byteKey, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read API key: %w", err)
				}

				_, _ = fmt.Fprintln(os.Stdout)

				apiKey = string(byteKey)
			}

			config := loadConfig()

			err := setConfigValue(config, keyAPIKey, apiKey)
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintln(os.Stdout, "API key saved")

			return nil
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Long:  "Print the path of the config file that set and set-api-key write to",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := configFilePath()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(os.Stdout, path)

			return nil
		},
	}
}

// loadConfig reads the merged configuration from viper.
func loadConfig() *Config {
	return &Config{
		APIKey:  viper.GetString(keyAPIKey),
		BaseURL: viper.GetString(keyBaseURL),
		Output:  viper.GetString(keyOutput),
		Verbose: viper.GetBool(keyVerbose),
	}
}

func maskConfig(config *Config) *Config {
	masked := *config
	if masked.APIKey != "" {
		masked.APIKey = constants.MaskedSecret
	}

	return &masked
}

func setConfigValue(config *Config, key, value string) error {
	switch key {
	case keyAPIKey:
		value = strings.TrimSpace(value)
		if value == "" {
			return constants.ErrEmptyAPIKey
		}

		config.APIKey = value
	case keyBaseURL:
		config.BaseURL = value
	case keyOutput:
		switch value {
		case constants.OutputTable, constants.OutputJSON, constants.OutputYAML:
			config.Output = value
		default:
			return fmt.Errorf("%w: %s", constants.ErrInvalidOutputFormat, value)
		}
	case keyVerbose:
		verbose, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid verbose value %q: %w", value, err)
		}

		config.Verbose = verbose
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// configFilePath returns the file in use, or $HOME/.congress/config.yml.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, configDirName, configFileName), nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func formatConfigValue(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
