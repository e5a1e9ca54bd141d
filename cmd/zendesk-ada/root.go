/*
Copyright © 2024 paul <paul@denknerd.org>
*/

package main

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/fatih/structs"
	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var (
	// Store the result of binding cobra flags
	Config string
	Debug  bool

	// ConfigActual is the resolved config path after homedir expansion.
	ConfigActual string

	ZendeskSubdomain string
	ZendeskEmail     string
	ZendeskToken     string

	AdaHandle string
	AdaToken  string
	// Command to run to retrieve the Ada Knowledge API token
	AdaTokenCmd []string

	IncludeRestricted bool
	ExportDir         string

	ParsedConfig YamlConfig
)

// Build the cobra command that handles our command line tool.
var rootCmd = &cobra.Command{
	Use:   "zendesk-ada",
	Short: "Copy Zendesk Help Center articles into an Ada knowledge source",
	Long: `
This tool grabs articles from a Zendesk Help Center -- filtered by locale,
brand and/or category -- converts them to Markdown, and pushes them into an
Ada knowledge source via the Knowledge API.
`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// You can bind cobra and viper in a few locations, but PersistentPreRunE on the root command works well
		if err := initializeConfig(cmd); err != nil {
			return fmt.Errorf("zendesk-ada: failed to initialise config: %w", err)
		}
		return nil
	},
}

func init() {
	// Define cobra flags, the default value has the lowest (least significant) precedence
	rootCmd.PersistentFlags().StringVar(&Config, "config", "", "config file location (default: ~/.config/zendesk-ada.yaml, respects ZENDESK_ADA_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "display debug output")
	rootCmd.PersistentFlags().StringVar(&ZendeskSubdomain, "zendesk-subdomain", "", "your Zendesk subdomain, e.g. ACCOUNT in ACCOUNT.zendesk.com")
	rootCmd.PersistentFlags().StringVar(&ZendeskEmail, "zendesk-email", "", "Zendesk agent email (required for restricted articles)")
	rootCmd.PersistentFlags().StringVar(&ZendeskToken, "zendesk-token", "", "Zendesk API token (required for restricted articles)")
	rootCmd.PersistentFlags().StringVar(&AdaHandle, "ada-handle", "", "your Ada bot handle, e.g. HANDLE in HANDLE.ada.support")
	rootCmd.PersistentFlags().StringVar(&AdaToken, "ada-token", "", "Ada Knowledge API token")
	rootCmd.PersistentFlags().StringSliceVar(&AdaTokenCmd, "ada-token-cmd", []string{}, "shell command to retrieve the Ada Knowledge API token")
	rootCmd.PersistentFlags().BoolVar(&IncludeRestricted, "include-restricted", false, "include articles behind login (needs Zendesk credentials)")
	rootCmd.PersistentFlags().StringVar(&ExportDir, "export-dir", ".", "directory to write JSON exports into")
}

func initializeConfig(cmd *cobra.Command) error {
	explicit := Config != ""
	if Config == "" {
		// Did the user provide an ENV?
		envConfig := os.Getenv("ZENDESK_ADA_CONFIG")
		if envConfig != "" {
			Config = envConfig
			explicit = true
		} else {
			// As fallback, search for config in home XDG-ish directory
			Config = "~/.config/zendesk-ada.yaml"
		}
	}
	config, err := homedir.Expand(Config)
	if err != nil {
		return fmt.Errorf("zendesk-ada: unable to expand homedir: %w", err)
	}
	ConfigActual = config

	if _, err := os.Stat(ConfigActual); errors.Is(err, os.ErrNotExist) {
		if explicit {
			fmt.Printf("Couldn't read config file %s, does it exist?  Override with --config.\n", ConfigActual)
			return fmt.Errorf("zendesk-ada: specified config file does not exist: %w", err)
		}
		// no config file is fine, flags and env will have to do
		debugLog("no config file at %s, continuing without\n", ConfigActual)
	} else {
		yamlFile, err := os.ReadFile(ConfigActual)
		if err != nil {
			return fmt.Errorf("zendesk-ada: error reading config file: %w", err)
		}

		// I'd like to bark if a user sets a flag we don't recognise:
		if err := yaml.UnmarshalStrict(yamlFile, &ParsedConfig); err != nil {
			return fmt.Errorf("zendesk-ada: issue parsing config file: %w", err)
		}

		// Bind the current command's flags to the parsed YAML
		if err := bindFlags(cmd, ParsedConfig); err != nil {
			return fmt.Errorf("zendesk-ada: failed to bind flags: %w", err)
		}
	}

	// Secrets can also live in a .env file or plain environment variables.
	_ = godotenv.Load()
	if ZendeskEmail == "" {
		ZendeskEmail = os.Getenv("ZENDESK_EMAIL")
	}
	if ZendeskToken == "" {
		ZendeskToken = os.Getenv("ZENDESK_TOKEN")
	}
	if AdaToken == "" {
		AdaToken = os.Getenv("ADA_API_TOKEN")
	}

	return nil
}

type YamlConfig struct {
	IncludeRestricted *bool `yaml:"include-restricted"`
	PublishedOnly     *bool `yaml:"published-only"`

	ZendeskSubdomain string   `yaml:"zendesk-subdomain"`
	ZendeskEmail     string   `yaml:"zendesk-email"`
	ZendeskToken     string   `yaml:"zendesk-token"`
	AdaHandle        string   `yaml:"ada-handle"`
	AdaTokenCmd      []string `yaml:"ada-token-cmd"`
	ExportDir        string   `yaml:"export-dir"`

	Locales    []string `yaml:"locales"`
	Brands     []string `yaml:"brands"`
	Categories []string `yaml:"categories"`
}

// Bind each cobra flag to its associated YAML configuration key
func bindFlags(cmd *cobra.Command, v YamlConfig) error {
	for _, field := range structs.Fields(v) {
		key := field.Tag("yaml")
		if key == "" {
			return fmt.Errorf("zendesk-ada: could not retrieve struct tag 'yaml'")
		}
		if flag := cmd.Flag(key); flag == nil {
			// hmm... the flag is unknown.  but that can legitimately happen if you're running
			// e.g. `list brands` which has no `published-only` flag but your YAML file does
			// define that flag...
			continue
		}
		if !cmd.Flags().Changed(key) {
			switch field.Kind() {
			case reflect.Ptr:
				// err, this is crappy, but i know YamlConfig only uses pointers for bools.....
				b, ok := field.Value().(*bool)
				if !ok {
					return fmt.Errorf("zendesk-ada: found unrecognised field: %+v", field)
				}
				if b != nil {
					cmd.Flags().Set(key, fmt.Sprintf("%v", *b))
				}

			case reflect.String:
				s, ok := field.Value().(string)
				if !ok {
					return fmt.Errorf("zendesk-ada: found unrecognised field: %+v", field)
				}
				if s != "" {
					cmd.Flags().Set(key, s)
				}

			case reflect.Slice:
				ss, ok := field.Value().([]string)
				if !ok {
					return fmt.Errorf("zendesk-ada: found unrecognised field: %+v", field)
				}
				for _, s := range ss {
					// yes, repeatedly calling Set() appends to the slice...
					cmd.Flags().Set(key, s)
				}

			default:
				return fmt.Errorf("zendesk-ada: found unrecognised field: %+v", field)
			}
		}
	}

	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	// Flags are only available after (or inside, presumably) the .Execute() thing.
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("zendesk-ada: execution error: %w", err)
	}

	return nil
}
