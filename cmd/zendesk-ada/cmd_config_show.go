/*
Copyright © 2024 paul <paul@denknerd.org>
*/
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Output current config",
	Long: `
Is something not working for you?  Have a look whether your config is as you expect.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Note, you can only talk about persistent flags here.  Command-specific ones won't be
		// visible.
		fmt.Printf("Dump current config state:\n\n")

		fmt.Printf("  Config file: %s\n", Config)
		fmt.Printf("  Debug: %v\n", Debug)
		fmt.Println()

		redacted := ParsedConfig
		if redacted.ZendeskToken != "" {
			redacted.ZendeskToken = "<redacted>"
		}
		rendered, err := yaml.Marshal(redacted)
		if err != nil {
			return fmt.Errorf("cmd: couldn't render parsed config: %w", err)
		}
		fmt.Printf("  Parsed YAML:\n%s\n", rendered)

		fmt.Printf("  ZendeskSubdomain: %s\n", ZendeskSubdomain)
		fmt.Printf("  ZendeskEmail: %s\n", ZendeskEmail)
		fmt.Printf("  AdaHandle: %s\n", AdaHandle)
		fmt.Printf("  AdaTokenCmd: %v\n", AdaTokenCmd)
		fmt.Printf("  IncludeRestricted: %v\n", IncludeRestricted)
		fmt.Printf("  ExportDir: %s\n", ExportDir)

		return nil
	},
}

func init() {
	configCmd.AddCommand(showCmd)
}
