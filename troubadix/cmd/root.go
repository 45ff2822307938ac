// cmd/root.go
package cmd

import (
	"github.com/spf13/cobra"
)

// Global flags
var (
	Verbose     bool
	JsonLogs    bool
	ProfilePath string
)

var rootCmd = &cobra.Command{
	Use:   "troubadix",
	Short: "Schema-driven ASTERIX decoder and analyzer",
	Long: `
Troubadix is a CLI utility for capturing, decoding, and inspecting ASTERIX
surveillance data from network traffic or files. It is built on the getafix
library, which decodes every category through one generic, schema-driven
engine, and reports every malformed byte as a classified error instead of
silently skipping it.
`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&JsonLogs, "json-logs", false, "Log in JSON format")
	rootCmd.PersistentFlags().StringVar(&ProfilePath, "profile", "", "Stream profile YAML (edition policy and limits)")
}
