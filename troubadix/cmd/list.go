// cmd/list.go
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/asterixkit/getafix/schema"
)

var listSchemaFiles []string

func init() {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List registered ASTERIX categories",
		Long: `Display the categories and editions the decoder is configured with.
Without --schema flags this is the set of built-in editions; with them, the
set loaded from the given XML schema files.`,
		RunE: runList,
	}

	listCmd.Flags().StringArrayVar(&listSchemaFiles, "schema", nil, "XML schema file (repeatable)")

	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	logger := ConfigureLogger(Verbose, JsonLogs)

	decoder, err := buildDecoder(listSchemaFiles)
	if err != nil {
		return err
	}

	reg := decoder.Registry()
	for _, cat := range reg.Categories() {
		for _, ed := range reg.Editions(cat) {
			mandatory := 0
			for _, it := range ed.Items {
				if it.Rule == schema.Mandatory {
					mandatory++
				}
			}
			logger.WithFields(map[string]any{
				"category":  cat.String(),
				"edition":   ed.Tag,
				"uap_slots": len(ed.UAP.Slots),
				"items":     len(ed.Items),
				"mandatory": mandatory,
			}).Info("registered edition")
		}
	}
	return nil
}
