package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/seo-optimizer/backend/preview"
)

type previewOptions struct {
	fields preview.MetaFields
	output string
}

// NewPreviewCmd renders the channel previews of a set of meta fields.
func NewPreviewCmd() *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview [flags]",
		Short: "Preview meta fields on search and social channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOutput(opts.output); err != nil {
				return err
			}
			set := preview.Generate(opts.fields)
			out := cmd.OutOrStdout()
			if opts.output == outputJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(set)
			}
			printPreview(out, set)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.fields.Title, "title", "", "Meta title")
	cmd.Flags().StringVar(&opts.fields.Description, "description", "", "Meta description")
	cmd.Flags().StringVar(&opts.fields.URL, "url", "", "Page URL")
	cmd.Flags().StringVar(&opts.fields.Image, "image", "", "Social share image URL")
	cmd.Flags().StringVarP(&opts.fields.FocusKeyword, "keyword", "k", "", "Focus keyword")
	cmd.Flags().StringVarP(&opts.output, "output", "o", outputHuman, "Output format (human, json)")

	return cmd
}
