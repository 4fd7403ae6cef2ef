package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hraktech_web/content"
)

func validateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a website.json document against the content schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			data := content.Raw()
			if file != "" {
				var err error
				if data, err = os.ReadFile(file); err != nil {
					return err
				}
			}
			doc, err := content.Parse(data)
			if err != nil {
				return fmt.Errorf("invalid document: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "services: %d\n", len(doc.Services.Items))
			fmt.Fprintf(out, "technologies: %d\n", len(doc.Technologies.Items))
			fmt.Fprintf(out, "project categories: %d\n", len(doc.Projects.Categories))
			fmt.Fprintf(out, "testimonials: %d\n", len(doc.Testimonials.Items))
			fmt.Fprintf(out, "form fields: %d\n", len(doc.Contact.Form.Fields))
			fmt.Fprintln(out, "OK")
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "document to check (default: the embedded one)")
	return cmd
}
