package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"hraktech_web/content"
	"hraktech_web/services"
	"hraktech_web/services/i18n"
)

func exportCmd() *cobra.Command {
	var (
		out  string
		lang string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the site content to an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			if i18n.Normalize(lang) == "" {
				return fmt.Errorf("unsupported language %q", lang)
			}
			ctx := i18n.WithLocale(context.Background(), i18n.Normalize(lang))

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := services.ExportContent(ctx, content.GetFullConfig(), f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			return f.Close()
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "content.xlsx", "output file")
	cmd.Flags().StringVar(&lang, "lang", "fr", "language of sheet names and headers")
	return cmd
}
