package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

func newTermsCmd(a *app) *cobra.Command {
	var (
		width int
		style string
	)
	cmd := &cobra.Command{
		Use:   "terms",
		Short: "Print the terms and conditions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := glamour.NewTermRenderer(
				glamour.WithStandardStyle(style),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return fmt.Errorf("create renderer: %w", err)
			}
			out, err := r.Render("# " + a.site.TermsTitle + "\n\n" + a.site.Terms)
			if err != nil {
				return fmt.Errorf("render terms: %w", err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().IntVarP(&width, "width", "w", 80, "wrap width")
	cmd.Flags().StringVar(&style, "style", "dark", "glamour style: dark, light, notty, ascii")
	return cmd
}
