package main

import (
	"errors"
	"fmt"

	"websakha/internal/contact"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newContactCmd(a *app) *cobra.Command {
	var d contact.Draft
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a contact inquiry without opening the UI",
		Example: `  websakha contact --name "Jane Doe" --email jane@example.com \
    --phone 9998887777 --message "We need a mobile app"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res := a.newClient().Submit(cmd.Context(), &d)
			if res.OK() {
				fmt.Fprintln(cmd.OutOrStdout(), res.Message())
				return nil
			}
			var verr *contact.ValidationError
			if errors.As(res.Err, &verr) {
				a.logger.Warn("inquiry not sent", zap.Stringers("missing", verr.Missing))
			}
			return fmt.Errorf("%s: %w", res.Message(), res.Err)
		},
	}
	f := cmd.Flags()
	f.StringVar(&d.Name, "name", "", "your name (required)")
	f.StringVar(&d.Email, "email", "", "your email (required)")
	f.StringVar(&d.Phone, "phone", "", "your phone number (required)")
	f.StringVar(&d.Subject, "subject", "", "subject")
	f.StringVar(&d.Message, "message", "", "message (required)")
	return cmd
}
