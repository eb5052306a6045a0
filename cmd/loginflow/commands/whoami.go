package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"loginflow/internal/crypto"
)

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Print the signed-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, ok, err := wire.CurrentSession(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, "Not logged in.")
				return nil
			}
			fmt.Fprintf(out, "User:        %s (#%d)\n", sess.User.Name, sess.User.ID)
			if sess.User.Email != "" {
				fmt.Fprintf(out, "Email:       %s\n", sess.User.Email)
			}
			fmt.Fprintf(out, "Token:       %s\n", crypto.Fingerprint([]byte(sess.AccessToken)))
			fmt.Fprintf(out, "Signed in:   %s\n", sess.SavedAt.Local().Format(time.RFC1123))
			if !sess.ExpiresAt.IsZero() {
				fmt.Fprintf(out, "Expires:     %s\n", sess.ExpiresAt.Local().Format(time.RFC1123))
			}
			return nil
		},
	}
}
