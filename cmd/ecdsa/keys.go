package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecdsa/internal/keystore"
)

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "Print the stored public and private keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := keystore.LoadPublicKey(filepath.Join(keyDir, "public.key"))
			if err != nil {
				return err
			}
			priv, err := keystore.LoadPrivateKey(filepath.Join(keyDir, "private.key"))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			params := pub.Curve.Params()
			fmt.Fprintln(out, "Public Key:")
			fmt.Fprintf(out, "  curve: %s\n", params.Name)
			fmt.Fprintf(out, "  p:  0x%s\n", params.P.Text(16))
			fmt.Fprintf(out, "  a:  0x%s\n", params.A.Text(16))
			fmt.Fprintf(out, "  b:  0x%s\n", params.B.Text(16))
			fmt.Fprintf(out, "  q:  0x%s\n", params.N.Text(16))
			fmt.Fprintf(out, "  gx: 0x%s\n", params.Gx.Text(16))
			fmt.Fprintf(out, "  gy: 0x%s\n", params.Gy.Text(16))
			fmt.Fprintf(out, "  bx: 0x%s\n", pub.B.X.Text(16))
			fmt.Fprintf(out, "  by: 0x%s\n", pub.B.Y.Text(16))
			fmt.Fprintln(out, "Private Key:")
			fmt.Fprintf(out, "  d:  0x%s\n", priv.D.Text(16))
			return nil
		},
	}
}
