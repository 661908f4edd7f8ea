package main

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecdsa/internal/keystore"
	"github.com/smallyu/go-ecdsa/pkg/ecdsa"
)

func newSignCmd() *cobra.Command {
	var (
		message string
		outFile string
	)

	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with the stored private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("message") {
				return errors.New("--message is required")
			}

			priv, err := keystore.LoadPrivateKey(filepath.Join(keyDir, "private.key"))
			if err != nil {
				return err
			}

			sig, err := ecdsa.Sign([]byte(message), priv)
			if err != nil {
				return err
			}
			logger.Debug("generated signature",
				zap.String("r", sig.R.Text(16)),
				zap.String("s", sig.S.Text(16)))

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "0x%s\n", sig.R.Text(16))
			fmt.Fprintf(out, "0x%s\n", sig.S.Text(16))

			if outFile != "" {
				if err := keystore.SaveSignature(outFile, sig); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "message to be signed")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "also write the signature to this file")
	return cmd
}
