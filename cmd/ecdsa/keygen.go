package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecdsa/internal/keystore"
	"github.com/smallyu/go-ecdsa/pkg/ecdsa"
)

func newKeygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			curve, err := loadCurve()
			if err != nil {
				return err
			}

			pub, priv, err := ecdsa.GenerateKeys(curve)
			if err != nil {
				return err
			}
			// The private scalar itself is never logged.
			logger.Debug("generated key pair",
				zap.String("curve", curve.Params().Name),
				zap.String("public.x", pub.B.X.Text(16)),
				zap.String("public.y", pub.B.Y.Text(16)))

			privPath := filepath.Join(keyDir, "private.key")
			pubPath := filepath.Join(keyDir, "public.key")
			if err := keystore.SavePrivateKey(privPath, priv); err != nil {
				return err
			}
			if err := keystore.SavePublicKey(pubPath, pub); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Key pair generated successfully!")
			return nil
		},
	}
}
