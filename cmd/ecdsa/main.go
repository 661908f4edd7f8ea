// Command ecdsa signs and verifies messages with ECDSA over a short
// Weierstrass curve (secp256k1 by default), storing keys and signatures as
// versioned YAML files.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/smallyu/go-ecdsa/internal/crypto/weierstrass"
)

var (
	keyDir    string
	curveFile string
	verbose   bool

	logger = zap.NewNop()
)

// errVerificationFailed marks a verification failure: already reported to
// the user, only the exit status is left to set.
var errVerificationFailed = errors.New("verification failed")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "ecdsa",
		Short:         "Signature generation and verification through ECDSA",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				l, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				logger = l
			}
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&keyDir, "key-dir", ".", "directory holding private.key and public.key")
	flags.StringVar(&curveFile, "curve-file", "", "YAML file with curve parameters (default: built-in secp256k1)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newKeygenCmd())
	cmd.AddCommand(newKeysCmd())
	cmd.AddCommand(newSignCmd())
	cmd.AddCommand(newVerifyCmd())
	return cmd
}

// loadCurve builds the curve group the commands operate on, either from the
// configured parameter file or the built-in secp256k1 constants.
func loadCurve() (*weierstrass.Curve, error) {
	params := weierstrass.Secp256k1()
	if curveFile != "" {
		loaded, err := weierstrass.LoadParams(curveFile)
		if err != nil {
			return nil, err
		}
		params = loaded
	}
	logger.Debug("using curve", zap.String("name", params.Name))
	return weierstrass.New(params)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errVerificationFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
