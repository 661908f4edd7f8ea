package main

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/smallyu/go-ecdsa/internal/keystore"
	"github.com/smallyu/go-ecdsa/pkg/ecdsa"
)

func newVerifyCmd() *cobra.Command {
	var (
		message  string
		signArgs []string
		sigFile  string
		keyPath  string
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify the signature of a message",
		Long: `Verify the signature of a message against the author's public key.

The signature is given either inline as --sign R,S (hex with 0x prefix, or
decimal) or as a signature file written by "sign --out".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("message") {
				return errors.New("--message is required")
			}
			if keyPath == "" {
				return errors.New("--key is required")
			}

			sig, err := resolveSignature(signArgs, sigFile)
			if err != nil {
				return err
			}

			pub, err := keystore.LoadPublicKey(keyPath)
			if err != nil {
				return err
			}

			ok, err := ecdsa.Verify([]byte(message), sig, pub)
			if err != nil && !errors.Is(err, ecdsa.ErrMalformedSignature) {
				return err
			}

			out := cmd.OutOrStdout()
			if !ok {
				fmt.Fprintln(out, "Verification Failed!")
				return errVerificationFailed
			}
			fmt.Fprintln(out, "Verification Successful!")
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "message to be verified")
	cmd.Flags().StringSliceVarP(&signArgs, "sign", "s", nil, "signature as R,S")
	cmd.Flags().StringVarP(&sigFile, "sig-file", "f", "", "signature file written by sign --out")
	cmd.Flags().StringVarP(&keyPath, "key", "k", "", "file path of the author's public key")
	return cmd
}

// resolveSignature builds the signature from either the inline R,S pair or
// a signature file, rejecting ambiguous or missing input.
func resolveSignature(signArgs []string, sigFile string) (*ecdsa.Signature, error) {
	switch {
	case len(signArgs) > 0 && sigFile != "":
		return nil, errors.New("--sign and --sig-file are mutually exclusive")
	case sigFile != "":
		return keystore.LoadSignature(sigFile)
	case len(signArgs) == 2:
		r, err := parseSignatureInt(signArgs[0])
		if err != nil {
			return nil, errors.Wrap(err, "signature r")
		}
		s, err := parseSignatureInt(signArgs[1])
		if err != nil {
			return nil, errors.Wrap(err, "signature s")
		}
		return &ecdsa.Signature{R: r, S: s}, nil
	case len(signArgs) > 0:
		return nil, errors.Errorf("--sign takes exactly two values R,S; got %d", len(signArgs))
	default:
		return nil, errors.New("either --sign or --sig-file is required")
	}
}

func parseSignatureInt(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	base := 10
	if strings.HasPrefix(strings.ToLower(s), "0x") {
		s = s[2:]
		base = 16
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, errors.Errorf("invalid integer %q", s)
	}
	return v, nil
}
