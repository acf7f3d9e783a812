package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/crypto/rand"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/digibyte-org/digiid/digiid"
)

func newChallengeCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "challenge",
		Short: "Build a DigiID challenge URI and a QR helper URL",
		RunE: func(cmd *cobra.Command, args []string) error {
			bindFlags(cmd)
			v := viper.GetViper()

			nonce := v.GetString("nonce")
			if nonce == "" {
				nonce = randomNonce()
			}

			challenge, err := digiid.MakeChallenge(nonce, v.GetString("callback"), !v.GetBool("insecure"))
			if err != nil {
				return err
			}
			uri, err := digiid.GenerateURI(challenge)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), uri)
			fmt.Fprintln(cmd.OutOrStdout(), digiid.QRURL(uri))
			return nil
		},
	}

	c.Flags().String("nonce", "", "challenge nonce (random if omitted)")
	c.Flags().String("callback", "", "absolute callback URL the service listens on")
	c.Flags().Bool("insecure", false, "mark the callback as HTTP rather than HTTPS")
	_ = c.MarkFlagRequired("callback")

	return c
}

func randomNonce() string {
	buf := make([]byte, 16)
	rand.Read(buf)
	return hex.EncodeToString(buf)
}
