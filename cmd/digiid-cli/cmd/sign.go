package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/digibyte-org/digiid/keys"
	"github.com/digibyte-org/digiid/secp256k1/ecdsa"
)

func newSignCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "sign",
		Short: "Sign a DigiID challenge URI with a WIF-encoded private key",
		RunE: func(cmd *cobra.Command, args []string) error {
			bindFlags(cmd)
			v := viper.GetViper()

			signature, err := ecdsa.SignMessage(v.GetString("uri"), v.GetString("wif"), keys.VersionP2PKH)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), signature)
			return nil
		},
	}

	c.Flags().String("uri", "", "the digiid:// URI to sign")
	c.Flags().String("wif", "", "WIF-encoded private key")
	_ = c.MarkFlagRequired("uri")
	_ = c.MarkFlagRequired("wif")

	return c
}
