package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/digibyte-org/digiid/digiid"
)

func newVerifyCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "verify",
		Short: "Verify a DigiID signature against a claimed address",
		RunE: func(cmd *cobra.Command, args []string) error {
			bindFlags(cmd)
			v := viper.GetViper()

			ok := digiid.SignatureValid(v.GetString("uri"), v.GetString("address"), v.GetString("signature"))
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		},
	}

	c.Flags().String("uri", "", "the digiid:// URI that was signed")
	c.Flags().String("address", "", "the claimed DigiByte address")
	c.Flags().String("signature", "", "the base64 compact signature")
	_ = c.MarkFlagRequired("uri")
	_ = c.MarkFlagRequired("address")
	_ = c.MarkFlagRequired("signature")

	return c
}
