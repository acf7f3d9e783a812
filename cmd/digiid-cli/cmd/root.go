package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// NewRootCommand builds the digiid-cli command tree. Configuration
// precedence is flag > environment (DIGIID_*) > config file, wired
// through viper bound to each subcommand's cobra flags.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "digiid-cli <command> [arguments]",
		Short:         "digiid-cli builds, signs, and verifies DigiID login challenges.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.digiid-cli.yaml)")
	cobra.OnInitialize(initConfig)

	root.AddCommand(newChallengeCmd())
	root.AddCommand(newSignCmd())
	root.AddCommand(newVerifyCmd())

	return root
}

func initConfig() {
	v := viper.GetViper()
	v.SetEnvPrefix("digiid")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home)
		v.SetConfigName(".digiid-cli")
		v.SetConfigType("yaml")
	}
	_ = v.ReadInConfig()
}

// bindFlags binds every flag on cmd to viper under its own name, so that
// unset flags fall back to DIGIID_<NAME> environment variables or the
// config file before their cobra-declared default.
func bindFlags(cmd *cobra.Command) {
	v := viper.GetViper()
	_ = v.BindPFlags(cmd.Flags())
}
