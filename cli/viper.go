package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment overrides, e.g. SVCMAN_UNIT_TYPE.
const EnvPrefix = "SVCMAN"

// NewViper returns a viper instance reading SVCMAN_* environment variables,
// with dashes in keys mapped to underscores.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// BindFlags binds the named flags of cmd to v. A flag set on the command line
// wins over the environment, which wins over the flag default. v.IsSet
// reports whether either source supplied a value.
func BindFlags(v *viper.Viper, cmd *cobra.Command, names ...string) error {
	for _, name := range names {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(name, flag); err != nil {
			return err
		}
	}
	return nil
}
