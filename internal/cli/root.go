// Package cli is the command line front end of genealign. It only collects
// input and prints results; the alignment itself lives in package nw.
package cli

import (
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. GENEALIGN_MAX_LENGTH.
const envPrefix = "GENEALIGN"

// NewRootCmd builds the command tree. Each call returns an independent tree
// with its own viper instance.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "genealign",
		Short:         "Align two sequences with Needleman-Wunsch, optionally banded",
		Version:       "0.1.0",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newAlignCmd(v))

	return root
}

// Execute runs the root command with os.Args. It is called by main.main().
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
