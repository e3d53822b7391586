package main

import (
	"fmt"
	"os"
	"strings"

	coconutkit "github.com/jormungand/CoconutKit"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "coconutkit",
	Short: "An in-memory virtual file store",
	Long: `coconutkit keeps a hierarchical file namespace entirely in memory,
backed by a cost-bounded cache that evicts cold payloads together with the
files that own them.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().Int64("cost-limit", 0, "Total payload budget in bytes (0 = unlimited)")
	rootCmd.PersistentFlags().String("log-level", "info", "Minimum log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-file", "", "Mirror logs into a rotated file")
	rootCmd.PersistentFlags().Bool("quiet", false, "Silence terminal log output")

	rootCmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		viper.BindPFlag(flag.Name, flag)
	})
}

func initConfig() {
	viper.SetEnvPrefix("COCONUTKIT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

// newFileManager builds a manager from the resolved flag and env settings.
func newFileManager() (*coconutkit.InMemoryFileManager, error) {
	opts := []coconutkit.Option{
		coconutkit.WithTotalCostLimit(viper.GetInt64("cost-limit")),
		coconutkit.WithLogLevel(viper.GetString("log-level")),
	}

	if file := viper.GetString("log-file"); file != "" {
		opts = append(opts, coconutkit.WithLogFile(file))
	}
	if viper.GetBool("quiet") {
		opts = append(opts, coconutkit.WithoutTerminalLog())
	}

	return coconutkit.NewInMemoryFileManager(opts...)
}
