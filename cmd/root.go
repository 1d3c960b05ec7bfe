package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string
var verbose bool
var logger *zap.SugaredLogger

var rootCmd = &cobra.Command{
	Use:   "djcheckup",
	Short: "Security checkup for deployed Django sites",
	Long: `DJ Checkup probes a deployed Django site over HTTP/HTTPS and runs a
battery of security-posture checks: TLS redirection, security headers,
cookie flags, admin/login path exposure, and debug-mode leakage.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".djcheckup")
			viper.SetConfigType("yaml")
		}
		viper.SetEnvPrefix("DJCHECKUP")
		viper.AutomaticEnv()

		_ = viper.ReadInConfig()

		// init logger
		level := zap.InfoLevel
		if verbose {
			level = zap.DebugLevel
		}
		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(level)
		l, err := zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		logger = l.Sugar()

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.djcheckup.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}
