package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/contactkeval/option-pricer/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "option-pricer",
	Short: "Black-Scholes pricer for European vanilla options",
	Long: "option-pricer computes the theoretical price of a European vanilla call or put " +
		"with the Black-Scholes closed form. Parameters come from flags, a JSON config " +
		"file, an interactive session, or a REST request.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		verbosity, err := cmd.Flags().GetInt("verbosity")
		if err != nil {
			log.Fatalf("error getting verbosity: %v", err)
		}
		if !cmd.Flags().Changed("verbosity") {
			if env := os.Getenv("PRICER_VERBOSITY"); env != "" {
				if v, err := strconv.Atoi(env); err == nil {
					verbosity = v
				}
			}
		}
		logger.SetVerbosity(verbosity)
	},
}

func main() {
	// optional: a .env can hold PRICER_VERBOSITY and PRICER_RISK_FREE
	if err := godotenv.Load(); err == nil {
		logger.Debugf("loaded .env")
	}

	rootCmd.PersistentFlags().Int("verbosity", 1, "0=errors, 1=info, 2=debug, 3=trace")
	rootCmd.AddCommand(priceCmd, promptCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
