package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/contactkeval/option-pricer/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run as a REST server (POST /price, GET /health)",
	Run: func(cmd *cobra.Command, args []string) {
		addr, err := cmd.Flags().GetString("addr")
		if err != nil {
			log.Fatalf("error getting addr: %v", err)
		}
		log.Fatal(api.ListenAndServe(addr))
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
}
