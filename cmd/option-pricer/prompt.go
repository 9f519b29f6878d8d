package main

import (
	"errors"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/contactkeval/option-pricer/internal/prompt"
)

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Interactively enter parameters and price contracts until done",
	Run: func(cmd *cobra.Command, args []string) {
		err := prompt.New(os.Stdin, os.Stdout).Run()
		if err != nil && !errors.Is(err, io.EOF) {
			log.Fatalf("prompt session failed: %v", err)
		}
	},
}
