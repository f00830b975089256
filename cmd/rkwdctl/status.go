// cmd/rkwdctl/status.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current watchdog counter value",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		b, err := openBackend(cfg)
		if err != nil {
			return err
		}
		defer b.Close()

		counter, err := b.ReadCounter()
		if err != nil {
			return err
		}

		fmt.Printf("counter: %#x\n", counter)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
