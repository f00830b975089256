// cmd/rkwdctl/disarm.go
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var disarmCmd = &cobra.Command{
	Use:   "disarm",
	Short: "Disarm the watchdog",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, _, b, err := bindController()
		if err != nil {
			return err
		}
		defer b.Close()

		ctl.Disable()
		fmt.Println("disarmed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(disarmCmd)
}
