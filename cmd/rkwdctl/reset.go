// cmd/rkwdctl/reset.go
package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/cjb1312/rockchip/internal/wdt"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Force an immediate platform reset",
	Long: `Programs the shortest watchdog timeout and waits for the hardware
to reset the platform. This command does not return.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			return errors.New("refusing to reset the platform without --yes")
		}

		_, _, _, err := bindController()
		if err != nil {
			return err
		}

		// Does not return on hardware. The error path only fires when the
		// watchdog could not be bound, which bindController already rules out.
		return wdt.ForceReset()
	},
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "confirm the reset")
	rootCmd.AddCommand(resetCmd)
}
