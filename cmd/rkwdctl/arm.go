// cmd/rkwdctl/arm.go
package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cjb1312/rockchip/internal/wdt"
)

var armTimeout time.Duration

var armCmd = &cobra.Command{
	Use:   "arm",
	Short: "Arm the watchdog",
	Long: `Arms the watchdog with the requested timeout, rounded up to the
nearest supported hardware range. Without --timeout the default
from the config file is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctl, cfg, b, err := bindController()
		if err != nil {
			return err
		}
		defer b.Close()

		timeout := armTimeout
		if timeout == 0 {
			timeout = time.Duration(cfg.Watchdog.TimeoutMs) * time.Millisecond
		}

		if err := ctl.Configure(wdt.ExponentForTimeout(timeout)); err != nil {
			if errors.Is(err, wdt.ErrTimeoutTooLong) {
				return fmt.Errorf("cannot arm: %s exceeds the supported maximum of %dms", timeout, wdt.MaxTimeoutMS)
			}
			return err
		}

		fmt.Printf("armed (%s requested)\n", timeout)
		return nil
	},
}

func init() {
	armCmd.Flags().DurationVarP(&armTimeout, "timeout", "t", 0, "watchdog timeout")
	rootCmd.AddCommand(armCmd)
}
