// cmd/rkwdctl/intervals.go
package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cjb1312/rockchip/internal/wdt"
)

var intervalsCmd = &cobra.Command{
	Use:   "intervals",
	Short: "List the supported timeout ranges",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("encoding  covers up to")
		for _, iv := range wdt.Intervals() {
			d := time.Duration(iv.ThresholdMS) * time.Millisecond
			fmt.Printf("%8d  %v\n", iv.Encoded, d)
		}
	},
}

func init() {
	rootCmd.AddCommand(intervalsCmd)
}
