package cmd

import (
	"fmt"

	network_wifi "github.com/dogeorg/wifiscan/pkg/system/network/wifi"
	"github.com/spf13/cobra"
)

var interfacesCmd = &cobra.Command{
	Use:   "interfaces",
	Short: "List wireless interfaces on this host (Linux only)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ifaces, err := network_wifi.ListInterfaces()
		if err != nil {
			return err
		}

		if len(ifaces) == 0 {
			fmt.Println("No wireless interfaces found.")
			return nil
		}

		for _, i := range ifaces {
			line := fmt.Sprintf(" - %s [%s] %s", i.Name, i.MAC, i.Type)
			if i.SSID != "" {
				line += fmt.Sprintf(", connected to %q on %s channel %d", i.SSID, i.Band, i.Channel)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(interfacesCmd)
}
