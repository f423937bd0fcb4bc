package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"edusync/internal/domain"
)

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Turn the global sync switch on",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(true)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Turn the global sync switch off",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setEnabled(false)
	},
}

func setEnabled(enabled bool) error {
	store := GetEngine().Store()
	exists, err := store.Exists(domain.DocTypeLMSSettings, domain.LMSSettingsName)
	if err != nil {
		return err
	}
	if !exists {
		_, err = store.Create(domain.DocTypeLMSSettings, domain.Fields{
			"name":    domain.LMSSettingsName,
			"enabled": enabled,
		})
	} else {
		err = store.SetField(domain.DocTypeLMSSettings, domain.LMSSettingsName, "enabled", enabled)
	}
	if err != nil {
		return err
	}
	if enabled {
		fmt.Println("Sync enabled.")
	} else {
		fmt.Println("Sync disabled.")
	}
	return nil
}

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}
