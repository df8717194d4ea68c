package cli

import (
	"errors"
	"fmt"

	"github.com/idosos/backend/internal/core/domain"
	"github.com/spf13/cobra"
)

var cepCmd = &cobra.Command{
	Use:   "cep <postal-code>",
	Short: "Look up the address of a postal code",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		addr, err := services.AddressService.Lookup(cmd.Context(), args[0])
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("postal code %s not found", args[0])
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Postal code:  %s\n", addr.PostalCode)
		fmt.Fprintf(out, "Street:       %s\n", addr.Street)
		fmt.Fprintf(out, "Number:       %s\n", addr.Number)
		fmt.Fprintf(out, "Neighborhood: %s\n", addr.Neighborhood)
		fmt.Fprintf(out, "City:         %s\n", addr.City)
		fmt.Fprintf(out, "State:        %s\n", addr.State)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cepCmd)
}
