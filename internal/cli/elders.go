package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"syscall"
	"text/tabwriter"

	"github.com/idosos/backend/internal/core/domain"
	"github.com/idosos/backend/internal/core/service"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	addName          string
	addAge           int
	addGuardianName  string
	addGuardianPhone string
	addPostalCode    string
	addStreet        string
	addNumber        string
	addNeighborhood  string
	addCity          string
	addState         string

	deleteYes bool
)

var eldersCmd = &cobra.Command{
	Use:   "elders",
	Short: "Manage registered elders",
	Long:  "List, register and delete elders directly against the database",
}

var eldersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered elders",
	RunE: func(cmd *cobra.Command, args []string) error {
		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		elders, err := services.ElderService.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list elders: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(elders) == 0 {
			fmt.Fprintln(out, "No elders registered")
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tAGE\tGUARDIAN\tPHONE\tPOSTAL CODE\tCITY\tSTATE")
		for _, e := range elders {
			fmt.Fprintf(w, "%d\t%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
				e.ID, e.Name, e.Age, e.GuardianName, e.GuardianPhone, e.PostalCode, e.City, e.State)
		}
		return w.Flush()
	},
}

var eldersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new elder",
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()
		sub := service.Submission{
			Name:          flagValue(flags.Changed("name"), addName),
			Age:           flagValue(flags.Changed("age"), addAge),
			GuardianName:  flagValue(flags.Changed("guardian-name"), addGuardianName),
			GuardianPhone: flagValue(flags.Changed("guardian-phone"), addGuardianPhone),
			PostalCode:    flagValue(flags.Changed("postal-code"), addPostalCode),
			Street:        flagValue(flags.Changed("street"), addStreet),
			Number:        flagValue(flags.Changed("number"), addNumber),
			Neighborhood:  flagValue(flags.Changed("neighborhood"), addNeighborhood),
			City:          flagValue(flags.Changed("city"), addCity),
			State:         flagValue(flags.Changed("state"), addState),
		}

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		id, err := services.ElderService.Register(cmd.Context(), sub)
		if err != nil {
			return fmt.Errorf("failed to register elder: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Elder registered with id %d\n", id)
		return nil
	},
}

var eldersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an elder by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid id: %s", args[0])
		}

		out := cmd.OutOrStdout()
		if !deleteYes {
			if !term.IsTerminal(int(syscall.Stdin)) {
				return fmt.Errorf("refusing to delete without confirmation, pass --yes")
			}

			fmt.Fprintf(out, "Are you sure you want to delete elder %d? (yes/no): ", id)
			var confirm string
			fmt.Fscanln(os.Stdin, &confirm)
			if confirm != "yes" {
				fmt.Fprintln(out, "Cancelled")
				return nil
			}
		}

		services, err := initServices()
		if err != nil {
			return err
		}
		defer services.Close()

		if err := services.ElderService.Delete(cmd.Context(), id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("elder not found: %d", id)
			}
			return fmt.Errorf("failed to delete elder: %w", err)
		}

		fmt.Fprintf(out, "Elder %d deleted successfully\n", id)
		return nil
	},
}

// flagValue returns nil for flags the user did not pass
func flagValue[T any](changed bool, v T) *T {
	if !changed {
		return nil
	}
	return &v
}

func init() {
	rootCmd.AddCommand(eldersCmd)
	eldersCmd.AddCommand(eldersListCmd)
	eldersCmd.AddCommand(eldersAddCmd)
	eldersCmd.AddCommand(eldersDeleteCmd)

	eldersAddCmd.Flags().StringVar(&addName, "name", "", "Full name")
	eldersAddCmd.Flags().IntVar(&addAge, "age", 0, "Age in years")
	eldersAddCmd.Flags().StringVar(&addGuardianName, "guardian-name", "", "Guardian's name")
	eldersAddCmd.Flags().StringVar(&addGuardianPhone, "guardian-phone", "", "Guardian's phone number")
	eldersAddCmd.Flags().StringVar(&addPostalCode, "postal-code", "", "Postal code (CEP)")
	eldersAddCmd.Flags().StringVar(&addStreet, "street", "", "Street")
	eldersAddCmd.Flags().StringVar(&addNumber, "number", "", "House number")
	eldersAddCmd.Flags().StringVar(&addNeighborhood, "neighborhood", "", "Neighborhood")
	eldersAddCmd.Flags().StringVar(&addCity, "city", "", "City")
	eldersAddCmd.Flags().StringVar(&addState, "state", "", "State")

	eldersDeleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
