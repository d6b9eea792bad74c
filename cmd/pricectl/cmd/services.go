// Package cmd - catalog listing command
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/light-bringer/cleanprice-service/internal/app/pricing/queries/list_services"
)

var (
	servicesAll      bool
	servicesPageSize int64
	servicesOffset   int64
	servicesFormat   string
)

// servicesCmd lists the bookable catalog
var servicesCmd = &cobra.Command{
	Use:   "services",
	Short: "List catalog services",
	Long: `List the bookable cleaning services and their base prices. Requires
--store.

Examples:
  pricectl services --store
  pricectl services --all --format json --store`,
	RunE: runServices,
}

func init() {
	servicesCmd.Flags().BoolVar(&servicesAll, "all", false, "include inactive services")
	servicesCmd.Flags().Int64Var(&servicesPageSize, "page-size", 50, "maximum services to list")
	servicesCmd.Flags().Int64Var(&servicesOffset, "offset", 0, "services to skip")
	servicesCmd.Flags().StringVarP(&servicesFormat, "format", "f", "cli", "output format (cli, json)")

	rootCmd.AddCommand(servicesCmd)
}

func runServices(cmd *cobra.Command, args []string) error {
	if !useStore {
		return fmt.Errorf("services requires --store")
	}

	opts, err := newOptions(cmd.Context())
	if err != nil {
		return err
	}
	defer opts.Close()

	services, err := opts.ListServices.Execute(cmd.Context(), &list_services.Request{
		ActiveOnly: !servicesAll,
		PageSize:   servicesPageSize,
		Offset:     servicesOffset,
	})
	if err != nil {
		return err
	}

	if servicesFormat == "json" {
		return printJSON(services)
	}

	for _, svc := range services {
		status := ""
		if !svc.Active {
			status = "  (inactive)"
		}
		fmt.Printf("  %-20s %-32s %10.2f%s\n", svc.ServiceID, svc.Name, svc.BasePrice, status)
	}
	return nil
}
