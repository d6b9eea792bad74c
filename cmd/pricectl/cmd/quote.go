// Package cmd - quote and simulate commands
package cmd

import (
	"fmt"
	"math"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/light-bringer/cleanprice-service/internal/app/pricing/domain"
	"github.com/light-bringer/cleanprice-service/internal/app/pricing/usecases/quote_booking"
	"github.com/light-bringer/cleanprice-service/internal/app/pricing/usecases/simulate_quote"
	"github.com/light-bringer/cleanprice-service/internal/logging"
	"github.com/light-bringer/cleanprice-service/internal/pkg/money"
)

// bookingFlags are the shared inputs of the quote and simulate
// commands.
type bookingFlags struct {
	services     []string
	basePrice    float64
	area         int64
	cleaningType string
	frequency    string
	urgency      string
	serviceDate  string
	serviceTime  string
	customer     string
	newCustomer  bool
	combo        bool
	daysUntil    int
	format       string
}

func (f *bookingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.services, "services", nil, "catalog service identifiers (requires --store)")
	cmd.Flags().Float64Var(&f.basePrice, "base-price", 0, "base price overriding the catalog subtotal")
	cmd.Flags().Int64Var(&f.area, "area", 0, "property area in square meters")
	cmd.Flags().StringVar(&f.cleaningType, "type", "standard", "cleaning type (standard, deep, move_in_out, commercial, window, carpet)")
	cmd.Flags().StringVar(&f.frequency, "frequency", "once", "booking frequency (once, weekly, biweekly, monthly)")
	cmd.Flags().StringVar(&f.urgency, "urgency", "standard", "booking urgency (standard, express, emergency)")
	cmd.Flags().StringVar(&f.serviceDate, "date", "", "service date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.serviceTime, "time", "", "service time of day (HH:MM)")
	cmd.Flags().StringVar(&f.customer, "customer", "", "customer identifier for loyalty history")
	cmd.Flags().BoolVar(&f.newCustomer, "new-customer", false, "apply the new customer discount")
	cmd.Flags().BoolVar(&f.combo, "combo", false, "apply the combo purchase discount")
	cmd.Flags().IntVar(&f.daysUntil, "days-until", 0, "days until the service date")
	cmd.Flags().StringVarP(&f.format, "format", "f", "cli", "output format (cli, json)")
}

func (f *bookingFlags) override() *money.Money {
	if f.basePrice <= 0 {
		return nil
	}
	return money.FromCents(int64(math.Round(f.basePrice * 100)))
}

func (f *bookingFlags) date() (time.Time, error) {
	if f.serviceDate == "" {
		return time.Time{}, nil
	}
	return time.Parse("2006-01-02", f.serviceDate)
}

var quoteFlags bookingFlags

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Quote a cleaning booking",
	Long: `Run one booking through the dynamic pricing pipeline and print the
itemized breakdown.

Examples:
  pricectl quote --base-price 120 --area 80 --type deep
  pricectl quote --services svc-kitchen,svc-windows --customer cust-1 --store
  pricectl quote --base-price 200 --date 2026-03-07 --time 10:00 --format json`,
	RunE: runQuote,
}

func init() {
	quoteFlags.register(quoteCmd)
}

func runQuote(cmd *cobra.Command, args []string) error {
	date, err := quoteFlags.date()
	if err != nil {
		return fmt.Errorf("invalid --date: %w", err)
	}

	opts, err := newOptions(cmd.Context())
	if err != nil {
		return err
	}
	defer opts.Close()

	result, err := opts.QuoteBooking.Execute(cmd.Context(), &quote_booking.Request{
		ServiceIDs:        quoteFlags.services,
		BasePriceOverride: quoteFlags.override(),
		AreaSqM:           quoteFlags.area,
		CleaningType:      quoteFlags.cleaningType,
		Frequency:         quoteFlags.frequency,
		Urgency:           quoteFlags.urgency,
		ServiceDate:       date,
		ServiceTime:       quoteFlags.serviceTime,
		CustomerID:        quoteFlags.customer,
		IsNewCustomer:     quoteFlags.newCustomer,
		IsComboPurchase:   quoteFlags.combo,
		DaysUntilService:  quoteFlags.daysUntil,
	})
	if err != nil {
		return err
	}

	logging.Logger.Debug("quote computed",
		zap.String("quote_id", result.QuoteID),
		zap.String("final_price", result.FinalPrice.String()))

	breakdown := domain.NewBreakdownFormatter().Format(result)
	if quoteFlags.format == "json" {
		return printJSON(struct {
			QuoteID   string            `json:"quote_id"`
			Breakdown *domain.Breakdown `json:"breakdown"`
		}{result.QuoteID, breakdown})
	}

	fmt.Printf("Quote %s\n", result.QuoteID)
	printBreakdown(breakdown)
	return nil
}

var simulateFlags bookingFlags

// simulateCmd represents the simulate command
var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Compare booking scenarios",
	Long: `Price the same booking under alternative urgency and frequency choices
and flag the cheapest.

Examples:
  pricectl simulate --base-price 200
  pricectl simulate --base-price 200 --area 120 --format json`,
	RunE: runSimulate,
}

func init() {
	simulateFlags.register(simulateCmd)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	date, err := simulateFlags.date()
	if err != nil {
		return fmt.Errorf("invalid --date: %w", err)
	}

	opts, err := newOptions(cmd.Context())
	if err != nil {
		return err
	}
	defer opts.Close()

	scenarios, err := opts.SimulateQuote.Execute(cmd.Context(), &simulate_quote.Request{
		ServiceIDs:        simulateFlags.services,
		BasePriceOverride: simulateFlags.override(),
		AreaSqM:           simulateFlags.area,
		CleaningType:      simulateFlags.cleaningType,
		Frequency:         simulateFlags.frequency,
		Urgency:           simulateFlags.urgency,
		ServiceDate:       date,
		ServiceTime:       simulateFlags.serviceTime,
		CustomerID:        simulateFlags.customer,
		IsNewCustomer:     simulateFlags.newCustomer,
		IsComboPurchase:   simulateFlags.combo,
		DaysUntilService:  simulateFlags.daysUntil,
	})
	if err != nil {
		return err
	}

	lines := domain.NewBreakdownFormatter().FormatScenarios(scenarios)
	if simulateFlags.format == "json" {
		return printJSON(lines)
	}

	for _, line := range lines {
		fmt.Printf("  %-24s %12s\n", line.Label, line.Amount)
	}
	return nil
}

func printBreakdown(breakdown *domain.Breakdown) {
	for _, line := range breakdown.Lines {
		fmt.Printf("  %-24s %12s\n", line.Label, line.Amount)
	}
	fmt.Printf("  %-24s %12s\n", "total", breakdown.Total)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
