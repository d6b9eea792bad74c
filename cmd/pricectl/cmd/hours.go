// Package cmd - hour-credit commands
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/light-bringer/cleanprice-service/internal/app/credit/domain"
	"github.com/light-bringer/cleanprice-service/internal/app/credit/usecases/consume_credit"
	"github.com/light-bringer/cleanprice-service/internal/app/credit/usecases/purchase_hours"
	"github.com/light-bringer/cleanprice-service/internal/app/credit/usecases/quote_hours"
	"github.com/light-bringer/cleanprice-service/internal/logging"
)

var (
	hoursCount    int64
	hoursCustomer string
	applyCredit   bool
	expiryDays    int
	hoursFormat   string
)

// hoursCmd groups the hour-credit billing commands
var hoursCmd = &cobra.Command{
	Use:   "hours",
	Short: "Hour-credit billing",
	Long: `Quote hour-based bookings, buy hour packages, and redeem credited
hours. Buying and redeeming require --store.

Examples:
  pricectl hours quote --hours 45
  pricectl hours quote --hours 40 --customer cust-1 --apply-credit --store
  pricectl hours buy --customer cust-1 --hours 40 --store
  pricectl hours consume --customer cust-1 --hours 8 --store`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var hoursQuoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Quote an hour-based booking",
	RunE:  runHoursQuote,
}

var hoursBuyCmd = &cobra.Command{
	Use:   "buy",
	Short: "Buy an hour package",
	RunE:  runHoursBuy,
}

var hoursConsumeCmd = &cobra.Command{
	Use:   "consume",
	Short: "Redeem credited hours",
	RunE:  runHoursConsume,
}

func init() {
	for _, c := range []*cobra.Command{hoursQuoteCmd, hoursBuyCmd, hoursConsumeCmd} {
		c.Flags().Int64Var(&hoursCount, "hours", 0, "number of hours")
		c.Flags().StringVar(&hoursCustomer, "customer", "", "customer identifier")
		c.Flags().StringVarP(&hoursFormat, "format", "f", "cli", "output format (cli, json)")
	}
	hoursQuoteCmd.Flags().BoolVar(&applyCredit, "apply-credit", false, "redeem credited hours against the booking")
	hoursBuyCmd.Flags().IntVar(&expiryDays, "expiry-days", 0, "credit lifetime override in days")

	hoursCmd.AddCommand(hoursQuoteCmd)
	hoursCmd.AddCommand(hoursBuyCmd)
	hoursCmd.AddCommand(hoursConsumeCmd)
}

func runHoursQuote(cmd *cobra.Command, args []string) error {
	opts, err := newOptions(cmd.Context())
	if err != nil {
		return err
	}
	defer opts.Close()

	result, err := opts.QuoteHours.Execute(cmd.Context(), &quote_hours.Request{
		CustomerID:  hoursCustomer,
		Hours:       hoursCount,
		ApplyCredit: applyCredit,
	})
	if err != nil {
		return err
	}

	if hoursFormat == "json" {
		return printJSON(hourQuoteView(result))
	}

	b := result.Breakdown
	fmt.Printf("  %-24s %12d\n", "hours", b.Hours)
	fmt.Printf("  %-24s %12s\n", "rate per hour", b.RatePerHour.String())
	fmt.Printf("  %-24s %12s\n", "base", b.Base.RoundCents().String())
	fmt.Printf("  %-24s %12s\n", "service fee", b.ServiceFee.RoundCents().String())
	fmt.Printf("  %-24s %12s\n", "post-work fee", b.PostWorkFee.RoundCents().String())
	fmt.Printf("  %-24s %12s\n", "organization fee", b.OrganizationFee.RoundCents().String())
	fmt.Printf("  %-24s %12s\n", "product fee", b.ProductFee.String())
	fmt.Printf("  %-24s %12s\n", "total", b.FinalPrice.String())
	if b.CreditApplied {
		fmt.Printf("  %-24s %12s\n", "with credit", b.DiscountedPrice.String())
	}
	fmt.Printf("  %-24s %12d\n", "suggested package", result.SuggestedPackage)
	return nil
}

func runHoursBuy(cmd *cobra.Command, args []string) error {
	if !useStore {
		return fmt.Errorf("hours buy requires --store")
	}

	opts, err := newOptions(cmd.Context())
	if err != nil {
		return err
	}
	defer opts.Close()

	result, err := opts.PurchaseHours.Execute(cmd.Context(), &purchase_hours.Request{
		CustomerID: hoursCustomer,
		Hours:      hoursCount,
		ExpiryDays: expiryDays,
	})
	if err != nil {
		return err
	}

	logging.Logger.Info("hour package purchased",
		zap.String("customer_id", hoursCustomer),
		zap.Int64("hours", hoursCount),
		zap.String("price", result.Price.String()))

	if hoursFormat == "json" {
		return printJSON(accountView(result.Account, result.Price.String()))
	}

	fmt.Printf("  %-24s %12s\n", "price", result.Price.String())
	printAccount(result.Account)
	return nil
}

func runHoursConsume(cmd *cobra.Command, args []string) error {
	if !useStore {
		return fmt.Errorf("hours consume requires --store")
	}

	opts, err := newOptions(cmd.Context())
	if err != nil {
		return err
	}
	defer opts.Close()

	account, err := opts.ConsumeCredit.Execute(cmd.Context(), &consume_credit.Request{
		CustomerID: hoursCustomer,
		Hours:      hoursCount,
	})
	if err != nil {
		return err
	}

	if hoursFormat == "json" {
		return printJSON(accountView(account, ""))
	}

	printAccount(account)
	return nil
}

type hourQuoteJSON struct {
	Hours            int64  `json:"hours"`
	RatePerHour      string `json:"rate_per_hour"`
	Base             string `json:"base"`
	ServiceFee       string `json:"service_fee"`
	PostWorkFee      string `json:"post_work_fee"`
	OrganizationFee  string `json:"organization_fee"`
	ProductFee       string `json:"product_fee"`
	FinalPrice       string `json:"final_price"`
	DiscountedPrice  string `json:"discounted_price,omitempty"`
	CreditApplied    bool   `json:"credit_applied"`
	SuggestedPackage int64  `json:"suggested_package"`
}

func hourQuoteView(result *quote_hours.Result) hourQuoteJSON {
	b := result.Breakdown
	view := hourQuoteJSON{
		Hours:            b.Hours,
		RatePerHour:      b.RatePerHour.String(),
		Base:             b.Base.RoundCents().String(),
		ServiceFee:       b.ServiceFee.RoundCents().String(),
		PostWorkFee:      b.PostWorkFee.RoundCents().String(),
		OrganizationFee:  b.OrganizationFee.RoundCents().String(),
		ProductFee:       b.ProductFee.String(),
		FinalPrice:       b.FinalPrice.String(),
		CreditApplied:    b.CreditApplied,
		SuggestedPackage: result.SuggestedPackage,
	}
	if b.DiscountedPrice != nil {
		view.DiscountedPrice = b.DiscountedPrice.String()
	}
	return view
}

type accountJSON struct {
	CustomerID     string `json:"customer_id"`
	TotalHours     int64  `json:"total_hours"`
	UsedHours      int64  `json:"used_hours"`
	AvailableHours int64  `json:"available_hours"`
	ExpiryDate     string `json:"expiry_date"`
	Price          string `json:"price,omitempty"`
}

func accountView(account *domain.HourCreditAccount, price string) accountJSON {
	return accountJSON{
		CustomerID:     account.CustomerID,
		TotalHours:     account.TotalHours,
		UsedHours:      account.UsedHours,
		AvailableHours: account.AvailableHours(),
		ExpiryDate:     account.ExpiryDate.Format("2006-01-02"),
		Price:          price,
	}
}

func printAccount(account *domain.HourCreditAccount) {
	fmt.Printf("  %-24s %12s\n", "customer", account.CustomerID)
	fmt.Printf("  %-24s %12d\n", "total hours", account.TotalHours)
	fmt.Printf("  %-24s %12d\n", "used hours", account.UsedHours)
	fmt.Printf("  %-24s %12d\n", "available hours", account.AvailableHours())
	fmt.Printf("  %-24s %12s\n", "expiry", account.ExpiryDate.Format("2006-01-02"))
}
