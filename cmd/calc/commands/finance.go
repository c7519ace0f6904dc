package commands

import (
	"fmt"
	"io"

	"github.com/Dan9191/calc-service/internal/engine/finance"
	"github.com/spf13/cobra"
)

func emiCmd() *cobra.Command {
	var principal, rate, tenure string
	cmd := &cobra.Command{
		Use:   "emi",
		Short: "Monthly installment of a loan",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			terms, ok := finance.ParseLoanTerms(principal, rate, tenure)
			if !ok {
				return notReady(out)
			}
			res, ok := finance.EMI(terms)
			if !ok {
				return notReady(out)
			}
			return render(out, res, func(w io.Writer) {
				fmt.Fprintf(w, "Monthly EMI:     %.2f\n", res.MonthlyPayment)
				fmt.Fprintf(w, "Total interest:  %.2f\n", res.TotalInterest)
				fmt.Fprintf(w, "Total payment:   %.2f\n", res.TotalPaid)
			})
		},
	}
	cmd.Flags().StringVar(&principal, "principal", "", "loan amount")
	cmd.Flags().StringVar(&rate, "rate", "", "annual interest rate in percent")
	cmd.Flags().StringVar(&tenure, "tenure", "", "loan term in months")
	return cmd
}

func interestCmd() *cobra.Command {
	var principal, rate, years string
	var compound bool
	cmd := &cobra.Command{
		Use:   "interest",
		Short: "Simple or compound interest",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			terms, ok := finance.ParseInterestTerms(principal, rate, years)
			if !ok {
				return notReady(out)
			}
			calc := finance.SimpleInterest
			if compound {
				calc = finance.CompoundInterest
			}
			res, ok := calc(terms)
			if !ok {
				return notReady(out)
			}
			return render(out, res, func(w io.Writer) {
				fmt.Fprintf(w, "Interest:      %.2f\n", res.Interest)
				fmt.Fprintf(w, "Total amount:  %.2f\n", res.TotalAmount)
			})
		},
	}
	cmd.Flags().StringVar(&principal, "principal", "", "principal amount")
	cmd.Flags().StringVar(&rate, "rate", "", "annual rate in percent")
	cmd.Flags().StringVar(&years, "years", "", "period in years")
	cmd.Flags().BoolVar(&compound, "compound", false, "compound yearly instead of simple interest")
	return cmd
}

func investmentCmd() *cobra.Command {
	var initial, monthly, rate, years string
	cmd := &cobra.Command{
		Use:   "investment",
		Short: "Future value of a lump sum plus monthly contributions",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			plan, ok := finance.ParseInvestmentPlan(initial, monthly, rate, years)
			if !ok {
				return notReady(out)
			}
			res, ok := finance.Investment(plan)
			if !ok {
				return notReady(out)
			}
			return render(out, res, func(w io.Writer) {
				fmt.Fprintf(w, "Future value:       %.2f\n", res.FutureValue)
				fmt.Fprintf(w, "Total contributed:  %.2f\n", res.TotalContributed)
				fmt.Fprintf(w, "Total return:       %.2f\n", res.TotalReturn)
			})
		},
	}
	cmd.Flags().StringVar(&initial, "initial", "", "initial investment")
	cmd.Flags().StringVar(&monthly, "monthly", "", "monthly contribution")
	cmd.Flags().StringVar(&rate, "rate", "", "expected annual return in percent")
	cmd.Flags().StringVar(&years, "years", "", "investment period in years")
	return cmd
}

func fuelCmd() *cobra.Command {
	var distance, price, mileage string
	cmd := &cobra.Command{
		Use:   "fuel",
		Short: "Fuel needed for a trip and its cost",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			trip, ok := finance.ParseFuelTrip(distance, price, mileage)
			if !ok {
				return notReady(out)
			}
			res, ok := finance.FuelCost(trip)
			if !ok {
				return notReady(out)
			}
			return render(out, res, func(w io.Writer) {
				fmt.Fprintf(w, "Fuel needed:  %.2f\n", res.FuelNeeded)
				fmt.Fprintf(w, "Total cost:   %.2f\n", res.TotalCost)
			})
		},
	}
	cmd.Flags().StringVar(&distance, "distance", "", "trip distance")
	cmd.Flags().StringVar(&price, "price", "", "fuel price per unit")
	cmd.Flags().StringVar(&mileage, "mileage", "", "distance per unit of fuel")
	return cmd
}
