package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/supplylab/contractlab/internal/compare"
	"github.com/supplylab/contractlab/internal/config"
	"github.com/supplylab/contractlab/internal/domain"
	"github.com/supplylab/contractlab/internal/evaluate"
	"github.com/supplylab/contractlab/internal/output"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "contractlab",
	Short: "Supply chain contract decision calculator",
	Long: "Decision-support calculator for supply chain contract analysis: " +
		"wholesale, buyback, revenue-sharing, option, and quantity-flexibility " +
		"contracts under deterministic or stochastic demand.",
}

var evaluateCmd = &cobra.Command{
	Use:   "evaluate [payload-file]",
	Short: "Evaluate a contract payload",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := config.LoadPayload(args[0])
		if err != nil {
			log.Fatal(err)
		}

		eval := evaluate.Run(*raw)

		format, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(format)
		if formatter == nil {
			log.Fatalf("unsupported output format: %s", format)
		}
		data, err := formatter.Format(eval)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))

		if eval.Result == nil {
			os.Exit(1)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [payload-file]",
	Short: "Validate a contract payload without evaluating it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		raw, err := config.LoadPayload(args[0])
		if err != nil {
			log.Fatal(err)
		}

		if _, errs := config.NewParser().ParsePayload(*raw); len(errs) > 0 {
			fmt.Println("Payload is invalid:")
			for _, msg := range errs {
				fmt.Println("  - " + msg)
			}
			os.Exit(1)
		}
		fmt.Println("Payload is valid.")
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [scenario-file]",
	Short: "Evaluate a scenario set and compare results against the base",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		set, err := config.LoadScenarioSet(args[0])
		if err != nil {
			log.Fatal(err)
		}

		comparison := compare.NewEngine().RunAll(set)
		fmt.Print((&compare.TableFormatter{}).Format(comparison))
	},
}

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "List supported contract types",
	Run: func(cmd *cobra.Command, args []string) {
		for _, ct := range domain.AllContractTypes {
			fmt.Printf("%s (%s)\n  %s\n", ct.DisplayName(), ct, domain.ContractDescriptions[ct])
		}
	},
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "contractlab %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func main() {
	evaluateCmd.Flags().String("format", "text", "Output format: text or json")

	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
