package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/goalplan/savings-planner/internal/calculation"
	"github.com/goalplan/savings-planner/internal/compare"
	"github.com/goalplan/savings-planner/internal/config"
	"github.com/goalplan/savings-planner/internal/domain"
	"github.com/goalplan/savings-planner/internal/output"
)

// simpleCLILogger implements calculation.Logger using the standard log package
type simpleCLILogger struct{}

func (simpleCLILogger) Debugf(format string, args ...any) { log.Printf("DEBUG: "+format, args...) }
func (simpleCLILogger) Infof(format string, args ...any)  { log.Printf("INFO: "+format, args...) }
func (simpleCLILogger) Warnf(format string, args ...any)  { log.Printf("WARN: "+format, args...) }
func (simpleCLILogger) Errorf(format string, args ...any) { log.Printf("ERROR: "+format, args...) }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "goalplan %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(os.Stdout, info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.String()
	}
	return ""
}

var rootCmd = &cobra.Command{
	Use:   "goalplan",
	Short: "Savings goal planner CLI",
	Long:  "Projection calculator for couples' savings goals: completion forecasts, scenario comparison, and what-if simulation",
}

// loadPlanAndEngine is shared setup for every plan-consuming command
func loadPlanAndEngine(cmd *cobra.Command, planFile string) (*config.Plan, *calculation.ProjectionEngine, error) {
	parser := config.NewInputParser()
	plan, err := parser.LoadFromFile(planFile)
	if err != nil {
		return nil, nil, err
	}

	engine := calculation.NewProjectionEngineWithAssumptions(plan.BuildAssumptions())
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return plan, engine, nil
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [plan-file]",
	Short: "Project every goal under a scenario's allocations",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		planFile := args[0]

		plan, engine, err := loadPlanAndEngine(cmd, planFile)
		if err != nil {
			log.Fatal(err)
		}

		scenarioName, _ := cmd.Flags().GetString("scenario")
		if scenarioName == "" {
			scenario := plan.DefaultScenario()
			if scenario == nil {
				log.Fatal("plan has no scenarios; add one or pass allocations via a scenario")
			}
			scenarioName = scenario.Name
		}

		input, err := plan.EngineInputForScenario(scenarioName)
		if err != nil {
			log.Fatal(err)
		}

		result := engine.Calculate(input)

		outputFormat, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(outputFormat)
		if formatter == nil {
			log.Fatalf("unsupported format: %s", outputFormat)
		}

		report := &output.Report{
			PlanPath:     planFile,
			ScenarioName: scenarioName,
			GeneratedAt:  time.Now(),
			Profile:      plan.Profile,
			Goals:        plan.Goals,
			Output:       &result,
		}
		data, err := formatter.Format(report)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Print(string(data))
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [plan-file]",
	Short: "Validate a plan file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		planFile := args[0]

		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(planFile); err != nil {
			log.Fatal(err)
		}

		fmt.Printf("Plan file %s is valid\n", planFile)
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [plan-file]",
	Short: "Compare allocation scenarios side by side",
	Long: `Compare a base allocation scenario against alternatives from the same plan.

Examples:
  goalplan compare plan.yaml --base Balanced --with Aggressive
  goalplan compare plan.yaml --base Balanced --with Aggressive,HouseFirst --format csv
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		planFile := args[0]

		plan, engine, err := loadPlanAndEngine(cmd, planFile)
		if err != nil {
			log.Fatal(err)
		}

		baseName, _ := cmd.Flags().GetString("base")
		if baseName == "" {
			scenario := plan.DefaultScenario()
			if scenario == nil {
				log.Fatal("plan has no scenarios to compare")
			}
			baseName = scenario.Name
		}

		withList, _ := cmd.Flags().GetString("with")
		var alternatives []string
		for _, name := range strings.Split(withList, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				alternatives = append(alternatives, trimmed)
			}
		}
		if len(alternatives) == 0 {
			log.Fatal("no alternative scenarios given; use --with NAME[,NAME...]")
		}

		compEngine := compare.NewCompareEngine(engine)
		compSet, err := compEngine.CompareScenarios(context.Background(), plan.Profile, plan.Goals, plan.Scenarios, baseName, alternatives)
		if err != nil {
			log.Fatal(err)
		}
		compSet.PlanPath = planFile

		outputFormat, _ := cmd.Flags().GetString("format")
		switch outputFormat {
		case "table", "":
			fmt.Print((&compare.TableFormatter{}).Format(compSet))
		case "json":
			text, err := (&compare.JSONFormatter{Pretty: true}).Format(compSet)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Println(text)
		case "csv":
			text, err := (&compare.CSVFormatter{}).Format(compSet)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(text)
		default:
			log.Fatalf("unsupported format: %s", outputFormat)
		}
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate [plan-file]",
	Short: "Recalculate with one goal's allocation changed",
	Long: `Run a what-if simulation: replace a single goal's monthly allocation and
show the resulting projections next to the originals.

Example:
  goalplan simulate plan.yaml --scenario Balanced --goal house-fund --amount 1500
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		planFile := args[0]

		plan, engine, err := loadPlanAndEngine(cmd, planFile)
		if err != nil {
			log.Fatal(err)
		}

		goalID, _ := cmd.Flags().GetString("goal")
		if plan.FindGoal(goalID) == nil {
			log.Fatalf("goal %s not found in plan", goalID)
		}

		amountFlag, _ := cmd.Flags().GetString("amount")
		newAmount, err := decimal.NewFromString(amountFlag)
		if err != nil {
			log.Fatalf("invalid amount %q: %v", amountFlag, err)
		}

		scenarioName, _ := cmd.Flags().GetString("scenario")
		if scenarioName == "" {
			scenario := plan.DefaultScenario()
			if scenario == nil {
				log.Fatal("plan has no scenarios")
			}
			scenarioName = scenario.Name
		}

		input, err := plan.EngineInputForScenario(scenarioName)
		if err != nil {
			log.Fatal(err)
		}

		before := engine.Calculate(input)
		after := engine.SimulateAllocationChange(goalID, newAmount, input)

		goal := plan.FindGoal(goalID)
		fmt.Printf("WHAT-IF: %s at %s/mo (was %s/mo)\n", goal.Name,
			output.FormatCurrency(newAmount),
			output.FormatCurrency(input.Allocations.AmountFor(goalID)))
		fmt.Println(strings.Repeat("=", 60))
		printSimulationDelta(&before, &after, goalID)
	},
}

// printSimulationDelta shows the before/after projection for the changed goal
// plus the plan-level totals.
func printSimulationDelta(before, after *domain.EngineOutput, goalID string) {
	beforeProj, beforeOK := before.Projections[goalID]
	afterProj, afterOK := after.Projections[goalID]

	if beforeOK && afterOK {
		fmt.Printf("Before: %s\n", describeProjection(beforeProj))
		fmt.Printf("After:  %s\n", describeProjection(afterProj))
	}

	fmt.Println(strings.Repeat("-", 60))
	fmt.Printf("Total allocated: %s -> %s\n",
		output.FormatCurrency(before.TotalAllocated), output.FormatCurrency(after.TotalAllocated))
	fmt.Printf("Leftover:        %s -> %s\n",
		output.FormatCurrency(before.RemainingDisposable), output.FormatCurrency(after.RemainingDisposable))

	if len(after.Warnings) > 0 {
		fmt.Println("Warnings:")
		for _, warning := range after.Warnings {
			fmt.Printf("  ! %s\n", warning)
		}
	}
}

// describeProjection renders a one-line summary of a goal projection
func describeProjection(p domain.GoalProjection) string {
	if !p.IsReachable {
		return fmt.Sprintf("%s/mo, not reachable within 50 years", output.FormatCurrency(p.MonthlyContribution))
	}
	if *p.MonthsToComplete == 0 {
		return "already complete"
	}
	return fmt.Sprintf("%s/mo, %s (%s), final value %s",
		output.FormatCurrency(p.MonthlyContribution),
		output.FormatMonths(*p.MonthsToComplete),
		p.CompletionDate.Format("Jan 2006"),
		output.FormatCurrency(p.ProjectedFinalValue))
}

var requiredCmd = &cobra.Command{
	Use:   "required [plan-file]",
	Short: "Solve the monthly contribution needed to hit a goal by a date",
	Long: `Compute the constant monthly contribution that reaches a goal's target by a
date. With no --by flag the goal's desired date from the plan is used.

Example:
  goalplan required plan.yaml --goal house-fund --by 2030-06-01
`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		planFile := args[0]

		plan, engine, err := loadPlanAndEngine(cmd, planFile)
		if err != nil {
			log.Fatal(err)
		}

		goalID, _ := cmd.Flags().GetString("goal")
		goal := plan.FindGoal(goalID)
		if goal == nil {
			log.Fatalf("goal %s not found in plan", goalID)
		}

		byFlag, _ := cmd.Flags().GetString("by")
		var targetDate time.Time
		if byFlag != "" {
			targetDate, err = time.Parse("2006-01-02", byFlag)
			if err != nil {
				log.Fatalf("invalid date %q (want YYYY-MM-DD): %v", byFlag, err)
			}
		} else if goal.DesiredDate != nil {
			targetDate = *goal.DesiredDate
		} else {
			log.Fatalf("goal %s has no desired date; pass --by YYYY-MM-DD", goalID)
		}

		required := engine.RequiredMonthlyContribution(*goal, targetDate)
		if required == nil {
			log.Fatalf("target date %s is not in the future", targetDate.Format("2006-01-02"))
		}

		fmt.Printf("Goal:     %s\n", goal.Name)
		fmt.Printf("Target:   %s by %s\n", output.FormatCurrency(goal.TargetAmount), targetDate.Format("2006-01-02"))
		fmt.Printf("Current:  %s\n", output.FormatCurrency(goal.CurrentAmount))
		fmt.Printf("Required: %s/mo\n", output.FormatCurrency(*required))
	},
}

func init() {
	calculateCmd.Flags().StringP("scenario", "s", "", "Scenario name (default: first active scenario)")
	calculateCmd.Flags().StringP("format", "f", "console", "Output format: console, json, csv")
	calculateCmd.Flags().Bool("debug", false, "Enable debug logging")

	compareCmd.Flags().String("base", "", "Base scenario name (default: first active scenario)")
	compareCmd.Flags().String("with", "", "Comma-separated alternative scenario names")
	compareCmd.Flags().StringP("format", "f", "table", "Output format: table, json, csv")
	compareCmd.Flags().Bool("debug", false, "Enable debug logging")

	simulateCmd.Flags().StringP("scenario", "s", "", "Scenario name (default: first active scenario)")
	simulateCmd.Flags().StringP("goal", "g", "", "Goal ID to change")
	simulateCmd.Flags().StringP("amount", "a", "0", "New monthly allocation amount")
	simulateCmd.Flags().Bool("debug", false, "Enable debug logging")
	_ = simulateCmd.MarkFlagRequired("goal")

	requiredCmd.Flags().StringP("goal", "g", "", "Goal ID to solve for")
	requiredCmd.Flags().String("by", "", "Target completion date (YYYY-MM-DD); defaults to the goal's desired date")
	requiredCmd.Flags().Bool("debug", false, "Enable debug logging")
	_ = requiredCmd.MarkFlagRequired("goal")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(requiredCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
