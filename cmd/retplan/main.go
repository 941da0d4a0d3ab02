package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/retplan/retplan/internal/calculation"
	"github.com/retplan/retplan/internal/compare"
	"github.com/retplan/retplan/internal/config"
	"github.com/retplan/retplan/internal/output"
	"github.com/retplan/retplan/internal/portfolio"
	"github.com/retplan/retplan/internal/server"
	"github.com/retplan/retplan/internal/transform"
	"github.com/retplan/retplan/internal/tui"
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
			fmt.Fprintf(os.Stdout, "retplan %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.String())
			}
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "retplan",
	Short: "Retirement planning calculator CLI",
	Long:  "Projects retirement savings, income and readiness from a planner document",
}

func newEngine(cmd *cobra.Command) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngine()
	if debugMode, _ := cmd.Flags().GetBool("debug"); debugMode {
		engine.SetLogger(simpleCLILogger{})
	}
	return engine
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [input-file]",
	Short: "Calculate the retirement projection for a planner document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		household, err := config.NewInputParser().LoadHousehold(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := newEngine(cmd)
		result := engine.CalculateRetirement(household)

		var analysis *portfolio.Analysis
		if withPortfolio, _ := cmd.Flags().GetBool("portfolio"); withPortfolio {
			a := portfolio.NewOptimizer().Analyze(household)
			analysis = &a
		}

		format, _ := cmd.Flags().GetString("format")
		generator := output.NewReportGenerator(os.Stdout)
		if err := generator.GenerateReport(result, analysis, format); err != nil {
			log.Fatal(err)
		}
	},
}

var scenariosCmd = &cobra.Command{
	Use:   "scenarios [input-file]",
	Short: "Compare the plan across candidate retirement ages",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		household, err := config.NewInputParser().LoadHousehold(args[0])
		if err != nil {
			log.Fatal(err)
		}

		agesStr, _ := cmd.Flags().GetString("ages")
		ages, err := parseAges(agesStr)
		if err != nil {
			log.Fatal(err)
		}

		engine := newEngine(cmd)
		summaries, err := engine.RunScenarios(household, ages)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println("RETIREMENT AGE SCENARIOS")
		fmt.Println(strings.Repeat("=", 64))
		fmt.Printf("%-6s %-18s %-18s %-10s %s\n", "Age", "Total Savings", "Monthly Income", "Readiness", "Target")
		for _, s := range summaries {
			achieved := "missed"
			if s.AchievesTarget {
				achieved = "met"
			}
			fmt.Printf("%-6d %-18s %-18s %-10d %s\n",
				s.RetirementAge,
				output.FormatCurrency(s.TotalSavings),
				output.FormatCurrency(s.MonthlyIncome),
				s.ReadinessScore,
				achieved)
		}
	},
}

var breakEvenCmd = &cobra.Command{
	Use:   "break-even [input-file]",
	Short: "Find the pension contribution rate that meets the income target",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		household, err := config.NewInputParser().LoadHousehold(args[0])
		if err != nil {
			log.Fatal(err)
		}

		engine := newEngine(cmd)
		result, err := engine.CalculateBreakEvenSavingsRate(household)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println("BREAK-EVEN SAVINGS RATE ANALYSIS")
		fmt.Println(strings.Repeat("=", 40))
		fmt.Printf("Required Contribution Rate: %s%%\n", result.ContributionRate.StringFixed(1))
		fmt.Printf("Projected Monthly Income:   %s\n",
			output.FormatCurrency(result.Projection.Result.RetirementIncome.Total.Monthly))
		fmt.Printf("Target Monthly Income:      %s\n",
			output.FormatCurrency(result.Projection.Result.GoalsAnalysis.TargetMonthlyIncome))
	},
}

var optimizeCmd = &cobra.Command{
	Use:   "optimize [input-file]",
	Short: "Analyze the portfolio allocation and suggest rebalancing",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		household, err := config.NewInputParser().LoadHousehold(args[0])
		if err != nil {
			log.Fatal(err)
		}

		analysis := portfolio.NewOptimizer().Analyze(household)
		engine := newEngine(cmd)
		result := engine.CalculateRetirement(household)

		format, _ := cmd.Flags().GetString("format")
		generator := output.NewReportGenerator(os.Stdout)
		if err := generator.GenerateReport(result, &analysis, format); err != nil {
			log.Fatal(err)
		}
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare [input-file]",
	Short: "Compare the plan against built-in what-if templates",
	Long: `Compare the base plan against alternative strategies.

Examples:
  retplan compare plan.yaml --with postpone_2yr,boost_contribution_5pct
  retplan compare plan.yaml --with conservative,aggressive --format csv
  retplan compare --list-templates
`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if listTemplates, _ := cmd.Flags().GetBool("list-templates"); listTemplates {
			fmt.Print(transform.GetTemplateHelp(transform.CreateBuiltInTemplates()))
			return
		}
		if len(args) == 0 {
			log.Fatal("input file required for comparison (use --list-templates to see available templates)")
		}

		household, err := config.NewInputParser().LoadHousehold(args[0])
		if err != nil {
			log.Fatal(err)
		}

		templatesStr, _ := cmd.Flags().GetString("with")
		templateNames := transform.ParseTemplateList(templatesStr)
		if len(templateNames) == 0 {
			log.Fatal("--with flag is required (or use --list-templates)")
		}

		compareEngine := compare.NewCompareEngine(newEngine(cmd))
		set, err := compareEngine.Compare(household, templateNames)
		if err != nil {
			log.Fatalf("comparison failed: %v", err)
		}
		set.InputPath = args[0]

		format, _ := cmd.Flags().GetString("format")
		switch strings.ToLower(format) {
		case "csv":
			out, err := (&compare.CSVFormatter{}).Format(set)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(out)
		case "json":
			out, err := (&compare.JSONFormatter{Pretty: true}).Format(set)
			if err != nil {
				log.Fatal(err)
			}
			fmt.Print(out)
		case "table", "console", "":
			fmt.Print((&compare.TableFormatter{}).Format(set))
		default:
			log.Fatalf("unknown output format: %s (valid: table, csv, json)", format)
		}
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [input-file]",
	Short: "Validate a planner document",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		parser := config.NewInputParser()
		parser.SetLogger(simpleCLILogger{})
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("Planner document %s is valid\n", args[0])
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the planning API over HTTP",
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		if env := os.Getenv("PORT"); env != "" && !cmd.Flags().Changed("port") {
			port = env
		}

		logger, err := zap.NewProduction()
		if err != nil {
			log.Fatal(err)
		}
		defer logger.Sync()

		if err := server.New(logger).ListenAndServe(port); err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui [input-file]",
	Short: "Interactive planner dashboard",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(args[0]); os.IsNotExist(err) {
			log.Fatalf("planner document not found: %s", args[0])
		}

		p := tea.NewProgram(
			tui.NewModel(args[0]),
			tea.WithAltScreen(),
		)
		if _, err := p.Run(); err != nil {
			log.Fatalf("error running dashboard: %v", err)
		}
	},
}

func parseAges(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	ages := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		age, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid retirement age %q: %w", part, err)
		}
		ages = append(ages, age)
	}
	if len(ages) == 0 {
		return nil, fmt.Errorf("no retirement ages provided; use --ages 60,65,70")
	}
	return ages, nil
}

func init() {
	calculateCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	calculateCmd.Flags().Bool("portfolio", false, "Include the portfolio analysis in the report")
	calculateCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	scenariosCmd.Flags().String("ages", "60,65,67,70", "Comma-separated candidate retirement ages")
	scenariosCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	breakEvenCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	compareCmd.Flags().String("with", "", "Comma-separated list of templates to compare")
	compareCmd.Flags().Bool("list-templates", false, "List the built-in scenario templates")
	compareCmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	compareCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	optimizeCmd.Flags().StringP("format", "f", "console", "Output format (console, json, csv)")
	optimizeCmd.Flags().Bool("debug", false, "Enable debug output for detailed calculations")

	serveCmd.Flags().String("port", "8080", "HTTP listen port")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(scenariosCmd)
	rootCmd.AddCommand(breakEvenCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(versionCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
