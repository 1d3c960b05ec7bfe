package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/djcheckup/djcheckup-cli/internal/checker"
	consts "github.com/djcheckup/djcheckup-cli/internal/shared/constants"
)

var checkCmd = &cobra.Command{
	Use:   "check <url>",
	Short: "Run the security check battery against a site",
	Long: `Run the full check battery against the given URL.

The run starts with a connectivity probe; if the site is unreachable the
report contains only that failure. Checks that depend on a failed check are
skipped rather than evaluated against meaningless state.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args[0])
	},
}

type checkFlags struct {
	timeoutSecs int
	userAgent   string
	rateLimit   int
	insecure    bool
	noRedirects bool
	output      string
	reportFile  string
	checksFile  string
}

var checkOpts checkFlags

func runCheck(cmd *cobra.Command, target string) error {
	// Flags override config-file values.
	if !cmd.Flags().Changed("timeout") && viper.IsSet("timeout_secs") {
		checkOpts.timeoutSecs = viper.GetInt("timeout_secs")
	}
	if !cmd.Flags().Changed("user-agent") && viper.IsSet("user_agent") {
		checkOpts.userAgent = viper.GetString("user_agent")
	}
	if !cmd.Flags().Changed("rate-limit") && viper.IsSet("rate_limit") {
		checkOpts.rateLimit = viper.GetInt("rate_limit")
	}
	if !cmd.Flags().Changed("insecure") && viper.IsSet("insecure_skip_verify") {
		checkOpts.insecure = viper.GetBool("insecure_skip_verify")
	}
	if !cmd.Flags().Changed("no-redirects") && viper.IsSet("follow_redirects") {
		checkOpts.noRedirects = !viper.GetBool("follow_redirects")
	}
	if !cmd.Flags().Changed("output") && viper.IsSet("output") {
		checkOpts.output = viper.GetString("output")
	}

	// Reject bad output modes before any network activity.
	format, err := parseOutputFormat(checkOpts.output)
	if err != nil {
		return err
	}

	defs := checker.DefaultChecks()
	if checkOpts.checksFile != "" {
		defs, err = checker.LoadChecksFile(checkOpts.checksFile)
		if err != nil {
			return err
		}
	}

	cfg := checker.ClientConfig{
		Timeout:            time.Duration(checkOpts.timeoutSecs) * time.Second,
		UserAgent:          checkOpts.userAgent,
		FollowRedirects:    !checkOpts.noRedirects,
		InsecureSkipVerify: checkOpts.insecure,
		RateLimit:          checkOpts.rateLimit,
	}

	sc, err := checker.NewSiteChecker(target, cfg)
	if err != nil {
		return err
	}
	sc.Logger = logger

	report := sc.RunAll(cmd.Context(), defs)

	switch format {
	case outputJSON:
		data, err := checker.ToJSONIndent(report)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	case outputPDF:
		data, err := generatePDFReportBytes(report)
		if err != nil {
			return err
		}
		path := checkOpts.reportFile
		if path == "" {
			path = "djcheckup-report.pdf"
		}
		path = filepath.Clean(path)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
	default:
		renderTable(cmd.OutOrStdout(), report)
	}

	return nil
}

func init() {
	checkCmd.Flags().IntVar(&checkOpts.timeoutSecs, "timeout", int(consts.DefaultHTTPTimeout/time.Second), "per-request timeout in seconds")
	checkCmd.Flags().StringVar(&checkOpts.userAgent, "user-agent", consts.DefaultUserAgent, "User-Agent header for all requests")
	checkCmd.Flags().IntVar(&checkOpts.rateLimit, "rate-limit", consts.DefaultRateLimit, "max requests per second (0 = unlimited)")
	checkCmd.Flags().BoolVar(&checkOpts.insecure, "insecure", false, "skip TLS certificate verification")
	checkCmd.Flags().BoolVar(&checkOpts.noRedirects, "no-redirects", false, "do not follow redirects")
	checkCmd.Flags().StringVarP(&checkOpts.output, "output", "O", "table", "output format: table, json, or pdf")
	checkCmd.Flags().StringVar(&checkOpts.reportFile, "report-file", "", "destination for the pdf report (default djcheckup-report.pdf)")
	checkCmd.Flags().StringVar(&checkOpts.checksFile, "checks", "", "YAML file declaring a custom check catalog")
}
