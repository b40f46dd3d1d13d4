package cli

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/routecycle/internal/app"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const longHelp = `routecycle finds the longest routing cycle in a stream of hop records.

Every line names a claim, a status code, a source system and a destination
system. Hops sharing a claim and status form one directed graph; the result is
the longest simple cycle over all graphs, printed as

  claim_id,status_code,length

or "no cycle found".

INPUT may be a file, a directory (walked recursively), a glob such as
'data/**/*.psv', or '-' for stdin. Gzip and zstd inputs are detected
automatically.`

// flags mirrors the command's flag set before it becomes an app.Config.
type flags struct {
	layout          string
	layoutFile      string
	delimiter       string
	skipHeader      bool
	grouped         bool
	noPrune         bool
	summary         string
	healthcheckPort int
	logFormat       string
	logLevel        string
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	if args == nil {
		args = []string{}
	}

	var (
		f      flags
		config *app.Config
		ran    bool
	)

	cmd := &cobra.Command{
		Use:           "routecycle [flags] INPUT...",
		Short:         "Find the longest routing cycle in hop records",
		Long:          longHelp,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, inputs []string) error {
			ran = true
			if len(inputs) == 0 {
				slog.Debug("No input provided, printing usage and exiting.")
				return cmd.Usage()
			}

			cfg, err := app.NewConfig(app.Config{
				Inputs:          inputs,
				Layout:          f.layout,
				LayoutFile:      f.layoutFile,
				Delimiter:       f.delimiter,
				SkipHeader:      f.skipHeader,
				Grouped:         f.grouped,
				NoPrune:         f.noPrune,
				SummaryPath:     f.summary,
				HealthcheckPort: f.healthcheckPort,
				LogFormat:       f.logFormat,
				LogLevel:        f.logLevel,
			})
			if err != nil {
				return err
			}
			config = cfg
			return nil
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	fs := cmd.Flags()
	fs.StringVar(&f.layout, "layout", "canonical", "Input layout preset: 'canonical' (claim,status,source,dest) or 'pipe' (source|dest|claim|status).")
	fs.StringVar(&f.layoutFile, "layout-file", "", "HCL file overriding layout and search settings.")
	fs.StringVar(&f.delimiter, "delimiter", "", "Field delimiter, overriding the layout's.")
	fs.BoolVar(&f.skipHeader, "skip-header", false, "Treat the first line of every input file as a header.")
	fs.BoolVar(&f.grouped, "grouped", false, "Input is grouped by claim and status; search each graph as soon as it ends.")
	fs.BoolVar(&f.noPrune, "no-prune", false, "Search every graph fully instead of skipping graphs that cannot beat the best cycle.")
	fs.StringVar(&f.summary, "summary", "", "Write a YAML run summary to this path.")
	fs.IntVar(&f.healthcheckPort, "healthcheck-port", 0, "Port for the HTTP health check and metrics server. 0 is disabled.")
	fs.StringVar(&f.logFormat, "log-format", "auto", "Log output format. Options: 'text', 'json' or 'auto'.")
	fs.StringVar(&f.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	// Help requested, or no inputs: usage has been printed.
	if !ran || config == nil {
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
