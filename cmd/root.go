package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/xll-gen/bin2header/internal/config"
	"github.com/xll-gen/bin2header/internal/header"
	"github.com/xll-gen/bin2header/pkg/log"
)

// options holds the optional flags of the root command.
type options struct {
	configPath string
	logLevel   string
	logFile    string
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "bin2header <input> <name>",
		Short: "Print a binary file as a C unsigned char array",
		Long: `bin2header reads a binary file (for example compiled shader bytecode)
and prints it to stdout as a C array declaration named <name>, so the
asset can be compiled directly into a program.

Use "-" as <input> to read from stdin. Flags must come before <input>;
everything after it is taken as a positional argument, so <name> may
start with "-".`,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.OutOrStdout(), cmd.InOrStdin(), opts, args[0], args[1])
		},
	}

	// <name> is used verbatim, even when it looks like a flag.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (YAML)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "log file path (default stderr)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// runConvert loads the configuration, reads the whole input and writes the
// array declaration to out. Nothing is written to out if the input cannot
// be read.
//
// Parameters:
//   - out: Destination of the generated declaration.
//   - stdin: Source read when input is "-".
//   - opts: Flag values; empty strings leave the configuration untouched.
//   - input: Path of the binary file, or "-" for stdin.
//   - name: Identifier of the generated array, used verbatim.
//
// Returns:
//   - error: An error if configuration, logging setup or the input read fails.
func runConvert(out io.Writer, stdin io.Reader, opts options, input, name string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		cfg.Logging.Level = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.Logging.Path = opts.logFile
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}

	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer log.Close()

	data, err := header.ReadInput(input, stdin)
	if err != nil {
		return err
	}

	layout := cfg.Layout.Header()
	log.Default().Debug("converting input",
		"path", input,
		"name", name,
		"bytes", len(data),
		"per_line", layout.PerLine(),
	)

	return layout.Write(out, data, name)
}
