package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	monkconfig "github.com/msto63/monk/foundation/core/config"
	monkerror "github.com/msto63/monk/foundation/core/error"
	monklog "github.com/msto63/monk/foundation/core/log"
	"github.com/msto63/monk/foundation/lang"
)

// rootOptions is the state shared by all subcommands
type rootOptions struct {
	cfgFile   string
	verbose   bool
	logFormat string

	cfg    *monkconfig.Config
	logger *monklog.Logger
}

// NewRootCmd builds the monk command tree
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "monk",
		Short: "monk - language front end",
		Long: `monk tokenizes and parses monk source files.

Commands:
  tokenize - print the token stream of a file
  parse    - print the syntax tree of one or more files
  check    - report syntax errors for a set of files

Configuration is read from --config, $MONK_CONFIG, ./monk.toml or ./monk.yaml.
Every key can be overridden from the environment, e.g. MONK_FRONTEND_MAX_DEPTH.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "Config file (default: ./monk.toml)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output (debug logging)")
	root.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "Log format: json, text, console or logfmt")

	root.AddCommand(
		newTokenizeCmd(opts),
		newParseCmd(opts),
		newCheckCmd(opts),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI with the process arguments
func Execute() error {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		printError(root.ErrOrStderr(), err)
	}
	return err
}

// setup loads configuration and builds the logger
func (o *rootOptions) setup(stderr io.Writer) error {
	discovery := monkconfig.DefaultDiscoveryOptions()
	discovery.ExplicitPath = o.cfgFile
	discovery.Defaults = lang.ConfigDefaults()

	cfg, err := monkconfig.Discover(discovery)
	if err != nil {
		return err
	}
	if err := cfg.Validate(lang.ConfigRules()).Err(); err != nil {
		return err
	}

	level, err := monklog.ParseLevel(cfg.GetString("log.level", "info"))
	if err != nil {
		return configError(err, "log.level")
	}
	if o.verbose && level > monklog.LevelDebug {
		level = monklog.LevelDebug
	}

	formatName := cfg.GetString("log.format", "console")
	if o.logFormat != "" {
		formatName = o.logFormat
	}
	format, err := monklog.ParseFormat(formatName)
	if err != nil {
		return configError(err, "log.format")
	}

	o.cfg = cfg
	o.logger = monklog.NewWithConfig(monklog.Config{
		Level:  level,
		Format: format,
		Output: stderr,
		Name:   "monk",
	})
	o.logger.Debug("Configuration loaded", monklog.Fields{
		"path":   cfg.FilePath(),
		"level":  level.String(),
		"format": format.String(),
	})
	return nil
}

// engine creates a front-end engine from the loaded configuration
func (o *rootOptions) engine(collect bool) (*lang.Engine, error) {
	options := lang.FromConfig(o.cfg)
	options.Logger = o.logger
	options.Recover = options.Recover || collect
	return lang.New(options)
}

func configError(err error, key string) error {
	return monkerror.Wrap(err, "invalid configuration").
		WithCode(monkerror.CodeInvalidConfig).
		WithOperation("monk.setup").
		WithDetail("key", key)
}

// readUnit reads a file, or standard input for "-"
func readUnit(cmd *cobra.Command, path string) (lang.Unit, error) {
	if path != "-" {
		return lang.ReadUnit(path)
	}
	content, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return lang.Unit{}, monkerror.Wrap(err, "cannot read standard input").
			WithCode(monkerror.CodeInvalidInput)
	}
	return lang.Unit{Name: "stdin", Text: string(content)}, nil
}

// printError writes err to w. Source errors already name their file; other
// coded errors show their code.
func printError(w io.Writer, err error) {
	if w == nil {
		w = os.Stderr
	}
	st := newStyles(w)

	var coded *monkerror.Error
	if errors.As(err, &coded) && coded.Code().Category() != "source" && coded.Code() != monkerror.CodeUnknown {
		fmt.Fprintf(w, "%s %s %s\n", st.fail.Render("error:"), st.muted.Render("["+coded.Code().String()+"]"), err)
		return
	}
	fmt.Fprintf(w, "%s %s\n", st.fail.Render("error:"), err)
}
