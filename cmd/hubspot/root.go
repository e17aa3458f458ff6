package main

import (
	"io"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	hubspot "github.com/jdziat/hubspot-go"
	"github.com/jdziat/hubspot-go/internal/cliconfig"
	"github.com/jdziat/hubspot-go/pkg/query"
)

// globalFlags holds the persistent flags shared by all subcommands.
type globalFlags struct {
	configPath string
	baseURL    string
	encoding   string
	oauth      bool
	verbose    bool
	timeout    time.Duration
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "hubspot",
		Short: "hubspot - authenticated requests against the HubSpot API",
		Long: `hubspot builds and sends authenticated requests to the HubSpot CRM API.

The access token is read from HUBSPOT_ACCESS_TOKEN or from the access_token
key of a .hubspot.yaml file in the current directory or any parent.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Path to config file (default: nearest .hubspot.yaml)")
	pf.StringVar(&flags.baseURL, "base-url", "", "API base URL (overrides config)")
	pf.StringVar(&flags.encoding, "encoding", "", "Query encoding: rfc3986 or legacy-form (overrides config)")
	pf.BoolVar(&flags.oauth, "oauth", false, "Treat the token as an OAuth access token")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Log request details to stderr")
	pf.DurationVar(&flags.timeout, "timeout", 0, "Per-request timeout (overrides config)")

	cmd.AddCommand(
		newURLCmd(flags),
		newRequestCmd(flags, hubspot.MethodGet),
		newRequestCmd(flags, hubspot.MethodPost),
		newRequestCmd(flags, hubspot.MethodPut),
		newRequestCmd(flags, hubspot.MethodPatch),
		newRequestCmd(flags, hubspot.MethodDelete),
		newVersionCmd(),
	)

	return cmd
}

// loadConfig reads the config file and environment, then applies flags that
// were set explicitly in fs.
func (f *globalFlags) loadConfig(fs *pflag.FlagSet) (*cliconfig.Config, error) {
	var (
		cfg *cliconfig.Config
		err error
	)
	if f.configPath != "" {
		cfg, err = cliconfig.LoadFile(f.configPath)
	} else {
		cfg, err = cliconfig.Load()
	}
	if err != nil {
		return nil, err
	}

	changed := fs.Changed
	if changed("base-url") {
		cfg.BaseURL = f.baseURL
	}
	if changed("encoding") {
		if _, err := query.ParseEncoding(f.encoding); err != nil {
			return nil, err
		}
		cfg.QueryEncoding = f.encoding
	}
	if changed("oauth") {
		cfg.OAuth = f.oauth
	}
	if changed("timeout") {
		cfg.Timeout = f.timeout
	}
	return cfg, nil
}

// newLogger returns a zap logger writing to w at debug level when verbose is
// set, or a no-op logger otherwise.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), zapcore.DebugLevel)
	return zap.New(core)
}
