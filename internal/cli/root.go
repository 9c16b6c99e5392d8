// Package cli implements leadctl, a terminal client that places a lead
// through the same controller the website uses.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ai-rd1/website/pkg/logger"
)

const defaultBaseURL = "http://localhost:8000"

// Execute runs leadctl with os.Args. It is called by main.main().
func Execute() error {
	return NewRootCommand().Execute()
}

// options are the persistent settings, resolved through viper so that
// flags, LEADCTL_* variables and the config file all apply.
type options struct {
	v *viper.Viper
}

func (o *options) baseURL() string {
	if u := o.v.GetString("base-url"); u != "" {
		return u
	}
	if u := os.Getenv("LEAD_API_BASE_URL"); u != "" {
		return u
	}
	return defaultBaseURL
}

func (o *options) timeout() time.Duration {
	if d := o.v.GetDuration("timeout"); d > 0 {
		return d
	}
	return 30 * time.Second
}

func (o *options) output() string {
	return o.v.GetString("output")
}

func (o *options) logger(w io.Writer) *slog.Logger {
	if !o.v.GetBool("debug") {
		return logger.Discard()
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// NewRootCommand builds the command tree with a fresh viper instance.
func NewRootCommand() *cobra.Command {
	opts := &options{v: viper.New()}
	var cfgFile string

	root := &cobra.Command{
		Use:   "leadctl",
		Short: "Place AI-RD1 calls and demos from the terminal",
		Long: `leadctl submits leads to the AI-RD1 call service, the same way the
website's "Call Now" and "Schedule Call" buttons do.

The call service URL comes from --base-url, LEADCTL_BASE_URL, the config
file, or LEAD_API_BASE_URL, in that order.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(opts.v, cfgFile)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.ai-rd1/leadctl.yaml)")
	flags.String("base-url", "", "call service base URL")
	flags.Duration("timeout", 30*time.Second, "request timeout")
	flags.StringP("output", "o", "table", "output format (table, json)")
	flags.Bool("debug", false, "log requests to stderr")

	for _, name := range []string{"base-url", "timeout", "output", "debug"} {
		_ = opts.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		newCallCmd(opts),
		newScheduleCmd(opts),
		newSizesCmd(opts),
		newVersionCmd(),
	)
	return root
}

// initConfig reads the optional config file and LEADCTL_* variables.
func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix("LEADCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil
		}
		v.AddConfigPath(filepath.Join(home, ".ai-rd1"))
		v.SetConfigType("yaml")
		v.SetConfigName("leadctl")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}
