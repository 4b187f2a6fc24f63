// Copyright (c) Facebook, Inc. and its affiliates.
//
// This source code is licensed under the MIT license found in the
// LICENSE file in the root directory of this source tree.

package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/facebookincubator/citrigger/pkg/cerrors"
	"github.com/facebookincubator/citrigger/pkg/config"
	"github.com/facebookincubator/citrigger/pkg/logging"
	"github.com/facebookincubator/citrigger/pkg/storage"
	"github.com/facebookincubator/citrigger/pkg/transport/http"
	"github.com/facebookincubator/citrigger/pkg/trigger"
	"github.com/facebookincubator/citrigger/plugins/storage/rdbms"

	"github.com/insomniacslk/xjson"
	"github.com/kballard/go-shellquote"
	flag "github.com/spf13/pflag"
)

// Exit codes returned by Main.
const (
	ExitOK = 0
	// ExitFailure covers usage errors, malformed arguments and CI runs that
	// did not succeed.
	ExitFailure = -1
	// ExitTransportError is returned when the webhook could not be reached.
	ExitTransportError = 1
)

var log = logging.GetLogger("citrigger")

type flags struct {
	addr         string
	configPath   string
	extraArgs    string
	wait         bool
	pollInterval time.Duration
	timeout      time.Duration
	dbURI        string
	history      bool
	logLevel     string
}

func usage(cmd string, w io.Writer, flagSet *flag.FlagSet) {
	fmt.Fprintf(w,
		`Usage:

  %s [flags] key=value key=value [key=value ...]

Keys:
  os=<image>            OS image to test on (default %s)
  pr=<ref>              pull request reference, e.g. refs/pull/1234/merge
  require_test=<any>    any non-empty value requires tests
  card_type=<int>       accepted for compatibility, not sent

Flags:
`, cmd, config.DefaultOSVersion)
	flagSet.SetOutput(w)
	flagSet.PrintDefaults()
}

func initFlags(cmd string) (*flag.FlagSet, *flags) {
	f := flags{}
	flagSet := flag.NewFlagSet(cmd, flag.ContinueOnError)
	flagSet.StringVarP(&f.addr, "addr", "a", http.DefaultAddr, "CI webhook URL to send the trigger to")
	flagSet.StringVarP(&f.configPath, "config", "c", "", "Configuration file (YAML or JSON) with default settings")
	flagSet.StringVar(&f.extraArgs, "args", "", "Additional key=value arguments as a single shell-quoted string")
	flagSet.BoolVarP(&f.wait, "wait", "w", false, "After triggering, wait for the CI run to finish, and exit 0 only if it is successful")
	flagSet.DurationVar(&f.pollInterval, "poll-interval", config.DefaultPollInterval, "Time between two status requests when waiting")
	flagSet.DurationVar(&f.timeout, "timeout", config.DefaultRequestTimeout, "Timeout of each HTTP request, 0 means no timeout")
	flagSet.StringVar(&f.dbURI, "db-uri", "", fmt.Sprintf("Record triggers in this MySQL database, e.g. %s", config.DefaultDBURI))
	flagSet.BoolVar(&f.history, "history", false, "Print the recorded triggers of the given pr instead of sending a new one")
	flagSet.StringVar(&f.logLevel, "log-level", "info", "Logging level (debug, info, warning, error)")
	// key=value tokens can be mixed with flags
	flagSet.SetInterspersed(true)
	flagSet.Usage = func() {}
	return flagSet, &f
}

// resolveConfig merges the configuration file, if any, with the flags that
// were set explicitly on the command line.
func resolveConfig(flagSet *flag.FlagSet, f *flags) (config.Config, string, error) {
	cfg := config.Default()
	if f.configPath != "" {
		c, err := config.Load(f.configPath)
		if err != nil {
			return cfg, "", err
		}
		cfg = c
	}
	addr := cfg.AddrString()
	if addr == "" || flagSet.Changed("addr") {
		addr = f.addr
	}
	if flagSet.Changed("poll-interval") {
		cfg.PollInterval = xjson.Duration(f.pollInterval)
	}
	if flagSet.Changed("timeout") {
		cfg.Timeout = xjson.Duration(f.timeout)
	}
	if flagSet.Changed("db-uri") {
		cfg.DBURI = f.dbURI
	}
	if err := cfg.Validate(); err != nil {
		return cfg, "", err
	}
	return cfg, addr, nil
}

// Main runs the trigger client and returns the process exit code.
func Main(cmd string, args []string, stdout io.Writer) int {
	flagSet, f := initFlags(cmd)
	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			usage(cmd, stdout, flagSet)
			return ExitOK
		}
		fmt.Fprintln(stdout, err)
		return ExitFailure
	}
	if err := logging.SetLevel(f.logLevel); err != nil {
		fmt.Fprintf(stdout, "invalid log level '%s': %v\n", f.logLevel, err)
		return ExitFailure
	}
	cfg, addr, err := resolveConfig(flagSet, f)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return ExitFailure
	}

	tokens := flagSet.Args()
	if f.extraArgs != "" {
		extra, err := shellquote.Split(f.extraArgs)
		if err != nil {
			fmt.Fprintf(stdout, "cannot split --args: %v\n", err)
			return ExitFailure
		}
		tokens = append(tokens, extra...)
	}
	if !f.history && len(tokens) < trigger.MinArgs {
		usage(cmd, stdout, flagSet)
		fmt.Fprintf(stdout, "\n%v\n", &cerrors.ErrUsage{Got: len(tokens), Want: trigger.MinArgs})
		return ExitFailure
	}

	defaults := trigger.DefaultOptions()
	defaults.OSVersion = cfg.OSVersion
	defaults.RequireTest = cfg.RequireTest
	opts, err := trigger.ParseArgs(tokens, defaults)
	if err != nil {
		fmt.Fprintln(stdout, err)
		return ExitFailure
	}

	var stor storage.Storage
	if cfg.DBURI != "" {
		db := rdbms.New(cfg.DBURI)
		stor = db
		defer func() {
			if err := db.Close(); err != nil {
				log.Warningf("Cannot close trigger history: %v", err)
			}
		}()
	}
	if f.history {
		prID := opts.PRID
		if len(tokens) == 0 {
			prID = ""
		}
		return printHistory(stor, prID, stdout)
	}
	if stor != nil {
		if err := storage.Check(stor); err != nil {
			log.Warningf("Trigger history disabled: %v", err)
			stor = nil
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	tr := &http.HTTP{Addr: addr, Timeout: time.Duration(cfg.Timeout)}
	return run(ctx, runConfig{
		transport:    tr,
		storage:      stor,
		options:      opts,
		wait:         f.wait,
		pollInterval: time.Duration(cfg.PollInterval),
	}, stdout)
}
