package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/zxhio/xping/internal/ping"
	"github.com/zxhio/xping/pkg/builder"
	"github.com/zxhio/xping/pkg/utils"
)

const logoAscii = `
 __  ___ __  _ _ __   __ _
 \ \/ / '_ \| | '_ \ / _' |
  >  <| |_) | | | | | (_| |
 /_/\_\ .__/|_|_| |_|\__, |
      |_|            |___/`

type options struct {
	verbose   bool
	version   bool
	strict    bool
	keepGoing bool
	timeout   time.Duration
	interval  time.Duration
	logFile   string

	dial ping.Dialer // nil means raw sockets
}

func newRootCommand(opt *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "xping <host> <count>",
		Short:         "Send ICMP echo requests to an IPv4 host and print round-trip times",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if opt.version {
				return nil
			}
			if len(args) != 2 {
				return usageError(cmd.Name())
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			utils.SetVerbose(opt.verbose)
			utils.SetLogFile(opt.logFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opt.version {
				fmt.Fprintln(cmd.OutOrStdout(), color.HiBlueString(logoAscii))
				fmt.Fprintln(cmd.OutOrStdout(), builder.BuildInfo())
				return nil
			}

			count, err := parseCount(args[1])
			if err != nil {
				return err
			}

			p := ping.NewProber(
				ping.WithTimeout(opt.timeout),
				ping.WithStrict(opt.strict),
				ping.WithDialer(opt.dial),
			)
			logrus.WithFields(logrus.Fields{
				"host":     args[0],
				"count":    count,
				"id":       p.ID(),
				"timeout":  p.Timeout(),
				"interval": opt.interval,
				"strict":   opt.strict,
			}).Debug("Start")

			r := &runner{
				prober:    p,
				limiter:   newLimiter(opt.interval),
				keepGoing: opt.keepGoing,
				stdout:    cmd.OutOrStdout(),
				stderr:    cmd.ErrOrStderr(),
			}
			return r.run(args[0], count)
		},
	}

	bindFlags(cmd.Flags(), opt)
	return cmd
}

func bindFlags(fs *pflag.FlagSet, opt *options) {
	fs.SortFlags = false
	fs.BoolVarP(&opt.verbose, "verbose", "v", false, "Verbose output")
	fs.BoolVarP(&opt.version, "version", "V", false, "Print version")
	fs.DurationVarP(&opt.timeout, "timeout", "W", ping.DefaultTimeout, "Time to wait for a reply")
	fs.DurationVarP(&opt.interval, "interval", "i", 0, "Minimum interval between requests")
	fs.BoolVar(&opt.strict, "strict", false, "Reject malformed addresses and match replies by id and sequence")
	fs.BoolVarP(&opt.keepGoing, "keep-going", "k", false, "Continue after a failed request")
	fs.StringVar(&opt.logFile, "log-file", "", "Also write logs to this file")
}

func main() {
	err := newRootCommand(&options{}).Execute()
	utils.CheckErrorAndExit(err, "")
}
