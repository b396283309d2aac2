package main

import (
	"os"
	"strings"

	"github.com/fgeck/wakeonwan/internal/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version is overridden at build time by `make build`.
	Version = "0.1.1"

	// Logging flags.
	verbose    bool
	quiet      bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "wakeonwan [flags] MAC [MAC...]",
	Short: "Send Wake-on-LAN packets over a network",
	Long: `wakeonwan wakes sleeping machines by sending Wake-on-LAN magic packets
over UDP, to a broadcast address, a routed unicast address or an IPv6
multicast group.

MAC addresses may be written as 00:11:22:33:44:55, 00-11-22-33-44-55 or
001122334455. One packet is sent per MAC address, in the order given.

Examples:
  wakeonwan 00:11:22:33:44:55
  wakeonwan -i 192.168.1.255 -p 7 00:11:22:33:44:55 66:77:88:99:aa:bb
  wakeonwan -i '[ff02::1%eth0]' 00:11:22:33:44:55
  wakeonwan -D -i nas.example.com 00:11:22:33:44:55`,
	Args: cobra.MinimumNArgs(1),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE:    runWake,
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "enable quiet mode (errors only)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output logs in JSON format")

	config.RegisterFlags(rootCmd.Flags())
}

func setupLogging() {
	// Logs go to stderr; stdout is reserved for the dry-run report.
	if jsonOutput {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
		output.FormatLevel = func(i interface{}) string {
			if s, ok := i.(string); ok {
				return strings.ToUpper(s)
			}
			return ""
		}
		log.Logger = zerolog.New(output).With().Timestamp().Logger()
	}

	// Set log level
	switch {
	case quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
