package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/FuriLabs/obex-capabilities/internal/capability"
	"github.com/FuriLabs/obex-capabilities/internal/config"
	"github.com/FuriLabs/obex-capabilities/internal/device"
	"github.com/FuriLabs/obex-capabilities/internal/log"
	"github.com/FuriLabs/obex-capabilities/internal/modem"
	"github.com/FuriLabs/obex-capabilities/internal/ui"
	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "obex-capabilities",
	Short: "Generator tool for OBEX capabilities",
	Long: `obex-capabilities prints the OBEX capability XML document of this device
for obexd. Device data is read from DMI, the device tree and vendor property
files; network data is read from ModemManager or oFono over D-Bus.

Set MOCK_DEVICE or MOCK_MODEM to use fabricated data instead.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runGenerate,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable logging to stderr")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(debug)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to load config", err.Error(), "check the *_PATH and MOCK_* environment variables"))
		return err
	}

	return generate(cmd.OutOrStdout(), cfg)
}

// generate writes the capability document to out. Nothing is written when
// any step fails.
func generate(out io.Writer, cfg *config.Config) error {
	logger := log.New(cfg.Debug)
	logger.WithFields(cfg.AsLogFields()).Debug("Configuration loaded")

	m, _ := modem.Resolve(cfg, logger)
	logger.Debug(m.String())

	d, err := device.Resolve(cfg, m, logger)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to read device information", err.Error(), "set MOCK_DEVICE=1 to use fabricated data"))
		return err
	}
	logger.Debug(d.String())

	logger.Debug("Generating capabilities")
	xml, err := capability.Generate(d, m)
	if err != nil {
		fmt.Fprint(os.Stderr, ui.FormatError("Failed to generate capabilities", err.Error(), ""))
		return err
	}

	fmt.Fprintln(out, xml)
	return nil
}
