package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jbweber/vms/internal/config"
	"github.com/jbweber/vms/internal/logging"
	"github.com/jbweber/vms/internal/vmrun"
)

var (
	version = "dev"
	commit  = "unknown"
)

// Global flags
var (
	configFile string
	vmPath     string
	vmrunPath  string
	hostType   string
	verbose    bool
)

// settings is the resolved configuration, populated before any subcommand runs.
var settings *config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "vms",
	Short: "vms - VMware Fusion/Workstation VM helper",
	Long: `vms is a CLI tool for viewing and controlling VMware desktop VMs.

VMs are discovered by searching a directory for .vmx files, and their
running state is read from vmrun. Every command rescans; nothing is cached.`,
	Version:           fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/vms/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&vmPath, "vm-path", "", fmt.Sprintf("directory to search for VMs (default %q)", config.Default().VMPath))
	rootCmd.PersistentFlags().StringVar(&vmrunPath, "vmrun", "", "path to the vmrun executable (default \"vmrun\" on PATH)")
	rootCmd.PersistentFlags().StringVar(&hostType, "host-type", "", "vmrun host type passed as -T (fusion, ws, player)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(newActionCmd(vmrun.Start, "Start a VM by name", "Power on a VM, or resume it if it is suspended."))
	rootCmd.AddCommand(newActionCmd(vmrun.Stop, "Stop a VM by name", "Power off a running VM."))
	rootCmd.AddCommand(newActionCmd(vmrun.Suspend, "Suspend a VM by name", "Save a running VM's state to disk and stop it."))
}

// loadSettings resolves configuration (flags override file and environment)
// and sets up logging for the invocation.
func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configFile)
	if err != nil {
		return err
	}

	flags := &config.Config{}
	if cmd.Flags().Changed("vm-path") {
		flags.VMPath = vmPath
	}
	if cmd.Flags().Changed("vmrun") {
		flags.VMRun = vmrunPath
	}
	if cmd.Flags().Changed("host-type") {
		flags.HostType = hostType
	}
	if cmd.Flags().Changed("output") {
		flags.Output = outputFormat
	}
	if verbose {
		flags.LogLevel = "debug"
	}
	cfg.Merge(flags)

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := logging.Setup(os.Stderr, cfg.LogLevel); err != nil {
		return err
	}

	cmd.SetContext(logging.NewContext(cmdContext(cmd)))
	settings = cfg
	return nil
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// newClient creates the vmrun client described by the settings.
func newClient() *vmrun.Client {
	return vmrun.NewClient(
		vmrun.WithPath(settings.VMRun),
		vmrun.WithHostType(settings.HostType),
	)
}
