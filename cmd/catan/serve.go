package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Abdur667/CS182-Final/internal/storage"
	"github.com/Abdur667/CS182-Final/internal/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the game viewer over SSH",
	Long: `Start an SSH server that shows each connection the 'catan watch'
viewer. Every session plays its own games with the configured agents;
finished games from all sessions go to the same database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.catan/host_key

Examples:
  catan serve                           # Listen on :23234 with auto-generated key
  catan serve --ssh :2222               # Listen on port 2222
  catan serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().DurationVar(&flagInterval, "interval", tui.DefaultInterval, "Delay between steps")
	serveCmd.Flags().StringVar(&flagPreset, "preset", "", "Game length preset: quick, standard, long, draft")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}
	if err := applyPresetAndValidate(&cfg); err != nil {
		fatalf("%v", err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           cfg.LogLevel(),
		ReportTimestamp: true,
		Prefix:          "catan-ssh",
	})

	store, err := storage.Open(cfg.Storage.DB)
	if err != nil {
		logger.Warn("could not open games database", "error", err)
		// Continue without storage
	} else {
		defer store.Close()
	}

	srvCfg := tui.DefaultSSHServerConfig()
	srvCfg.Address = flagSSHAddr
	srvCfg.HostKeyPath = flagHostKey
	srvCfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	srvCfg.Game = cfg
	srvCfg.Interval = flagInterval

	server, err := tui.NewSSHServer(srvCfg, store, logger)
	if err != nil {
		fatalf("creating server: %v", err)
	}

	fmt.Printf("Starting catan SSH server on %s\n", srvCfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatalf("server: %v", err)
	}
}
