package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/catchverse/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Catchverse SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own independent game. Results are recorded
into one leaderboard shared by everyone on the server.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.catchverse/host_key

Examples:
  catchverse serve                           # Listen on :23235 with auto-generated key
  catchverse serve --ssh :2222               # Listen on port 2222
  catchverse serve --host-key ./my_host_key  # Use specific host key
  catchverse serve --db ./catchverse.db      # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "catchverse-ssh")
	if err != nil {
		return err
	}

	cfg, err := loadConfig(logger)
	if err != nil {
		return err
	}

	keeper, _, closeDB := openLeaderboard(logger)
	defer closeDB()

	sshCfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
	}

	server, err := tui.NewSSHServer(sshCfg, cfg, keeper, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Starting Catchverse SSH server on %s\n", sshCfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", portOf(sshCfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// portOf returns the port part of a host:port address.
func portOf(addr string) string {
	if _, port, err := net.SplitHostPort(addr); err == nil {
		return port
	}
	return addr
}
