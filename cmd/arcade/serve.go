package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/wesleydude/arcade/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server so the arcade can be played remotely:

  ssh -p 23234 localhost

Each session gets its own menu and game; best scores are shared through
the server's database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := tui.DefaultSSHServerConfig()
		cfg.Address = flagSSHAddr
		cfg.HostKeyPath = flagHostKey
		cfg.DBPath = flagDBPath
		cfg.IdleTimeout = flagIdleTimeout

		server, err := tui.NewSSHServer(cfg)
		if err != nil {
			return err
		}

		return server.ListenAndServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH listen address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to SSH host key (auto-generated if empty)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 30*time.Minute, "Idle session timeout")
}
