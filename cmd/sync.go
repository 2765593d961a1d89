/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/nakachan-ing/mdtodo/internal/util"
	"github.com/spf13/cobra"
)

var syncForce bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Synchronize the todo file with S3",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := rootCmd.PersistentPreRunE(cmd, args); err != nil {
			return err
		}
		if !appConfig.Sync.Enable || appConfig.Sync.Bucket == "" {
			return fmt.Errorf("❌ Sync is disabled (set sync.enable and sync.bucket in config)")
		}
		return nil
	},
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload the todo file to S3",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("🔄 Running `mdtodo sync push`...")
		if err := SyncWithS3(cmd.Context(), *appConfig, util.SyncPush, syncForce); err != nil {
			return fmt.Errorf("❌ Sync failed: %w", err)
		}
		return nil
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Download the todo file from S3",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Debug("🔄 Running `mdtodo sync pull`...")
		if err := SyncWithS3(cmd.Context(), *appConfig, util.SyncPull, syncForce); err != nil {
			return fmt.Errorf("❌ Sync failed: %w", err)
		}
		return nil
	},
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the local or the S3 copy is newer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return ShowSyncStatus(cmd.Context(), *appConfig)
	},
}

func init() {
	syncCmd.AddCommand(syncPushCmd, syncPullCmd, syncStatusCmd)
	rootCmd.AddCommand(syncCmd)
	syncPushCmd.Flags().BoolVar(&syncForce, "force", false, "Upload even if S3 has a newer copy")
	syncPullCmd.Flags().BoolVar(&syncForce, "force", false, "Download even if the local copy is newer")
}
