/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/nakachan-ing/mdtodo/internal/util"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:   "open",
	Short: "Edit the todo file in your editor",
	RunE: func(cmd *cobra.Command, args []string) error {
		todo, err := openTodoFile()
		if err != nil {
			return err
		}

		lock, err := util.CreateLockFile(todo.Path)
		if errors.Is(err, util.ErrLocked) {
			if held, readErr := util.ReadLockFile(todo.Path); readErr == nil {
				return fmt.Errorf("❌ %s is being edited by %s (pid %d) since %s", todo.Path, held.User, held.Pid, held.TimeStamp)
			}
			return fmt.Errorf("❌ %s is locked: %s", todo.Path, util.LockPath(todo.Path))
		}
		if err != nil {
			return err
		}
		defer func() {
			if err := util.RemoveLockFile(lock); err != nil {
				logger.Warn("⚠️ Failed to release lock", "err", err)
			}
		}()

		logger.Debug("lock acquired", "id", lock.ID, "file", lock.File)
		if err := util.OpenEditor(todo.Path, *appConfig); err != nil {
			return err
		}

		doc, err := todo.Load()
		if err != nil {
			return err
		}
		fmt.Printf("✅ Saved %s (%d tasks)\n", todo.Path, len(doc.Tasks()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
