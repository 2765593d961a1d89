/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nakachan-ing/mdtodo/internal/markdown"
	"github.com/nakachan-ing/mdtodo/internal/store"
	"github.com/spf13/cobra"
)

var initLocale string
var initForce bool

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize config.yaml and the todo file",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := store.GetConfigPath()
		if err != nil {
			return fmt.Errorf("❌ Failed to get config path: %w", err)
		}

		config := *appConfig
		if initLocale != "" {
			config.Locale = initLocale
		}
		g, err := markdown.GrammarFromConfig(config)
		if err != nil {
			return err
		}

		// `config.yaml` を作成（既存なら --force のときだけ上書き）
		if _, err := os.Stat(configPath); err == nil && !initForce {
			fmt.Println("📄 Config file already exists:", configPath)
		} else {
			if err := store.SaveConfig(configPath, &config); err != nil {
				return err
			}
			fmt.Println("📄 Config file created at:", configPath)
		}

		todo := store.New(config.TodoFile, g, store.WithLogger(logger))
		if todo.Exists() && !initForce {
			fmt.Println("📋 Todo file already exists:", todo.Path)
		} else {
			if err := os.MkdirAll(filepath.Dir(todo.Path), 0755); err != nil {
				return fmt.Errorf("❌ Failed to create todo directory: %w", err)
			}
			if err := todo.FS.WriteFile(todo.Path, []byte(markdown.DefaultTemplate(g))); err != nil {
				return err
			}
			fmt.Println("📋 Todo file created at:", todo.Path)
		}

		fmt.Println("✅ mdtodo initialized successfully!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().StringVar(&initLocale, "locale", "", "Keyword set for the todo file (en, pt)")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing config and todo file")
}
