/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/nakachan-ing/mdtodo/internal/logging"
	"github.com/nakachan-ing/mdtodo/internal/markdown"
	"github.com/nakachan-ing/mdtodo/internal/model"
	"github.com/nakachan-ing/mdtodo/internal/store"
	"github.com/spf13/cobra"
)

var (
	todoFileFlag string
	logLevelFlag string

	appConfig *model.Config
	logger    = log.Default()
)

var rootCmd = &cobra.Command{
	Use:           "mdtodo",
	Short:         "Manage a markdown task list from the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env がなくてもエラーにしない
		_ = godotenv.Load()

		config, err := store.LoadConfig()
		if err != nil {
			return err
		}
		if todoFileFlag != "" {
			config.TodoFile = todoFileFlag
		}
		if logLevelFlag != "" {
			config.Log.Level = logLevelFlag
		}
		appConfig = config
		logger = logging.New(config.Log)
		log.SetDefault(logger)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&todoFileFlag, "file", "f", "", "Todo file to use (overrides todo_file in config)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
}

// openTodoFile builds the mutator for the configured todo file.
func openTodoFile() (*store.TodoFile, error) {
	g, err := markdown.GrammarFromConfig(*appConfig)
	if err != nil {
		return nil, err
	}
	todo := store.New(appConfig.TodoFile, g, store.WithLogger(logger))
	if !todo.Exists() {
		return nil, fmt.Errorf("❌ Todo file not found: %s (run `mdtodo init` first)", appConfig.TodoFile)
	}
	return todo, nil
}

func loadDocument() (*store.TodoFile, *model.Document, error) {
	todo, err := openTodoFile()
	if err != nil {
		return nil, nil, err
	}
	doc, err := todo.Load()
	if err != nil {
		return nil, nil, err
	}
	return todo, doc, nil
}

func reportResult(res store.Result, task model.Task, done string) {
	if res == store.NotFound {
		fmt.Printf("⚠️ Task not found in file (it may have changed): %s\n", task.Text)
		return
	}
	fmt.Printf("%s %s\n", done, task.Text)
}
