/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/nakachan-ing/mdtodo/internal/markdown"
	"github.com/nakachan-ing/mdtodo/internal/model"
	"github.com/nakachan-ing/mdtodo/internal/util"
	"github.com/spf13/cobra"
)

var showRaw bool
var showStyle string

var showCmd = &cobra.Command{
	Use:     "show [task]",
	Short:   "Render the todo file, or the details of one task",
	Args:    cobra.MaximumNArgs(1),
	Aliases: []string{"s"},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, doc, err := loadDocument()
		if err != nil {
			return err
		}

		if len(args) == 1 {
			task, err := util.ResolveTaskRef(doc, args[0])
			if err != nil {
				return err
			}
			printTaskDetail(task)
			return nil
		}

		if showRaw {
			fmt.Print(doc.Raw)
			return nil
		}

		renderedContent, err := glamour.Render(doc.Raw, showStyle)
		if err != nil {
			logger.Warn("⚠️ Failed to render markdown content", "err", err)
			fmt.Print(doc.Raw)
			return nil
		}
		fmt.Print(renderedContent)
		return nil
	},
}

func printTaskDetail(task model.Task) {
	titleStyle := color.New(color.FgCyan, color.Bold).SprintFunc()
	fieldStyle := color.New(color.FgHiGreen).SprintFunc()

	fmt.Printf("%v\n", titleStyle(task.Text))
	fmt.Println(strings.Repeat("-", 50))
	fmt.Printf("Status: %v\n", fieldStyle(task.Status))
	fmt.Printf("Priority: %v\n", fieldStyle(task.Priority))
	fmt.Printf("Completed: %v\n", fieldStyle(task.Completed))
	if len(task.Tags) > 0 {
		fmt.Printf("Tags: %v\n", fieldStyle(strings.Join(task.Tags, ", ")))
	}
	if task.Deadline != "" {
		fmt.Printf("Deadline: %v\n", fieldStyle(task.Deadline))
	}
	if task.Duration != "" {
		fmt.Printf("Duration: %v\n", fieldStyle(task.Duration))
	}
	if task.WaitingFor != "" {
		fmt.Printf("Waiting for: %v\n", fieldStyle(task.WaitingFor))
	}
	if task.CompletedDate != "" {
		fmt.Printf("Completed on: %v\n", fieldStyle(task.CompletedDate))
	}
	fmt.Printf("Line %d: %s\n", task.Line+1, markdown.FormatTask(task))
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Print the file without rendering")
	showCmd.Flags().StringVar(&showStyle, "style", "dark", "glamour style (dark, light, notty, ...)")
}
