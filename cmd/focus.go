/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/nakachan-ing/mdtodo/internal/store"
	"github.com/spf13/cobra"
)

var focusClear bool

var focusCmd = &cobra.Command{
	Use:   "focus [text]",
	Short: "Show or set today's focus note",
	RunE: func(cmd *cobra.Command, args []string) error {
		todo, doc, err := loadDocument()
		if err != nil {
			return err
		}

		focusStyle := color.New(color.FgHiYellow, color.Bold).SprintFunc()
		if len(args) == 0 && !focusClear {
			if doc.FocusNote == "" {
				fmt.Println("🎯 No focus set for today.")
			} else {
				fmt.Printf("🎯 %v\n", focusStyle(doc.FocusNote))
			}
			return nil
		}

		note := strings.Join(args, " ")
		if focusClear {
			note = ""
		}
		res, err := todo.SetFocusNote(note)
		if err != nil {
			return err
		}
		if res == store.NotFound {
			fmt.Println("⚠️ The todo file has no focus line.")
			return nil
		}
		fmt.Printf("🎯 Focus updated: %v\n", focusStyle(note))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(focusCmd)
	focusCmd.Flags().BoolVar(&focusClear, "clear", false, "Reset the focus note to the placeholder")
}
