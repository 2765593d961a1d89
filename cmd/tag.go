/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/nakachan-ing/mdtodo/internal/model"
	"github.com/nakachan-ing/mdtodo/internal/store"
	"github.com/nakachan-ing/mdtodo/internal/util"
	"github.com/spf13/cobra"
)

var tagSearchQuery string

func AddTagToTask(todo *store.TodoFile, task model.Task, tagName string) (store.Result, error) {
	tagName = strings.TrimPrefix(strings.TrimSpace(tagName), "#")
	if tagName == "" {
		return store.NotFound, fmt.Errorf("❌ Tag name is empty")
	}

	// 既にタスクにタグが付いているか確認
	if util.HasTags(task.Tags, []string{tagName}) {
		return store.NotFound, fmt.Errorf("⚠️ Tag '%s' already exists on task %q", tagName, task.Text)
	}

	updated := task
	updated.Tags = append(append([]string{}, task.Tags...), tagName)
	return todo.Update(task, updated)
}

func RemoveTagFromTask(todo *store.TodoFile, task model.Task, tagName string) (store.Result, error) {
	tagName = strings.TrimPrefix(strings.TrimSpace(tagName), "#")

	updated := task
	updated.Tags = []string{}
	for _, tag := range task.Tags {
		if !strings.EqualFold(tag, tagName) {
			updated.Tags = append(updated.Tags, tag)
		}
	}
	if len(updated.Tags) == len(task.Tags) {
		return store.NotFound, fmt.Errorf("⚠️ Tag '%s' is not on task %q", tagName, task.Text)
	}
	return todo.Update(task, updated)
}

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage task tags",
}

var listTagCmd = &cobra.Command{
	Use:     "list",
	Short:   "List tags with the number of tasks using them",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, doc, err := loadDocument()
		if err != nil {
			return err
		}

		counts := util.CountTags(doc.Tasks())
		names := make([]string, 0, len(counts))
		for name := range counts {
			if tagSearchQuery == "" || strings.Contains(name, strings.ToLower(tagSearchQuery)) {
				names = append(names, name)
			}
		}
		if len(names) == 0 {
			fmt.Println("No tags found.")
			return nil
		}
		sort.Slice(names, func(i, j int) bool {
			if counts[names[i]] != counts[names[j]] {
				return counts[names[i]] > counts[names[j]]
			}
			return names[i] < names[j]
		})

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleDouble)
		t.AppendHeader(table.Row{text.FgGreen.Sprintf("Tag"), text.FgGreen.Sprintf("Tasks")})
		for _, name := range names {
			t.AppendRow(table.Row{"#" + name, counts[name]})
		}
		t.Render()
		return nil
	},
}

var addTagCmd = &cobra.Command{
	Use:   "add [task] [tag]",
	Short: "Add a tag to a task",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		todo, doc, err := loadDocument()
		if err != nil {
			return err
		}
		task, err := util.ResolveTaskRef(doc, args[0])
		if err != nil {
			return err
		}
		res, err := AddTagToTask(todo, task, args[1])
		if err != nil {
			return err
		}
		reportResult(res, task, fmt.Sprintf("🏷️ Tagged #%s:", strings.TrimPrefix(args[1], "#")))
		return nil
	},
}

var removeTagCmd = &cobra.Command{
	Use:     "remove [task] [tag]",
	Short:   "Remove a tag from a task",
	Args:    cobra.ExactArgs(2),
	Aliases: []string{"rm"},
	RunE: func(cmd *cobra.Command, args []string) error {
		todo, doc, err := loadDocument()
		if err != nil {
			return err
		}
		task, err := util.ResolveTaskRef(doc, args[0])
		if err != nil {
			return err
		}
		res, err := RemoveTagFromTask(todo, task, args[1])
		if err != nil {
			return err
		}
		reportResult(res, task, fmt.Sprintf("🏷️ Untagged #%s:", strings.TrimPrefix(args[1], "#")))
		return nil
	},
}

func init() {
	tagCmd.AddCommand(listTagCmd, addTagCmd, removeTagCmd)
	rootCmd.AddCommand(tagCmd)
	listTagCmd.Flags().StringVarP(&tagSearchQuery, "search", "q", "", "Filter tags by name")
}
