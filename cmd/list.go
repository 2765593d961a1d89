/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-runewidth"
	"github.com/nakachan-ing/mdtodo/internal/model"
	"github.com/nakachan-ing/mdtodo/internal/util"
	"github.com/spf13/cobra"
)

var listTags []string
var listStatuses []string
var listSearchQuery string
var listPriority string
var listPending bool
var listWidth int

var statusColors = map[model.Status]text.Colors{
	model.StatusDoing:   {text.FgHiRed, text.Bold},
	model.StatusNext:    {text.FgHiYellow},
	model.StatusWaiting: {text.FgHiBlue},
	model.StatusBlocked: {text.FgHiMagenta},
	model.StatusIdeas:   {text.FgHiCyan},
	model.StatusDone:    {text.FgHiGreen},
}

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List tasks by section",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		_, doc, err := loadDocument()
		if err != nil {
			return err
		}

		filter := util.TaskFilter{
			Query:   listSearchQuery,
			Tags:    listTags,
			Pending: listPending,
		}
		for _, s := range listStatuses {
			status, err := parseStatusArg(s)
			if err != nil {
				return err
			}
			filter.Statuses = append(filter.Statuses, status)
		}
		if listPriority != "" {
			if filter.Priority, err = parsePriorityArg(listPriority); err != nil {
				return err
			}
		}

		if doc.FocusNote != "" {
			fmt.Printf("🎯 %s\n", text.Bold.Sprint(doc.FocusNote))
		}

		// 番号は絞り込み前の並びで振る（rm / done の引数と揃える）
		global := make(map[string]int)
		for i, task := range doc.Tasks() {
			global[task.ID] = i + 1
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleRounded)
		t.Style().Options.SeparateRows = false

		t.AppendHeader(table.Row{
			text.FgGreen.Sprintf("#"), text.FgGreen.Sprintf("Ref"),
			text.FgGreen.Sprintf("%s", text.Bold.Sprintf("Task")),
			text.FgGreen.Sprintf("Tags"), text.FgGreen.Sprintf("Due"),
			text.FgGreen.Sprintf("Status"),
		})

		shown := 0
		for _, section := range doc.Sections {
			matched := util.FilterTasks(section.Tasks, filter)
			if len(matched) == 0 {
				continue
			}
			for _, task := range matched {
				t.AppendRow(table.Row{
					global[task.ID],
					fmt.Sprintf("%s:%d", section.Status, sectionIndex(section, task)),
					taskCell(task),
					strings.Join(task.Tags, ", "),
					task.Deadline,
					statusColors[section.Status].Sprintf("%s %s", section.Emoji, section.Status),
				})
				shown++
			}
			t.AppendSeparator()
		}

		if shown == 0 {
			fmt.Println("No tasks to display.")
			return nil
		}
		t.SetCaption("%d tasks shown", shown)
		t.Render()
		return nil
	},
}

func sectionIndex(section model.Section, task model.Task) int {
	for i, tk := range section.Tasks {
		if tk.ID == task.ID {
			return i + 1
		}
	}
	return 0
}

func taskCell(task model.Task) string {
	label := runewidth.Truncate(task.Text, listWidth, "…")
	switch {
	case task.Completed:
		label = text.CrossedOut.Sprint(label)
	case task.Priority == model.PriorityHigh:
		label = "⚡ " + label
	case task.Priority == model.PriorityQuick:
		label = "🚀 " + label
	}
	if task.WaitingFor != "" {
		label += text.Faint.Sprintf(" → %s", task.WaitingFor)
	}
	return label
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringSliceVarP(&listTags, "tag", "t", []string{}, "Filter by tags")
	listCmd.Flags().StringSliceVarP(&listStatuses, "status", "s", []string{}, "Filter by section")
	listCmd.Flags().StringVarP(&listSearchQuery, "search", "q", "", "Search task text")
	listCmd.Flags().StringVarP(&listPriority, "priority", "p", "", "Filter by priority")
	listCmd.Flags().BoolVar(&listPending, "pending", false, "Hide completed tasks")
	listCmd.Flags().IntVar(&listWidth, "width", 60, "Truncate task text to this display width")
}
