/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/nakachan-ing/mdtodo/internal/model"
	"github.com/nakachan-ing/mdtodo/internal/store"
	"github.com/nakachan-ing/mdtodo/internal/util"
	"github.com/spf13/cobra"
)

var taskTags []string
var taskStatus string
var taskDeadline string
var taskDuration string
var taskPriority string
var taskWaitingFor string

var editText string
var editTags []string
var editDeadline string
var editDuration string
var editPriority string
var editWaitingFor string

func parseStatusArg(value string) (model.Status, error) {
	status, ok := model.ParseStatus(strings.ToLower(strings.TrimSpace(value)))
	if !ok {
		return "", fmt.Errorf("❌ Unknown status: %q (doing, next, waiting, blocked, ideas, done)", value)
	}
	return status, nil
}

func parsePriorityArg(value string) (model.Priority, error) {
	switch p := model.Priority(strings.ToLower(strings.TrimSpace(value))); p {
	case model.PriorityHigh, model.PriorityNormal, model.PriorityQuick:
		return p, nil
	}
	return "", fmt.Errorf("❌ Unknown priority: %q (high, normal, quick)", value)
}

func cleanTags(tags []string) []string {
	cleaned := []string{}
	for _, tag := range tags {
		tag = strings.TrimPrefix(strings.TrimSpace(tag), "#")
		if tag != "" {
			cleaned = append(cleaned, tag)
		}
	}
	return cleaned
}

var addTaskCmd = &cobra.Command{
	Use:     "add [text]",
	Short:   "Add a task to a section",
	Args:    cobra.MinimumNArgs(1),
	Aliases: []string{"a"},
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(strings.Fields(strings.Join(args, " ")), " ")
		if text == "" {
			return fmt.Errorf("❌ Task text is empty")
		}

		status, err := parseStatusArg(taskStatus)
		if err != nil {
			return err
		}
		priority, err := parsePriorityArg(taskPriority)
		if err != nil {
			return err
		}

		todo, err := openTodoFile()
		if err != nil {
			return err
		}

		task := model.NewTask(text, status)
		task.Tags = cleanTags(taskTags)
		task.Deadline = taskDeadline
		task.Duration = taskDuration
		task.Priority = priority
		task.WaitingFor = taskWaitingFor
		if status == model.StatusDone {
			task.Completed = true
			task.CompletedDate = todo.Now().Format("02/01")
		}

		res, err := todo.Add(task)
		if err != nil {
			return err
		}
		reportResult(res, task, fmt.Sprintf("✅ Added to %s:", status))
		return nil
	},
}

var removeTaskCmd = &cobra.Command{
	Use:     "rm [task...]",
	Short:   "Remove tasks (<section>:<n> or <n>)",
	Args:    cobra.MinimumNArgs(1),
	Aliases: []string{"remove"},
	RunE: func(cmd *cobra.Command, args []string) error {
		todo, doc, err := loadDocument()
		if err != nil {
			return err
		}
		tasks, err := util.ResolveTaskRefs(doc, args)
		if err != nil {
			return err
		}

		// 下の行から消せば上の行番号はずれない
		sort.SliceStable(tasks, func(i, j int) bool { return tasks[i].Line > tasks[j].Line })
		for _, task := range tasks {
			res, err := todo.Remove(task)
			if err != nil {
				return err
			}
			reportResult(res, task, "🗑️ Removed:")
		}
		return nil
	},
}

var editTaskCmd = &cobra.Command{
	Use:   "edit [task]",
	Short: "Edit the fields of a task",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		todo, doc, err := loadDocument()
		if err != nil {
			return err
		}
		old, err := util.ResolveTaskRef(doc, args[0])
		if err != nil {
			return err
		}

		updated := old
		flags := cmd.Flags()
		if flags.Changed("text") {
			updated.Text = strings.Join(strings.Fields(editText), " ")
			if updated.Text == "" {
				return fmt.Errorf("❌ Task text is empty")
			}
		}
		if flags.Changed("tag") {
			updated.Tags = cleanTags(editTags)
		}
		if flags.Changed("due") {
			updated.Deadline = editDeadline
		}
		if flags.Changed("duration") {
			updated.Duration = editDuration
		}
		if flags.Changed("waiting") {
			updated.WaitingFor = editWaitingFor
		}
		if flags.Changed("priority") {
			if updated.Priority, err = parsePriorityArg(editPriority); err != nil {
				return err
			}
		}

		res, err := todo.Update(old, updated)
		if err != nil {
			return err
		}
		reportResult(res, updated, "✏️ Updated:")
		return nil
	},
}

var moveTaskCmd = &cobra.Command{
	Use:   "mv [status] [task...]",
	Short: "Move tasks to another section",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := parseStatusArg(args[0])
		if err != nil {
			return err
		}
		todo, doc, err := loadDocument()
		if err != nil {
			return err
		}
		tasks, err := util.ResolveTaskRefs(doc, args[1:])
		if err != nil {
			return err
		}

		for _, task := range tasks {
			res, err := todo.Move(task, status)
			if err != nil {
				return err
			}
			reportResult(res, task, fmt.Sprintf("📦 Moved to %s:", status))
		}
		return nil
	},
}

var doneTaskCmd = &cobra.Command{
	Use:     "done [task...]",
	Short:   "Toggle completion of tasks",
	Args:    cobra.MinimumNArgs(1),
	Aliases: []string{"toggle"},
	RunE: func(cmd *cobra.Command, args []string) error {
		todo, doc, err := loadDocument()
		if err != nil {
			return err
		}
		tasks, err := util.ResolveTaskRefs(doc, args)
		if err != nil {
			return err
		}

		for _, task := range tasks {
			res, err := todo.Toggle(task)
			if err != nil {
				return err
			}
			if task.Completed {
				reportResult(res, task, "🔄 Reopened:")
			} else {
				reportResult(res, task, "✅ Completed:")
			}
		}
		return nil
	},
}

func newReorderCmd(use string, dir store.Direction) *cobra.Command {
	return &cobra.Command{
		Use:   use + " [task]",
		Short: fmt.Sprintf("Move a task one step %s", dir),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			todo, doc, err := loadDocument()
			if err != nil {
				return err
			}
			task, err := util.ResolveTaskRef(doc, args[0])
			if err != nil {
				return err
			}

			res, err := todo.Reorder(task, dir)
			if err != nil {
				return err
			}
			switch res.Kind {
			case store.SectionChanged:
				fmt.Printf("📦 Moved to %s: %s\n", res.Status, task.Text)
			case store.Swapped:
				fmt.Printf("↕️ Reordered: %s\n", task.Text)
			default:
				fmt.Printf("⚠️ Not moved: %s\n", task.Text)
			}
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(addTaskCmd)
	rootCmd.AddCommand(removeTaskCmd)
	rootCmd.AddCommand(editTaskCmd)
	rootCmd.AddCommand(moveTaskCmd)
	rootCmd.AddCommand(doneTaskCmd)
	rootCmd.AddCommand(newReorderCmd("up", store.Up))
	rootCmd.AddCommand(newReorderCmd("down", store.Down))

	addTaskCmd.Flags().StringVarP(&taskStatus, "status", "s", string(model.StatusNext), "Section to add the task to")
	addTaskCmd.Flags().StringSliceVarP(&taskTags, "tag", "t", []string{}, "Specify tags")
	addTaskCmd.Flags().StringVar(&taskDeadline, "due", "", "Deadline (free text, e.g. 20/10)")
	addTaskCmd.Flags().StringVar(&taskDuration, "duration", "", "Estimated duration (e.g. 1h)")
	addTaskCmd.Flags().StringVarP(&taskPriority, "priority", "p", string(model.PriorityNormal), "Priority (high, normal, quick)")
	addTaskCmd.Flags().StringVarP(&taskWaitingFor, "waiting", "w", "", "Who the task is waiting on")

	editTaskCmd.Flags().StringVar(&editText, "text", "", "New task text")
	editTaskCmd.Flags().StringSliceVarP(&editTags, "tag", "t", []string{}, "Replace tags")
	editTaskCmd.Flags().StringVar(&editDeadline, "due", "", "Deadline (empty to clear)")
	editTaskCmd.Flags().StringVar(&editDuration, "duration", "", "Estimated duration (empty to clear)")
	editTaskCmd.Flags().StringVarP(&editPriority, "priority", "p", "", "Priority (high, normal, quick)")
	editTaskCmd.Flags().StringVarP(&editWaitingFor, "waiting", "w", "", "Who the task is waiting on")
}
