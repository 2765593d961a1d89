package util

import (
	"strings"

	"github.com/nakachan-ing/mdtodo/internal/model"
)

// TaskFilter narrows a task list for display. Zero values match
// everything.
type TaskFilter struct {
	Query    string
	Tags     []string
	Statuses []model.Status
	Priority model.Priority
	Pending  bool // hide completed tasks
}

func FullTextSearch(tasks []model.Task, query string) []model.Task {
	if query == "" {
		return tasks
	}

	query = strings.ToLower(query) // 大文字小文字を無視
	var filtered []model.Task

	for _, task := range tasks {
		// 本文か待ち相手に `query` が含まれているかチェック
		if strings.Contains(strings.ToLower(task.Text), query) ||
			strings.Contains(strings.ToLower(task.WaitingFor), query) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

func FilterTasks(tasks []model.Task, f TaskFilter) []model.Task {
	var filtered []model.Task

	for _, task := range FullTextSearch(tasks, f.Query) {
		if len(f.Tags) > 0 && !HasTags(task.Tags, f.Tags) {
			continue
		}
		if len(f.Statuses) > 0 && !hasStatus(f.Statuses, task.Status) {
			continue
		}
		if f.Priority != "" && task.Priority != f.Priority {
			continue
		}
		if f.Pending && task.Completed {
			continue
		}
		filtered = append(filtered, task)
	}
	return filtered
}

// 指定されたタグのどれかが含まれているかチェック
func HasTags(taskTags []string, filterTags []string) bool {
	for _, filterTag := range filterTags {
		filterTag = strings.TrimPrefix(filterTag, "#")
		for _, taskTag := range taskTags {
			if strings.EqualFold(taskTag, filterTag) {
				return true
			}
		}
	}
	return false
}

func hasStatus(statuses []model.Status, status model.Status) bool {
	for _, s := range statuses {
		if s == status {
			return true
		}
	}
	return false
}

// CountTags returns how many tasks carry each tag, keyed by lower-cased tag.
func CountTags(tasks []model.Task) map[string]int {
	counts := make(map[string]int)
	for _, task := range tasks {
		for _, tag := range task.Tags {
			counts[strings.ToLower(tag)]++
		}
	}
	return counts
}
