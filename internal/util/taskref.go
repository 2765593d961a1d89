package util

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nakachan-ing/mdtodo/internal/model"
)

// ResolveTaskRef finds a task by "<status>:<n>" (1-based within the
// section) or by a bare 1-based index over every task in document order.
func ResolveTaskRef(doc *model.Document, ref string) (model.Task, error) {
	ref = strings.TrimSpace(ref)

	if name, num, ok := strings.Cut(ref, ":"); ok {
		status, valid := model.ParseStatus(strings.ToLower(name))
		if !valid {
			return model.Task{}, fmt.Errorf("❌ Unknown section: %q", name)
		}
		n, err := strconv.Atoi(num)
		if err != nil {
			return model.Task{}, fmt.Errorf("❌ Invalid task number: %q", num)
		}
		section, found := doc.Section(status)
		if !found {
			return model.Task{}, fmt.Errorf("❌ Section %s is not in the todo file", status)
		}
		if n < 1 || n > len(section.Tasks) {
			return model.Task{}, fmt.Errorf("❌ Task %s:%d does not exist (%d tasks)", status, n, len(section.Tasks))
		}
		return section.Tasks[n-1], nil
	}

	n, err := strconv.Atoi(ref)
	if err != nil {
		return model.Task{}, fmt.Errorf("❌ Invalid task reference: %q (use <section>:<n> or <n>)", ref)
	}
	tasks := doc.Tasks()
	if n < 1 || n > len(tasks) {
		return model.Task{}, fmt.Errorf("❌ Task %d does not exist (%d tasks)", n, len(tasks))
	}
	return tasks[n-1], nil
}

// ResolveTaskRefs resolves every ref against the same snapshot and rejects
// duplicates.
func ResolveTaskRefs(doc *model.Document, refs []string) ([]model.Task, error) {
	seen := make(map[string]bool)
	tasks := make([]model.Task, 0, len(refs))
	for _, ref := range refs {
		task, err := ResolveTaskRef(doc, ref)
		if err != nil {
			return nil, err
		}
		if seen[task.ID] {
			continue
		}
		seen[task.ID] = true
		tasks = append(tasks, task)
	}
	return tasks, nil
}
