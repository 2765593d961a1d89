package util

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/nakachan-ing/mdtodo/internal/model"
)

// EditorCommand picks the configured editor, then $EDITOR, then vim.
func EditorCommand(config model.Config) string {
	if editor := strings.TrimSpace(config.Editor); editor != "" {
		return editor
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vim"
}

func OpenEditor(filePath string, config model.Config) error {
	// "code --wait" のような引数付きの指定も許す
	fields := strings.Fields(EditorCommand(config))
	c := exec.Command(fields[0], append(fields[1:], filePath)...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("❌ Failed to open editor (%s): %w", filePath, err)
	}
	return nil
}
