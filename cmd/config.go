/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nakachan-ing/mdtodo/internal/logging"
	"github.com/nakachan-ing/mdtodo/internal/markdown"
	"github.com/nakachan-ing/mdtodo/internal/model"
	"github.com/nakachan-ing/mdtodo/internal/store"
	"github.com/spf13/cobra"
)

var (
	configTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	configCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	configValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	configErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	configHelpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type Model struct {
	cursor     int
	fields     []string
	config     model.Config
	configPath string
	textInput  textinput.Model
	editMode   bool
	message    string
	saveErr    error
}

func newModel(config model.Config, configPath string) *Model {
	return &Model{
		cursor:     0,
		fields:     generateFieldList(),
		config:     config,
		configPath: configPath,
		textInput:  textinput.New(),
		editMode:   false,
	}
}

func generateFieldList() []string {
	return []string{
		"TodoFile", "Editor", "Locale",
		"Log.Level", "Log.Format",
		"Sync.Enable", "Sync.Bucket", "Sync.Key", "Sync.AWSProfile", "Sync.AWSRegion",
		"Save & Exit",
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.editMode {
			switch msg.String() {
			case "enter":
				m.message = ""
				if err := m.updateConfig(); err != nil {
					m.message = err.Error()
				}
				m.editMode = false
				m.textInput.Blur()
			case "esc":
				m.editMode = false
				m.textInput.Blur()
			default:
				var cmd tea.Cmd
				m.textInput, cmd = m.textInput.Update(msg)
				return m, cmd
			}
			return m, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.fields)-1 {
				m.cursor++
			}
		case "enter":
			if m.cursor == len(m.fields)-1 {
				m.saveErr = store.SaveConfig(m.configPath, &m.config)
				return m, tea.Quit
			}
			m.editMode = true
			m.textInput.SetValue(m.getFieldValue(m.fields[m.cursor]))
			m.textInput.CursorEnd()
			m.textInput.Focus()
			return m, textinput.Blink
		}
	}

	return m, nil
}

func (m *Model) View() string {
	var s strings.Builder
	s.WriteString(configTitleStyle.Render("📄 Configure mdtodo") + "\n")
	s.WriteString(configHelpStyle.Render(m.configPath) + "\n\n")

	for i, field := range m.fields {
		cursor := "  "
		label := field
		if m.cursor == i {
			cursor = configCursorStyle.Render("👉")
			label = configCursorStyle.Render(field)
		}
		if i == len(m.fields)-1 {
			s.WriteString(fmt.Sprintf("\n%s %s\n", cursor, label))
			continue
		}
		s.WriteString(fmt.Sprintf("%s %s: %s\n", cursor, label, configValueStyle.Render(m.getFieldValue(field))))
	}

	if m.message != "" {
		s.WriteString("\n" + configErrorStyle.Render(m.message) + "\n")
	}

	if m.editMode {
		s.WriteString("\n✏️  Editing: " + m.fields[m.cursor] + "\n")
		s.WriteString(m.textInput.View() + "\n")
		s.WriteString(configHelpStyle.Render("(Enter to apply, ESC to cancel)") + "\n")
	} else {
		s.WriteString("\n" + configHelpStyle.Render("↑/↓ to move, Enter to edit, q to quit without saving") + "\n")
	}

	return s.String()
}

func (m *Model) getFieldValue(field string) string {
	switch field {
	case "TodoFile":
		return m.config.TodoFile
	case "Editor":
		return m.config.Editor
	case "Locale":
		return m.config.Locale
	case "Log.Level":
		return m.config.Log.Level
	case "Log.Format":
		return m.config.Log.Format
	case "Sync.Enable":
		return strconv.FormatBool(m.config.Sync.Enable)
	case "Sync.Bucket":
		return m.config.Sync.Bucket
	case "Sync.Key":
		return m.config.Sync.Key
	case "Sync.AWSProfile":
		return m.config.Sync.AWSProfile
	case "Sync.AWSRegion":
		return m.config.Sync.AWSRegion
	default:
		return ""
	}
}

// 入力値を検証してから反映する
func (m *Model) updateConfig() error {
	newValue := strings.TrimSpace(m.textInput.Value())

	switch m.fields[m.cursor] {
	case "TodoFile":
		m.config.TodoFile = newValue
	case "Editor":
		m.config.Editor = newValue
	case "Locale":
		if _, err := markdown.KeywordsFor(newValue); err != nil && m.config.Keywords == nil {
			return err
		}
		m.config.Locale = newValue
	case "Log.Level":
		if _, err := logging.ParseLevel(newValue); err != nil {
			return err
		}
		m.config.Log.Level = newValue
	case "Log.Format":
		m.config.Log.Format = newValue
	case "Sync.Enable":
		enable, err := strconv.ParseBool(newValue)
		if err != nil {
			return fmt.Errorf("❌ Not a boolean: %q", newValue)
		}
		m.config.Sync.Enable = enable
	case "Sync.Bucket":
		m.config.Sync.Bucket = newValue
	case "Sync.Key":
		m.config.Sync.Key = newValue
	case "Sync.AWSProfile":
		m.config.Sync.AWSProfile = newValue
	case "Sync.AWSRegion":
		m.config.Sync.AWSRegion = newValue
	}
	return nil
}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure config.yaml interactively",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := store.GetConfigPath()
		if err != nil {
			return fmt.Errorf("❌ Failed to get config path: %w", err)
		}

		// --file などのフラグを反映しない素の設定を編集する
		config, err := store.LoadConfigFrom(configPath)
		if err != nil {
			return err
		}

		m := newModel(*config, configPath)
		if _, err := tea.NewProgram(m).Run(); err != nil {
			return fmt.Errorf("❌ Error running TUI: %w", err)
		}
		if m.saveErr != nil {
			return m.saveErr
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
