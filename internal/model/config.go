package model

type Config struct {
	TodoFile string    `yaml:"todo_file" mapstructure:"todo_file"`
	Editor   string    `yaml:"editor" mapstructure:"editor"`
	Locale   string    `yaml:"locale" mapstructure:"locale"` // en, pt
	Keywords *Keywords `yaml:"keywords,omitempty" mapstructure:"keywords"`
	Log      LogConfig `yaml:"log" mapstructure:"log"`
	Sync     struct {
		Enable     bool   `yaml:"enable" mapstructure:"enable"`
		Bucket     string `yaml:"bucket" mapstructure:"bucket"`
		Key        string `yaml:"key" mapstructure:"key"`
		AWSProfile string `yaml:"aws_profile" mapstructure:"aws_profile"`
		AWSRegion  string `yaml:"aws_region" mapstructure:"aws_region"`
	} `yaml:"sync" mapstructure:"sync"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // text, json, logfmt
}

// SectionKeyword maps one header keyword to a canonical status.
type SectionKeyword struct {
	Status  Status `yaml:"status" mapstructure:"status"`
	Keyword string `yaml:"keyword" mapstructure:"keyword"`
	Emoji   string `yaml:"emoji" mapstructure:"emoji"`
}

// Keywords is the locale-specific vocabulary of a todo document.
// Sections is checked in order and the first match wins.
type Keywords struct {
	Sections         []SectionKeyword `yaml:"sections" mapstructure:"sections"`
	FocusMarker      string           `yaml:"focus_marker" mapstructure:"focus_marker"`
	FocusPlaceholder string           `yaml:"focus_placeholder" mapstructure:"focus_placeholder"`
	Important        string           `yaml:"important" mapstructure:"important"`
	Quick            string           `yaml:"quick" mapstructure:"quick"`
}

func DefaultConfig() Config {
	cfg := Config{
		TodoFile: "~/.config/mdtodo/TODO.md",
		Editor:   "vim",
		Locale:   "en",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
	cfg.Sync.Key = "TODO.md"
	return cfg
}
