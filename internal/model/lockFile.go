package model

type LockFile struct {
	ID        string `yaml:"id"` // ULID
	File      string `yaml:"file"`
	User      string `yaml:"user"`
	Pid       int    `yaml:"pid"`
	TimeStamp string `yaml:"timestamp"`
}
