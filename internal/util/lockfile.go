package util

import (
	"crypto/rand"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/nakachan-ing/mdtodo/internal/model"
	"github.com/oklog/ulid"
	"gopkg.in/yaml.v3"
)

var ErrLocked = errors.New("todo file is locked by another session")

// LockPath returns the lock file that guards target: ".TODO.md.lock" next
// to it.
func LockPath(target string) string {
	dir, base := filepath.Split(target)
	return filepath.Join(dir, "."+base+".lock")
}

// CreateLockFile takes the lock for target. It fails with ErrLocked when a
// lock file is already there.
func CreateLockFile(target string) (model.LockFile, error) {
	t := time.Now().UTC()
	id, err := ulid.New(ulid.Timestamp(t), rand.Reader)
	if err != nil {
		return model.LockFile{}, fmt.Errorf("❌ Failed to generate lock id: %w", err)
	}

	user := os.Getenv("USER")
	if user == "" {
		user = os.Getenv("USERNAME")
	}
	if user == "" {
		return model.LockFile{}, fmt.Errorf("❌ Failed to retrieve the username")
	}

	lockFile := model.LockFile{
		ID:        id.String(),
		File:      target,
		User:      user,
		Pid:       os.Getpid(),
		TimeStamp: t.Format(time.RFC3339),
	}

	info, err := yaml.Marshal(&lockFile)
	if err != nil {
		return model.LockFile{}, fmt.Errorf("❌ Failed to marshal YAML: %w", err)
	}

	f, err := os.OpenFile(LockPath(target), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return model.LockFile{}, ErrLocked
		}
		return model.LockFile{}, fmt.Errorf("❌ Failed to create lock file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(info); err != nil {
		return model.LockFile{}, fmt.Errorf("❌ Failed to write lock file: %w", err)
	}
	return lockFile, nil
}

func ReadLockFile(target string) (model.LockFile, error) {
	var lockFile model.LockFile
	data, err := os.ReadFile(LockPath(target))
	if err != nil {
		return lockFile, fmt.Errorf("❌ Failed to read lock file: %w", err)
	}
	if err := yaml.Unmarshal(data, &lockFile); err != nil {
		return lockFile, fmt.Errorf("❌ Failed to parse lock file: %w", err)
	}
	return lockFile, nil
}

// RemoveLockFile releases the lock only if it is still the one we took.
func RemoveLockFile(lock model.LockFile) error {
	current, err := ReadLockFile(lock.File)
	if err != nil {
		return err
	}
	if current.ID != lock.ID {
		return fmt.Errorf("❌ Lock file belongs to another session (%s)", current.ID)
	}
	if err := os.Remove(LockPath(lock.File)); err != nil {
		return fmt.Errorf("❌ Failed to remove lock file: %w", err)
	}
	return nil
}
