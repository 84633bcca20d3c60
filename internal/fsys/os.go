package fsys

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"psync/pkg/helpers/iout"
)

type osFS struct{}

//OS returns the native filesystem.
func OS() FS {
	return osFS{}
}

func (osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

func (osFS) ReadDirNames(name string) ([]string, error) {
	entries, err := os.ReadDir(name)
	if err != nil {
		return nil, fmt.Errorf("cannot read dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

func (osFS) MkdirAll(name string, perm fs.FileMode) error {
	if err := os.MkdirAll(name, perm); err != nil {
		return fmt.Errorf("cannot make dir: %w", err)
	}
	return nil
}

func (osFS) Remove(name string) error {
	if err := os.Remove(name); err != nil {
		return fmt.Errorf("cannot remove entry: %w", err)
	}
	return nil
}

func (osFS) RemoveAll(name string) error {
	return iout.RemovePath(name)
}

func (osFS) CopyFile(ctx context.Context, src, dst string) error {
	return iout.CopyFile(ctx, src, dst)
}
