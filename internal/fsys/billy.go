package fsys

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"psync/pkg/helpers/iout"
)

type billyFS struct {
	fs billy.Filesystem
}

//Billy adapts a go-billy filesystem (for example memfs or osfs) to FS.
func Billy(fsys billy.Filesystem) FS {
	return &billyFS{fs: fsys}
}

func (b *billyFS) Stat(name string) (fs.FileInfo, error) {
	info, err := b.fs.Stat(name)
	if err != nil {
		return nil, fmt.Errorf("billy: stat %q: %w", name, err)
	}
	return info, nil
}

func (b *billyFS) ReadDirNames(name string) ([]string, error) {
	list, err := b.fs.ReadDir(name)
	if err != nil {
		return nil, fmt.Errorf("billy: readdir %q: %w", name, err)
	}
	names := make([]string, 0, len(list))
	for _, info := range list {
		names = append(names, info.Name())
	}
	sort.Strings(names)
	return names, nil
}

func (b *billyFS) MkdirAll(name string, perm fs.FileMode) error {
	if err := b.fs.MkdirAll(name, perm); err != nil {
		return fmt.Errorf("billy: mkdirall %q: %w", name, err)
	}
	return nil
}

func (b *billyFS) Remove(name string) error {
	if err := b.fs.Remove(name); err != nil {
		return fmt.Errorf("billy: remove %q: %w", name, err)
	}
	return nil
}

func (b *billyFS) RemoveAll(name string) error {
	if err := util.RemoveAll(b.fs, name); err != nil {
		return fmt.Errorf("billy: removeall %q: %w", name, err)
	}
	return nil
}

func (b *billyFS) CopyFile(ctx context.Context, src, dst string) error {
	info, err := b.fs.Stat(src)
	if err != nil {
		return fmt.Errorf("billy: stat %q: %w", src, err)
	}

	in, err := b.fs.Open(src)
	if err != nil {
		return fmt.Errorf("billy: open %q: %w", src, err)
	}
	defer in.Close()

	out, err := b.fs.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("billy: openfile %q: %w", dst, err)
	}
	defer out.Close()

	if err := iout.CopyContents(ctx, out, in); err != nil {
		return fmt.Errorf("billy: copy %q: %w", src, err)
	}

	// not every billy filesystem can change permissions
	if ch, ok := b.fs.(billy.Change); ok {
		if err := ch.Chmod(dst, info.Mode().Perm()); err != nil {
			return fmt.Errorf("billy: chmod %q: %w", dst, err)
		}
	}
	return nil
}
