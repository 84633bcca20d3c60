package fsys

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
)

type fsCase struct {
	name  string
	setup func(t *testing.T) (FS, string)
}

func fsCases() []fsCase {
	return []fsCase{
		{name: "os", setup: func(t *testing.T) (FS, string) { return OS(), t.TempDir() }},
		{name: "memfs", setup: func(t *testing.T) (FS, string) { return Billy(memfs.New()), "/root" }},
	}
}

func writeFile(t *testing.T, fsys FS, path, content string) {
	t.Helper()
	requires := require.New(t)
	requires.NoError(fsys.MkdirAll(filepath.Dir(path), 0o755))
	switch f := fsys.(type) {
	case *billyFS:
		requires.NoError(util.WriteFile(f.fs, path, []byte(content), 0o644))
	default:
		requires.NoError(os.WriteFile(path, []byte(content), 0o644))
	}
}

func readFile(t *testing.T, fsys FS, path string) string {
	t.Helper()
	var (
		data []byte
		err  error
	)
	switch f := fsys.(type) {
	case *billyFS:
		data, err = util.ReadFile(f.fs, path)
	default:
		data, err = os.ReadFile(path)
	}
	require.NoError(t, err)
	return string(data)
}

func TestInspect(t *testing.T) {
	for _, c := range fsCases() {
		t.Run(c.name, func(t *testing.T) {
			requires := require.New(t)
			fsys, root := c.setup(t)
			file := filepath.Join(root, "file.txt")
			dir := filepath.Join(root, "dir")
			writeFile(t, fsys, file, "x")
			requires.NoError(fsys.MkdirAll(dir, 0o755))

			requires.True(IsRegular(fsys, file))
			requires.False(IsDir(fsys, file))
			requires.True(IsDir(fsys, dir))
			requires.False(IsRegular(fsys, dir))

			missing := Inspect(fsys, filepath.Join(root, "missing"))
			requires.False(missing.Exists)
			requires.False(missing.IsDir())
			requires.False(missing.IsRegular())
		})
	}
}

func TestReadDirNamesSorted(t *testing.T) {
	for _, c := range fsCases() {
		t.Run(c.name, func(t *testing.T) {
			requires := require.New(t)
			fsys, root := c.setup(t)
			for _, name := range []string{"c.txt", "a.txt", "b"} {
				writeFile(t, fsys, filepath.Join(root, name), name)
			}

			names, err := fsys.ReadDirNames(root)

			requires.NoError(err)
			requires.Equal([]string{"a.txt", "b", "c.txt"}, names)
		})
	}
}

func TestRemovePath(t *testing.T) {
	for _, c := range fsCases() {
		t.Run(c.name, func(t *testing.T) {
			requires := require.New(t)
			fsys, root := c.setup(t)
			file := filepath.Join(root, "file.txt")
			tree := filepath.Join(root, "tree")
			writeFile(t, fsys, file, "x")
			writeFile(t, fsys, filepath.Join(tree, "a", "b.txt"), "y")

			requires.NoError(RemovePath(fsys, file))
			requires.NoError(RemovePath(fsys, tree))
			requires.NoError(RemovePath(fsys, filepath.Join(root, "missing")))

			requires.False(Inspect(fsys, file).Exists)
			requires.False(Inspect(fsys, tree).Exists)
		})
	}
}

func TestCopy(t *testing.T) {
	for _, c := range fsCases() {
		t.Run(c.name, func(t *testing.T) {
			requires := require.New(t)
			fsys, root := c.setup(t)
			src := filepath.Join(root, "src.txt")
			writeFile(t, fsys, src, "content")

			// plain copy, then overwrite
			dst := filepath.Join(root, "dst.txt")
			requires.NoError(Copy(context.Background(), fsys, src, dst))
			requires.Equal("content", readFile(t, fsys, dst))
			writeFile(t, fsys, src, "changed")
			requires.NoError(Copy(context.Background(), fsys, src, dst))
			requires.Equal("changed", readFile(t, fsys, dst))

			// copying onto a directory puts the file inside it
			dir := filepath.Join(root, "dir")
			requires.NoError(fsys.MkdirAll(dir, 0o755))
			requires.NoError(Copy(context.Background(), fsys, src, dir))
			requires.True(IsDir(fsys, dir))
			requires.Equal("changed", readFile(t, fsys, filepath.Join(dir, "src.txt")))
		})
	}
}

func TestCopyKeepsPermissions(t *testing.T) {
	requires := require.New(t)
	root := t.TempDir()
	src := filepath.Join(root, "run.sh")
	requires.NoError(os.WriteFile(src, []byte("#!/bin/sh"), 0o644))
	requires.NoError(os.Chmod(src, 0o750))

	dst := filepath.Join(root, "copy.sh")
	requires.NoError(Copy(context.Background(), OS(), src, dst))

	info, err := OS().Stat(dst)
	requires.NoError(err)
	requires.Equal(fs.FileMode(0o750), info.Mode().Perm())
}
