// Package fsys holds the filesystem primitives the path syncer relies on,
// with an implementation for the native filesystem and one over go-billy.
package fsys

import (
	"context"
	"io/fs"
	"path/filepath"

	"psync/internal/model"
)

//FS is the set of filesystem operations needed for synchronization.
//Paths are native paths (absolute or relative to the working directory).
type FS interface {
	//Stat follows symbolic links.
	Stat(name string) (fs.FileInfo, error)
	//ReadDirNames returns the names of the directory entries sorted by name.
	ReadDirNames(name string) ([]string, error)
	MkdirAll(name string, perm fs.FileMode) error
	Remove(name string) error
	RemoveAll(name string) error
	//CopyFile writes the content and the permission bits of the regular file src to the file dst.
	CopyFile(ctx context.Context, src, dst string) error
}

//Inspect reports what is at the path. Any stat error is treated as "nothing is there".
func Inspect(fsys FS, path string) model.PathInfo {
	info, err := fsys.Stat(path)
	if err != nil {
		return model.PathInfo{}
	}
	return model.PathInfo{Exists: true, Mode: info.Mode()}
}

func IsDir(fsys FS, path string) bool {
	return Inspect(fsys, path).IsDir()
}

func IsRegular(fsys FS, path string) bool {
	return Inspect(fsys, path).IsRegular()
}

//RemovePath removes a file or a whole directory tree; if nothing is at the path, it does nothing.
func RemovePath(fsys FS, path string) error {
	info := Inspect(fsys, path)
	switch {
	case info.IsRegular():
		return fsys.Remove(path)
	case info.IsDir():
		return fsys.RemoveAll(path)
	}
	return nil
}

//Copy copies the file src the way cp(1) does:
//when dst is an existing directory, the file is copied into it under its own base name.
func Copy(ctx context.Context, fsys FS, src, dst string) error {
	if IsDir(fsys, dst) {
		dst = filepath.Join(dst, filepath.Base(src))
	}
	return fsys.CopyFile(ctx, src, dst)
}
