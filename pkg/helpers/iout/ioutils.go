package iout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

//readerWithContext allows to perform a cancellable read operation.
type readerWithContext struct {
	ctx context.Context
	r   io.Reader
}

func newReaderWithContext(ctx context.Context, r io.Reader) io.Reader {
	return &readerWithContext{ctx: ctx, r: r}
}

func (r *readerWithContext) Read(p []byte) (int, error) {
	select {
	case <-r.ctx.Done():
		return 0, r.ctx.Err()
	default:
		return r.r.Read(p)
	}
}

//CopyContents copies everything from src to dst, stopping early if ctx is done.
func CopyContents(ctx context.Context, dst io.Writer, src io.Reader) error {
	if _, err := io.Copy(dst, newReaderWithContext(ctx, src)); err != nil {
		return fmt.Errorf("cannot read/write file content: %w", err)
	}
	return nil
}

//RemovePath removes a file or a whole directory tree. A missing path is not an error.
func RemovePath(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("cannot remove entry: %w", err)
	}
	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	if err != nil {
		return fmt.Errorf("cannot remove entry: %w", err)
	}
	return nil
}

//copyFileContents (over)writes dst with the content of src and gives it the permission bits of src.
func copyFileContents(ctx context.Context, src, dst string, srcInfo fs.FileInfo) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("cannot open file: %w", err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return fmt.Errorf("cannot create file: %w", err)
	}
	defer out.Close()

	if err = CopyContents(ctx, out, in); err != nil {
		return err
	}
	if err = out.Sync(); err != nil {
		return fmt.Errorf("cannot flush file: %w", err)
	}
	// the file may have existed before with other permissions
	return chmod(dst, srcInfo)
}

func chmod(dst string, srcInfo fs.FileInfo) error {
	if err := os.Chmod(dst, srcInfo.Mode().Perm()); err != nil {
		return fmt.Errorf("cannot set file permissions: %w", err)
	}
	return nil
}
