//go:build darwin

// clonefile(2) makes an APFS copy-on-write clone that shares data blocks until modified.
// It refuses to overwrite an existing file and does not work across devices,
// so in those cases the plain copy is used.

package iout

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

//CopyFile copies the regular file at srcPath to dstPath, overwriting dstPath if it is a file.
//The copy gets the permission bits of the source. Parent directories are not created.
func CopyFile(ctx context.Context, srcPath, dstPath string) error {
	srcInfo, err := os.Stat(srcPath)
	if err != nil {
		return fmt.Errorf("cannot copy file: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("cannot copy file: %w", err)
	}

	if err := unix.Clonefile(srcPath, dstPath, unix.CLONE_NOFOLLOW); err == nil {
		if err := chmod(dstPath, srcInfo); err != nil {
			return fmt.Errorf("cannot copy file: %w", err)
		}
		return nil
	}

	if err := copyFileContents(ctx, srcPath, dstPath, srcInfo); err != nil {
		return fmt.Errorf("cannot copy file: %w", err)
	}
	return nil
}
