//go:build !darwin

// On Linux (kernel 4.5+), io.Copy attempts copy_file_range(2) internally,
// so the data does not pass through userspace on supported filesystems.

package iout

import (
	"context"
	"fmt"
	"os"
)

//CopyFile copies the regular file at srcPath to dstPath, overwriting dstPath if it is a file.
//The copy gets the permission bits of the source. Parent directories are not created.
func CopyFile(ctx context.Context, srcPath, dstPath string) error {
	srcInfo, err := os.Stat(srcPath)
	if err != nil {
		return fmt.Errorf("cannot copy file: %w", err)
	}
	if err := copyFileContents(ctx, srcPath, dstPath, srcInfo); err != nil {
		return fmt.Errorf("cannot copy file: %w", err)
	}
	return nil
}
