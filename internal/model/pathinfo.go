package model

import "io/fs"

//PathInfo holds what is currently on disk at one path (of either the source OR the destination tree).
type PathInfo struct {
	Exists bool
	Mode   fs.FileMode
}

func (pi PathInfo) IsDir() bool {
	return pi.Exists && pi.Mode.IsDir()
}

//IsRegular reports whether the path is a regular file (a directory, a device or a pipe is not).
func (pi PathInfo) IsRegular() bool {
	return pi.Exists && pi.Mode.IsRegular()
}
