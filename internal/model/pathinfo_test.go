package model

import (
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPathInfo_Kind(t *testing.T) {
	tests := []struct {
		name        string
		info        PathInfo
		wantDir     bool
		wantRegular bool
	}{
		{name: "not exist", info: PathInfo{}, wantDir: false, wantRegular: false},
		{name: "stale dir mode", info: PathInfo{Exists: false, Mode: fs.ModeDir}, wantDir: false, wantRegular: false},
		{name: "dir", info: PathInfo{Exists: true, Mode: fs.ModeDir | 0o755}, wantDir: true, wantRegular: false},
		{name: "regular file", info: PathInfo{Exists: true, Mode: 0o644}, wantDir: false, wantRegular: true},
		{name: "named pipe", info: PathInfo{Exists: true, Mode: fs.ModeNamedPipe}, wantDir: false, wantRegular: false},
		{name: "device", info: PathInfo{Exists: true, Mode: fs.ModeDevice}, wantDir: false, wantRegular: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requires := require.New(t)
			requires.Equal(tt.wantDir, tt.info.IsDir())
			requires.Equal(tt.wantRegular, tt.info.IsRegular())
		})
	}
}
