// Package pathsyncer copies a file or a directory tree from a source path to a destination path.
//
// The sync is one-way and copy-forward: every visited source file is copied, whether it changed or not,
// and destination entries that are absent from the source are left alone. The only deletions happen
// when a file has to replace a directory or a directory has to replace a file.
package pathsyncer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"psync/internal/fsys"
	"psync/internal/log"
	"psync/internal/model"
)

type PathSyncer struct {
	source      string
	dest        string
	syncPaths   []string
	ignorePaths []string
	excludes    gitignore.Matcher

	fs       fsys.FS
	progress io.Writer
	log      log.Logger
}

type Option func(*PathSyncer)

//WithFS sets the filesystem to sync on (the native one by default).
func WithFS(fs fsys.FS) Option {
	return func(s *PathSyncer) { s.fs = fs }
}

//WithProgress sets where the progress lines are printed (os.Stdout by default).
func WithProgress(w io.Writer) Option {
	return func(s *PathSyncer) { s.progress = w }
}

func WithLogger(logger log.Logger) Option {
	return func(s *PathSyncer) { s.log = logger }
}

//WithExcludes skips entries matching any of the gitignore-style patterns, together with everything below them.
//Patterns are matched against the path relative to the source root.
func WithExcludes(patterns []string) Option {
	return func(s *PathSyncer) { s.excludes = newExcludeMatcher(patterns) }
}

//New creates a syncer from source to dest. It does not touch the filesystem.
//
//syncPaths and ignorePaths are relative to source; nil means "not set",
//while an empty non-nil syncPaths lets nothing under source through.
func New(source, dest string, syncPaths, ignorePaths []string, opts ...Option) (*PathSyncer, error) {
	if source == "" {
		return nil, &ConfigurationError{Field: "source path"}
	}
	if dest == "" {
		return nil, &ConfigurationError{Field: "destination path"}
	}

	s := &PathSyncer{
		source:      filepath.Clean(source),
		dest:        filepath.Clean(dest),
		syncPaths:   normalizePaths(syncPaths),
		ignorePaths: normalizePaths(ignorePaths),
		fs:          fsys.OS(),
		progress:    os.Stdout,
		log:         log.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

//Sync copies the source to the destination. A missing source is not an error: nothing happens.
//Filesystem errors stop the sync and leave the destination partially synced.
func (s *PathSyncer) Sync(ctx context.Context) error {
	s.log.Debug("sync started", log.String("source", s.source), log.String("dest", s.dest),
		log.Strings("syncPaths", s.syncPaths), log.Strings("ignorePaths", s.ignorePaths))
	start := time.Now()

	var err error
	if fsys.IsDir(s.fs, s.source) {
		err = s.syncDir(ctx, s.source, s.dest)
	} else {
		err = s.syncFile(ctx, s.source, s.dest)
	}
	if err != nil {
		return err
	}

	s.log.Debug("sync finished", log.Duration("took", time.Since(start)))
	return nil
}

func (s *PathSyncer) syncFile(ctx context.Context, sour, dest string) error {
	if !fsys.IsRegular(s.fs, sour) {
		return nil
	}
	relPath, err := s.relPath(sour)
	if err != nil {
		return err
	}
	if !s.isSyncPath(relPath, false) {
		return nil
	}

	s.report(model.NewCopyAction(sour, dest))
	if fsys.IsDir(s.fs, dest) {
		if err := fsys.RemovePath(s.fs, dest); err != nil {
			return err
		}
	}
	return fsys.Copy(ctx, s.fs, sour, dest)
}

//syncDir handles one directory level and descends into the subdirectories that pass the filter.
func (s *PathSyncer) syncDir(ctx context.Context, sour, dest string) error {
	if fsys.IsRegular(s.fs, dest) {
		if err := fsys.RemovePath(s.fs, dest); err != nil {
			return err
		}
	}

	if !fsys.IsDir(s.fs, dest) {
		s.report(model.NewMkdirAction(dest))
		if err := s.fs.MkdirAll(dest, os.ModePerm); err != nil {
			return err
		}
	}

	names, err := s.fs.ReadDirNames(sour)
	if err != nil {
		return err
	}
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return err
		}

		sourChild := filepath.Join(sour, name)
		destChild := filepath.Join(dest, name)
		relPath, err := s.relPath(sourChild)
		if err != nil {
			return err
		}

		info := fsys.Inspect(s.fs, sourChild)
		switch {
		case info.IsRegular() && s.isSyncPath(relPath, false):
			// unlike syncFile, a directory at destChild is not removed first: the file is copied into it
			s.report(model.NewCopyAction(sourChild, destChild))
			if err := fsys.Copy(ctx, s.fs, sourChild, destChild); err != nil {
				return err
			}
		case info.IsDir() && s.isSyncPath(relPath, true):
			if err := s.syncDir(ctx, sourChild, destChild); err != nil {
				return err
			}
		}
	}
	return nil
}

//relPath is always relative to the source root, however deep the recursion is.
func (s *PathSyncer) relPath(path string) (string, error) {
	rel, err := filepath.Rel(s.source, path)
	if err != nil {
		return "", fmt.Errorf("cannot make path %q relative to %q: %w", path, s.source, err)
	}
	return rel, nil
}

func (s *PathSyncer) report(action model.Action) {
	fmt.Fprintln(s.progress, action.String())
	s.log.Debug("sync action", log.Stringer("action", action))
}
