package pathsyncer

import (
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

//IsSyncPath decides whether the entry at relPath (relative to the source root) may be synced.
//
//A nil syncPaths allows everything. Otherwise relPath must be at or under one of syncPaths,
//or, for a directory, be an ancestor of one of them (so that the sync path is reachable).
//An entry of ignorePaths only rejects a directory whose relative path is exactly that entry.
//All comparisons are plain string prefix tests.
func IsSyncPath(relPath string, isDir bool, syncPaths, ignorePaths []string) bool {
	canSync := true
	if syncPaths != nil {
		canSync = false
		for _, p := range syncPaths {
			if (isDir && strings.HasPrefix(p, relPath)) || strings.HasPrefix(relPath, p) {
				canSync = true
				break
			}
		}
	}

	if !canSync {
		return false
	}

	for _, p := range ignorePaths {
		// both prefix tests hold only when the paths are equal
		if (isDir && strings.HasPrefix(p, relPath)) && strings.HasPrefix(relPath, p) {
			return false
		}
	}
	return true
}

func newExcludeMatcher(patterns []string) gitignore.Matcher {
	if len(patterns) == 0 {
		return nil
	}
	ps := make([]gitignore.Pattern, 0, len(patterns))
	for _, p := range patterns {
		ps = append(ps, gitignore.ParsePattern(p, nil))
	}
	return gitignore.NewMatcher(ps)
}

func (s *PathSyncer) isSyncPath(relPath string, isDir bool) bool {
	if !IsSyncPath(relPath, isDir, s.syncPaths, s.ignorePaths) {
		return false
	}
	if s.excludes != nil && s.excludes.Match(strings.Split(filepath.ToSlash(relPath), "/"), isDir) {
		return false
	}
	return true
}

func normalizePaths(paths []string) []string {
	if paths == nil {
		return nil
	}
	normalized := make([]string, len(paths))
	for i, p := range paths {
		normalized[i] = filepath.Clean(p)
	}
	return normalized
}
