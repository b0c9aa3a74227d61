package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// rescanExt is the single extension a directory rescan admits. Files
// handed over as startup arguments are not filtered; see collectImages.
const rescanExt = ".png"

// noIndex marks the previous selection as invalid so the next roll is
// guaranteed to reload.
const noIndex = -1

func hasRescanExt(path string) bool {
	return strings.EqualFold(filepath.Ext(path), rescanExt)
}

// ImageSet is an ordered sequence of image file paths plus the current
// selection index. previous tracks the index the cached texture was built
// for; the texture cache compares it against current to decide whether a
// reload is due.
type ImageSet struct {
	fs       afero.Fs
	sort     SortStrategy
	entries  []string
	current  int
	previous int
}

// NewImageSet builds a set from the given paths, kept in the order the
// strategy yields (EntryOrderSortStrategy preserves the input order).
func NewImageSet(fsys afero.Fs, sort SortStrategy, paths []string) *ImageSet {
	return &ImageSet{
		fs:       fsys,
		sort:     sort,
		entries:  sort.Sort(paths),
		current:  0,
		previous: noIndex,
	}
}

func (s *ImageSet) Len() int {
	return len(s.entries)
}

// Current returns the selection index. Meaningless when the set is empty.
func (s *ImageSet) Current() int {
	return s.current
}

// Dirty reports whether the selection has changed since the last MarkClean.
func (s *ImageSet) Dirty() bool {
	return s.current != s.previous
}

// MarkClean records that the held texture now matches the selection.
func (s *ImageSet) MarkClean() {
	s.previous = s.current
}

// CurrentPath returns the full path of the selected entry, or "" when the
// set is empty.
func (s *ImageSet) CurrentPath() string {
	if len(s.entries) == 0 {
		return ""
	}
	return s.entries[s.current]
}

// CurrentName returns the file name (without directory) of the selected
// entry, or "" when the set is empty.
func (s *ImageSet) CurrentName() string {
	if len(s.entries) == 0 {
		return ""
	}
	return filepath.Base(s.entries[s.current])
}

// Next advances the selection circularly. No-op on an empty set.
func (s *ImageSet) Next() {
	if len(s.entries) == 0 {
		return
	}
	s.current = (s.current + 1) % len(s.entries)
}

// Prev steps the selection back circularly. No-op on an empty set.
func (s *ImageSet) Prev() {
	if len(s.entries) == 0 {
		return
	}
	s.current = (s.current - 1 + len(s.entries)) % len(s.entries)
}

// Rescan replaces the whole set with the rescanExt files found next to
// droppedPath: droppedPath's own listing when it is a directory, its parent
// directory's otherwise. When the dropped path is one of the enumerated
// files the selection moves to it, else to the first entry. A scan that
// matches nothing leaves the set, the selection, and the dirty state
// untouched, so the viewer keeps showing what it showed before the drop.
func (s *ImageSet) Rescan(droppedPath string) {
	dropped := filepath.Clean(droppedPath)
	dir := dropped
	if fi, err := s.fs.Stat(dropped); err != nil || !fi.IsDir() {
		dir = filepath.Dir(dropped)
	}

	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		// Unreadable directory counts as zero matches.
		debugLog("rescan %s: %v", dir, err)
		return
	}

	var found []string
	for _, fi := range infos {
		if fi.IsDir() || !hasRescanExt(fi.Name()) {
			continue
		}
		found = append(found, filepath.Join(dir, fi.Name()))
	}
	if len(found) == 0 {
		return
	}

	found = s.sort.Sort(found)
	current := 0
	for i, p := range found {
		if p == dropped {
			current = i
			break
		}
	}

	s.entries = found
	s.current = current
	s.previous = noIndex
}

// collectImages turns the positional arguments into the initial entry list.
// Arguments are taken verbatim, in the order given; startup does not apply
// the rescan extension filter.
func collectImages(args []string) []string {
	list := make([]string, 0, len(args))
	for _, p := range args {
		list = append(list, filepath.Clean(p))
	}
	return list
}
