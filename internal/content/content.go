// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

// Package content indexes the hand-written pages of the docs directory.
package content

import (
	"bufio"
	"bytes"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zimsendapi/docs/internal/errors"
)

// Set is a set of content identifiers.
type Set map[string]struct{}

// NewSet returns a set holding ids.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	s.Add(ids...)
	return s
}

// Add inserts ids.
func (s Set) Add(ids ...string) {
	for _, id := range ids {
		s[id] = struct{}{}
	}
}

// Has reports whether id is present.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Union returns a new set with the members of s and other.
func (s Set) Union(other Set) Set {
	u := make(Set, len(s)+len(other))
	for id := range s {
		u[id] = struct{}{}
	}
	for id := range other {
		u[id] = struct{}{}
	}
	return u
}

// Sorted returns the members in lexical order.
func (s Set) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// frontMatter holds the page fields that affect the document id.
type frontMatter struct {
	ID string `yaml:"id"`
}

var pageExts = map[string]bool{".md": true, ".mdx": true}

// Scan walks dir and returns the id of every page. A page id is its path
// relative to dir without extension, using forward slashes; an `id` in the
// front matter replaces the file stem. Files and directories whose name starts
// with "_" are partials and are skipped.
func Scan(dir string) (Set, error) {
	set := make(Set)
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if p != dir && strings.HasPrefix(name, "_") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() || !pageExts[strings.ToLower(filepath.Ext(name))] {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		id := strings.TrimSuffix(rel, path.Ext(rel))

		fm, err := readFrontMatter(p)
		if err != nil {
			return errors.Attr(errors.Wrapf(err, errors.KindValidation, "front matter of %s", rel), "file", rel)
		}
		if fm.ID != "" {
			id = path.Join(path.Dir(id), fm.ID)
		}
		set.Add(id)
		return nil
	})
	if err != nil {
		if errors.GetKind(err) != errors.KindUnknown {
			return nil, err
		}
		return nil, errors.Wrapf(err, errors.KindNotFound, "scan docs directory %s", dir)
	}
	return set, nil
}

// readFrontMatter parses the leading "---" delimited YAML block, if any.
func readFrontMatter(p string) (frontMatter, error) {
	var fm frontMatter
	f, err := os.Open(p)
	if err != nil {
		return fm, err
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() || strings.TrimSpace(sc.Text()) != "---" {
		return fm, sc.Err()
	}
	var block bytes.Buffer
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "---" {
			if err := yaml.Unmarshal(block.Bytes(), &fm); err != nil {
				return fm, err
			}
			return fm, nil
		}
		block.WriteString(line)
		block.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return fm, err
	}
	// Unterminated front matter is page content for the renderer, not ours to judge.
	return frontMatter{}, nil
}
