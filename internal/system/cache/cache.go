// Released under an MIT license. See LICENSE.

// Package cache tracks the executable names on the shell's search path.
//
// All access goes through a single goroutine, so callers can share the
// cache without locking. A completion request only ever sees directories
// that have already been scanned.
package cache

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//nolint:gochecknoglobals
var (
	commands          = map[string][]string{}
	pathListSeparator = string(os.PathListSeparator)
	requestq          chan func()
)

func init() {
	requestq = make(chan func(), 1)

	go service()
}

// Complete returns the sorted command names starting with prefix.
func Complete(prefix string) []string {
	resultq := make(chan []string)

	requestq <- func() {
		var found []string

		for _, names := range commands {
			for _, name := range names {
				if strings.HasPrefix(name, prefix) {
					found = append(found, name)
				}
			}
		}

		sort.Strings(found)

		unique := found[:0]
		for _, name := range found {
			if len(unique) == 0 || unique[len(unique)-1] != name {
				unique = append(unique, name)
			}
		}

		resultq <- unique
		close(resultq)
	}

	return <-resultq
}

// Executables returns the executable names scanned from dirname.
func Executables(dirname string) []string {
	resultq := make(chan []string)

	requestq <- func() {
		resultq <- commands[dirname]
		close(resultq)
	}

	return <-resultq
}

// Populate scans each directory in the colon separated path.
func Populate(path string) {
	for _, dirname := range strings.Split(path, pathListSeparator) {
		if dirname == "" {
			dirname = "."
		} else {
			dirname = filepath.Clean(dirname)
		}

		stat, err := os.Stat(dirname)
		if err != nil || !stat.IsDir() {
			continue
		}

		scan(dirname)
	}
}

func scan(dirname string) {
	requestq <- func() {
		entries, err := os.ReadDir(dirname)
		if err != nil {
			return
		}

		e := []string{}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			info, err := entry.Info()
			if err != nil {
				continue
			}

			if info.Mode()&0o111 != 0 {
				e = append(e, entry.Name())
			}
		}

		commands[dirname] = e
	}
}

func service() {
	for {
		(<-requestq)()
	}
}
