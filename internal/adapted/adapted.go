// Use of code in this package is governed by Go's BSD-style license.

// Package adapted contains functions adapted from Go's standard library.
package adapted

import (
	"os"
	"strings"
)

// LookPath finds name in path. It has the semantics of execvp: a name
// containing a slash is used as given and path is never consulted. The
// boolean reports whether what was found is executable.
func LookPath(name, path string) (string, bool, error) {
	cnf := "command not found"

	if name == "" {
		return "", false, &pathError{name, cnf}
	}

	if strings.Contains(name, "/") {
		exe, err := findPath(name)
		if err == nil {
			return name, exe, nil
		}

		return "", false, &pathError{name, err.Error()}
	}

	if path == "" {
		return "", false, &pathError{name, cnf}
	}

	for _, dir := range strings.Split(path, ":") {
		if dir == "" {
			// An empty path element stands for the current directory.
			dir = "."
		}

		pathname := dir + "/" + name
		if exe, err := findPath(pathname); err == nil {
			return pathname, exe, nil
		}
	}

	return "", false, &pathError{name, cnf}
}

type pathError struct {
	Path string
	Err  string
}

func (e *pathError) Error() string {
	return e.Path + ": " + e.Err
}

func findPath(file string) (bool, error) {
	d, err := os.Stat(file)
	if err != nil {
		return false, err
	}

	m := d.Mode()
	if m.IsDir() {
		return false, nil
	} else if m&0o111 != 0 {
		return true, nil
	}

	return false, os.ErrPermission
}
