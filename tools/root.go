/*
Copyright 2022 by Milo Christiansen
Copyright 2024 by Samuel Loewen

This software is provided 'as-is', without any express or implied warranty. In
no event will the authors be held liable for any damages arising from the use of
this software.

Permission is granted to anyone to use this software for any purpose, including
commercial applications, and to alter it and redistribute it freely, subject to
the following restrictions:

1. The origin of this software must not be misrepresented; you must not claim
that you wrote the original software. If you use this software in a product, an
acknowledgment in the product documentation would be appreciated but is not
required.

2. Altered source versions must be plainly marked as such, and must not be
misrepresented as being the original software.

3. This notice may not be removed or altered from any source distribution.
*/

package tools

import (
	"os"
	"path/filepath"
)

// FindRoot returns the workspace root: the first directory holding a go.mod, searching upward from the directory of
// the running executable and then from the working directory. If neither search finds one, the working directory
// is returned.
func FindRoot() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}

	if exe, err := os.Executable(); err == nil {
		if root, ok := findModule(filepath.Dir(exe)); ok {
			return root
		}
	}
	if root, ok := findModule(wd); ok {
		return root
	}
	return wd
}

func findModule(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		if info, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil && !info.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
