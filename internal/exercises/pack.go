// Package exercises embeds the official exercise pack and knows how to put
// it on disk: initialising a new exercise directory, restoring a pristine
// exercise, and writing solutions once an exercise is done.
package exercises

import (
	"embed"
	"io/fs"
	"path"
	"path/filepath"
)

//go:embed all:_pack
var packFS embed.FS

const packRoot = "_pack"

// InfoFile returns the embedded official info file.
func InfoFile() []byte {
	data, err := packFS.ReadFile(path.Join(packRoot, "info.yaml"))
	if err != nil {
		panic("embedded info.yaml missing: " + err.Error())
	}
	return data
}

// exerciseFile returns the pristine content of an official exercise. dir
// and name are the exercise directory and file name.
func exerciseFile(dir, name string) ([]byte, error) {
	return packFS.ReadFile(path.Join(packRoot, "exercises", dir, name))
}

// solutionFile returns the official solution of an exercise.
func solutionFile(dir, name string) ([]byte, error) {
	return packFS.ReadFile(path.Join(packRoot, "solutions", dir, name))
}

// Pack exposes the embedded tree rooted at the pack directory.
func Pack() fs.FS {
	sub, err := fs.Sub(packFS, packRoot)
	if err != nil {
		panic(err)
	}
	return sub
}

// relDir converts an exercise directory to the slash form used by embed.
func relDir(dir string) string {
	return filepath.ToSlash(dir)
}
