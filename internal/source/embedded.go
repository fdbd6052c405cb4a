package source

import (
	"embed"
	"io/fs"
)

//go:embed all:library
var embedded embed.FS

// Embedded returns the style library compiled into the binary.
func Embedded() *Library {
	sub, err := fs.Sub(embedded, "library")
	if err != nil {
		// "library" is a constant, valid path.
		panic(err)
	}
	return NewLibrary(sub, "bundled library")
}
