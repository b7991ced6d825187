// Package bundle holds the default skill corpus compiled into the binary and
// writes it out to disk on request.
package bundle

import (
	"embed"
	"io/fs"
)

//go:embed all:skills
var embedded embed.FS

// FS returns the bundled corpus rooted at its skills directory.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "skills")
	if err != nil {
		// "skills" is a compile-time embed path.
		panic(err)
	}
	return sub
}
