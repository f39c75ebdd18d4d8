// Package web embeds the board's page templates and stylesheet.
package web

import (
	"embed"
	"io/fs"
	"log"
)

//go:embed static templates
var content embed.FS

// StaticFS returns the stylesheet file system served under /static/.
func StaticFS() fs.FS {
	return sub("static")
}

// TemplatesFS returns the HTML templates file system.
func TemplatesFS() fs.FS {
	return sub("templates")
}

func sub(dir string) fs.FS {
	s, err := fs.Sub(content, dir)
	if err != nil {
		log.Fatalf("failed to create %s sub-filesystem: %v", dir, err)
	}
	return s
}
