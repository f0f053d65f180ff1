package api

import (
	"embed"
	"io/fs"
)

//go:embed web
var webFS embed.FS

// indexHTML is the calculator homepage.
var indexHTML = mustReadFile("web/index.html")

// staticFS serves files under /static.
var staticFS = mustSub("web/static")

func mustReadFile(name string) []byte {
	data, err := webFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return data
}

func mustSub(dir string) fs.FS {
	sub, err := fs.Sub(webFS, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
