// Package web serves the embedded browser client bundle.
package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed all:static
var embeddedStatic embed.FS

// Handler serves the client bundle from the embedded filesystem.
func Handler() http.Handler {
	sub, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
