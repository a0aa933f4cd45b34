// Command cm2html is a smoke-test binary for the commonmark-go module: it
// reads Markdown from stdin (or a file named as its one argument) and
// writes GFM-rendered HTML to stdout. It is not a config-driven CLI tool;
// it exists only so the module has something runnable.
package main

import (
	"io"
	"log"
	"os"

	"github.com/shodgson/commonmark-go/markdown"
	"github.com/shodgson/commonmark-go/options"
)

func main() {
	var (
		src []byte
		err error
	)
	if len(os.Args) > 1 {
		src, err = os.ReadFile(os.Args[1])
	} else {
		src, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		log.Fatalf("cm2html: %v", err)
	}

	out, err := markdown.MarkdownToHTML(src, options.DefaultGFM(), options.DefaultRenderOptions())
	if err != nil {
		log.Fatalf("cm2html: %v", err)
	}
	if _, err := io.WriteString(os.Stdout, out); err != nil {
		log.Fatalf("cm2html: %v", err)
	}
}
