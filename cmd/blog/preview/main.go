package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	blog "github.com/goliatone/go-blog"
)

func main() {
	var (
		contentDir = flag.String("content-dir", "content/blog", "Path to the post content directory")
		slug       = flag.String("slug", "", "Slug of the post to preview")
		renderHTML = flag.Bool("render-html", true, "Print the rendered HTML body")
		logLevel   = flag.String("log-level", "error", "Logging level")
	)

	flag.Parse()

	if *slug == "" {
		log.Fatalf("--slug is required")
	}

	cfg := blog.DefaultConfig()
	cfg.Content.Dir = *contentDir
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = "console"

	module, err := blog.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap blog module: %v", err)
	}

	post, err := module.Posts().Get(context.Background(), *slug)
	if err != nil {
		log.Fatalf("load post: %v", err)
	}

	meta, err := json.MarshalIndent(post.Summary, "", "  ")
	if err != nil {
		log.Fatalf("encode summary: %v", err)
	}
	fmt.Fprintf(os.Stdout, "Summary:\n%s\n\n", meta)

	if len(post.TableOfContents) > 0 {
		fmt.Fprintln(os.Stdout, "Table of contents:")
		for _, item := range post.TableOfContents {
			fmt.Fprintf(os.Stdout, "  [%d] %s (#%s)\n", item.Level, item.Text, item.ID)
		}
		fmt.Fprintln(os.Stdout)
	}

	if *renderHTML {
		fmt.Fprintf(os.Stdout, "Rendered HTML:\n%s\n", post.HTML)
	}
}
