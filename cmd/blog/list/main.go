package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	blog "github.com/goliatone/go-blog"
	"github.com/goliatone/go-blog/posts"
)

func main() {
	var (
		contentDir = flag.String("content-dir", "content/blog", "Path to the post content directory")
		category   = flag.String("category", "", "Filter by exact category")
		featured   = flag.Bool("featured", false, "Only featured posts")
		limit      = flag.Int("limit", 0, "Cap the number of posts returned (0 = no cap)")
		categories = flag.Bool("categories", false, "Print category counts instead of posts")
	)

	flag.Parse()

	cfg := blog.DefaultConfig()
	cfg.Content.Dir = *contentDir
	cfg.Logging.Enabled = false

	module, err := blog.New(cfg)
	if err != nil {
		log.Fatalf("bootstrap blog module: %v", err)
	}

	ctx := context.Background()
	service := module.Posts()

	if *categories {
		counts, err := service.Categories(ctx)
		if err != nil {
			log.Fatalf("list categories: %v", err)
		}
		emit(counts)
		return
	}

	var summaries []*posts.Summary
	switch {
	case *featured:
		summaries, err = service.Featured(ctx, *limit)
	case *category != "":
		summaries, err = service.ListByCategory(ctx, posts.Category(*category))
	default:
		summaries, err = service.List(ctx)
	}
	if err != nil {
		log.Fatalf("list posts: %v", err)
	}

	if *limit > 0 && !*featured && len(summaries) > *limit {
		summaries = summaries[:*limit]
	}
	emit(summaries)
}

func emit(v any) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "encode output: %v\n", err)
		os.Exit(1)
	}
}
