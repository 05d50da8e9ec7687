// Command scraper extracts the registration form schema from the live portal
// (or a saved HTML file), normalizes it, and writes the step schema JSON.
// With -publish it also pushes the schema to the configured store so the
// server starts serving it immediately.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"time"

	"udyam/internal/domain"
	"udyam/internal/platform/config"
	"udyam/internal/platform/logger"
	platformredis "udyam/internal/platform/redis"
	"udyam/internal/schema"
	"udyam/internal/schema/extractor"
	schemastore "udyam/internal/schema/store"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	var (
		url     = flag.String("url", cfg.PortalURL, "registration page URL to scrape")
		file    = flag.String("file", "", "extract from a saved HTML file instead of the live page")
		out     = flag.String("out", "udyamSchema.json", "output path for the normalized schema")
		publish = flag.Bool("publish", false, "publish the schema to the configured store")
		timeout = flag.Duration("timeout", cfg.ScrapeTimeout, "navigation timeout for the live page")
	)
	flag.Parse()

	var source extractor.Source
	if *file != "" {
		source = extractor.FileSource{Path: *file}
	} else {
		source = extractor.RodSource{URL: *url, Timeout: *timeout}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout+30*time.Second)
	defer cancel()

	doc, err := source.Fetch(ctx)
	if err != nil {
		log.Error("fetch failed", "error", err.Error())
		os.Exit(1)
	}

	fields := extractor.Extract(doc)
	steps, err := schema.Normalize(fields)
	if err != nil {
		log.Error("normalization failed", "error", err.Error())
		os.Exit(1)
	}

	raw, err := json.MarshalIndent(steps, "", "  ")
	if err != nil {
		log.Error("encoding failed", "error", err.Error())
		os.Exit(1)
	}
	if err := os.WriteFile(*out, raw, 0o644); err != nil {
		log.Error("write failed", "path", *out, "error", err.Error())
		os.Exit(1)
	}

	if *publish {
		client, err := platformredis.New(cfg.Redis)
		if err != nil {
			log.Error("redis connection failed", "error", err.Error())
			os.Exit(1)
		}
		var st schemastore.Store = schemastore.NewInMemoryStore()
		if client != nil {
			defer client.Close()
			st = schemastore.NewRedisStore(client.Client)
		} else {
			log.Warn("REDIS_URL not set, publish is a no-op")
		}
		if err := st.Publish(ctx, steps); err != nil {
			log.Error("publish failed", "error", err.Error())
			os.Exit(1)
		}
	}

	summarize(log.Info, steps, *out)
}

func summarize(info func(string, ...any), steps []domain.StepSchema, out string) {
	total := 0
	categories := map[domain.Category]int{}
	for _, step := range steps {
		total += len(step.Fields)
		for _, f := range step.Fields {
			categories[f.Category]++
		}
	}
	info("schema written",
		"path", out,
		"steps", len(steps),
		"fields", total,
	)
	for _, step := range steps {
		info("step", "index", step.StepIndex, "name", step.Name, "fields", len(step.Fields))
	}
	for cat, n := range categories {
		info("category", "name", string(cat), "count", n)
	}
}
