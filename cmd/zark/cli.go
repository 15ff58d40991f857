package main

import (
	"context"
	"io"

	"github.com/zarkhq/zark"
	"github.com/zarkhq/zark/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	DB       *sqlite.DB
	Records  zark.RecordService
	Crawler  zark.Ingestor
	Builder  zark.ContextBuilder
	Answerer zark.Answerer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Ingest    IngestCmd    `cmd:"" help:"Crawl a URL and store the extracted knowledge"`
	Ask       AskCmd       `cmd:"" help:"Ask a question answered from stored knowledge"`
	Search    SearchCmd    `cmd:"" help:"Search stored knowledge records"`
	Knowledge KnowledgeCmd `cmd:"" help:"Show the knowledge base contents"`
	Clear     ClearCmd     `cmd:"" help:"Delete all stored knowledge"`
}

// IngestCmd is the "ingest" subcommand.
type IngestCmd struct {
	URL   string `arg:"" help:"Seed URL to crawl"`
	Depth int    `short:"d" default:"1" help:"Crawl depth (1 = seed page only)"`
}

// AskCmd is the "ask" subcommand.
type AskCmd struct {
	Query string `arg:"" help:"Question to answer"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Search query"`
}

// KnowledgeCmd is the "knowledge" subcommand.
type KnowledgeCmd struct {
	Limit int `short:"n" default:"10" help:"Number of recent entries to show"`
}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Force bool `help:"Confirm deletion"`
}
