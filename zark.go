// Package zark provides the core of a web knowledge assistant. It crawls
// web pages into structured knowledge records, derives lexical metadata,
// and retrieves the most relevant records for a free-text query to ground
// a generated answer.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, gemini/).
package zark
