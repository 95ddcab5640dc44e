// Package main hosts the vttext CLI entrypoint and command graph.
//
// The root command converts one caption file into deduplicated plain text,
// printing it to stdout or writing it to an optional output path. The
// --init-config and --check-config flags scaffold and check the configuration
// file instead of converting. The heavy lifting
// lives in internal/transcript and internal/vtt.
package main
