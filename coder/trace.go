//go:build !difdebug

package coder

// traceFields enables per-field debug logging. Build with -tags difdebug.
const traceFields = false
