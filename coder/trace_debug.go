//go:build difdebug

package coder

const traceFields = true
