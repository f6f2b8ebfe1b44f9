//go:build nonmax_debug

package nonmax

const debugAssertions = true
