//go:build debug

package dragselect

const debugAssertions = true
