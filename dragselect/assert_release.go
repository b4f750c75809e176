//go:build !debug

package dragselect

const debugAssertions = false
