//go:build !debug

package jungle

const debugAsserts = false

func assertf(bool, string, ...any) {}
