//go:build debug

package components

const strictRender = true
