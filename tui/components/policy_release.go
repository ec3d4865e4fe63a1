//go:build !debug

package components

const strictRender = false
