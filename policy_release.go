//go:build !replacement_debug

package replacement

const debugging = false

func assert(bool, string) {}
