//go:build !arrayvec_debug

package arrayvec

const debugging = false

func assert(bool, string) {}
