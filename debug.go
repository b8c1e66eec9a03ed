//go:build arrayvec_debug

package arrayvec

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
