//go:build !amd64 && !arm64

package platform

func probe() (popcnt, bitscan bool) {
	return false, false
}
