//go:build !amd64 && !arm64

package broadword

func init() {
	initStrategy()
}
