//go:build amd64

package broadword

import "golang.org/x/sys/cpu"

func init() {
	hasPopcount = cpu.X86.HasPOPCNT
	initStrategy()
}
