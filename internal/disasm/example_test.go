package disasm_test

import (
	"fmt"

	"isaext/internal/disasm"
)

func ExampleDecodeAll() {
	code := []byte{0x55, 0xc5, 0xfd, 0xfe, 0xc1, 0xc3}
	s, err := disasm.DecodeAll(code, disasm.Mode64)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, in := range s {
		fmt.Println(in)
	}
	// Output:
	// 0x0: 55 PUSH
	// 0x1: c5 fd fe c1 VPADDD
	// 0x5: c3 RET
}

func ExampleDecoder_Next() {
	d := disasm.NewDecoder([]byte{0x90, 0xe8, 0x00}, disasm.Mode64)
	for {
		in, err := d.Next()
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(in.Mnemonic(), in.Len)
	}
	// Output:
	// NOP 1
	// truncated instruction at offset 0x1
}
