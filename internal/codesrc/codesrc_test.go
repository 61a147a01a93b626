package codesrc

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"isaext/internal/disasm"
)

const (
	codeOff = 0x100
	codeVA  = 0x401000
)

type elfSpec struct {
	class    elf.Class
	machine  elf.Machine
	code     []byte
	sections bool
	noExec   bool
}

// writeELF builds a minimal little-endian executable with one PT_LOAD
// segment covering code and, optionally, .text and .shstrtab sections.
func writeELF(t *testing.T, s elfSpec) string {
	t.Helper()
	shstr := []byte("\x00.text\x00.shstrtab\x00")
	n := uint64(len(s.code))
	strOff := uint64(codeOff) + n
	shOff := (strOff + uint64(len(shstr)) + 7) &^ 7
	flags := elf.PF_R | elf.PF_X
	if s.noExec {
		flags = elf.PF_R
	}
	ident := [elf.EI_NIDENT]byte{0x7f, 'E', 'L', 'F', byte(s.class), byte(elf.ELFDATA2LSB), byte(elf.EV_CURRENT)}

	var buf bytes.Buffer
	w := func(v any) { require.NoError(t, binary.Write(&buf, binary.LittleEndian, v)) }
	pad := func(to uint64) { buf.Write(make([]byte, int(to)-buf.Len())) }

	if s.class == elf.ELFCLASS64 {
		hdr := elf.Header64{
			Ident: ident, Type: uint16(elf.ET_EXEC), Machine: uint16(s.machine),
			Version: uint32(elf.EV_CURRENT), Entry: codeVA, Phoff: 64,
			Ehsize: 64, Phentsize: 56, Phnum: 1, Shentsize: 64,
		}
		if s.sections {
			hdr.Shoff, hdr.Shnum, hdr.Shstrndx = shOff, 3, 2
		}
		w(hdr)
		w(elf.Prog64{
			Type: uint32(elf.PT_LOAD), Flags: uint32(flags), Off: codeOff,
			Vaddr: codeVA, Paddr: codeVA, Filesz: n, Memsz: n, Align: 0x1000,
		})
		pad(codeOff)
		buf.Write(s.code)
		buf.Write(shstr)
		if s.sections {
			pad(shOff)
			w(elf.Section64{})
			w(elf.Section64{
				Name: 1, Type: uint32(elf.SHT_PROGBITS), Flags: uint64(elf.SHF_ALLOC | elf.SHF_EXECINSTR),
				Addr: codeVA, Off: codeOff, Size: n, Addralign: 16,
			})
			w(elf.Section64{Name: 7, Type: uint32(elf.SHT_STRTAB), Off: strOff, Size: uint64(len(shstr)), Addralign: 1})
		}
	} else {
		hdr := elf.Header32{
			Ident: ident, Type: uint16(elf.ET_EXEC), Machine: uint16(s.machine),
			Version: uint32(elf.EV_CURRENT), Entry: codeVA, Phoff: 52,
			Ehsize: 52, Phentsize: 32, Phnum: 1, Shentsize: 40,
		}
		if s.sections {
			hdr.Shoff, hdr.Shnum, hdr.Shstrndx = uint32(shOff), 3, 2
		}
		w(hdr)
		w(elf.Prog32{
			Type: uint32(elf.PT_LOAD), Flags: uint32(flags), Off: codeOff,
			Vaddr: codeVA, Paddr: codeVA, Filesz: uint32(n), Memsz: uint32(n), Align: 0x1000,
		})
		pad(codeOff)
		buf.Write(s.code)
		buf.Write(shstr)
		if s.sections {
			pad(shOff)
			w(elf.Section32{})
			w(elf.Section32{
				Name: 1, Type: uint32(elf.SHT_PROGBITS), Flags: uint32(elf.SHF_ALLOC | elf.SHF_EXECINSTR),
				Addr: codeVA, Off: codeOff, Size: uint32(n), Addralign: 16,
			})
			w(elf.Section32{Name: 7, Type: uint32(elf.SHT_STRTAB), Off: uint32(strOff), Size: uint32(len(shstr)), Addralign: 1})
		}
	}

	path := filepath.Join(t.TempDir(), "a.out")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o755))
	return path
}

func writeFile(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blob")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

var sample = []byte{0x55, 0xc5, 0xfd, 0xfe, 0xc1, 0xc3}

func TestOpenELF(t *testing.T) {
	tests := []struct {
		name    string
		spec    elfSpec
		bits    int
		mode    disasm.Mode
		section string
	}{
		{"x86-64", elfSpec{class: elf.ELFCLASS64, machine: elf.EM_X86_64, sections: true}, 0, disasm.Mode64, ".text"},
		{"i386", elfSpec{class: elf.ELFCLASS32, machine: elf.EM_386, sections: true}, 0, disasm.Mode32, ".text"},
		{"intel mcu", elfSpec{class: elf.ELFCLASS32, machine: elf.EM_486, sections: true}, 0, disasm.Mode32, ".text"},
		{"x32", elfSpec{class: elf.ELFCLASS32, machine: elf.EM_X86_64, sections: true}, 0, disasm.Mode64, ".text"},
		{"stripped", elfSpec{class: elf.ELFCLASS64, machine: elf.EM_X86_64}, 0, disasm.Mode64, "LOAD(exec)"},
		{"16-bit override", elfSpec{class: elf.ELFCLASS32, machine: elf.EM_386, sections: true}, 16, disasm.Mode16, ".text"},
		{"override foreign machine", elfSpec{class: elf.ELFCLASS64, machine: elf.EM_AARCH64, sections: true}, 64, disasm.Mode64, ".text"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.spec.code = sample
			c, err := Open(writeELF(t, tt.spec), Options{Bits: tt.bits})
			require.NoError(t, err)
			t.Cleanup(func() { assert.NoError(t, c.Close()) })

			assert.Equal(t, sample, c.Blob)
			assert.Equal(t, tt.mode, c.Mode)
			assert.Equal(t, uint64(codeVA), c.Addr)
			assert.Equal(t, FormatELF, c.Format)
			assert.Equal(t, tt.section, c.Section)
		})
	}
}

func TestOpenErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		opts Options
		want error
	}{
		{
			name: "unknown format",
			path: func(t *testing.T) string { return writeFile(t, []byte("#!/bin/sh\necho hi\n")) },
			want: ErrUnknownFormat,
		},
		{
			name: "empty file",
			path: func(t *testing.T) string { return writeFile(t, nil) },
			want: ErrUnknownFormat,
		},
		{
			name: "foreign machine",
			path: func(t *testing.T) string {
				return writeELF(t, elfSpec{class: elf.ELFCLASS64, machine: elf.EM_AARCH64, code: sample, sections: true})
			},
			want: ErrUnsupportedMode,
		},
		{
			name: "bad override",
			path: func(t *testing.T) string {
				return writeELF(t, elfSpec{class: elf.ELFCLASS64, machine: elf.EM_X86_64, code: sample, sections: true})
			},
			opts: Options{Bits: 8},
			want: ErrUnsupportedMode,
		},
		{
			name: "no executable region",
			path: func(t *testing.T) string {
				return writeELF(t, elfSpec{class: elf.ELFCLASS64, machine: elf.EM_X86_64, code: sample, noExec: true})
			},
			want: ErrNoCode,
		},
		{
			name: "raw without bits",
			path: func(t *testing.T) string { return writeFile(t, sample) },
			opts: Options{Raw: true},
			want: ErrUnsupportedMode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := tt.path(t)
			c, err := Open(path, tt.opts)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tt.want)

			var ce *ContainerError
			require.True(t, errors.As(err, &ce))
			assert.Equal(t, path, ce.Path)
		})
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope"), Options{})
	var ce *ContainerError
	require.ErrorAs(t, err, &ce)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenRaw(t *testing.T) {
	c, err := Open(writeFile(t, sample), Options{Raw: true, Bits: 32})
	require.NoError(t, err)
	defer c.Close()

	assert.Equal(t, sample, c.Blob)
	assert.Equal(t, disasm.Mode32, c.Mode)
	assert.Equal(t, FormatRaw, c.Format)
	assert.Zero(t, c.Addr)
}
