// Package elfx opens x86 ELF binaries and locates their code and function
// symbols.
package elfx

import (
	"debug/elf"
	"errors"
	"fmt"
	"os"
	"sort"
	"syscall"
)

var (
	// ErrNoText means neither a .text section nor an executable PT_LOAD
	// segment with file contents exists.
	ErrNoText = errors.New("no executable code region")
	// ErrMachine means the ELF machine is not x86.
	ErrMachine = errors.New("unsupported machine")
)

type Image struct {
	Path  string
	File  *elf.File
	All   []byte
	Loads []Seg
	Text  Section
	Syms  []Symbol
	f     *os.File
}

type Seg struct {
	Vaddr, Off, Filesz uint64
	Flags              elf.ProgFlag
}

type Section struct {
	Name          string
	VA, Off, Size uint64
}

// Symbol is a function symbol. Size is zero when the symbol table does not
// record it.
type Symbol struct {
	Name string
	Addr uint64
	Size uint64
}

func Open(path string) (*Image, error) {
	f, err := elf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open elf: %w", err)
	}

	of, err := os.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open file: %w", err)
	}

	fi, err := of.Stat()
	if err != nil {
		of.Close()
		f.Close()
		return nil, fmt.Errorf("stat file: %w", err)
	}

	var all []byte
	if fi.Size() > 0 {
		all, err = syscall.Mmap(int(of.Fd()), 0, int(fi.Size()), syscall.PROT_READ, syscall.MAP_SHARED)
		if err != nil {
			of.Close()
			f.Close()
			return nil, fmt.Errorf("mmap file: %w", err)
		}
	}

	im := &Image{Path: path, File: f, All: all, f: of}
	for _, p := range f.Progs {
		if p.Type != elf.PT_LOAD {
			continue
		}
		im.Loads = append(im.Loads, Seg{
			Vaddr:  p.Vaddr,
			Off:    p.Off,
			Filesz: p.Filesz,
			Flags:  p.Flags,
		})
	}

	if s := f.Section(".text"); s != nil && s.Type != elf.SHT_NOBITS && s.Size > 0 {
		im.Text = Section{s.Name, s.Addr, s.Offset, s.Size}
	}
	// Fallback if stripped of section headers.
	if im.Text.Size == 0 {
		for _, l := range im.Loads {
			if l.Flags&elf.PF_X != 0 && l.Filesz > 0 {
				im.Text = Section{"LOAD(exec)", l.Vaddr, l.Off, l.Filesz}
				break
			}
		}
	}

	im.loadSymbols()
	return im, nil
}

// Close unmaps the memory and closes the underlying files.
func (im *Image) Close() error {
	var err1, err2 error
	if im.All != nil {
		err1 = syscall.Munmap(im.All)
		im.All = nil
	}
	if im.f != nil {
		err2 = im.f.Close()
		im.f = nil
	}
	if im.File != nil {
		err3 := im.File.Close()
		if err3 != nil && err2 == nil {
			err2 = err3
		}
		im.File = nil
	}
	if err1 != nil {
		return err1
	}
	return err2
}

// Bits returns the execution mode of the code as a bit width. x32
// binaries (ELFCLASS32 on x86-64) run in 64-bit mode.
func (im *Image) Bits() (int, error) {
	switch im.File.Machine {
	case elf.EM_X86_64:
		return 64, nil
	case elf.EM_386, elf.EM_486: // EM_486 is machine 6, Intel MCU
		return 32, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrMachine, im.File.Machine)
}

// Code returns the bytes of the code region. The slice aliases the
// mapping and is only valid until Close.
func (im *Image) Code() ([]byte, error) {
	if im.Text.Size == 0 {
		return nil, ErrNoText
	}
	end := im.Text.Off + im.Text.Size
	if end < im.Text.Off || end > uint64(len(im.All)) {
		return nil, fmt.Errorf("%s extends past end of file", im.Text.Name)
	}
	return im.All[im.Text.Off:end:end], nil
}

// loadSymbols collects function symbols from .symtab and .dynsym, sorted
// by address with duplicates removed.
func (im *Image) loadSymbols() {
	seen := make(map[uint64]bool)
	add := func(syms []elf.Symbol) {
		for _, sym := range syms {
			if elf.ST_TYPE(sym.Info) != elf.STT_FUNC || sym.Value == 0 || seen[sym.Value] {
				continue
			}
			seen[sym.Value] = true
			im.Syms = append(im.Syms, Symbol{Name: sym.Name, Addr: sym.Value, Size: sym.Size})
		}
	}
	// Missing tables are normal for stripped binaries.
	if syms, err := im.File.Symbols(); err == nil {
		add(syms)
	}
	if syms, err := im.File.DynamicSymbols(); err == nil {
		add(syms)
	}
	sort.Slice(im.Syms, func(i, j int) bool { return im.Syms[i].Addr < im.Syms[j].Addr })
}
