// Package codesrc locates the executable code of a binary and reports the
// execution mode it runs in.
//
// ELF is the primary container. PE and Mach-O images and raw code blobs
// are supported too; a raw blob has no header, so its mode must be given.
package codesrc

import (
	"bytes"
	"debug/elf"
	"debug/macho"
	"debug/pe"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"isaext/internal/disasm"
	"isaext/internal/elfx"
)

var (
	ErrUnknownFormat   = errors.New("unrecognized container format")
	ErrNoCode          = errors.New("no executable code region")
	ErrUnsupportedMode = errors.New("unsupported execution mode")
)

// ContainerError reports a binary whose code cannot be located.
type ContainerError struct {
	Path string
	Err  error
}

func (e *ContainerError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ContainerError) Unwrap() error { return e.Err }

// Format names a container format.
type Format string

const (
	FormatELF   Format = "elf"
	FormatPE    Format = "pe"
	FormatMachO Format = "macho"
	FormatRaw   Format = "raw"
)

// Options control how a file is opened.
type Options struct {
	// Bits overrides the execution mode derived from the container. It is
	// required for raw blobs. Zero means derive.
	Bits int
	// Raw treats the whole file as code.
	Raw bool
}

// Symbol is a function symbol of the binary.
type Symbol struct {
	Name string
	Addr uint64
	Size uint64
}

// Code is the executable region of a binary.
type Code struct {
	Blob    []byte
	Mode    disasm.Mode
	Addr    uint64 // virtual address of Blob[0]
	Format  Format
	Section string
	Symbols []Symbol // sorted by address

	closer io.Closer
}

// Close releases the file backing Blob. Blob must not be used afterwards.
func (c *Code) Close() error {
	if c.closer == nil {
		return nil
	}
	err := c.closer.Close()
	c.closer = nil
	return err
}

var machoMagics = [][]byte{
	{0xfe, 0xed, 0xfa, 0xce}, {0xce, 0xfa, 0xed, 0xfe},
	{0xfe, 0xed, 0xfa, 0xcf}, {0xcf, 0xfa, 0xed, 0xfe},
}

// Open reads the code region of the binary at path. Failures to locate
// code are returned as *ContainerError.
func Open(path string, opts Options) (*Code, error) {
	code, err := open(path, opts)
	if err != nil {
		var ce *ContainerError
		if errors.As(err, &ce) {
			return nil, err
		}
		return nil, &ContainerError{Path: path, Err: err}
	}
	slog.Debug("Located code",
		"path", path,
		"format", code.Format,
		"section", code.Section,
		"addr", fmt.Sprintf("%#x", code.Addr),
		"size", len(code.Blob),
		"mode", code.Mode,
		"symbols", len(code.Symbols))
	return code, nil
}

func open(path string, opts Options) (*Code, error) {
	if opts.Raw {
		return openRaw(path, opts.Bits)
	}
	head, err := readHead(path, 4)
	if err != nil {
		return nil, err
	}
	switch {
	case bytes.Equal(head, []byte(elf.ELFMAG)):
		return openELF(path, opts.Bits)
	case bytes.HasPrefix(head, []byte("MZ")):
		return openPE(path, opts.Bits)
	}
	for _, magic := range machoMagics {
		if bytes.Equal(head, magic) {
			return openMachO(path, opts.Bits)
		}
	}
	return nil, ErrUnknownFormat
}

func readHead(path string, n int) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	head := make([]byte, n)
	m, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return head[:m], nil
}

// mode resolves the execution mode from an override or the container.
func mode(override, derived int) (disasm.Mode, error) {
	bits := derived
	if override != 0 {
		bits = override
	}
	m, err := disasm.ParseMode(bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %d-bit", ErrUnsupportedMode, bits)
	}
	return m, nil
}

func openRaw(path string, bits int) (*Code, error) {
	if bits == 0 {
		return nil, fmt.Errorf("%w: raw input needs an explicit bit width", ErrUnsupportedMode)
	}
	m, err := mode(bits, 0)
	if err != nil {
		return nil, err
	}
	blob, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Code{Blob: blob, Mode: m, Format: FormatRaw}, nil
}

func openELF(path string, bits int) (*Code, error) {
	im, err := elfx.Open(path)
	if err != nil {
		return nil, err
	}
	derived, err := im.Bits()
	if err != nil && bits == 0 {
		im.Close()
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMode, err)
	}
	m, err := mode(bits, derived)
	if err != nil {
		im.Close()
		return nil, err
	}
	blob, err := im.Code()
	if err != nil {
		im.Close()
		if errors.Is(err, elfx.ErrNoText) {
			return nil, ErrNoCode
		}
		return nil, err
	}
	syms := make([]Symbol, len(im.Syms))
	for i, s := range im.Syms {
		syms[i] = Symbol(s)
	}
	return &Code{
		Blob:    blob,
		Mode:    m,
		Addr:    im.Text.VA,
		Format:  FormatELF,
		Section: im.Text.Name,
		Symbols: syms,
		closer:  im,
	}, nil
}

func openPE(path string, bits int) (*Code, error) {
	f, err := pe.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var derived int
	var imageBase uint64
	switch f.Machine {
	case pe.IMAGE_FILE_MACHINE_I386:
		derived = 32
	case pe.IMAGE_FILE_MACHINE_AMD64:
		derived = 64
	}
	switch oh := f.OptionalHeader.(type) {
	case *pe.OptionalHeader32:
		imageBase = uint64(oh.ImageBase)
	case *pe.OptionalHeader64:
		imageBase = oh.ImageBase
	}
	if derived == 0 && bits == 0 {
		return nil, fmt.Errorf("%w: machine %#x", ErrUnsupportedMode, f.Machine)
	}
	m, err := mode(bits, derived)
	if err != nil {
		return nil, err
	}

	sec := f.Section(".text")
	if sec == nil {
		for _, s := range f.Sections {
			if s.Characteristics&pe.IMAGE_SCN_MEM_EXECUTE != 0 {
				sec = s
				break
			}
		}
	}
	if sec == nil || sec.Size == 0 {
		return nil, ErrNoCode
	}
	blob, err := sec.Data()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sec.Name, err)
	}
	// The raw data is padded to the file alignment.
	if sec.VirtualSize != 0 && int(sec.VirtualSize) < len(blob) {
		blob = blob[:sec.VirtualSize]
	}
	return &Code{
		Blob:    blob,
		Mode:    m,
		Addr:    imageBase + uint64(sec.VirtualAddress),
		Format:  FormatPE,
		Section: sec.Name,
	}, nil
}

func openMachO(path string, bits int) (*Code, error) {
	f, err := macho.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var derived int
	switch f.Cpu {
	case macho.CpuAmd64:
		derived = 64
	case macho.Cpu386:
		derived = 32
	}
	if derived == 0 && bits == 0 {
		return nil, fmt.Errorf("%w: cpu %s", ErrUnsupportedMode, f.Cpu)
	}
	m, err := mode(bits, derived)
	if err != nil {
		return nil, err
	}

	var sec *macho.Section
	for _, s := range f.Sections {
		if s.Name == "__text" && s.Seg == "__TEXT" {
			sec = s
			break
		}
	}
	if sec == nil || sec.Size == 0 {
		return nil, ErrNoCode
	}
	blob, err := sec.Data()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sec.Name, err)
	}

	var syms []Symbol
	if f.Symtab != nil {
		seen := make(map[uint64]bool)
		for _, s := range f.Symtab.Syms {
			if s.Type&0x0e != 0x0e || s.Value < sec.Addr || s.Value >= sec.Addr+sec.Size || seen[s.Value] {
				continue // N_SECT symbols inside __text only
			}
			seen[s.Value] = true
			syms = append(syms, Symbol{Name: strings.TrimPrefix(s.Name, "_"), Addr: s.Value})
		}
		sort.Slice(syms, func(i, j int) bool { return syms[i].Addr < syms[j].Addr })
	}
	return &Code{
		Blob:    blob,
		Mode:    m,
		Addr:    sec.Addr,
		Format:  FormatMachO,
		Section: sec.Seg + "," + sec.Name,
		Symbols: syms,
	}, nil
}
