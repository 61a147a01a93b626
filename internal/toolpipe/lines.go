// Package toolpipe derives feature reports from external tools: a
// disassembler that lists the instructions of a binary and an oracle that
// names the ISA extension of a single encoded instruction.
package toolpipe

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// Record is one instruction line of disassembler output.
type Record struct {
	Addr  uint64
	Label string
	Hex   string
	Text  string
}

// An instruction line is "<address> <label> <hex bytes> <text>". xed -i
// prints the address with an XDIS tag and a trailing colon; both are
// accepted.
var lineRE = regexp.MustCompile(`^(?:XDIS\s+)?([0-9a-fA-F]+):?\s+(\S+)\s+([0-9a-fA-F]+)\s+(.*)$`)

// ParseLine matches one line of disassembler output. Lines that are not
// instruction lines report false.
func ParseLine(line string) (Record, bool) {
	m := lineRE.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil || len(m[3])%2 != 0 {
		return Record{}, false
	}
	addr, err := strconv.ParseUint(m[1], 16, 64)
	if err != nil {
		return Record{}, false
	}
	return Record{
		Addr:  addr,
		Label: m[2],
		Hex:   strings.ToLower(m[3]),
		Text:  strings.TrimSpace(m[4]),
	}, true
}

// ParseLines collects the instruction lines of r, skipping everything
// else.
func ParseLines(r io.Reader) ([]Record, error) {
	var recs []Record
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		if rec, ok := ParseLine(sc.Text()); ok {
			recs = append(recs, rec)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read disassembly: %w", err)
	}
	return recs, nil
}

// Mnemonic returns the upper-cased first word of the instruction text.
func (r Record) Mnemonic() string {
	f := strings.Fields(r.Text)
	if len(f) == 0 {
		return ""
	}
	return strings.ToUpper(f[0])
}

// Bytes decodes the hex encoding of the instruction.
func (r Record) Bytes() []byte {
	b, _ := hex.DecodeString(r.Hex)
	return b
}
