package disasm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpNames(t *testing.T) {
	seen := map[string]Op{}
	for _, op := range Ops() {
		name := op.String()
		assert.NotEmpty(t, name, "op %d", uint16(op))
		if prev, dup := seen[name]; dup {
			t.Errorf("ops %d and %d share the name %q", prev, op, name)
		}
		seen[name] = op
	}
	assert.Equal(t, "Op(65535)", Op(0xffff).String())
}

func TestOpLegacy(t *testing.T) {
	assert.True(t, PADDD.Legacy())
	assert.True(t, MOV.Legacy())
	assert.False(t, ANDN.Legacy())
	assert.False(t, VPERMD.Legacy())
	assert.False(t, EVEXUnknown.Legacy())
	assert.False(t, OpInvalid.Legacy())
}
