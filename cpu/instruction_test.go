package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInstructionSet(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		op    Opcode
		arity int
		store bool
	}{
		{OP_ADD, 3, true},
		{OP_MUL, 3, true},
		{OP_IN, 1, true},
		{OP_OUT, 1, false},
		{OP_JNZ, 2, false},
		{OP_JZ, 2, false},
		{OP_LT, 3, true},
		{OP_EQ, 3, true},
		{OP_ARB, 1, false},
		{OP_HALT, 0, false},
	}

	for _, entry := range table {
		inst, ok := Lookup(entry.op)
		assert.True(ok, entry.op.String())
		assert.Equal(entry.op, inst.Opcode)
		assert.Equal(entry.arity, inst.Arity, entry.op.String())
		assert.Equal(entry.store, inst.Store, entry.op.String())
		assert.Equal(entry.op == OP_IN, inst.Input, entry.op.String())
	}

	_, ok := Lookup(Opcode(10))
	assert.False(ok)
}

func TestCompare(t *testing.T) {
	assert := assert.New(t)

	values := []int64{math.MinInt64, -1125899906842624, -8, -1, 0, 1, 8, 1125899906842624, math.MaxInt64}

	lt, _ := Lookup(OP_LT)
	eq, _ := Lookup(OP_EQ)

	for _, a := range values {
		for _, b := range values {
			ops := &Operands{Args: [PARAMETER_LIMIT]int64{a, b}, Dest: 5}

			effect, err := lt.Handler(ops)
			assert.NoError(err)
			assert.Equal([]Write{{Addr: 5, Value: boolValue(a < b)}}, effect.Writes, "%d < %d", a, b)

			effect, err = eq.Handler(ops)
			assert.NoError(err)
			assert.Equal([]Write{{Addr: 5, Value: boolValue(a == b)}}, effect.Writes, "%d == %d", a, b)
		}
	}
}

func TestJumps(t *testing.T) {
	assert := assert.New(t)

	jnz, _ := Lookup(OP_JNZ)
	jz, _ := Lookup(OP_JZ)

	effect, _ := jnz.Handler(&Operands{Args: [PARAMETER_LIMIT]int64{3, 17}})
	assert.True(effect.Jump)
	assert.Equal(int64(17), effect.Target)

	effect, _ = jnz.Handler(&Operands{Args: [PARAMETER_LIMIT]int64{0, 17}})
	assert.False(effect.Jump)

	effect, _ = jz.Handler(&Operands{Args: [PARAMETER_LIMIT]int64{0, 17}})
	assert.True(effect.Jump)
	assert.Equal(int64(17), effect.Target)

	effect, _ = jz.Handler(&Operands{Args: [PARAMETER_LIMIT]int64{-1, 17}})
	assert.False(effect.Jump)
}

func TestArithmetic(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		a, b    int64
		sum     int64
		sumErr  error
		prod    int64
		prodErr error
	}{
		{2, 3, 5, nil, 6, nil},
		{-2, 3, 1, nil, -6, nil},
		{0, math.MinInt64, math.MinInt64, nil, 0, nil},
		{34915192, 34915192, 69830384, nil, 1219070632396864, nil},
		{math.MaxInt64, 1, 0, ErrOverflow, math.MaxInt64, nil},
		{math.MinInt64, -1, 0, ErrOverflow, 0, ErrOverflow},
		{-1, math.MinInt64, 0, ErrOverflow, 0, ErrOverflow},
		{1 << 62, 2, 1<<62 + 2, nil, 0, ErrOverflow},
		{math.MaxInt64, math.MinInt64, -1, nil, 0, ErrOverflow},
	}

	for _, entry := range table {
		sum, err := AddInt64(entry.a, entry.b)
		if entry.sumErr != nil {
			assert.ErrorIs(err, entry.sumErr, "%d + %d", entry.a, entry.b)
		} else {
			assert.NoError(err)
			assert.Equal(entry.sum, sum, "%d + %d", entry.a, entry.b)
		}

		prod, err := MulInt64(entry.a, entry.b)
		if entry.prodErr != nil {
			assert.ErrorIs(err, entry.prodErr, "%d * %d", entry.a, entry.b)
		} else {
			assert.NoError(err)
			assert.Equal(entry.prod, prod, "%d * %d", entry.a, entry.b)
		}
	}
}
