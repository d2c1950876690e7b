package exprs

import (
	"math"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestAdd(t *testing.T) {
	t.Run("ints", func(t *testing.T) {
		assert.Equal(t, 5, Add[int](NewConst(2), NewConst(3)).Eval())
	})

	t.Run("floats", func(t *testing.T) {
		assert.Equal(t, 3.75, Add[float64](NewConst(1.5), NewConst(2.25)).Eval())
	})

	t.Run("signed wraparound", func(t *testing.T) {
		sum := Add[int8](NewConst[int8](127), NewConst[int8](1))
		assert.Equal(t, int8(-128), sum.Eval())
	})

	t.Run("unsigned wraparound", func(t *testing.T) {
		sum := Add[uint8](NewConst[uint8](255), NewConst[uint8](1))
		assert.Equal(t, uint8(0), sum.Eval())
	})
}

func TestSub(t *testing.T) {
	t.Run("negative result", func(t *testing.T) {
		assert.Equal(t, -2, Sub[int](NewConst(3), NewConst(5)).Eval())
	})

	t.Run("unsigned underflow wraps", func(t *testing.T) {
		diff := Sub[uint8](NewConst[uint8](0), NewConst[uint8](1))
		assert.Equal(t, uint8(255), diff.Eval())
	})
}

func TestMul(t *testing.T) {
	t.Run("mixed signs", func(t *testing.T) {
		assert.Equal(t, -12, Mul[int](NewConst(-3), NewConst(4)).Eval())
	})

	t.Run("overflow wraps", func(t *testing.T) {
		prod := Mul[int8](NewConst[int8](64), NewConst[int8](4))
		assert.Equal(t, int8(0), prod.Eval())
	})
}

func TestDiv(t *testing.T) {
	t.Run("truncates toward zero", func(t *testing.T) {
		assert.Equal(t, 3, Div[int](NewConst(7), NewConst(2)).Eval())
		assert.Equal(t, -3, Div[int](NewConst(-7), NewConst(2)).Eval())
	})

	t.Run("floats", func(t *testing.T) {
		assert.Equal(t, 0.5, Div[float64](NewConst(1.0), NewConst(2.0)).Eval())
	})

	t.Run("float by zero is infinite", func(t *testing.T) {
		q := Div[float64](NewConst(1.0), NewConst(0.0))
		assert.True(t, math.IsInf(q.Eval(), 1))
	})

	t.Run("int by zero panics", func(t *testing.T) {
		q := Div[int](NewConst(1), NewConst(0))
		assert.Panics(t, func() { q.Eval() })
	})
}

func TestRem(t *testing.T) {
	t.Run("sign follows dividend", func(t *testing.T) {
		assert.Equal(t, 1, Rem[int](NewConst(7), NewConst(3)).Eval())
		assert.Equal(t, -1, Rem[int](NewConst(-7), NewConst(3)).Eval())
	})

	t.Run("by zero panics", func(t *testing.T) {
		r := Rem[int](NewConst(1), NewConst(0))
		assert.Panics(t, func() { r.Eval() })
	})
}

func TestShl(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		n := Shl[uint8, uint8](NewConst[uint8](1), NewConst[uint8](1))
		assert.Equal(t, uint8(2), n.Eval())
	})

	t.Run("count may have its own type", func(t *testing.T) {
		n := Shl[uint8, int](NewConst[uint8](1), NewConst(3))
		assert.Equal(t, uint8(8), n.Eval())
	})

	t.Run("overwide shift yields zero", func(t *testing.T) {
		n := Shl[uint8, int](NewConst[uint8](1), NewConst(9))
		assert.Equal(t, uint8(0), n.Eval())
	})

	t.Run("negative count panics", func(t *testing.T) {
		n := Shl[uint8, int](NewConst[uint8](1), NewConst(-1))
		assert.Panics(t, func() { n.Eval() })
	})
}

func TestShr(t *testing.T) {
	t.Run("basic", func(t *testing.T) {
		n := Shr[uint8, uint8](NewConst[uint8](128), NewConst[uint8](1))
		assert.Equal(t, uint8(64), n.Eval())
	})

	t.Run("signed shift keeps the sign", func(t *testing.T) {
		n := Shr[int8, int](NewConst[int8](-8), NewConst(1))
		assert.Equal(t, int8(-4), n.Eval())
	})
}

func TestBitwise(t *testing.T) {
	lhs := NewConst[uint8](0b1100)
	rhs := NewConst[uint8](0b1010)

	t.Run("and", func(t *testing.T) {
		assert.Equal(t, uint8(0b1000), BitAnd[uint8](lhs, rhs).Eval())
	})

	t.Run("or", func(t *testing.T) {
		assert.Equal(t, uint8(0b1110), BitOr[uint8](lhs, rhs).Eval())
	})

	t.Run("xor", func(t *testing.T) {
		assert.Equal(t, uint8(0b0110), BitXor[uint8](lhs, rhs).Eval())
	})
}

func TestOperatorsCompose(t *testing.T) {
	a := NewInput(2)
	b := NewInput(3)

	// (a + b) * 4
	expr := Mul[int](Add[int](a, b), NewConst(4))
	assert.Equal(t, 20, expr.Eval())

	a.Set(5)
	assert.Equal(t, 32, expr.Eval())

	b.Set(-5)
	assert.Equal(t, 0, expr.Eval())
}
