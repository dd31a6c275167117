package try

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEqualMatching(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	assert.True(t, r.Equal(At("case.go", 1), 5, 5))
	assert.Equal(t, 1, r.SuccessCount())
	assert.Equal(t, "", buf.String())
}

func TestEqualMismatch(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	assert.False(t, r.Equal(At("case.go", 2), 5, 6))
	assert.Equal(t, 1, r.FailCount())
	assert.Equal(t,
		"Test failed: case.go, line 2\n"+
			"Message: \"Arguments are not equal!\"\n"+
			"Arguments:\n"+
			"\"5\" (int)\n"+
			"\"6\" (int)\n"+
			"\n",
		buf.String())
}

func TestEqualDifferentTypesAreNotEqual(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	assert.False(t, r.Equal(At("case.go", 3), 5, "5"))
	assert.Contains(t, buf.String(), "Message: \"Arguments are not equal!\"\n")
}

func TestEqualUncomparableOperands(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	// comparing slices through interfaces panics at runtime; the panic is
	// reported like any other failure
	assert.False(t, r.Equal(At("case.go", 4), []int{1}, []int{1}))
	assert.Equal(t, 1, r.FailCount())
	assert.Contains(t, buf.String(), "comparing uncomparable type")
	assert.Contains(t, buf.String(), "[Can't print] ([]int)")
}

func TestNotEqual(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	assert.True(t, r.NotEqual(At("case.go", 5), 5, 6))
	assert.False(t, r.NotEqual(At("case.go", 6), 5, 5))
	assert.Contains(t, buf.String(), "Message: \"Arguments are equal!\"\n")
}

func TestLess(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	assert.True(t, r.Less(At("case.go", 7), 3, 4))
	assert.True(t, r.Less(At("case.go", 8), "apple", "banana"))
	assert.Equal(t, "", buf.String())
}

func TestLessEqualOperands(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	assert.False(t, r.Less(At("case.go", 9), 3, 3))
	assert.Contains(t, buf.String(),
		"Message: \"The first argument is not less than the second!\"\n")
}

func TestLessMixedNumericKinds(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	assert.True(t, r.Less(At("case.go", 10), uint(2), 3))
	assert.True(t, r.Less(At("case.go", 11), -1, uint(5)))
	assert.True(t, r.Less(At("case.go", 12), 2, 2.5))
	assert.False(t, r.Less(At("case.go", 13), uint(5), -1))
	assert.Equal(t, 3, r.SuccessCount())
	assert.Equal(t, 1, r.FailCount())
}

func TestLessUnorderableOperands(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	assert.False(t, r.Less(At("case.go", 14), 3, "x"))
	assert.Contains(t, buf.String(),
		"Message: \"cannot order values of types int and string\"\n")
	assert.Contains(t, buf.String(), "\"3\" (int)\n")
	assert.Contains(t, buf.String(), "\"x\" (string)\n")
}

func TestLessEqual(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	assert.True(t, r.LessEqual(At("case.go", 15), 3, 3))
	assert.True(t, r.LessEqual(At("case.go", 16), 3, 4))
	assert.False(t, r.LessEqual(At("case.go", 17), 4, 3))
	assert.Contains(t, buf.String(),
		"Message: \"The first argument is not less than or equal to the second!\"\n")
}

func TestAssertionArgumentsKeepCallOrder(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)

	r.Less(At("case.go", 18), 9, 1)

	assert.Contains(t, buf.String(),
		"Arguments:\n"+
			"\"9\" (int)\n"+
			"\"1\" (int)\n")
}
