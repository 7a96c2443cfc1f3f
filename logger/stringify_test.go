package logger_test

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"regexp"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/tlog/logger"
)

type node struct {
	Name string
	Next *node
}

type tagged struct {
	ID      int    `json:"id"`
	Secret  string `json:"-"`
	private string
}

type panicker struct{}

func (panicker) MarshalJSON() ([]byte, error) { panic("no") }

func TestStringifyArgs(t *testing.T) {
	var nilPtr *node
	var nilMap map[string]int

	cyclic := &node{Name: "a"}
	cyclic.Next = cyclic

	for _, tc := range []struct {
		name     string
		args     []any
		expected string
	}{
		{"none", nil, ""},
		{"strings", []any{"hello", "world"}, "hello world"},
		{"empty-string", []any{"a", "", "b"}, "a  b"},
		{"nil", []any{nil}, "nil"},
		{"typed-nil", []any{nilPtr, nilMap}, "nil nil"},
		{"scalars", []any{1, -2.5, true, uint8(7)}, "1 -2.5 true 7"},
		{"nan", []any{math.NaN()}, "NaN"},
		{"big", []any{new(big.Int).Lsh(big.NewInt(1), 70)}, "1180591620717411303424"},
		{"regexp", []any{regexp.MustCompile(`^a+b$`)}, "/^a+b$/"},
		{"map", []any{map[string]int{"b": 2, "a": 1}}, `{"a":1,"b":2}`},
		{"slice", []any{[]string{"x", "y"}}, `["x","y"]`},
		{"struct-tags", []any{tagged{ID: 1, Secret: "s", private: "p"}}, `{"id":1}`},
		{"circular", []any{cyclic}, `{"Name":"a","Next":"[Circular]"}`},
		{"nested-nan", []any{map[string]float64{"x": math.Inf(1)}}, `{"x":"+Inf"}`},
		{"func", []any{func() {}}, "func()"},
		{"chan", []any{make(chan int)}, "chan int"},
		{"mixed", []any{"user", map[string]int{"id": 1}, nil}, `user {"id":1} nil`},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, logger.StringifyArgs(tc.args...))
		})
	}
}

func TestStringifyArgsErrors(t *testing.T) {
	t.Run("Plain", func(t *testing.T) {
		require.Equal(
			t,
			`{"name":"*errors.errorString","message":"boom"}`,
			logger.StringifyArgs(errors.New("boom")),
		)
	})

	t.Run("Wrapped", func(t *testing.T) {
		// Arrange
		err := fmt.Errorf("load: %w", errors.New("boom"))

		// Act
		actual := logger.StringifyArgs(err)

		// Assert
		require.Equal(
			t,
			`{"name":"*fmt.wrapError","message":"load: boom","cause":{"name":"*errors.errorString","message":"boom"}}`,
			actual,
		)
	})

	t.Run("Stack", func(t *testing.T) {
		// Act
		actual := logger.StringifyArgs(pkgerrors.New("boom"))

		// Assert
		require.Contains(t, actual, `"name":"*errors.fundamental"`)
		require.Contains(t, actual, `"message":"boom"`)
		require.Contains(t, actual, `"stack":"`)
		require.Contains(t, actual, "TestStringifyArgsErrors")
	})

	t.Run("Inside-Value", func(t *testing.T) {
		for _, tc := range []struct {
			name     string
			arg      any
			expected string
		}{
			{
				"map",
				map[string]any{"err": errors.New("boom")},
				`{"err":{"name":"*errors.errorString","message":"boom"}}`,
			},
			{
				"struct",
				struct{ Err error }{fmt.Errorf("wrap: %w", errors.New("boom"))},
				`{"Err":{"name":"*fmt.wrapError","message":"wrap: boom","cause":{"name":"*errors.errorString","message":"boom"}}}`,
			},
			{
				"slice",
				[]error{errors.New("a"), errors.New("b")},
				`[{"name":"*errors.errorString","message":"a"},{"name":"*errors.errorString","message":"b"}]`,
			},
			{
				"pointer",
				&struct {
					ID  int   `json:"id"`
					Err error `json:"err"`
				}{ID: 1, Err: errors.New("boom")},
				`{"err":{"name":"*errors.errorString","message":"boom"},"id":1}`,
			},
			{
				"with-unsupported-sibling",
				map[string]any{"err": errors.New("boom"), "ch": make(chan int)},
				`{"ch":"chan int","err":{"name":"*errors.errorString","message":"boom"}}`,
			},
			{
				"nil-error-field",
				struct {
					Err error `json:"err"`
				}{},
				`{"err":null}`,
			},
		} {
			t.Run(tc.name, func(t *testing.T) {
				require.Equal(t, tc.expected, logger.StringifyArgs(tc.arg))
			})
		}
	})
}

func TestStringifyArgsNeverPanics(t *testing.T) {
	require.NotPanics(t, func() {
		actual := logger.StringifyArgs(panicker{}, "after")
		require.Contains(t, actual, "after")
	})
}
