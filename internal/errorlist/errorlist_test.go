package errorlist_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"conf2env/internal/errorlist"
)

func TestAppend(t *testing.T) {
	r := require.New(t)
	list := errorlist.New("unreadable configuration files")

	r.True(list.Append(nil))
	r.Equal(0, list.Len())

	for i := 1; i <= 7; i++ {
		r.True(list.Append(fmt.Errorf("error %d", i)))
	}
	r.Equal(7, list.Len())

	r.False(list.Append(errors.New("error 8")))
	r.Equal(8, list.Len())
}

func TestUnwrap(t *testing.T) {
	r := require.New(t)
	list := errorlist.New("unreadable configuration files")

	inner := errors.New("pouet")
	list.Append(inner)

	r.Equal("unreadable configuration files", list.Error())
	r.ErrorIs(list, inner)
}
