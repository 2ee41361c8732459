package keys

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_builder_List(t *testing.T) {
	tests := []struct {
		name string
		list string
		want []byte
	}{
		{
			name: "simple",
			list: "queue",
			want: []byte{0x0, 0x1, 'q', 'u', 'e', 'u', 'e'},
		},
		{
			name: "empty",
			list: "",
			want: []byte{0x0, 0x1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder()
			got := b.List(tt.list)
			assert.Equalf(t, tt.want, got, "List(%v)", tt.list)
			t.Log(string(got))
		})
	}
}

func Test_builder_ListName(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		b := NewBuilder()
		got, err := b.ListName(string(b.List("queue")))
		require.NoError(t, err)
		assert.Equal(t, "queue", got)
	})

	t.Run("foreign key", func(t *testing.T) {
		b := NewBuilder()
		_, err := b.ListName(string(b.Version()))
		assert.ErrorIs(t, err, ErrForeignKey)
	})
}

func Test_builder_Version(t *testing.T) {
	b := NewBuilder()
	assert.Equal(t, []byte{0x0, 0x0}, b.Version())
}
