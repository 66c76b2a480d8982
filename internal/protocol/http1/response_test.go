package http1

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppendResponse(t *testing.T) {
	t.Run("empty url", func(t *testing.T) {
		require.Equal(t, "HTTP/1.1 200 OK\r\nContent-Length: 0\r\n\r\n", string(AppendResponse(nil, nil)))
	})

	t.Run("length is in bytes", func(t *testing.T) {
		resp := AppendResponse(nil, []byte("/ё"))
		require.Equal(t, "HTTP/1.1 200 OK\r\nContent-Length: 3\r\n\r\n/ё", string(resp))
	})

	t.Run("appends", func(t *testing.T) {
		resp := AppendResponse(nil, []byte("/a"))
		resp = AppendResponse(resp, []byte("/bb"))
		require.Equal(t,
			"HTTP/1.1 200 OK\r\nContent-Length: 2\r\n\r\n/a"+
				"HTTP/1.1 200 OK\r\nContent-Length: 3\r\n\r\n/bb",
			string(resp),
		)
	})
}
