package dummy

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func readAll(client *Client, size int) ([]string, error) {
	var pieces []string
	buff := make([]byte, size)

	for {
		n, err := client.Read(buff)
		if err != nil {
			return pieces, err
		}

		pieces = append(pieces, string(buff[:n]))
	}
}

func TestMockClient(t *testing.T) {
	t.Run("single round", func(t *testing.T) {
		client := NewMockClient([]byte("Hello"), []byte("world!"))
		pieces, err := readAll(client, 64)
		require.ErrorIs(t, err, io.EOF)
		require.Equal(t, []string{"Hello", "world!"}, pieces)
	})

	t.Run("multiple rounds", func(t *testing.T) {
		client := NewMockClient([]byte("Hello"), []byte("!")).Rounds(2)
		pieces, err := readAll(client, 64)
		require.ErrorIs(t, err, io.EOF)
		require.Equal(t, []string{"Hello", "!", "Hello", "!"}, pieces)
	})

	t.Run("piece bigger than the buffer", func(t *testing.T) {
		client := NewMockClient([]byte("Hello, world!"))
		pieces, err := readAll(client, 5)
		require.ErrorIs(t, err, io.EOF)
		require.Equal(t, []string{"Hello", ", wor", "ld!"}, pieces)
	})

	t.Run("read error", func(t *testing.T) {
		wantErr := errors.New("connection reset by peer")
		client := NewMockClient([]byte("Hello")).FailRead(wantErr)
		pieces, err := readAll(client, 64)
		require.ErrorIs(t, err, wantErr)
		require.Equal(t, []string{"Hello"}, pieces)
	})

	t.Run("journaling", func(t *testing.T) {
		client := NewMockClient()
		_, _ = client.Write([]byte("Hello, "))
		_, _ = client.Write([]byte("world!"))
		require.Equal(t, "Hello, world!", client.Written())
		require.Equal(t, 2, client.Writes())
	})

	t.Run("write error", func(t *testing.T) {
		wantErr := errors.New("broken pipe")
		client := NewMockClient().FailWrite(wantErr)
		_, err := client.Write([]byte("Hello"))
		require.ErrorIs(t, err, wantErr)
		require.Empty(t, client.Written())
	})
}
