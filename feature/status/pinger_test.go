package status

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeGameServer answers one status exchange over a local listener and
// returns the address to dial.
func fakeGameServer(t *testing.T, statusJSON string, answerPing bool) (string, int) {
	t.Helper()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		r := bufio.NewReader(conn)
		if _, err := readPacket(r); err != nil { // handshake
			return
		}
		if _, err := readPacket(r); err != nil { // status request
			return
		}

		var resp bytes.Buffer
		writeVarInt(&resp, 0x00)
		writeString(&resp, statusJSON)
		if err := writePacket(conn, resp.Bytes()); err != nil {
			return
		}

		if answerPing {
			if pong, err := readPacket(r); err == nil {
				writePacket(conn, pong)
			}
		}
	}()

	addr := ln.Addr().(*net.TCPAddr)
	return "127.0.0.1", addr.Port
}

func TestPing(t *testing.T) {
	doc := `{
		"version": {"name": "1.20.4", "protocol": 765},
		"players": {"max": 20, "online": 2, "sample": [
			{"name": "alice", "id": "aaaa"},
			{"name": "bob", "id": "bbbb"}
		]},
		"description": {"text": "A Minecraft Server"}
	}`
	host, port := fakeGameServer(t, doc, true)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	got, err := NewPinger().Ping(ctx, host, port)
	require.NoError(t, err)

	assert.Equal(t, "A Minecraft Server", got.Name)
	assert.Equal(t, "1.20.4", got.Version)
	assert.Equal(t, 20, got.MaxPlayers)
	assert.Equal(t, 2, got.Online)
	require.Len(t, got.Players, 2)
	assert.Equal(t, "alice", got.Players[0].Name)
	assert.Contains(t, got.Connect, "127.0.0.1:")
}

func TestPing_NoPongStillSucceeds(t *testing.T) {
	doc := `{"version":{"name":"1.20.4"},"players":{"max":20,"online":0},"description":"motd"}`
	host, port := fakeGameServer(t, doc, false)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	got, err := NewPinger().Ping(ctx, host, port)
	require.NoError(t, err)

	assert.Equal(t, "motd", got.Name)
	assert.Equal(t, int64(0), got.Ping)
	assert.Equal(t, []Player{}, got.Players, "sample is never nil")
}

func TestPing_ServerDown(t *testing.T) {
	// Grab a port and close it so nothing is listening.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err = NewPinger().Ping(ctx, "127.0.0.1", port)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to reach game server")
}

func TestParseDescription(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"Plain string", `"hello"`, "hello"},
		{"Chat component", `{"text":"hello","color":"gold"}`, "hello"},
		{"Empty", ``, ""},
		{"Unparseable", `42`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseDescription(json.RawMessage(tt.raw)))
		})
	}
}

func TestVarIntRoundTrip(t *testing.T) {
	values := []int32{0, 1, 127, 128, 255, 25565, 2097151, 2147483647, -1, statusProtocolVersion}

	for _, v := range values {
		var buf bytes.Buffer
		writeVarInt(&buf, v)

		got, err := readVarInt(&buf)
		assert.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestReadVarInt_TooLong(t *testing.T) {
	buf := bytes.NewBuffer([]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80})
	_, err := readVarInt(buf)
	assert.Error(t, err)
}

func TestReadPacket_RejectsOversizedLength(t *testing.T) {
	var buf bytes.Buffer
	writeVarInt(&buf, maxPacketSize+1)
	_, err := readPacket(bufio.NewReader(&buf))
	assert.Error(t, err)
}
