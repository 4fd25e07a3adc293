package status

import (
	"bufio"
	"bytes"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"strconv"
	"time"
)

// Player is one entry in the server's online-player sample.
type Player struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

// ServerStatus is a live snapshot of the game server.
type ServerStatus struct {
	Name       string   `json:"name"`
	Version    string   `json:"version"`
	MaxPlayers int      `json:"maxplayers"`
	Online     int      `json:"online"`
	Players    []Player `json:"players"`
	Connect    string   `json:"connect"`
	// Ping is the round-trip latency in milliseconds, 0 when the server
	// answered the status request but not the ping packet.
	Ping int64 `json:"ping"`
}

// Pinger queries a game server for its live status.
type Pinger interface {
	Ping(ctx context.Context, host string, port int) (*ServerStatus, error)
}

// NewPinger returns a Pinger speaking the Server List Ping protocol: a TCP
// handshake with next-state "status", a status request answered with a JSON
// document, and an optional ping/pong round trip for latency.
func NewPinger() Pinger {
	return &slpPinger{}
}

type slpPinger struct{}

// protocol version -1 asks the server to answer regardless of client version.
const statusProtocolVersion = -1

func (p *slpPinger) Ping(ctx context.Context, host string, port int) (*ServerStatus, error) {
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to reach game server at %s: %w", addr, err)
	}
	defer conn.Close()

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return nil, err
		}
	}

	var handshake bytes.Buffer
	writeVarInt(&handshake, 0x00)
	writeVarInt(&handshake, statusProtocolVersion)
	writeString(&handshake, host)
	binary.Write(&handshake, binary.BigEndian, uint16(port))
	writeVarInt(&handshake, 1) // next state: status

	if err := writePacket(conn, handshake.Bytes()); err != nil {
		return nil, fmt.Errorf("handshake failed: %w", err)
	}
	if err := writePacket(conn, []byte{0x00}); err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}

	r := bufio.NewReader(conn)
	payload, err := readPacket(r)
	if err != nil {
		return nil, fmt.Errorf("status response failed: %w", err)
	}

	body := bytes.NewReader(payload)
	packetID, err := readVarInt(body)
	if err != nil || packetID != 0x00 {
		return nil, fmt.Errorf("unexpected status packet id %d", packetID)
	}
	doc, err := readString(body)
	if err != nil {
		return nil, fmt.Errorf("malformed status response: %w", err)
	}

	status, err := parseStatus(doc)
	if err != nil {
		return nil, err
	}
	status.Connect = addr

	// Latency is best effort; older servers close the connection after the
	// status response instead of answering the ping packet.
	start := time.Now()
	var ping bytes.Buffer
	writeVarInt(&ping, 0x01)
	binary.Write(&ping, binary.BigEndian, start.UnixMilli())
	if err := writePacket(conn, ping.Bytes()); err == nil {
		if _, err := readPacket(r); err == nil {
			status.Ping = time.Since(start).Milliseconds()
		}
	}

	return status, nil
}

type statusDocument struct {
	Version struct {
		Name string `json:"name"`
	} `json:"version"`
	Players struct {
		Max    int      `json:"max"`
		Online int      `json:"online"`
		Sample []Player `json:"sample"`
	} `json:"players"`
	Description json.RawMessage `json:"description"`
}

func parseStatus(doc string) (*ServerStatus, error) {
	var parsed statusDocument
	if err := json.Unmarshal([]byte(doc), &parsed); err != nil {
		return nil, fmt.Errorf("malformed status document: %w", err)
	}

	players := parsed.Players.Sample
	if players == nil {
		players = []Player{}
	}

	return &ServerStatus{
		Name:       parseDescription(parsed.Description),
		Version:    parsed.Version.Name,
		MaxPlayers: parsed.Players.Max,
		Online:     parsed.Players.Online,
		Players:    players,
	}, nil
}

// parseDescription handles both forms the wire allows: a plain string and a
// chat component object with a "text" field.
func parseDescription(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var plain string
	if err := json.Unmarshal(raw, &plain); err == nil {
		return plain
	}

	var component struct {
		Text string `json:"text"`
	}
	if err := json.Unmarshal(raw, &component); err == nil {
		return component.Text
	}
	return ""
}

func writePacket(w io.Writer, payload []byte) error {
	var framed bytes.Buffer
	writeVarInt(&framed, int32(len(payload)))
	framed.Write(payload)
	_, err := w.Write(framed.Bytes())
	return err
}

// maxPacketSize caps status responses; real documents are a few KB.
const maxPacketSize = 1 << 21

func readPacket(r *bufio.Reader) ([]byte, error) {
	length, err := readVarInt(r)
	if err != nil {
		return nil, err
	}
	if length <= 0 || length > maxPacketSize {
		return nil, fmt.Errorf("invalid packet length %d", length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func writeVarInt(w *bytes.Buffer, value int32) {
	v := uint32(value)
	for {
		b := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		w.WriteByte(b)
		if v == 0 {
			return
		}
	}
}

func readVarInt(r io.ByteReader) (int32, error) {
	var result uint32
	for shift := 0; shift < 35; shift += 7 {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		result |= uint32(b&0x7f) << shift
		if b&0x80 == 0 {
			return int32(result), nil
		}
	}
	return 0, fmt.Errorf("varint too long")
}

func writeString(w *bytes.Buffer, s string) {
	writeVarInt(w, int32(len(s)))
	w.WriteString(s)
}

func readString(r *bytes.Reader) (string, error) {
	length, err := readVarInt(r)
	if err != nil {
		return "", err
	}
	if length < 0 || int(length) > r.Len() {
		return "", fmt.Errorf("invalid string length %d", length)
	}

	buf := make([]byte, length)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}
