// Package net is Levikno's reliable-datagram networking facade (spec.md's
// out-of-scope "reliable-UDP sockets": Connect/Disconnect/Send/Receive
// blocking up to a caller-supplied timeout, returning gal.TimeOut on
// expiry). The original engine links ENet for this; no pure-Go ENet
// equivalent exists in this engine's dependency surface, so this package
// reimplements ENet's reliable delivery over plain UDP directly on top of
// net.UDPConn: every send is retried with an exponential backoff until the
// peer acknowledges it or the caller's timeout expires. Inbound messages
// are delivered in arrival order; they are not reordered by sequence
// number, and a retransmitted message whose ack was lost is delivered
// again.
package net

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/binmian/levikno/gal"
)

// MessageHeader is a message's framing, the Go analogue of the original
// engine's LvnNetworkMessageHeader{id, size}.
type MessageHeader struct {
	ID   int
	Size uint64
}

// Message is one application-level datagram: a header plus its body.
type Message struct {
	Header MessageHeader
	Body   []byte
}

// packet kinds, framed as the first byte of every wire datagram.
const (
	packetHandshakeSyn byte = iota
	packetHandshakeAck
	packetData
	packetDataAck
	packetDisconnect
)

// Socket is a reliable-UDP connection endpoint. The zero value is not
// ready for use; build one with Dial or Listen.
type Socket struct {
	conn *net.UDPConn

	mu        sync.Mutex
	peer      *net.UDPAddr
	handshook bool
	nextSeq   uint32
	pending   map[uint32]*pendingSend
	inbox     chan Message
	closed    chan struct{}
	closeOne  sync.Once

	log func(format string, args ...any)
}

// maxDatagram bounds a single UDP payload Levikno ever sends; larger
// messages are the caller's responsibility to split (spec.md names no
// fragmentation requirement).
const maxDatagram = 60 * 1024

// Dial opens socket on a random local UDP port and blocks until address
// acknowledges the connection handshake or milliseconds elapses, mirroring
// the original engine's socketConnect(socket, address, channelCount,
// milliseconds).
func Dial(address string, milliseconds uint32) (*Socket, error) {
	peer, err := net.ResolveUDPAddr("udp", address)
	if err != nil {
		return nil, fmt.Errorf("net: Dial: resolve %q: %w", address, err)
	}
	conn, err := net.ListenUDP("udp", nil)
	if err != nil {
		return nil, fmt.Errorf("net: Dial: %w", err)
	}
	s := newSocket(conn)
	s.peer = peer
	go s.readLoop()

	deadline := time.Now().Add(time.Duration(milliseconds) * time.Millisecond)
	backoff := 20 * time.Millisecond
	for {
		if time.Now().After(deadline) {
			s.Close()
			return nil, gal.Err(gal.TimeOut, "net: Dial: no handshake ack from %s within %dms", address, milliseconds)
		}
		if err := s.sendRaw(packetHandshakeSyn, nil); err != nil {
			s.Close()
			return nil, fmt.Errorf("net: Dial: %w", err)
		}
		if s.isHandshook() {
			return s, nil
		}
		select {
		case <-time.After(backoff):
			if backoff < 500*time.Millisecond {
				backoff *= 2
			}
		case <-s.closed:
			return nil, gal.Err(gal.Failure, "net: Dial: socket closed")
		}
	}
}

// Listen opens a UDP socket bound to address and blocks until a peer
// completes the handshake or milliseconds elapses.
func Listen(address string, milliseconds uint32) (*Socket, error) {
	local, err := net.ResolveUDPAddr("udp", address)
	if err != nil {
		return nil, fmt.Errorf("net: Listen: resolve %q: %w", address, err)
	}
	conn, err := net.ListenUDP("udp", local)
	if err != nil {
		return nil, fmt.Errorf("net: Listen: %w", err)
	}
	s := newSocket(conn)
	go s.readLoop()

	deadline := time.Now().Add(time.Duration(milliseconds) * time.Millisecond)
	for {
		if time.Now().After(deadline) {
			s.Close()
			return nil, gal.Err(gal.TimeOut, "net: Listen: no peer connected within %dms", milliseconds)
		}
		if s.isHandshook() {
			return s, nil
		}
		select {
		case <-time.After(10 * time.Millisecond):
		case <-s.closed:
			return nil, gal.Err(gal.Failure, "net: Listen: socket closed")
		}
	}
}

func newSocket(conn *net.UDPConn) *Socket {
	return &Socket{
		conn:    conn,
		pending: make(map[uint32]*pendingSend),
		inbox:   make(chan Message, 64),
		closed:  make(chan struct{}),
	}
}

// SetLogger routes the socket's retransmit/handshake diagnostics through
// log, the same optional-sink shape internal/logger.Logger's Debug method
// offers, without this package importing internal/logger directly and
// forcing every caller onto its formatting.
func (s *Socket) SetLogger(log func(format string, args ...any)) {
	s.log = log
}

func (s *Socket) logf(format string, args ...any) {
	if s.log != nil {
		s.log(format, args...)
	}
}

func (s *Socket) isHandshook() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.peer != nil && s.handshook
}

// Close disconnects (if connected) and releases the underlying UDP
// socket, mirroring destroySocket's single-shot teardown.
func (s *Socket) Close() error {
	s.closeOne.Do(func() {
		s.mu.Lock()
		peer := s.peer
		s.mu.Unlock()
		if peer != nil {
			_ = s.sendRaw(packetDisconnect, nil)
		}
		close(s.closed)
	})
	return s.conn.Close()
}

// Disconnect gracefully tears down the connection, blocking up to
// milliseconds for the peer's own disconnect notice to arrive (readLoop
// closes the socket on receiving one), mirroring socketDisconnect(socket,
// milliseconds). The socket is always closed locally before returning.
func (s *Socket) Disconnect(milliseconds uint32) error {
	defer s.Close()
	if err := s.sendRaw(packetDisconnect, nil); err != nil {
		return fmt.Errorf("net: Disconnect: %w", err)
	}
	timer := time.NewTimer(time.Duration(milliseconds) * time.Millisecond)
	defer timer.Stop()
	select {
	case <-timer.C:
		return gal.Err(gal.TimeOut, "net: Disconnect: no peer ack within %dms", milliseconds)
	case <-s.closed:
		return nil
	}
}
