package net

import (
	"encoding/binary"
	"fmt"
	"net"
	"time"

	"github.com/binmian/levikno/gal"
)

// pendingSend tracks one in-flight reliable send awaiting its peer's ack.
type pendingSend struct {
	acked chan struct{}
}

// wireHeaderSize is the on-wire framing prefix: 1 kind byte + 4 sequence
// bytes, followed by a data packet's 4-byte message id and 8-byte body
// length when kind is packetData.
const wireHeaderSize = 1 + 4

// sendRaw writes one framed control packet (handshake, disconnect) to the
// peer, assigning it the next sequence number. Data packets are framed by
// Send, whose retransmission keys off its own sequence number, not ENet's
// per-channel sequence space, since this package has no channel concept.
func (s *Socket) sendRaw(kind byte, payload []byte) error {
	s.mu.Lock()
	peer := s.peer
	seq := s.nextSeq
	s.nextSeq++
	s.mu.Unlock()
	if peer == nil {
		return fmt.Errorf("net: sendRaw: not connected")
	}
	buf := make([]byte, wireHeaderSize+len(payload))
	buf[0] = kind
	binary.BigEndian.PutUint32(buf[1:5], seq)
	copy(buf[5:], payload)
	_, err := s.conn.WriteToUDP(buf, peer)
	return err
}

// Send reliably delivers msg, retrying with exponential backoff until the
// peer acks it or milliseconds elapses, mirroring socketSend's
// ENET_PACKET_FLAG_RELIABLE guarantee without ENet's channel multiplexing.
func (s *Socket) Send(msg Message, milliseconds uint32) error {
	if uint64(len(msg.Body)) != msg.Header.Size {
		msg.Header.Size = uint64(len(msg.Body))
	}
	payload := make([]byte, 4+8+len(msg.Body))
	binary.BigEndian.PutUint32(payload[0:4], uint32(msg.Header.ID))
	binary.BigEndian.PutUint64(payload[4:12], msg.Header.Size)
	copy(payload[12:], msg.Body)
	if len(payload)+wireHeaderSize > maxDatagram {
		return gal.Err(gal.Failure, "net: Send: message of %d bytes exceeds max datagram size", len(payload))
	}

	s.mu.Lock()
	peer := s.peer
	seq := s.nextSeq
	s.nextSeq++
	pend := &pendingSend{acked: make(chan struct{})}
	s.pending[seq] = pend
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.pending, seq)
		s.mu.Unlock()
	}()

	if peer == nil {
		return fmt.Errorf("net: Send: not connected")
	}

	buf := make([]byte, wireHeaderSize+len(payload))
	buf[0] = packetData
	binary.BigEndian.PutUint32(buf[1:5], seq)
	copy(buf[5:], payload)

	deadline := time.Now().Add(time.Duration(milliseconds) * time.Millisecond)
	backoff := 20 * time.Millisecond
	for {
		if _, err := s.conn.WriteToUDP(buf, peer); err != nil {
			return fmt.Errorf("net: Send: %w", err)
		}
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return gal.Err(gal.TimeOut, "net: Send: message %d not acked within %dms", msg.Header.ID, milliseconds)
		}
		retry := min(backoff, remaining)
		select {
		case <-pend.acked:
			return nil
		case <-time.After(retry):
		case <-s.closed:
			return gal.Err(gal.Failure, "net: Send: socket closed")
		}
		if backoff < 500*time.Millisecond {
			backoff *= 2
		}
	}
}

// Receive blocks up to milliseconds for the next inbound application
// message, returning gal.TimeOut on expiry exactly as socketReceive does.
func (s *Socket) Receive(milliseconds uint32) (Message, error) {
	select {
	case m := <-s.inbox:
		return m, nil
	case <-time.After(time.Duration(milliseconds) * time.Millisecond):
		return Message{}, gal.Err(gal.TimeOut, "net: Receive: no message within %dms", milliseconds)
	case <-s.closed:
		return Message{}, gal.Err(gal.Failure, "net: Receive: socket closed")
	}
}

// readLoop is the socket's single reader goroutine: it demultiplexes
// inbound packets by kind, completes handshakes, acks data packets, and
// delivers decoded application messages to inbox.
func (s *Socket) readLoop() {
	buf := make([]byte, maxDatagram+wireHeaderSize)
	for {
		n, from, err := s.conn.ReadFromUDP(buf)
		if err != nil {
			return
		}
		if n < wireHeaderSize {
			continue
		}
		kind := buf[0]
		seq := binary.BigEndian.Uint32(buf[1:5])
		body := append([]byte(nil), buf[5:n]...)

		switch kind {
		case packetHandshakeSyn:
			s.mu.Lock()
			if s.peer == nil {
				s.peer = from
			}
			s.mu.Unlock()
			_ = s.sendRaw(packetHandshakeAck, nil)
			s.mu.Lock()
			s.handshook = true
			s.mu.Unlock()
		case packetHandshakeAck:
			s.mu.Lock()
			s.handshook = true
			s.mu.Unlock()
		case packetData:
			_ = s.ackData(seq, from)
			msg, err := decodeMessage(body)
			if err != nil {
				s.logf("net: readLoop: discarding malformed message: %v", err)
				continue
			}
			select {
			case s.inbox <- msg:
			default:
				s.logf("net: readLoop: inbox full, dropping message %d", msg.Header.ID)
			}
		case packetDataAck:
			s.mu.Lock()
			if p, ok := s.pending[seq]; ok {
				select {
				case <-p.acked:
				default:
					close(p.acked)
				}
			}
			s.mu.Unlock()
		case packetDisconnect:
			s.logf("net: readLoop: peer requested disconnect")
			_ = s.Close()
			return
		}
	}
}

func (s *Socket) ackData(seq uint32, from *net.UDPAddr) error {
	buf := make([]byte, wireHeaderSize)
	buf[0] = packetDataAck
	binary.BigEndian.PutUint32(buf[1:5], seq)
	_, err := s.conn.WriteToUDP(buf, from)
	return err
}

func decodeMessage(payload []byte) (Message, error) {
	if len(payload) < 12 {
		return Message{}, fmt.Errorf("payload too short: %d bytes", len(payload))
	}
	id := int(binary.BigEndian.Uint32(payload[0:4]))
	size := binary.BigEndian.Uint64(payload[4:12])
	body := payload[12:]
	if uint64(len(body)) != size {
		return Message{}, fmt.Errorf("declared size %d does not match body length %d", size, len(body))
	}
	return Message{Header: MessageHeader{ID: id, Size: size}, Body: body}, nil
}
