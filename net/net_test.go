package net

import (
	"testing"
	"time"

	"github.com/binmian/levikno/gal"
)

func TestDialListenHandshakeAndMessageRoundTrip(t *testing.T) {
	serverDone := make(chan *Socket, 1)
	serverErr := make(chan error, 1)
	go func() {
		s, err := Listen("127.0.0.1:39217", 2000)
		if err != nil {
			serverErr <- err
			return
		}
		serverDone <- s
	}()

	// Give the listener a moment to bind before the client dials.
	time.Sleep(20 * time.Millisecond)

	client, err := Dial("127.0.0.1:39217", 2000)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	var server *Socket
	select {
	case server = <-serverDone:
		defer server.Close()
	case err := <-serverErr:
		t.Fatalf("Listen: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatalf("Listen did not complete handshake in time")
	}

	want := Message{Header: MessageHeader{ID: 7}, Body: []byte("hello levikno")}
	if err := client.Send(want, 1000); err != nil {
		t.Fatalf("Send: %v", err)
	}

	got, err := server.Receive(1000)
	if err != nil {
		t.Fatalf("Receive: %v", err)
	}
	if got.Header.ID != want.Header.ID || string(got.Body) != string(want.Body) {
		t.Fatalf("unexpected message: got %+v body %q", got.Header, got.Body)
	}
	if got.Header.Size != uint64(len(want.Body)) {
		t.Fatalf("expected header size %d, got %d", len(want.Body), got.Header.Size)
	}
}

func TestReceiveTimesOut(t *testing.T) {
	serverDone := make(chan *Socket, 1)
	go func() {
		s, err := Listen("127.0.0.1:39218", 2000)
		if err == nil {
			serverDone <- s
		}
	}()
	time.Sleep(20 * time.Millisecond)

	client, err := Dial("127.0.0.1:39218", 2000)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer client.Close()

	select {
	case server := <-serverDone:
		defer server.Close()
	case <-time.After(2 * time.Second):
		t.Fatalf("handshake did not complete")
	}

	_, err = client.Receive(50)
	if err == nil {
		t.Fatalf("expected timeout error")
	}
	if gal.ResultOf(err) != gal.TimeOut {
		t.Fatalf("expected gal.TimeOut result, got %v", gal.ResultOf(err))
	}
}

func TestDialTimesOutWithoutListener(t *testing.T) {
	_, err := Dial("127.0.0.1:39219", 80)
	if err == nil {
		t.Fatalf("expected error dialing an address with no listener")
	}
	if gal.ResultOf(err) != gal.TimeOut {
		t.Fatalf("expected gal.TimeOut result, got %v", gal.ResultOf(err))
	}
}
