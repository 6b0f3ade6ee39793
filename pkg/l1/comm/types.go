// Package comm carries typed messages over packet connections.
package comm

import (
	"io"
	"sync"
)

// PacketReader reads packets in bytes.
type PacketReader interface {
	ReadPacket() ([]byte, error)
}

// PacketWriter writes packets in bytes.
type PacketWriter interface {
	WritePacket([]byte) error
}

// PacketReadWriter reads/writes packets in bytes.
type PacketReadWriter interface {
	PacketReader
	PacketWriter
}

// ChanReadWriter is an in-memory PacketReadWriter. Packets written
// to one end of a Pair are read from the other end.
type ChanReadWriter struct {
	in     <-chan []byte
	out    chan<- []byte
	closed chan struct{}
	once   *sync.Once
}

// Pair creates two connected ChanReadWriters.
func Pair() (*ChanReadWriter, *ChanReadWriter) {
	a2b, b2a := make(chan []byte, 16), make(chan []byte, 16)
	closed, once := make(chan struct{}), &sync.Once{}
	return &ChanReadWriter{in: b2a, out: a2b, closed: closed, once: once},
		&ChanReadWriter{in: a2b, out: b2a, closed: closed, once: once}
}

// ReadPacket implements PacketReader.
func (c *ChanReadWriter) ReadPacket() ([]byte, error) {
	select {
	case pkt := <-c.in:
		return pkt, nil
	case <-c.closed:
		return nil, io.EOF
	}
}

// WritePacket implements PacketWriter.
func (c *ChanReadWriter) WritePacket(pkt []byte) error {
	select {
	case <-c.closed:
		return io.ErrClosedPipe
	default:
	}
	select {
	case c.out <- pkt:
		return nil
	case <-c.closed:
		return io.ErrClosedPipe
	}
}

// Close closes both ends of the Pair.
func (c *ChanReadWriter) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}
