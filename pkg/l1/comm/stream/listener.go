package stream

import (
	"context"
	"fmt"
	"net"
	"net/url"

	"github.com/golang/glog"

	fx "github.com/robotalks/pursuit.go/pkg/framework"
	"github.com/robotalks/pursuit.go/pkg/l1"
	"github.com/robotalks/pursuit.go/pkg/l1/comm"
)

// Listener accepts TCP connections and serves them with a Hub.
type Listener struct {
	Addr string
	Hub  comm.Hub

	// Bound is signaled with the actual address once listening.
	Bound chan net.Addr
}

// NewListener creates a Listener on addr.
func NewListener(addr string) *Listener {
	return &Listener{Addr: addr, Bound: make(chan net.Addr, 1)}
}

// SendEvent implements Registrar.
func (s *Listener) SendEvent(ctx context.Context, msg fx.Message) error {
	return s.Hub.SendEvent(ctx, msg)
}

// AddToLoop implements LoopAdder.
func (s *Listener) AddToLoop(l *fx.Loop) {
	l.AddRunnable(s)
}

// Run implements Runnable.
func (s *Listener) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	glog.Infof("tcp listening on %s", ln.Addr())
	if s.Bound != nil {
		s.Bound <- ln.Addr()
	}
	return fx.RunWithContextCloser(ctx, ln, func() error {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return err
			}
			go func(conn net.Conn) {
				err := s.Hub.Serve(ctx, New(conn))
				glog.V(2).Infof("tcp %s disconnected: %v", conn.RemoteAddr(), err)
			}(conn)
		}
	})
}

// Connector implements l1.Connector against a single Listener.
type Connector struct {
	Addr string
}

// NewConnector creates a Connector from tcp://host:port.
func NewConnector(serverURL string) (*Connector, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme != "tcp" || u.Host == "" {
		return nil, fmt.Errorf("invalid tcp URL: %q", serverURL)
	}
	return &Connector{Addr: u.Host}, nil
}

// Discover implements Connector. A plain stream carries no metadata.
func (c *Connector) Discover(context.Context) ([]l1.ControllerInfo, error) {
	return nil, fmt.Errorf("discovery not supported over tcp")
}

// Connect implements Connector.
func (c *Connector) Connect(ctx context.Context, ref l1.ControllerRef) (l1.ControllerConn, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", c.Addr)
	if err != nil {
		return nil, err
	}
	cc := &comm.ControllerConn{}
	cc.Init(New(conn))
	return cc, nil
}
