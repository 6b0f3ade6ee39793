package websocket

import (
	"context"
	"encoding/json"
	"net"
	"net/http"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	fx "github.com/robotalks/pursuit.go/pkg/framework"
	"github.com/robotalks/pursuit.go/pkg/l1"
	"github.com/robotalks/pursuit.go/pkg/l1/comm"
)

// Paths served by Server.
const (
	PathMessages = "/msgs"
	PathMeta     = "/meta"
)

// Server accepts websocket connections and serves them with a Hub.
// Each connection can send commands and receives all events.
type Server struct {
	Addr string
	Info l1.ControllerInfo
	Hub  comm.Hub
}

// NewServer creates a Server listening on addr.
func NewServer(addr string, info l1.ControllerInfo) *Server {
	return &Server{Addr: addr, Info: info}
}

// Handler creates the http.Handler. ctx must come from a loop runner
// and ends all connections when done.
func (s *Server) Handler(ctx context.Context) http.Handler {
	mux := http.NewServeMux()
	mux.Handle(PathMessages, websocket.Handler(func(conn *websocket.Conn) {
		conn.PayloadType = websocket.BinaryFrame
		glog.V(2).Infof("websocket connected: %s", conn.Request().RemoteAddr)
		err := s.Hub.Serve(ctx, New(conn))
		glog.V(2).Infof("websocket disconnected: %s: %v", conn.Request().RemoteAddr, err)
	}))
	mux.HandleFunc(PathMeta, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(&s.Info)
	})
	return mux
}

// SendEvent implements Registrar.
func (s *Server) SendEvent(ctx context.Context, msg fx.Message) error {
	return s.Hub.SendEvent(ctx, msg)
}

// AddToLoop implements LoopAdder.
func (s *Server) AddToLoop(l *fx.Loop) {
	l.AddRunnable(s)
}

// Run implements Runnable.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	glog.Infof("websocket listening on %s", ln.Addr())
	srv := &http.Server{Handler: s.Handler(ctx)}
	return fx.RunWithContextCloser(ctx, srv, func() error {
		return srv.Serve(ln)
	})
}
