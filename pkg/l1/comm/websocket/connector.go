package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/net/websocket"

	"github.com/robotalks/pursuit.go/pkg/l1"
	"github.com/robotalks/pursuit.go/pkg/l1/comm"
)

// Connector implements l1.Connector against a single Server.
type Connector struct {
	baseURL *url.URL
}

// NewConnector creates a Connector from ws://host:port.
func NewConnector(serverURL string) (*Connector, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "ws", "wss":
	default:
		return nil, fmt.Errorf("unsupported websocket scheme: %q", u.Scheme)
	}
	return &Connector{baseURL: u}, nil
}

func (c *Connector) urlOf(scheme, path string) string {
	u := *c.baseURL
	u.Scheme, u.Path = scheme, path
	return u.String()
}

// Discover implements Connector. The server hosts exactly one controller.
func (c *Connector) Discover(ctx context.Context) ([]l1.ControllerInfo, error) {
	scheme := "http"
	if c.baseURL.Scheme == "wss" {
		scheme = "https"
	}
	req, err := http.NewRequest(http.MethodGet, c.urlOf(scheme, PathMeta), nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("discover: %s", resp.Status)
	}
	var info l1.ControllerInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return []l1.ControllerInfo{info}, nil
}

// Connect implements Connector. ref is not checked as the server
// hosts a single controller.
func (c *Connector) Connect(ctx context.Context, ref l1.ControllerRef) (l1.ControllerConn, error) {
	origin := c.urlOf("http", "/")
	conn, err := websocket.Dial(c.urlOf(c.baseURL.Scheme, PathMessages), "", origin)
	if err != nil {
		return nil, err
	}
	conn.PayloadType = websocket.BinaryFrame
	cc := &comm.ControllerConn{}
	cc.Init(New(conn))
	return cc, nil
}
