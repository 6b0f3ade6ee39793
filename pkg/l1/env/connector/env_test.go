package connector

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/pursuit.go/pkg/l1/comm/mqtt"
	"github.com/robotalks/pursuit.go/pkg/l1/comm/stream"
	"github.com/robotalks/pursuit.go/pkg/l1/comm/websocket"
)

func TestNewConnector(t *testing.T) {
	cases := []struct {
		url    string
		expect interface{}
	}{
		{"mqtt://localhost:1883/robo/", &mqtt.Connector{}},
		{"ws://localhost:8080", &websocket.Connector{}},
		{"tcp://localhost:7000", &stream.Connector{}},
	}
	for _, c := range cases {
		conf := NewConfig()
		conf.RegistryURL = c.url
		connector, err := conf.NewConnector()
		require.NoError(t, err, c.url)
		require.IsType(t, c.expect, connector, c.url)
	}

	conf := NewConfig()
	conf.RegistryURL = "ftp://localhost"
	_, err := conf.NewConnector()
	require.Error(t, err)
}
