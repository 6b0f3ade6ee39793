package controller

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/pursuit.go/pkg/l1"
)

func TestNewEnv(t *testing.T) {
	conf := NewConfig()
	conf.Info.Ref = l1.ControllerRef{}
	_, err := conf.NewEnv()
	require.Error(t, err)

	conf.Info.Ref = l1.ControllerRef{Type: "pursuit", ID: "1"}
	conf.MQTTBrokerURL = ""
	e, err := conf.NewEnv()
	require.NoError(t, err)
	require.Empty(t, e.Registrar.Registrars)

	conf.MQTTBrokerURL = "mqtt://localhost:1883/robo"
	conf.WebsocketAddr = ":8080"
	conf.TCPAddr = ":7000"
	e, err = conf.NewEnv()
	require.NoError(t, err)
	require.Len(t, e.Registrar.Registrars, 3)
	require.Equal(t, []string{"mqtt://localhost:1883/robo", "ws://:8080", "tcp://:7000"}, e.RegistryURLs)

	conf.MQTTBrokerURL = "mqtt://broker/robo?keepalive=x"
	_, err = conf.NewEnv()
	require.Error(t, err)
}

func TestSetControllerType(t *testing.T) {
	SetControllerType("pursuit", l1.ControllerMeta{Description: "sim"})
	conf := NewConfig()
	require.Equal(t, "pursuit", conf.Info.Ref.Type)
	require.Equal(t, "sim", conf.Info.Meta.Description)
	require.NotEmpty(t, conf.Info.Ref.ID)
}
