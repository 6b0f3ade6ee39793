package msgs

import (
	"errors"
	"testing"

	"github.com/golang/protobuf/proto"
	"github.com/stretchr/testify/require"

	fx "github.com/robotalks/pursuit.go/pkg/framework"
	pb "github.com/robotalks/pursuit.go/pkg/proto/pursuit/v1"
	"github.com/robotalks/pursuit.go/pkg/sim"
	"github.com/robotalks/pursuit.go/pkg/sim/motion"
)

func TestTypedCommands(t *testing.T) {
	testCases := []struct {
		name    string
		msg     SerializableMessage
		command bool
		reply   bool
		event   bool
	}{
		{name: "click", msg: NewClick(sim.Pos2D{X: 10, Y: 20}, true), command: true},
		{name: "set param", msg: NewSetParam(pb.Param_TURN_SPEED, 0.07), command: true},
		{name: "confirm", msg: &ConfirmPursuit{}, command: true},
		{name: "param reply", msg: &ParamReply{ParamReply: pb.ParamReply{Param: pb.Param_SPEED, Value: 3}}, reply: true},
		{name: "error", msg: NewCommandErr(errors.New("boom")), reply: true},
		{name: "status", msg: &Status{State: pb.State{Mode: "PURSUIT", Speed: 2}}, reply: true},
		{name: "state", msg: &State{State: pb.State{Tick: 3, Mode: "IDLE"}}, event: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := EncodeMessage(tc.msg, 42)
			require.NoError(t, err)
			typed, err := DecodeTyped(data)
			require.NoError(t, err)
			require.Equal(t, tc.msg.TypeID(), typed.TypeId)
			require.Equal(t, uint32(42), typed.Sequence)
			require.Equal(t, tc.command, typed.IsCommand())
			require.Equal(t, tc.reply, typed.IsReply())
			require.Equal(t, tc.event, typed.IsEvent())
			msg, err := typed.Decode()
			require.NoError(t, err)
			require.IsType(t, tc.msg, msg)
			require.True(t, proto.Equal(tc.msg.Serializable(), msg.(SerializableMessage).Serializable()))
		})
	}
}

func TestTypedErrors(t *testing.T) {
	_, err := TypedFrom(&motionMsg{})
	require.Equal(t, ErrNotSerializable, err)

	typed := &Typed{Typed: pb.Typed{TypeId: GroupCustom | 1}}
	_, err = typed.Decode()
	require.Equal(t, &ErrUnknownType{TypeID: GroupCustom | 1}, err)
	require.Equal(t, "unknown type: 7f000001", err.Error())

	_, err = DecodeTyped([]byte{0xff})
	require.Error(t, err)
}

type motionMsg struct{}

func (m *motionMsg) NewMessage() fx.Message { return &motionMsg{} }

func TestStateRoundTrip(t *testing.T) {
	s := motion.NewSimulator()
	require.NoError(t, s.SetTarget(sim.Pos2D{X: 560, Y: 400}))
	for i := 0; i < 5; i++ {
		s.Tick()
	}
	require.NoError(t, s.SetTarget(sim.Pos2D{X: 100, Y: 100}))
	require.NoError(t, s.AddWaypoint(sim.Pos2D{X: 1, Y: 2}))
	s.Tick()
	snapshot := s.Tick()

	data, err := EncodeMessage(StateFrom(&snapshot, "session-1"), 0)
	require.NoError(t, err)
	typed, err := DecodeTyped(data)
	require.NoError(t, err)
	msg, err := typed.Decode()
	require.NoError(t, err)
	state := msg.(*State)
	require.Equal(t, "session-1", state.Session)
	require.Equal(t, "STEERING", state.Mode)
	decoded, err := state.Snapshot()
	require.NoError(t, err)
	require.Equal(t, &snapshot, decoded)
}
