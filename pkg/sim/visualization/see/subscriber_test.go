package see

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/pursuit.go/pkg/sim"
	"github.com/robotalks/pursuit.go/pkg/sim/motion"
)

func actions(msgs []Message) []string {
	var res []string
	for _, msg := range msgs {
		if msg.Action == ActionObject {
			res = append(res, msg.Action+":"+msg.Object[PropID].(string))
		} else {
			res = append(res, msg.Action+":"+msg.RemoveID)
		}
	}
	return res
}

func TestAdapterMessages(t *testing.T) {
	a := NewConfig().NewAdapter()
	s := motion.NewSimulator()

	snapshot := s.Snapshot()
	require.Equal(t, []string{
		"reset:", "object:corner-lt", "object:corner-lb", "object:corner-rt", "object:corner-rb",
		"object:robot",
	}, actions(a.Messages(&snapshot)))

	require.NoError(t, s.SetTarget(sim.Pos2D{X: 600, Y: 325}))
	snapshot = s.Tick()
	require.Equal(t, []string{
		"object:robot", "object:target", "object:initial", "object:path",
	}, actions(a.Messages(&snapshot)))

	snapshot = s.Tick()
	require.Equal(t, []string{"object:robot", "object:path"}, actions(a.Messages(&snapshot)))

	require.NoError(t, s.SetTarget(sim.Pos2D{X: 300, Y: 325}))
	snapshot = s.Tick()
	require.Equal(t, []string{
		"object:robot", "object:target", "object:initial", "object:path", "object:trajectory.0",
	}, actions(a.Messages(&snapshot)))

	s.Reset()
	snapshot = s.Snapshot()
	msgs := a.Messages(&snapshot)
	require.Equal(t, ActionReset, msgs[0].Action)
	require.Equal(t, "object:robot", actions(msgs)[5])
	require.Len(t, msgs, 6)
}

func TestAdapterTargetReachedOnFirstTick(t *testing.T) {
	a := NewConfig().NewAdapter()
	s := motion.NewSimulator()
	require.NoError(t, s.SetTarget(sim.Pos2D{X: 600, Y: 325}))
	for i := 0; i < 2; i++ {
		snapshot := s.Tick()
		a.Messages(&snapshot)
	}

	// within the target radius of the robot at (504, 325).
	require.NoError(t, s.SetTarget(sim.Pos2D{X: 500, Y: 325}))
	snapshot := s.Tick()
	require.True(t, snapshot.Reached)
	require.Equal(t, []string{
		"object:robot", "remove:target", "object:initial", "object:path", "object:trajectory.0",
	}, actions(a.Messages(&snapshot)))
}

func TestAdapterWrite(t *testing.T) {
	var buf bytes.Buffer
	conf := NewConfig()
	conf.Out = &buf
	a := conf.NewAdapter()
	s := motion.NewSimulator()
	snapshot := s.Snapshot()
	a.StateChanged(nil, &snapshot)
	a.StateChanged(nil, &snapshot)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var msgs []Message
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &msgs))
	require.Len(t, msgs, 1)
	require.Equal(t, IDRobot, msgs[0].Object[PropID])
	require.Equal(t, map[string]interface{}{"x": 500.0, "y": 325.0}, msgs[0].Object[PropOrigin])
}
