package msgs

import (
	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/pursuit.go/pkg/framework"
	pb "github.com/robotalks/pursuit.go/pkg/proto/pursuit/v1"
	"github.com/robotalks/pursuit.go/pkg/sim"
)

// CommandOK is the generic reply indicating success for commands.
type CommandOK struct {
	pb.CommandOK
}

// NewCommandOK creates a CommandOK.
func NewCommandOK() *CommandOK {
	return &CommandOK{}
}

// NewMessage implements Message.
func (m *CommandOK) NewMessage() fx.Message { return &CommandOK{} }

// TypeID implements SerializableMessage.
func (m *CommandOK) TypeID() uint32 { return CommandOKTypeID }

// Serializable implements SerializableMessage.
func (m *CommandOK) Serializable() proto.Message { return &m.CommandOK }

// CommandErr is the generic message representing command error.
type CommandErr struct {
	pb.CommandErr
}

// NewCommandErr creates a CommandErr from an error.
func NewCommandErr(err error) *CommandErr {
	return NewCommandErrFromMsg(err.Error())
}

// NewCommandErrFromMsg creates a CommandErr.
func NewCommandErrFromMsg(message string) *CommandErr {
	return &CommandErr{
		CommandErr: pb.CommandErr{
			Message: message,
		},
	}
}

// NewMessage implements Message.
func (m *CommandErr) NewMessage() fx.Message { return &CommandErr{} }

// TypeID implements SerializableMessage.
func (m *CommandErr) TypeID() uint32 { return CommandErrTypeID }

// Serializable implements SerializableMessage.
func (m *CommandErr) Serializable() proto.Message { return &m.CommandErr }

// Error implements error.
func (m *CommandErr) Error() string { return m.Message }

// ReplyError returns the reply as an error if it's a CommandErr.
func ReplyError(msg fx.Message) error {
	if cmdErr, ok := msg.(*CommandErr); ok {
		return cmdErr
	}
	return nil
}

// SetTarget command starts steering to a point.
type SetTarget struct {
	pb.SetTarget
}

// NewSetTarget creates a SetTarget.
func NewSetTarget(p sim.Pos2D) *SetTarget {
	return &SetTarget{SetTarget: pb.SetTarget{Point: PointFrom(p)}}
}

// NewMessage implements Message.
func (m *SetTarget) NewMessage() fx.Message { return &SetTarget{} }

// TypeID implements SerializableMessage.
func (m *SetTarget) TypeID() uint32 { return SetTargetTypeID }

// Serializable implements SerializableMessage.
func (m *SetTarget) Serializable() proto.Message { return &m.SetTarget }

// Click command is a pointer click on the field. A shift-click adds
// a waypoint, a plain click sets the target.
type Click struct {
	pb.Click
}

// NewClick creates a Click.
func NewClick(p sim.Pos2D, shift bool) *Click {
	return &Click{Click: pb.Click{Point: PointFrom(p), Shift: shift}}
}

// NewMessage implements Message.
func (m *Click) NewMessage() fx.Message { return &Click{} }

// TypeID implements SerializableMessage.
func (m *Click) TypeID() uint32 { return ClickTypeID }

// Serializable implements SerializableMessage.
func (m *Click) Serializable() proto.Message { return &m.Click }

// AddWaypoint command.
type AddWaypoint struct {
	pb.AddWaypoint
}

// NewAddWaypoint creates an AddWaypoint.
func NewAddWaypoint(p sim.Pos2D) *AddWaypoint {
	return &AddWaypoint{AddWaypoint: pb.AddWaypoint{Point: PointFrom(p)}}
}

// NewMessage implements Message.
func (m *AddWaypoint) NewMessage() fx.Message { return &AddWaypoint{} }

// TypeID implements SerializableMessage.
func (m *AddWaypoint) TypeID() uint32 { return AddWaypointTypeID }

// Serializable implements SerializableMessage.
func (m *AddWaypoint) Serializable() proto.Message { return &m.AddWaypoint }

// ConfirmPursuit command.
type ConfirmPursuit struct {
	pb.ConfirmPursuit
}

// NewMessage implements Message.
func (m *ConfirmPursuit) NewMessage() fx.Message { return &ConfirmPursuit{} }

// TypeID implements SerializableMessage.
func (m *ConfirmPursuit) TypeID() uint32 { return ConfirmPursuitTypeID }

// Serializable implements SerializableMessage.
func (m *ConfirmPursuit) Serializable() proto.Message { return &m.ConfirmPursuit }

// ResetMotion command.
type ResetMotion struct {
	pb.ResetMotion
}

// NewMessage implements Message.
func (m *ResetMotion) NewMessage() fx.Message { return &ResetMotion{} }

// TypeID implements SerializableMessage.
func (m *ResetMotion) TypeID() uint32 { return ResetMotionTypeID }

// Serializable implements SerializableMessage.
func (m *ResetMotion) Serializable() proto.Message { return &m.ResetMotion }

// SetParam command.
type SetParam struct {
	pb.SetParam
}

// NewSetParam creates a SetParam.
func NewSetParam(param pb.Param, value float64) *SetParam {
	return &SetParam{SetParam: pb.SetParam{Param: param, Value: value}}
}

// NewMessage implements Message.
func (m *SetParam) NewMessage() fx.Message { return &SetParam{} }

// TypeID implements SerializableMessage.
func (m *SetParam) TypeID() uint32 { return SetParamTypeID }

// Serializable implements SerializableMessage.
func (m *SetParam) Serializable() proto.Message { return &m.SetParam }

// ParamReply is the reply of SetParam with the effective value.
type ParamReply struct {
	pb.ParamReply
}

// NewMessage implements Message.
func (m *ParamReply) NewMessage() fx.Message { return &ParamReply{} }

// TypeID implements SerializableMessage.
func (m *ParamReply) TypeID() uint32 { return ParamReplyTypeID }

// Serializable implements SerializableMessage.
func (m *ParamReply) Serializable() proto.Message { return &m.ParamReply }

// StatusQuery command, replied with Status.
type StatusQuery struct {
	pb.StatusQuery
}

// NewMessage implements Message.
func (m *StatusQuery) NewMessage() fx.Message { return &StatusQuery{} }

// TypeID implements SerializableMessage.
func (m *StatusQuery) TypeID() uint32 { return StatusQueryTypeID }

// Serializable implements SerializableMessage.
func (m *StatusQuery) Serializable() proto.Message { return &m.StatusQuery }

// State event.
type State struct {
	pb.State
}

// NewMessage implements Message.
func (m *State) NewMessage() fx.Message { return &State{} }

// TypeID implements SerializableMessage.
func (m *State) TypeID() uint32 { return StateTypeID }

// Serializable implements SerializableMessage.
func (m *State) Serializable() proto.Message { return &m.State }

// Status is the reply of StatusQuery, carrying the same content as State.
type Status struct {
	pb.State
}

// NewMessage implements Message.
func (m *Status) NewMessage() fx.Message { return &Status{} }

// TypeID implements SerializableMessage.
func (m *Status) TypeID() uint32 { return StatusTypeID }

// Serializable implements SerializableMessage.
func (m *Status) Serializable() proto.Message { return &m.State }

// TypeID Groups
const (
	GroupCommand uint32 = 0x00000000
	GroupMotion  uint32 = 0x00030000
	GroupCustom  uint32 = 0x7f000000 // base group id for custom messages.
)

// TypeIDs
const (
	CommandOKTypeID      uint32 = GroupCommand | TypeIDMaskReply | 0x0000
	CommandErrTypeID     uint32 = GroupCommand | TypeIDMaskReply | 0x0001
	SetTargetTypeID      uint32 = GroupMotion | 0x0001
	ClickTypeID          uint32 = GroupMotion | 0x0002
	AddWaypointTypeID    uint32 = GroupMotion | 0x0003
	ConfirmPursuitTypeID uint32 = GroupMotion | 0x0004
	ResetMotionTypeID    uint32 = GroupMotion | 0x0005
	SetParamTypeID       uint32 = GroupMotion | 0x0006
	ParamReplyTypeID     uint32 = SetParamTypeID | TypeIDMaskReply
	StatusQueryTypeID    uint32 = GroupMotion | 0x0007
	StatusTypeID         uint32 = StatusQueryTypeID | TypeIDMaskReply
	StateTypeID          uint32 = TypeIDKindEvent | GroupMotion | 0x0001
)
