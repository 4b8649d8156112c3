package baxter_core_msgs

import (
	"github.com/bluenviron/goroslib/v2/pkg/msg"
)

const (
	JointCommand_POSITION_MODE     int32 = 1
	JointCommand_VELOCITY_MODE     int32 = 2
	JointCommand_TORQUE_MODE       int32 = 3
	JointCommand_RAW_POSITION_MODE int32 = 4
)

// JointCommand is published on /robot/limb/<side>/joint_command.
type JointCommand struct {
	msg.Package     `ros:"baxter_core_msgs"`
	msg.Definitions `ros:"int32 POSITION_MODE=1,int32 VELOCITY_MODE=2,int32 TORQUE_MODE=3,int32 RAW_POSITION_MODE=4"`
	Mode            int32
	Command         []float64
	Names           []string
}
