package baxter_core_msgs

import (
	"github.com/bluenviron/goroslib/v2/pkg/msg"
	"time"
)

const (
	EndEffectorCommand_CMD_NO_OP     = "no_op"
	EndEffectorCommand_CMD_CALIBRATE = "calibrate"
	EndEffectorCommand_CMD_GO        = "go"
	EndEffectorCommand_CMD_STOP      = "stop"
)

// EndEffectorCommand is published on /robot/end_effector/<side>_gripper/command.
type EndEffectorCommand struct {
	msg.Package     `ros:"baxter_core_msgs"`
	msg.Definitions `ros:"string CMD_NO_OP=no_op,string CMD_SET=set,string CMD_CONFIGURE=configure,string CMD_REBOOT=reboot,string CMD_RESET=reset,string CMD_CALIBRATE=calibrate,string CMD_CLEAR_CALIBRATION=clear_calibration,string CMD_PREPARE_TO_GRIP=prepare_to_grip,string CMD_GRIP=grip,string CMD_RELEASE=release,string CMD_GO=go,string CMD_STOP=stop"`
	Id              uint32
	Command         string
	Args            string
	Sender          string
	Sequence        uint32
}

const (
	EndEffectorState_STATE_FALSE   uint8 = 0
	EndEffectorState_STATE_TRUE    uint8 = 1
	EndEffectorState_STATE_UNKNOWN uint8 = 2
)

// EndEffectorState is published on /robot/end_effector/<side>_gripper/state.
type EndEffectorState struct {
	msg.Package     `ros:"baxter_core_msgs"`
	msg.Definitions `ros:"uint8 STATE_FALSE=0,uint8 STATE_TRUE=1,uint8 STATE_UNKNOWN=2,float32 POSITION_CLOSED=0.0,float32 POSITION_OPEN=100.0,float32 FORCE_MIN=0.0,float32 FORCE_MAX=100.0"`
	Timestamp       time.Time
	Id              uint32
	Enabled         uint8
	Calibrated      uint8
	Ready           uint8
	Moving          uint8
	Gripping        uint8
	Missed          uint8
	Error           uint8
	Reverse         uint8
	Position        float32
	Force           float32
	State           string
	Command         string
	CommandSender   string
	CommandSequence uint32
}
