package baxter_core_msgs

import (
	"github.com/bluenviron/goroslib/v2/pkg/msg"
)

const (
	HeadPanCommand_REQUEST_PAN_DISABLE uint8 = 0
	HeadPanCommand_REQUEST_PAN_ENABLE  uint8 = 1
	HeadPanCommand_REQUEST_PAN_VOID    uint8 = 2
)

// HeadPanCommand is published on /robot/head/command_head_pan.
type HeadPanCommand struct {
	msg.Package      `ros:"baxter_core_msgs"`
	msg.Definitions  `ros:"float32 MAX_SPEED_RATIO=1.0,float32 MIN_SPEED_RATIO=0.0,uint8 REQUEST_PAN_DISABLE=0,uint8 REQUEST_PAN_ENABLE=1,uint8 REQUEST_PAN_VOID=2"`
	Target           float32
	SpeedRatio       float32
	EnablePanRequest uint8
}

// HeadState is published on /robot/head/head_state.
type HeadState struct {
	msg.Package  `ros:"baxter_core_msgs"`
	Pan          float32
	IsTurning    bool `rosname:"isTurning"`
	IsNodding    bool `rosname:"isNodding"`
	IsPanEnabled bool `rosname:"isPanEnabled"`
}
