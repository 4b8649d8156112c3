// Package baxter_core_msgs declares the Baxter ROS messages and services used
// to drive the robot through its SDK topics.
package baxter_core_msgs

import (
	"github.com/bluenviron/goroslib/v2/pkg/msg"
)

const (
	AssemblyState_ESTOP_BUTTON_UNPRESSED uint8 = 0
	AssemblyState_ESTOP_BUTTON_PRESSED   uint8 = 1
	AssemblyState_ESTOP_BUTTON_UNKNOWN   uint8 = 2
	AssemblyState_ESTOP_BUTTON_RELEASED  uint8 = 3
	AssemblyState_ESTOP_SOURCE_NONE      uint8 = 0
	AssemblyState_ESTOP_SOURCE_USER      uint8 = 1
	AssemblyState_ESTOP_SOURCE_UNKNOWN   uint8 = 2
	AssemblyState_ESTOP_SOURCE_FAULT     uint8 = 3
	AssemblyState_ESTOP_SOURCE_BRAIN     uint8 = 4
)

// AssemblyState is published on /robot/state.
type AssemblyState struct {
	msg.Package     `ros:"baxter_core_msgs"`
	msg.Definitions `ros:"uint8 ESTOP_BUTTON_UNPRESSED=0,uint8 ESTOP_BUTTON_PRESSED=1,uint8 ESTOP_BUTTON_UNKNOWN=2,uint8 ESTOP_BUTTON_RELEASED=3,uint8 ESTOP_SOURCE_NONE=0,uint8 ESTOP_SOURCE_USER=1,uint8 ESTOP_SOURCE_UNKNOWN=2,uint8 ESTOP_SOURCE_FAULT=3,uint8 ESTOP_SOURCE_BRAIN=4"`
	Ready           bool
	Enabled         bool
	Stopped         bool
	Error           bool
	EstopButton     uint8
	EstopSource     uint8
}
