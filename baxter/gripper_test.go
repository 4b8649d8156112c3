package baxter

import (
	"context"
	"github.com/brokenrobotz/baxter-ros/pkg/msgs/baxter_core_msgs"
	"github.com/pkg/errors"
	"go.viam.com/rdk/logging"
	"go.viam.com/test"
	"testing"
)

func TestGripperCommand(t *testing.T) {
	g := &Gripper{side: Left, sender: "/goto_initpose", logger: logging.NewTestLogger(t)}
	g.onState(&baxter_core_msgs.EndEffectorState{Id: 65538})

	cmd, err := g.newCommand(baxter_core_msgs.EndEffectorCommand_CMD_GO, map[string]interface{}{"position": 0.0})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cmd.Id, test.ShouldEqual, uint32(65538))
	test.That(t, cmd.Command, test.ShouldEqual, "go")
	test.That(t, cmd.Args, test.ShouldEqual, `{"position":0}`)
	test.That(t, cmd.Sender, test.ShouldEqual, "/goto_initpose_go")
	test.That(t, cmd.Sequence, test.ShouldEqual, uint32(1))

	cmd, err = g.newCommand(baxter_core_msgs.EndEffectorCommand_CMD_CALIBRATE, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cmd.Args, test.ShouldBeEmpty)
	test.That(t, cmd.Sequence, test.ShouldEqual, uint32(2))

	g.seq = 0x7FFFFFFF
	cmd, err = g.newCommand(baxter_core_msgs.EndEffectorCommand_CMD_NO_OP, nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cmd.Sequence, test.ShouldEqual, uint32(1))
}

func TestClipPosition(t *testing.T) {
	test.That(t, clipPosition(-5), test.ShouldEqual, GripperMinPosition)
	test.That(t, clipPosition(42), test.ShouldEqual, 42.0)
	test.That(t, clipPosition(150), test.ShouldEqual, GripperMaxPosition)
}

func TestGripperRequiresCalibration(t *testing.T) {
	g := &Gripper{side: Left, sender: "/goto_initpose", logger: logging.NewTestLogger(t)}
	g.onState(&baxter_core_msgs.EndEffectorState{Calibrated: baxter_core_msgs.EndEffectorState_STATE_FALSE})

	err := g.CloseFingers(context.Background(), false)
	test.That(t, errors.Is(err, ErrNotCalibrated), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "left")
}
