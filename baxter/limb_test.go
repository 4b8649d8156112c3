package baxter

import (
	"context"
	"github.com/bluenviron/goroslib/v2/pkg/msgs/sensor_msgs"
	"github.com/brokenrobotz/baxter-ros/pkg/msgs/baxter_core_msgs"
	"github.com/brokenrobotz/baxter-ros/pose"
	"go.viam.com/rdk/logging"
	"go.viam.com/test"
	"testing"
)

func TestJointNames(t *testing.T) {
	test.That(t, JointNames(Left), test.ShouldResemble,
		[]string{"left_s0", "left_s1", "left_e0", "left_e1", "left_w0", "left_w1", "left_w2"})
	test.That(t, JointNames(Right)[6], test.ShouldEqual, "right_w2")
}

func TestInitialPoseCoversLimbs(t *testing.T) {
	for _, side := range []Side{Left, Right} {
		positions, err := pose.ForJoints(pose.Initial, JointNames(side))
		test.That(t, err, test.ShouldBeNil)
		test.That(t, len(positions), test.ShouldEqual, 7)
		for name, pos := range positions {
			test.That(t, pos, test.ShouldEqual, pose.Initial[name])
		}
	}
}

func TestOnJointStatesFiltersSide(t *testing.T) {
	l := newLimb(Left, logging.NewTestLogger(t))
	l.onJointStates(&sensor_msgs.JointState{
		Name:     []string{"head_pan", "left_s0", "right_s0", "left_w2"},
		Position: []float64{0.1, 0.2, 0.3, 0.4},
	})
	angles := l.JointAngles()
	test.That(t, angles, test.ShouldResemble, map[string]float64{"left_s0": 0.2, "left_w2": 0.4})
	test.That(t, l.hasAllJoints(), test.ShouldBeFalse)

	names := JointNames(Left)
	positions := make([]float64, len(names))
	l.onJointStates(&sensor_msgs.JointState{Name: names, Position: positions})
	test.That(t, l.hasAllJoints(), test.ShouldBeTrue)

	// short position arrays are tolerated
	l.onJointStates(&sensor_msgs.JointState{Name: []string{"left_e0"}})
	test.That(t, l.JointAngles()["left_e0"], test.ShouldEqual, 0.0)
}

func TestJointCommand(t *testing.T) {
	cmd := jointCommand(map[string]float64{"left_w0": 3, "left_e0": 1, "left_s1": 2})
	test.That(t, cmd.Mode, test.ShouldEqual, baxter_core_msgs.JointCommand_POSITION_MODE)
	test.That(t, cmd.Names, test.ShouldResemble, []string{"left_e0", "left_s1", "left_w0"})
	test.That(t, cmd.Command, test.ShouldResemble, []float64{1, 2, 3})
}

func TestFilterStep(t *testing.T) {
	cmd := map[string]float64{"left_s0": 0, "left_s1": 1}
	filterStep(cmd, map[string]float64{"left_s0": 1})
	test.That(t, cmd["left_s0"], test.ShouldAlmostEqual, 0.012488)
	test.That(t, cmd["left_s1"], test.ShouldEqual, 1.0)

	// repeated steps converge on the target
	for i := 0; i < 2000; i++ {
		filterStep(cmd, map[string]float64{"left_s0": 1})
	}
	test.That(t, cmd["left_s0"], test.ShouldAlmostEqual, 1.0, 0.01)
}

func TestWithinThreshold(t *testing.T) {
	targets := map[string]float64{"left_s0": 1, "left_s1": -1}
	test.That(t, withinThreshold(map[string]float64{"left_s0": 1.001, "left_s1": -1}, targets, JointAngleTolerance), test.ShouldBeTrue)
	test.That(t, withinThreshold(map[string]float64{"left_s0": 1.1, "left_s1": -1}, targets, JointAngleTolerance), test.ShouldBeFalse)
	// joints without a measurement are not waited on
	test.That(t, withinThreshold(map[string]float64{"left_s0": 1}, targets, JointAngleTolerance), test.ShouldBeTrue)
}

func TestMoveRejectsForeignJoints(t *testing.T) {
	l := newLimb(Left, logging.NewTestLogger(t))
	err := l.MoveToJointPositions(context.Background(), map[string]float64{"right_s0": 0}, MoveOptions{})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "right_s0")
}

func TestMoveOptionsDefaults(t *testing.T) {
	opts := MoveOptions{}.withDefaults()
	test.That(t, opts.Timeout, test.ShouldEqual, DefaultMoveTimeout)
	test.That(t, opts.Threshold, test.ShouldEqual, JointAngleTolerance)
}
