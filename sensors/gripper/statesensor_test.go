package gripper

import (
	"context"
	"github.com/brokenrobotz/baxter-ros/pkg/msgs/baxter_core_msgs"
	"go.viam.com/rdk/logging"
	"go.viam.com/test"
	"testing"
)

func TestStateSensorConfig(t *testing.T) {
	cfg := &StateSensorConfig{Side: "left"}
	_, err := cfg.Validate("components.1")
	test.That(t, err, test.ShouldNotBeNil)

	cfg.PrimaryUri = "localhost:11311"
	_, err = cfg.Validate("components.1")
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cfg.topic(), test.ShouldEqual, "/robot/end_effector/left_gripper/state")

	cfg.Side = "middle"
	_, err = cfg.Validate("components.1")
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "side")
}

func TestStateReadings(t *testing.T) {
	s := &StateSensor{logger: logging.NewTestLogger(t)}
	_, err := s.Readings(context.Background(), nil)
	test.That(t, err, test.ShouldNotBeNil)

	s.processMessage(&baxter_core_msgs.EndEffectorState{
		Id:         65664,
		Calibrated: baxter_core_msgs.EndEffectorState_STATE_TRUE,
		Gripping:   baxter_core_msgs.EndEffectorState_STATE_FALSE,
		Error:      baxter_core_msgs.EndEffectorState_STATE_UNKNOWN,
		Position:   42.5,
		Force:      30,
	})
	readings, err := s.Readings(context.Background(), nil)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, readings["calibrated"], test.ShouldEqual, true)
	test.That(t, readings["gripping"], test.ShouldEqual, false)
	test.That(t, readings["error"], test.ShouldEqual, "unknown")
	test.That(t, readings["position"], test.ShouldEqual, 42.5)
	test.That(t, readings["force"], test.ShouldEqual, 30.0)
	test.That(t, readings["id"], test.ShouldEqual, 65664)

	test.That(t, s.Close(context.Background()), test.ShouldBeNil)
}
