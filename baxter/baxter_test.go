package baxter

import (
	"context"
	"github.com/pkg/errors"
	"go.viam.com/test"
	"testing"
	"time"
)

func TestSideValidate(t *testing.T) {
	test.That(t, Left.Validate(), test.ShouldBeNil)
	test.That(t, Right.Validate(), test.ShouldBeNil)
	err := Side("torso").Validate()
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "torso")
}

func TestTopicNames(t *testing.T) {
	test.That(t, jointCommandTopic(Left), test.ShouldEqual, "/robot/limb/left/joint_command")
	test.That(t, speedRatioTopic(Right), test.ShouldEqual, "/robot/limb/right/set_speed_ratio")
	test.That(t, gripperTopic(Left, "state"), test.ShouldEqual, "/robot/end_effector/left_gripper/state")
	test.That(t, gripperTopic(Right, "command"), test.ShouldEqual, "/robot/end_effector/right_gripper/command")
}

func TestWaitFor(t *testing.T) {
	t.Run("passes immediately", func(t *testing.T) {
		calls := 0
		err := waitFor(context.Background(), waitSpec{
			timeout: time.Second,
			test:    func() bool { return true },
			body:    func() { calls++ },
		})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, calls, test.ShouldEqual, 0)
	})

	t.Run("runs body until test passes", func(t *testing.T) {
		calls := 0
		err := waitFor(context.Background(), waitSpec{
			timeout: 5 * time.Second,
			rate:    1000,
			test:    func() bool { return calls >= 3 },
			body:    func() { calls++ },
		})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, calls, test.ShouldEqual, 3)
	})

	t.Run("times out", func(t *testing.T) {
		err := waitFor(context.Background(), waitSpec{
			timeout: 20 * time.Millisecond,
			rate:    1000,
			test:    func() bool { return false },
			msg:     "never true",
		})
		test.That(t, errors.Is(err, ErrTimeout), test.ShouldBeTrue)
		test.That(t, err.Error(), test.ShouldContainSubstring, "never true")
	})

	t.Run("honours cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := waitFor(ctx, waitSpec{
			test: func() bool { return false },
		})
		test.That(t, err, test.ShouldEqual, context.Canceled)
	})
}

func TestCheckVersion(t *testing.T) {
	test.That(t, normalizeRobotVersion("1.2.0"), test.ShouldEqual, "1.2.0")
	test.That(t, normalizeRobotVersion("1.2.0.201506231418"), test.ShouldEqual, "1.2.0")
	test.That(t, normalizeRobotVersion(" 1.1.1 "), test.ShouldEqual, "1.1.1")

	test.That(t, checkVersion("1.2.0.201506231418"), test.ShouldBeNil)
	err := checkVersion("1.1.1")
	test.That(t, errors.Is(err, ErrVersionMismatch), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "1.1.1")
}
