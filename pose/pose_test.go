package pose

import (
	"github.com/pkg/errors"
	"go.viam.com/test"
	"testing"
)

func TestInitialTable(t *testing.T) {
	test.That(t, len(Initial), test.ShouldEqual, 19)
	test.That(t, Initial["left_e0"], test.ShouldEqual, -1.5557922490972862)
	test.That(t, Initial["right_w2"], test.ShouldEqual, 0.4999199143249742)
	test.That(t, Initial["head_pan"], test.ShouldEqual, 1.9175123711079323e-09)
}

func TestForJoints(t *testing.T) {
	left := []string{"left_s0", "left_s1", "left_e0", "left_e1", "left_w0", "left_w1", "left_w2"}
	got, err := ForJoints(Initial, left)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(got), test.ShouldEqual, len(left))
	for _, name := range left {
		test.That(t, got[name], test.ShouldEqual, Initial[name])
	}
	_, hasRight := got["right_s0"]
	test.That(t, hasRight, test.ShouldBeFalse)

	right := []string{"right_s0", "right_s1", "right_e0", "right_e1", "right_w0", "right_w1", "right_w2"}
	got, err = ForJoints(Initial, right)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, got["right_s0"], test.ShouldEqual, -1.25925592718432)
	test.That(t, got["right_e1"], test.ShouldEqual, 1.9397502577790355)
}

func TestForJointsUnknown(t *testing.T) {
	_, err := ForJoints(Initial, []string{"left_s0", "torso_t0"})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, errors.Is(err, ErrUnknownJoint), test.ShouldBeTrue)
	test.That(t, err.Error(), test.ShouldContainSubstring, "torso_t0")
}

func TestJointNamesSorted(t *testing.T) {
	names := JointNames(Initial)
	test.That(t, len(names), test.ShouldEqual, 19)
	test.That(t, names[0], test.ShouldEqual, "head_pan")
	test.That(t, names[len(names)-1], test.ShouldEqual, "right_w2")
}
