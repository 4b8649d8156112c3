// Package baxter is a client for the Baxter research robot's ROS interface:
// enabling the robot, commanding limbs, grippers and head, and configuring the
// on-board cameras. All motion is executed by the robot's own controllers.
package baxter

import (
	"context"
	"fmt"
	"github.com/bluenviron/goroslib/v2"
	"github.com/bluenviron/goroslib/v2/pkg/msgs/std_msgs"
	"github.com/brokenrobotz/baxter-ros/ros"
	"github.com/pkg/errors"
	"go.viam.com/rdk/logging"
	"go.viam.com/utils"
	"time"
)

// Side selects one of the two arms.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

// Validate reports whether s names one of Baxter's arms.
func (s Side) Validate() error {
	if s != Left && s != Right {
		return errors.Errorf("invalid side %q, expected %q or %q", s, Left, Right)
	}
	return nil
}

const (
	robotStateTopic   = "/robot/state"
	jointStatesTopic  = "/robot/joint_states"
	simStartedTopic   = "/robot/sim/started"
	superEnableTopic  = "/robot/set_super_enable"
	superResetTopic   = "/robot/set_super_reset"
	superStopTopic    = "/robot/set_super_stop"
	headPanTopic      = "/robot/head/command_head_pan"
	headStateTopic    = "/robot/head/head_state"
	listCamerasSrv    = "/cameras/list"
	openCameraSrv     = "/cameras/open"
	closeCameraSrv    = "/cameras/close"
	defaultStateWait  = 5 * time.Second
	realRobotProbeFor = time.Second
)

func jointCommandTopic(side Side) string {
	return fmt.Sprintf("/robot/limb/%s/joint_command", side)
}

func speedRatioTopic(side Side) string {
	return fmt.Sprintf("/robot/limb/%s/set_speed_ratio", side)
}

func gripperTopic(side Side, leaf string) string {
	return fmt.Sprintf("/robot/end_effector/%s_gripper/%s", side, leaf)
}

// Robot bundles the node used to reach a Baxter and hands out its interfaces.
type Robot struct {
	node     *goroslib.Node
	nodeName string
	logger   logging.Logger
}

// New returns a Robot reached through node. nodeName is used as the sender of
// end effector commands.
func New(node *goroslib.Node, nodeName string, logger logging.Logger) *Robot {
	return &Robot{node: node, nodeName: nodeName, logger: logger}
}

// IsReal reports whether a physical robot answers on the master. The camera
// service only exists on hardware, so its absence means a simulator.
func (r *Robot) IsReal(ctx context.Context) (bool, error) {
	err := ros.WaitForService(ctx, r.node, listCamerasSrv, realRobotProbeFor)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ros.ErrServiceTimeout) {
		return false, nil
	}
	return false, err
}

// WaitForSimulator blocks until the simulator announces it has started.
func (r *Robot) WaitForSimulator(ctx context.Context) error {
	_, err := ros.WaitForMessage[std_msgs.Empty](ctx, r.node, simStartedTopic)
	return err
}

// ErrTimeout is wrapped by every operation that gives up waiting on the robot.
var ErrTimeout = errors.New("timed out")

type waitSpec struct {
	timeout time.Duration
	rate    float64
	test    func() bool
	body    func()
	msg     string
}

// waitFor evaluates test, then body, at rate Hz until test passes or timeout
// elapses. A zero timeout waits forever.
func waitFor(ctx context.Context, w waitSpec) error {
	rate := w.rate
	if rate <= 0 {
		rate = 100
	}
	ticker := time.NewTicker(time.Duration(float64(time.Second) / rate))
	defer ticker.Stop()

	deadline := time.Now().Add(w.timeout)
	for {
		if w.test() {
			return nil
		}
		if w.timeout > 0 && time.Now().After(deadline) {
			return errors.Wrap(ErrTimeout, w.msg)
		}
		if w.body != nil {
			w.body()
		}
		if !utils.SelectContextOrWaitChan(ctx, ticker.C) {
			return ctx.Err()
		}
	}
}
