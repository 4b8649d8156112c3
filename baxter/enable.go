package baxter

import (
	"context"
	"github.com/bluenviron/goroslib/v2"
	"github.com/bluenviron/goroslib/v2/pkg/msgs/std_msgs"
	"github.com/brokenrobotz/baxter-ros/pkg/msgs/baxter_core_msgs"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/rdk/logging"
	"sync"
	"time"
)

const (
	enableTimeout  = 2 * time.Second
	disableTimeout = 5 * time.Second
	resetTimeout   = 3 * time.Second
	stopTimeout    = 3 * time.Second
)

// ErrEStopEngaged is returned by Reset and Enable while the e-stop button is pressed.
var ErrEStopEngaged = errors.New("E-Stop is ASSERTED, disengage E-Stop and then reset the robot")

// RobotEnable controls the robot's enabled state.
type RobotEnable struct {
	mu     sync.Mutex
	state  *baxter_core_msgs.AssemblyState
	sub    *goroslib.Subscriber
	enable *goroslib.Publisher
	reset  *goroslib.Publisher
	stop   *goroslib.Publisher
	logger logging.Logger
}

// Enabler subscribes to the robot state. When checkVersion is set the robot's
// software version must match the SDK.
func (r *Robot) Enabler(ctx context.Context, checkVersion bool) (*RobotEnable, error) {
	e := &RobotEnable{logger: r.logger.Sublogger("enable")}

	var err error
	if e.sub, err = goroslib.NewSubscriber(goroslib.SubscriberConf{
		Node:     r.node,
		Topic:    robotStateTopic,
		Callback: e.onState,
	}); err != nil {
		return nil, errors.Wrapf(err, "unable to subscribe to %s", robotStateTopic)
	}
	if e.enable, err = goroslib.NewPublisher(goroslib.PublisherConf{
		Node:  r.node,
		Topic: superEnableTopic,
		Msg:   &std_msgs.Bool{},
	}); err != nil {
		return nil, multierr.Combine(err, e.Close())
	}
	if e.reset, err = goroslib.NewPublisher(goroslib.PublisherConf{
		Node:  r.node,
		Topic: superResetTopic,
		Msg:   &std_msgs.Empty{},
	}); err != nil {
		return nil, multierr.Combine(err, e.Close())
	}
	if e.stop, err = goroslib.NewPublisher(goroslib.PublisherConf{
		Node:  r.node,
		Topic: superStopTopic,
		Msg:   &std_msgs.Empty{},
	}); err != nil {
		return nil, multierr.Combine(err, e.Close())
	}

	if err := waitFor(ctx, waitSpec{
		timeout: enableTimeout,
		test:    func() bool { _, ok := e.State(); return ok },
		msg:     "failed to get robot state on " + robotStateTopic,
	}); err != nil {
		return nil, multierr.Combine(err, e.Close())
	}

	if checkVersion {
		if err := r.CheckVersion(); err != nil {
			return nil, multierr.Combine(err, e.Close())
		}
	}
	return e, nil
}

func (e *RobotEnable) onState(msg *baxter_core_msgs.AssemblyState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = msg
}

// State returns the last assembly state, if one has arrived.
func (e *RobotEnable) State() (baxter_core_msgs.AssemblyState, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == nil {
		return baxter_core_msgs.AssemblyState{}, false
	}
	return *e.state, true
}

// Enable resets a stopped robot, then enables it.
func (e *RobotEnable) Enable(ctx context.Context) error {
	if s, _ := e.State(); s.Stopped {
		e.logger.Info("robot stopped: attempting reset...")
		if err := e.Reset(ctx); err != nil {
			return err
		}
	}
	return e.toggle(ctx, true)
}

// Disable disables the robot.
func (e *RobotEnable) Disable(ctx context.Context) error {
	return e.toggle(ctx, false)
}

func (e *RobotEnable) toggle(ctx context.Context, status bool) error {
	timeout, verb := enableTimeout, "enable"
	if !status {
		timeout, verb = disableTimeout, "disable"
	}
	e.logger.Debugf("requesting robot %s", verb)
	return waitFor(ctx, waitSpec{
		timeout: timeout,
		test:    func() bool { s, _ := e.State(); return s.Enabled == status },
		body:    func() { e.enable.Write(&std_msgs.Bool{Data: status}) },
		msg:     "failed to " + verb + " robot",
	})
}

func isReset(s baxter_core_msgs.AssemblyState) bool {
	return !s.Enabled && !s.Stopped && !s.Error &&
		s.EstopButton == baxter_core_msgs.AssemblyState_ESTOP_BUTTON_UNPRESSED &&
		s.EstopSource == baxter_core_msgs.AssemblyState_ESTOP_SOURCE_NONE
}

// Reset clears a stopped state. A non-fatal error that persists after the
// reset is logged and leaves the robot enableable.
func (e *RobotEnable) Reset(ctx context.Context) error {
	s, _ := e.State()
	if s.Stopped && s.EstopButton == baxter_core_msgs.AssemblyState_ESTOP_BUTTON_PRESSED {
		return ErrEStopEngaged
	}

	e.logger.Info("resetting robot...")
	err := waitFor(ctx, waitSpec{
		timeout: resetTimeout,
		test:    func() bool { s, _ := e.State(); return isReset(s) },
		body:    func() { e.reset.Write(&std_msgs.Empty{}) },
		msg:     "failed to reset robot, verify ROS_IP or ROS_HOSTNAME is set and resolvable",
	})
	if errors.Is(err, ErrTimeout) {
		if s, _ := e.State(); s.Error && !s.Stopped {
			e.logger.Warn("non-fatal robot error on reset, robot can be enabled but the error persists")
			return nil
		}
	}
	return err
}

// Stop triggers a robot stop, equivalent to the e-stop.
func (e *RobotEnable) Stop(ctx context.Context) error {
	return waitFor(ctx, waitSpec{
		timeout: stopTimeout,
		test:    func() bool { s, _ := e.State(); return s.Stopped },
		body:    func() { e.stop.Write(&std_msgs.Empty{}) },
		msg:     "failed to stop the robot",
	})
}

// Close releases the subscriber and publishers.
func (e *RobotEnable) Close() error {
	if e.sub != nil {
		e.sub.Close()
	}
	for _, p := range []*goroslib.Publisher{e.enable, e.reset, e.stop} {
		if p != nil {
			p.Close()
		}
	}
	return nil
}
