package baxter

import (
	"context"
	"encoding/json"
	"github.com/bluenviron/goroslib/v2"
	"github.com/brokenrobotz/baxter-ros/pkg/msgs/baxter_core_msgs"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/rdk/logging"
	"math"
	"sync"
	"time"
)

const (
	// GripperMinPosition is fully closed, GripperMaxPosition fully open.
	GripperMinPosition = 0.0
	GripperMaxPosition = 100.0

	gripperDeadZone       = 5.0
	defaultGripperTimeout = 5 * time.Second
)

// ErrNotCalibrated is returned when commanding a gripper that has not been calibrated.
var ErrNotCalibrated = errors.New("gripper not calibrated")

// Gripper commands an electric parallel gripper.
type Gripper struct {
	side   Side
	sender string

	mu    sync.Mutex
	state *baxter_core_msgs.EndEffectorState
	seq   uint32

	sub    *goroslib.Subscriber
	pub    *goroslib.Publisher
	logger logging.Logger
}

// Gripper subscribes to the gripper state on side and waits for the first message.
func (r *Robot) Gripper(ctx context.Context, side Side) (*Gripper, error) {
	if err := side.Validate(); err != nil {
		return nil, err
	}
	g := &Gripper{
		side:   side,
		sender: "/" + r.nodeName,
		logger: r.logger.Sublogger(string(side) + "_gripper"),
	}

	var err error
	if g.sub, err = goroslib.NewSubscriber(goroslib.SubscriberConf{
		Node:     r.node,
		Topic:    gripperTopic(side, "state"),
		Callback: g.onState,
	}); err != nil {
		return nil, errors.Wrapf(err, "unable to subscribe to %s", gripperTopic(side, "state"))
	}
	if g.pub, err = goroslib.NewPublisher(goroslib.PublisherConf{
		Node:  r.node,
		Topic: gripperTopic(side, "command"),
		Msg:   &baxter_core_msgs.EndEffectorCommand{},
	}); err != nil {
		return nil, multierr.Combine(err, g.Close())
	}

	if err := waitFor(ctx, waitSpec{
		timeout: defaultStateWait,
		test:    func() bool { _, ok := g.State(); return ok },
		msg:     "failed to get gripper state on " + gripperTopic(side, "state"),
	}); err != nil {
		return nil, multierr.Combine(err, g.Close())
	}
	return g, nil
}

func (g *Gripper) onState(msg *baxter_core_msgs.EndEffectorState) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = msg
}

// State returns the last gripper state, if one has arrived.
func (g *Gripper) State() (baxter_core_msgs.EndEffectorState, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state == nil {
		return baxter_core_msgs.EndEffectorState{}, false
	}
	return *g.state, true
}

func (g *Gripper) newCommand(command string, args map[string]interface{}) (*baxter_core_msgs.EndEffectorCommand, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	cmd := &baxter_core_msgs.EndEffectorCommand{
		Command: command,
		Sender:  g.sender + "_" + command,
	}
	if g.state != nil {
		cmd.Id = g.state.Id
	}
	g.seq = g.seq%0x7FFFFFFF + 1
	cmd.Sequence = g.seq

	if args != nil {
		raw, err := json.Marshal(args)
		if err != nil {
			return nil, errors.Wrapf(err, "encoding %s arguments", command)
		}
		cmd.Args = string(raw)
	}
	return cmd, nil
}

func clipPosition(position float64) float64 {
	if position < GripperMinPosition {
		return GripperMinPosition
	}
	if position > GripperMaxPosition {
		return GripperMaxPosition
	}
	return position
}

// CommandPosition moves the fingers to position (0 closed, 100 open). When
// block is set it waits for the motion to finish or the gripper to grip.
func (g *Gripper) CommandPosition(ctx context.Context, position float64, block bool) error {
	state, _ := g.State()
	if state.Calibrated != baxter_core_msgs.EndEffectorState_STATE_TRUE {
		return errors.Wrapf(ErrNotCalibrated, "unable to command %s gripper position", g.side)
	}

	position = clipPosition(position)
	cmd, err := g.newCommand(baxter_core_msgs.EndEffectorCommand_CMD_GO, map[string]interface{}{"position": position})
	if err != nil {
		return err
	}
	g.logger.Debugw("commanding gripper", "position", position, "sequence", cmd.Sequence)
	g.pub.Write(cmd)
	if !block {
		return nil
	}

	return waitFor(ctx, waitSpec{
		timeout: defaultGripperTimeout,
		test: func() bool {
			s, _ := g.State()
			settled := s.Moving != baxter_core_msgs.EndEffectorState_STATE_TRUE
			reached := math.Abs(float64(s.Position)-position) < gripperDeadZone
			gripping := s.Gripping == baxter_core_msgs.EndEffectorState_STATE_TRUE
			return settled && (reached || gripping)
		},
		msg: string(g.side) + " gripper failed to reach commanded position",
	})
}

// CloseFingers shuts the fingers.
func (g *Gripper) CloseFingers(ctx context.Context, block bool) error {
	return g.CommandPosition(ctx, GripperMinPosition, block)
}

// OpenFingers opens the fingers fully.
func (g *Gripper) OpenFingers(ctx context.Context, block bool) error {
	return g.CommandPosition(ctx, GripperMaxPosition, block)
}

// Calibrate asks the gripper to run its calibration routine.
func (g *Gripper) Calibrate(ctx context.Context) error {
	cmd, err := g.newCommand(baxter_core_msgs.EndEffectorCommand_CMD_CALIBRATE, nil)
	if err != nil {
		return err
	}
	g.pub.Write(cmd)
	return waitFor(ctx, waitSpec{
		timeout: defaultGripperTimeout,
		test: func() bool {
			s, _ := g.State()
			return s.Calibrated == baxter_core_msgs.EndEffectorState_STATE_TRUE
		},
		msg: string(g.side) + " gripper failed to calibrate",
	})
}

// Close releases the subscriber and publisher.
func (g *Gripper) Close() error {
	if g.sub != nil {
		g.sub.Close()
	}
	if g.pub != nil {
		g.pub.Close()
	}
	return nil
}
