package baxter

import (
	"context"
	"github.com/bluenviron/goroslib/v2"
	"github.com/bluenviron/goroslib/v2/pkg/msgs/sensor_msgs"
	"github.com/bluenviron/goroslib/v2/pkg/msgs/std_msgs"
	"github.com/brokenrobotz/baxter-ros/pkg/msgs/baxter_core_msgs"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/rdk/logging"
	"math"
	"sort"
	"sync"
	"time"
)

const (
	// JointAngleTolerance is how close, in radians, a joint must get to its target.
	JointAngleTolerance = 0.008726646
	// DefaultMoveTimeout bounds MoveToJointPositions.
	DefaultMoveTimeout = 15 * time.Second

	commandRate = 100.0

	// first order filter, 0.2 Hz cutoff at commandRate
	filterGain  = 0.012488
	filterDecay = 0.98751
)

var jointSuffixes = []string{"s0", "s1", "e0", "e1", "w0", "w1", "w2"}

// JointNames returns the seven joints of an arm, shoulder to wrist.
func JointNames(side Side) []string {
	names := make([]string, len(jointSuffixes))
	for i, suffix := range jointSuffixes {
		names[i] = string(side) + "_" + suffix
	}
	return names
}

// MoveOptions tunes MoveToJointPositions. Zero values select the defaults.
type MoveOptions struct {
	Timeout   time.Duration
	Threshold float64
}

func (o MoveOptions) withDefaults() MoveOptions {
	if o.Timeout <= 0 {
		o.Timeout = DefaultMoveTimeout
	}
	if o.Threshold <= 0 {
		o.Threshold = JointAngleTolerance
	}
	return o
}

// Limb commands one arm in position mode.
type Limb struct {
	side   Side
	joints map[string]struct{}

	mu     sync.Mutex
	angles map[string]float64

	sub     *goroslib.Subscriber
	cmdPub  *goroslib.Publisher
	ratePub *goroslib.Publisher
	logger  logging.Logger
}

// Limb subscribes to joint states for one arm and waits for the first reading.
func (r *Robot) Limb(ctx context.Context, side Side) (*Limb, error) {
	if err := side.Validate(); err != nil {
		return nil, err
	}
	l := newLimb(side, r.logger.Sublogger(string(side)+"_limb"))

	var err error
	if l.sub, err = goroslib.NewSubscriber(goroslib.SubscriberConf{
		Node:     r.node,
		Topic:    jointStatesTopic,
		Callback: l.onJointStates,
	}); err != nil {
		return nil, errors.Wrapf(err, "unable to subscribe to %s", jointStatesTopic)
	}
	if l.cmdPub, err = goroslib.NewPublisher(goroslib.PublisherConf{
		Node:  r.node,
		Topic: jointCommandTopic(side),
		Msg:   &baxter_core_msgs.JointCommand{},
	}); err != nil {
		return nil, multierr.Combine(err, l.Close())
	}
	if l.ratePub, err = goroslib.NewPublisher(goroslib.PublisherConf{
		Node:  r.node,
		Topic: speedRatioTopic(side),
		Msg:   &std_msgs.Float64{},
		Latch: true,
	}); err != nil {
		return nil, multierr.Combine(err, l.Close())
	}

	if err := waitFor(ctx, waitSpec{
		timeout: defaultStateWait,
		test:    l.hasAllJoints,
		msg:     "failed to get current joint_states from " + jointStatesTopic,
	}); err != nil {
		return nil, multierr.Combine(err, l.Close())
	}
	return l, nil
}

func newLimb(side Side, logger logging.Logger) *Limb {
	joints := map[string]struct{}{}
	for _, name := range JointNames(side) {
		joints[name] = struct{}{}
	}
	return &Limb{
		side:   side,
		joints: joints,
		angles: map[string]float64{},
		logger: logger,
	}
}

func (l *Limb) onJointStates(msg *sensor_msgs.JointState) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, name := range msg.Name {
		if _, ok := l.joints[name]; !ok || i >= len(msg.Position) {
			continue
		}
		l.angles[name] = msg.Position[i]
	}
}

func (l *Limb) hasAllJoints() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.angles) == len(l.joints)
}

// Side returns which arm this is.
func (l *Limb) Side() Side {
	return l.side
}

// JointNames returns the arm's joints, shoulder to wrist.
func (l *Limb) JointNames() []string {
	return JointNames(l.side)
}

// JointAngles returns a copy of the latest measured angles.
func (l *Limb) JointAngles() map[string]float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make(map[string]float64, len(l.angles))
	for k, v := range l.angles {
		out[k] = v
	}
	return out
}

// SetJointPositionSpeed sets the controller's speed ratio, in [0, 1].
func (l *Limb) SetJointPositionSpeed(ratio float64) error {
	if ratio < 0 || ratio > 1 {
		return errors.Errorf("speed ratio %v outside [0, 1]", ratio)
	}
	l.ratePub.Write(&std_msgs.Float64{Data: ratio})
	return nil
}

// SetJointPositions sends one position-mode command.
func (l *Limb) SetJointPositions(positions map[string]float64) {
	l.cmdPub.Write(jointCommand(positions))
}

func jointCommand(positions map[string]float64) *baxter_core_msgs.JointCommand {
	names := make([]string, 0, len(positions))
	for name := range positions {
		names = append(names, name)
	}
	sort.Strings(names)
	command := make([]float64, len(names))
	for i, name := range names {
		command[i] = positions[name]
	}
	return &baxter_core_msgs.JointCommand{
		Mode:    baxter_core_msgs.JointCommand_POSITION_MODE,
		Names:   names,
		Command: command,
	}
}

// filterStep moves each targeted joint of cmd one filter step toward its target.
func filterStep(cmd, targets map[string]float64) {
	for joint, target := range targets {
		cmd[joint] = filterGain*target + filterDecay*cmd[joint]
	}
}

func withinThreshold(angles, targets map[string]float64, threshold float64) bool {
	for joint, target := range targets {
		angle, ok := angles[joint]
		if !ok {
			continue
		}
		if math.Abs(target-angle) >= threshold {
			return false
		}
	}
	return true
}

// MoveToJointPositions drives the arm toward positions through a low-pass
// filtered command stream until every joint is within the threshold. Running
// out of time is logged, not returned, since the arm stays where it got to.
func (l *Limb) MoveToJointPositions(ctx context.Context, positions map[string]float64, opts MoveOptions) error {
	for joint := range positions {
		if _, ok := l.joints[joint]; !ok {
			return errors.Errorf("joint %q does not belong to the %s limb", joint, l.side)
		}
	}
	opts = opts.withDefaults()

	cmd := l.JointAngles()
	step := func() {
		filterStep(cmd, positions)
		l.SetJointPositions(cmd)
	}
	step()

	err := waitFor(ctx, waitSpec{
		timeout: opts.Timeout,
		rate:    commandRate,
		test:    func() bool { return withinThreshold(l.JointAngles(), positions, opts.Threshold) },
		body:    step,
		msg:     string(l.side) + " limb failed to reach commanded joint positions",
	})
	if errors.Is(err, ErrTimeout) {
		l.logger.Warnw("move timed out", "error", err, "timeout", opts.Timeout)
		return nil
	}
	return err
}

// Close releases the subscriber and publishers.
func (l *Limb) Close() error {
	if l.sub != nil {
		l.sub.Close()
	}
	if l.cmdPub != nil {
		l.cmdPub.Close()
	}
	if l.ratePub != nil {
		l.ratePub.Close()
	}
	return nil
}
