package baxter

import (
	"context"
	"fmt"
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
	// HeadPanAngleTolerance is how close, in radians, the head must get to a pan target.
	HeadPanAngleTolerance = 0.1396263401

	defaultPanTimeout = 10 * time.Second
)

// PanOptions tunes SetPan. A nil Speed means full speed.
type PanOptions struct {
	Speed   *float64
	Timeout time.Duration
}

// Head pans the display.
type Head struct {
	mu    sync.Mutex
	state *baxter_core_msgs.HeadState

	sub    *goroslib.Subscriber
	pub    *goroslib.Publisher
	logger logging.Logger
}

// Head subscribes to the head state and waits for the first message.
func (r *Robot) Head(ctx context.Context) (*Head, error) {
	h := &Head{logger: r.logger.Sublogger("head")}

	var err error
	if h.sub, err = goroslib.NewSubscriber(goroslib.SubscriberConf{
		Node:     r.node,
		Topic:    headStateTopic,
		Callback: h.onState,
	}); err != nil {
		return nil, errors.Wrapf(err, "unable to subscribe to %s", headStateTopic)
	}
	if h.pub, err = goroslib.NewPublisher(goroslib.PublisherConf{
		Node:  r.node,
		Topic: headPanTopic,
		Msg:   &baxter_core_msgs.HeadPanCommand{},
	}); err != nil {
		return nil, multierr.Combine(err, h.Close())
	}

	if err := waitFor(ctx, waitSpec{
		timeout: defaultStateWait,
		test:    func() bool { _, ok := h.currentState(); return ok },
		msg:     "failed to get head state from " + headStateTopic,
	}); err != nil {
		return nil, multierr.Combine(err, h.Close())
	}
	return h, nil
}

func (h *Head) onState(msg *baxter_core_msgs.HeadState) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = msg
}

func (h *Head) currentState() (baxter_core_msgs.HeadState, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.state == nil {
		return baxter_core_msgs.HeadState{}, false
	}
	return *h.state, true
}

// Pan returns the current pan angle in radians.
func (h *Head) Pan() float64 {
	s, _ := h.currentState()
	return float64(s.Pan)
}

func panCommand(angle float64, speedRatio *float64) (*baxter_core_msgs.HeadPanCommand, error) {
	speed := 1.0
	if speedRatio != nil {
		speed = *speedRatio
	}
	if speed < 0 || speed > 1 {
		return nil, errors.Errorf("pan speed ratio %v outside [0, 1]", speed)
	}
	return &baxter_core_msgs.HeadPanCommand{
		Target:           float32(angle),
		SpeedRatio:       float32(speed),
		EnablePanRequest: baxter_core_msgs.HeadPanCommand_REQUEST_PAN_ENABLE,
	}, nil
}

// SetPan pans the head to angle and waits until it is within HeadPanAngleTolerance.
func (h *Head) SetPan(ctx context.Context, angle float64, opts PanOptions) error {
	msg, err := panCommand(angle, opts.Speed)
	if err != nil {
		return err
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultPanTimeout
	}
	return waitFor(ctx, waitSpec{
		timeout: timeout,
		test:    func() bool { return math.Abs(h.Pan()-angle) <= HeadPanAngleTolerance },
		body:    func() { h.pub.Write(msg) },
		msg:     fmt.Sprintf("failed to move head to pan command %f", angle),
	})
}

// Close releases the subscriber and publisher.
func (h *Head) Close() error {
	if h.sub != nil {
		h.sub.Close()
	}
	if h.pub != nil {
		h.pub.Close()
	}
	return nil
}
