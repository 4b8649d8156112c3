// Package gripper exposes the state of Baxter's electric grippers as a viam sensor.
package gripper

import (
	"context"
	"errors"
	"fmt"
	"github.com/bluenviron/goroslib/v2"
	"github.com/brokenrobotz/baxter-ros/pkg/msgs/baxter_core_msgs"
	"github.com/brokenrobotz/baxter-ros/viamrosnode"
	"go.viam.com/rdk/components/sensor"
	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/resource"
	"strings"
	"sync"
)

var StateModel = resource.NewModel("brokenrobotz", "baxter", "gripper-state")

type StateSensorConfig struct {
	PrimaryUri string `json:"primary_uri"`
	Side       string `json:"side"`
}

func (cfg *StateSensorConfig) Validate(path string) ([]string, error) {
	if strings.TrimSpace(cfg.PrimaryUri) == "" {
		return nil, fmt.Errorf(`expected "primary_uri" attribute for sensor %q`, path)
	}
	if cfg.Side != "left" && cfg.Side != "right" {
		return nil, fmt.Errorf(`expected "side" attribute to be "left" or "right" for sensor %q`, path)
	}
	return nil, nil
}

func (cfg *StateSensorConfig) topic() string {
	return fmt.Sprintf("/robot/end_effector/%s_gripper/state", cfg.Side)
}

type StateSensor struct {
	resource.Named

	mu         sync.Mutex
	subscriber *goroslib.Subscriber
	msg        *baxter_core_msgs.EndEffectorState
	logger     logging.Logger
}

func init() {
	resource.RegisterComponent(
		sensor.API,
		StateModel,
		resource.Registration[sensor.Sensor, *StateSensorConfig]{
			Constructor: NewStateSensor,
		},
	)
}

func NewStateSensor(
	ctx context.Context,
	deps resource.Dependencies,
	conf resource.Config,
	logger logging.Logger,
) (sensor.Sensor, error) {
	s := &StateSensor{
		Named:  conf.ResourceName().AsNamed(),
		logger: logger,
	}

	if err := s.Reconfigure(ctx, deps, conf); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *StateSensor) Reconfigure(
	_ context.Context,
	_ resource.Dependencies,
	conf resource.Config,
) error {
	cfg, err := resource.NativeConfig[*StateSensorConfig](conf)
	if err != nil {
		return err
	}

	s.mu.Lock()
	old := s.subscriber
	s.subscriber = nil
	s.msg = nil
	s.mu.Unlock()
	if old != nil {
		old.Close()
	}

	node, err := viamrosnode.GetInstance(cfg.PrimaryUri)
	if err != nil {
		return err
	}

	sub, err := goroslib.NewSubscriber(goroslib.SubscriberConf{
		Node:     node,
		Topic:    cfg.topic(),
		Callback: s.processMessage,
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.subscriber = sub
	s.mu.Unlock()
	return nil
}

func (s *StateSensor) processMessage(msg *baxter_core_msgs.EndEffectorState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msg = msg
}

func flag(v uint8) interface{} {
	switch v {
	case baxter_core_msgs.EndEffectorState_STATE_TRUE:
		return true
	case baxter_core_msgs.EndEffectorState_STATE_FALSE:
		return false
	default:
		return "unknown"
	}
}

func (s *StateSensor) Readings(
	_ context.Context,
	_ map[string]interface{},
) (map[string]interface{}, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.msg == nil {
		return nil, errors.New("gripper state message not prepared")
	}
	return stateReadings(s.msg), nil
}

func stateReadings(msg *baxter_core_msgs.EndEffectorState) map[string]interface{} {
	return map[string]interface{}{
		"id":         int(msg.Id),
		"enabled":    flag(msg.Enabled),
		"calibrated": flag(msg.Calibrated),
		"ready":      flag(msg.Ready),
		"moving":     flag(msg.Moving),
		"gripping":   flag(msg.Gripping),
		"missed":     flag(msg.Missed),
		"error":      flag(msg.Error),
		"position":   float64(msg.Position),
		"force":      float64(msg.Force),
		"state":      msg.State,
	}
}

func (s *StateSensor) Close(_ context.Context) error {
	s.mu.Lock()
	sub := s.subscriber
	s.subscriber = nil
	s.mu.Unlock()
	if sub != nil {
		sub.Close()
	}
	return nil
}
