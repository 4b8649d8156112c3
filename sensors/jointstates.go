// Package sensors exposes Baxter's ROS state topics as viam sensors.
package sensors

import (
	"context"
	"errors"
	"github.com/bluenviron/goroslib/v2"
	"github.com/bluenviron/goroslib/v2/pkg/msgs/sensor_msgs"
	"github.com/brokenrobotz/baxter-ros/viamrosnode"
	"go.viam.com/rdk/components/sensor"
	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/resource"
	"sync"
)

var JointStatesModel = resource.NewModel("brokenrobotz", "baxter", "joint-states")

type JointStatesSensor struct {
	resource.Named

	mu         sync.Mutex
	subscriber *goroslib.Subscriber
	msg        *sensor_msgs.JointState
	logger     logging.Logger
}

func init() {
	resource.RegisterComponent(
		sensor.API,
		JointStatesModel,
		resource.Registration[sensor.Sensor, *TopicSensorConfig]{
			Constructor: NewJointStatesSensor,
		},
	)
}

func NewJointStatesSensor(
	ctx context.Context,
	deps resource.Dependencies,
	conf resource.Config,
	logger logging.Logger,
) (sensor.Sensor, error) {
	j := &JointStatesSensor{
		Named:  conf.ResourceName().AsNamed(),
		logger: logger,
	}

	if err := j.Reconfigure(ctx, deps, conf); err != nil {
		return nil, err
	}

	return j, nil
}

func (j *JointStatesSensor) Reconfigure(
	_ context.Context,
	_ resource.Dependencies,
	conf resource.Config,
) error {
	cfg, err := resource.NativeConfig[*TopicSensorConfig](conf)
	if err != nil {
		return err
	}

	// the callback takes mu, so the old subscriber is closed without holding it
	j.mu.Lock()
	old := j.subscriber
	j.subscriber = nil
	j.msg = nil
	j.mu.Unlock()
	if old != nil {
		old.Close()
	}

	node, err := viamrosnode.GetInstance(cfg.PrimaryUri)
	if err != nil {
		return err
	}

	sub, err := goroslib.NewSubscriber(goroslib.SubscriberConf{
		Node:     node,
		Topic:    cfg.TopicOr(defaultJointStatesTopic),
		Callback: j.processMessage,
	})
	if err != nil {
		return err
	}

	j.mu.Lock()
	j.subscriber = sub
	j.mu.Unlock()
	return nil
}

func (j *JointStatesSensor) processMessage(msg *sensor_msgs.JointState) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.msg = msg
}

// Readings reports position, velocity and effort keyed by joint name.
func (j *JointStatesSensor) Readings(
	_ context.Context,
	_ map[string]interface{},
) (map[string]interface{}, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.msg == nil {
		return nil, errors.New("joint states message not prepared")
	}
	return jointStateReadings(j.msg), nil
}

func jointStateReadings(msg *sensor_msgs.JointState) map[string]interface{} {
	at := func(values []float64, i int) float64 {
		if i < len(values) {
			return values[i]
		}
		return 0
	}
	readings := make(map[string]interface{}, len(msg.Name))
	for i, name := range msg.Name {
		readings[name] = map[string]interface{}{
			"position": at(msg.Position, i),
			"velocity": at(msg.Velocity, i),
			"effort":   at(msg.Effort, i),
		}
	}
	return readings
}

func (j *JointStatesSensor) Close(_ context.Context) error {
	j.mu.Lock()
	sub := j.subscriber
	j.subscriber = nil
	j.mu.Unlock()
	if sub != nil {
		sub.Close()
	}
	return nil
}
