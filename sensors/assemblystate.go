package sensors

import (
	"context"
	"errors"
	"github.com/bluenviron/goroslib/v2"
	"github.com/brokenrobotz/baxter-ros/pkg/msgs/baxter_core_msgs"
	"github.com/brokenrobotz/baxter-ros/viamrosnode"
	"go.viam.com/rdk/components/sensor"
	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/resource"
	"sync"
)

var AssemblyStateModel = resource.NewModel("brokenrobotz", "baxter", "assembly-state")

type AssemblyStateSensor struct {
	resource.Named

	mu         sync.Mutex
	subscriber *goroslib.Subscriber
	msg        *baxter_core_msgs.AssemblyState
	logger     logging.Logger
}

func init() {
	resource.RegisterComponent(
		sensor.API,
		AssemblyStateModel,
		resource.Registration[sensor.Sensor, *TopicSensorConfig]{
			Constructor: NewAssemblyStateSensor,
		},
	)
}

func NewAssemblyStateSensor(
	ctx context.Context,
	deps resource.Dependencies,
	conf resource.Config,
	logger logging.Logger,
) (sensor.Sensor, error) {
	a := &AssemblyStateSensor{
		Named:  conf.ResourceName().AsNamed(),
		logger: logger,
	}

	if err := a.Reconfigure(ctx, deps, conf); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *AssemblyStateSensor) Reconfigure(
	_ context.Context,
	_ resource.Dependencies,
	conf resource.Config,
) error {
	cfg, err := resource.NativeConfig[*TopicSensorConfig](conf)
	if err != nil {
		return err
	}

	// the callback takes mu, so the old subscriber is closed without holding it
	a.mu.Lock()
	old := a.subscriber
	a.subscriber = nil
	a.msg = nil
	a.mu.Unlock()
	if old != nil {
		old.Close()
	}

	node, err := viamrosnode.GetInstance(cfg.PrimaryUri)
	if err != nil {
		return err
	}

	sub, err := goroslib.NewSubscriber(goroslib.SubscriberConf{
		Node:     node,
		Topic:    cfg.TopicOr(defaultAssemblyStateTopic),
		Callback: a.processMessage,
	})
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.subscriber = sub
	a.mu.Unlock()
	return nil
}

func (a *AssemblyStateSensor) processMessage(msg *baxter_core_msgs.AssemblyState) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.msg = msg
}

func (a *AssemblyStateSensor) Readings(
	_ context.Context,
	_ map[string]interface{},
) (map[string]interface{}, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.msg == nil {
		return nil, errors.New("robot state message not prepared")
	}
	return map[string]interface{}{
		"ready":        a.msg.Ready,
		"enabled":      a.msg.Enabled,
		"stopped":      a.msg.Stopped,
		"error":        a.msg.Error,
		"estop_button": int(a.msg.EstopButton),
		"estop_source": int(a.msg.EstopSource),
	}, nil
}

func (a *AssemblyStateSensor) Close(_ context.Context) error {
	a.mu.Lock()
	sub := a.subscriber
	a.subscriber = nil
	a.mu.Unlock()
	if sub != nil {
		sub.Close()
	}
	return nil
}
