package sensors

import (
	"context"
	"errors"
	"github.com/bluenviron/goroslib/v2"
	"github.com/bluenviron/goroslib/v2/pkg/msgs/diagnostic_msgs"
	"github.com/brokenrobotz/baxter-ros/viamrosnode"
	"go.viam.com/rdk/components/sensor"
	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/resource"
	"sync"
)

var DiagnosticsModel = resource.NewModel("brokenrobotz", "baxter", "diagnostics")

type DiagnosticsSensor struct {
	resource.Named

	mu         sync.Mutex
	subscriber *goroslib.Subscriber
	msg        *diagnostic_msgs.DiagnosticArray
	logger     logging.Logger
}

func init() {
	resource.RegisterComponent(
		sensor.API,
		DiagnosticsModel,
		resource.Registration[sensor.Sensor, *TopicSensorConfig]{
			Constructor: NewDiagnosticsSensor,
		},
	)
}

func NewDiagnosticsSensor(
	ctx context.Context,
	deps resource.Dependencies,
	conf resource.Config,
	logger logging.Logger,
) (sensor.Sensor, error) {
	d := &DiagnosticsSensor{
		Named:  conf.ResourceName().AsNamed(),
		logger: logger,
	}

	if err := d.Reconfigure(ctx, deps, conf); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *DiagnosticsSensor) Reconfigure(
	_ context.Context,
	_ resource.Dependencies,
	conf resource.Config,
) error {
	cfg, err := resource.NativeConfig[*TopicSensorConfig](conf)
	if err != nil {
		return err
	}

	// the callback takes mu, so the old subscriber is closed without holding it
	d.mu.Lock()
	old := d.subscriber
	d.subscriber = nil
	d.msg = nil
	d.mu.Unlock()
	if old != nil {
		old.Close()
	}

	node, err := viamrosnode.GetInstance(cfg.PrimaryUri)
	if err != nil {
		return err
	}

	sub, err := goroslib.NewSubscriber(goroslib.SubscriberConf{
		Node:     node,
		Topic:    cfg.TopicOr(defaultDiagnosticsTopic),
		Callback: d.processMessage,
	})
	if err != nil {
		return err
	}

	d.mu.Lock()
	d.subscriber = sub
	d.mu.Unlock()
	return nil
}

func (d *DiagnosticsSensor) processMessage(msg *diagnostic_msgs.DiagnosticArray) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.msg = msg
}

// Readings reports each diagnostic status level and message keyed by status name.
func (d *DiagnosticsSensor) Readings(
	_ context.Context,
	_ map[string]interface{},
) (map[string]interface{}, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.msg == nil {
		return nil, errors.New("diagnostics message not prepared")
	}
	return diagnosticReadings(d.msg), nil
}

func diagnosticReadings(msg *diagnostic_msgs.DiagnosticArray) map[string]interface{} {
	readings := make(map[string]interface{}, len(msg.Status))
	for _, status := range msg.Status {
		values := make(map[string]interface{}, len(status.Values))
		for _, kv := range status.Values {
			values[kv.Key] = kv.Value
		}
		readings[status.Name] = map[string]interface{}{
			"level":       int(status.Level),
			"message":     status.Message,
			"hardware_id": status.HardwareId,
			"values":      values,
		}
	}
	return readings
}

func (d *DiagnosticsSensor) Close(_ context.Context) error {
	d.mu.Lock()
	sub := d.subscriber
	d.subscriber = nil
	d.mu.Unlock()
	if sub != nil {
		sub.Close()
	}
	return nil
}
