package sensors

import (
	"fmt"
	"strings"
)

const (
	defaultJointStatesTopic   = "/robot/joint_states"
	defaultAssemblyStateTopic = "/robot/state"
	defaultDiagnosticsTopic   = "/diagnostics"
)

// TopicSensorConfig is shared by every sensor that mirrors one ROS topic.
type TopicSensorConfig struct {
	PrimaryUri string `json:"primary_uri"`
	Topic      string `json:"topic,omitempty"`
}

func (cfg *TopicSensorConfig) Validate(path string) ([]string, error) {
	// Topic falls back to the model's default when empty
	if strings.TrimSpace(cfg.PrimaryUri) == "" {
		return nil, fmt.Errorf(`expected "primary_uri" attribute for sensor %q`, path)
	}
	return nil, nil
}

// TopicOr returns the configured topic, or fallback when none is set.
func (cfg *TopicSensorConfig) TopicOr(fallback string) string {
	if strings.TrimSpace(cfg.Topic) == "" {
		return fallback
	}
	return cfg.Topic
}
