// Package experiment runs a data-collection session: image republishers and a
// state recorder capture the robot while a babbling process explores its joint
// space.
package experiment

import (
	"github.com/brokenrobotz/baxter-ros/baxter"
	"github.com/pkg/errors"
	"os"
	"path/filepath"
	"strings"
)

// Config describes the nodes a session launches and what they record.
type Config struct {
	DataRoot         string
	RecordingRate    int
	CameraFPS        float64
	CameraResolution baxter.Resolution
	CameraTopics     []string
	JointStatesTopic string
	ImageTransport   string

	Launcher            string
	RepublishPackage    string
	RepublishExecutable string
	BabblerPackage      string
	BabblerExecutable   string
	RecorderPackage     string
	RecorderExecutable  string
}

// DefaultDataRoot is where sessions are written when no root is configured.
func DefaultDataRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "data"
	}
	return filepath.Join(home, "catkin_ws", "data")
}

// DefaultConfig records both the head and right hand cameras plus joint states.
func DefaultConfig() Config {
	return Config{
		DataRoot:         DefaultDataRoot(),
		RecordingRate:    10,
		CameraFPS:        50,
		CameraResolution: baxter.Resolution{Width: 320, Height: 200},
		CameraTopics: []string{
			"/cameras/head_camera/image",
			"/cameras/right_hand_camera/image",
		},
		JointStatesTopic: "/robot/joint_states",
		ImageTransport:   "compressed",

		Launcher:            "rosrun",
		RepublishPackage:    "image_transport",
		RepublishExecutable: "republish",
		BabblerPackage:      "ann4smc",
		BabblerExecutable:   "atomic_babbler.py",
		RecorderPackage:     "ann4smc",
		RecorderExecutable:  "record_state.py",
	}
}

// Validate checks that every node can be launched.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DataRoot) == "" {
		return errors.New("data root must be set")
	}
	if c.RecordingRate <= 0 {
		return errors.Errorf("recording rate must be positive, got %d", c.RecordingRate)
	}
	if c.CameraFPS <= 0 {
		return errors.Errorf("camera fps must be positive, got %v", c.CameraFPS)
	}
	if err := baxter.ValidateResolution(c.CameraResolution); err != nil {
		return err
	}
	for _, topic := range c.CameraTopics {
		if CameraName(topic) == "" {
			return errors.Errorf("cannot derive a camera name from topic %q", topic)
		}
	}
	if strings.TrimSpace(c.JointStatesTopic) == "" {
		return errors.New("joint states topic must be set")
	}
	for field, v := range map[string]string{
		"launcher":             c.Launcher,
		"republish package":    c.RepublishPackage,
		"republish executable": c.RepublishExecutable,
		"babbler package":      c.BabblerPackage,
		"babbler executable":   c.BabblerExecutable,
		"recorder package":     c.RecorderPackage,
		"recorder executable":  c.RecorderExecutable,
	} {
		if strings.TrimSpace(v) == "" {
			return errors.Errorf("%s must be set", field)
		}
	}
	return nil
}

// CameraName extracts the camera from a topic like /cameras/head_camera/image.
func CameraName(topic string) string {
	parts := strings.Split(strings.Trim(topic, "/"), "/")
	if len(parts) < 3 || parts[0] != "cameras" {
		return ""
	}
	return parts[1]
}
