package ros

import (
	"github.com/bluenviron/goroslib/v2"
	"go.viam.com/rdk/logging"
	"go.viam.com/test"
	"testing"
)

func TestNormalizeMasterAddress(t *testing.T) {
	for _, tc := range []struct {
		in       string
		expected string
	}{
		{"", DefaultMasterAddress},
		{"   ", DefaultMasterAddress},
		{"http://baxter.local:11311", "baxter.local:11311"},
		{"http://011502P0001.local:11311/", "011502P0001.local:11311"},
		{"10.0.0.2:11311", "10.0.0.2:11311"},
	} {
		test.That(t, NormalizeMasterAddress(tc.in), test.ShouldEqual, tc.expected)
	}
}

func TestMasterAddressFromEnv(t *testing.T) {
	t.Setenv("ROS_MASTER_URI", "http://baxter:11311")
	test.That(t, MasterAddressFromEnv(), test.ShouldEqual, "baxter:11311")

	t.Setenv("ROS_MASTER_URI", "")
	test.That(t, MasterAddressFromEnv(), test.ShouldEqual, DefaultMasterAddress)
}

func TestNewNodeValidation(t *testing.T) {
	logger := logging.NewTestLogger(t)

	_, err := NewNode(NodeConf{Name: "goto_initpose"}, logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "master address")

	_, err = NewNode(NodeConf{MasterAddress: DefaultMasterAddress}, logger)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "node name")
}

func TestLogLevelMapping(t *testing.T) {
	test.That(t, goroslibLogLevel(logging.DEBUG), test.ShouldEqual, goroslib.LogLevelDebug)
	test.That(t, goroslibLogLevel(logging.INFO), test.ShouldEqual, goroslib.LogLevelInfo)
	test.That(t, goroslibLogLevel(logging.WARN), test.ShouldEqual, goroslib.LogLevelWarn)
	test.That(t, goroslibLogLevel(logging.ERROR), test.ShouldEqual, goroslib.LogLevelError)
}
