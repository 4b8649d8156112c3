// Package ros wraps goroslib node setup and the small set of blocking helpers
// the Baxter tooling needs on top of it.
package ros

import (
	"github.com/bluenviron/goroslib/v2"
	"github.com/pkg/errors"
	"go.viam.com/rdk/logging"
	"os"
	"strings"
	"time"
)

// DefaultMasterAddress is used when neither a flag nor ROS_MASTER_URI names a master.
const DefaultMasterAddress = "localhost:11311"

type NodeConf struct {
	MasterAddress string
	Namespace     string
	Name          string
	Host          string
	LogLevel      logging.Level
	ReadTimeout   time.Duration
	WriteTimeout  time.Duration
}

// MasterAddressFromEnv returns ROS_MASTER_URI as host:port, or DefaultMasterAddress.
func MasterAddressFromEnv() string {
	return NormalizeMasterAddress(os.Getenv("ROS_MASTER_URI"))
}

// NormalizeMasterAddress strips the scheme and trailing slash from a master URI.
func NormalizeMasterAddress(uri string) string {
	uri = strings.TrimSpace(uri)
	if uri == "" {
		return DefaultMasterAddress
	}
	uri = strings.TrimPrefix(uri, "http://")
	uri = strings.TrimPrefix(uri, "https://")
	return strings.TrimSuffix(uri, "/")
}

func (c NodeConf) validate() error {
	if strings.TrimSpace(c.MasterAddress) == "" {
		return errors.New("ROS master address must be set to hostname:port")
	}
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("ROS node name must be set")
	}
	return nil
}

func goroslibLogLevel(level logging.Level) goroslib.LogLevel {
	switch level {
	case logging.DEBUG:
		return goroslib.LogLevelDebug
	case logging.WARN:
		return goroslib.LogLevelWarn
	case logging.ERROR:
		return goroslib.LogLevelError
	default:
		return goroslib.LogLevelInfo
	}
}

// NewNode registers a node with the ROS master.
func NewNode(conf NodeConf, logger logging.Logger) (*goroslib.Node, error) {
	if err := conf.validate(); err != nil {
		return nil, err
	}

	logger.Debugw("connecting to ROS master", "master", conf.MasterAddress, "node", conf.Name)
	node, err := goroslib.NewNode(goroslib.NodeConf{
		Namespace:     conf.Namespace,
		Name:          conf.Name,
		MasterAddress: conf.MasterAddress,
		Host:          conf.Host,
		LogLevel:      goroslibLogLevel(conf.LogLevel),
		ReadTimeout:   conf.ReadTimeout,
		WriteTimeout:  conf.WriteTimeout,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to register node %q with master %s", conf.Name, conf.MasterAddress)
	}
	return node, nil
}
