// Package viamrosnode hands out one ROS node per master so that every viam
// component in the module process shares a single registration.
package viamrosnode

import (
	"github.com/bluenviron/goroslib/v2"
	"github.com/brokenrobotz/baxter-ros/ros"
	"github.com/pkg/errors"
	"go.viam.com/rdk/logging"
	"strings"
	"sync"
)

const nodeName = "viam_baxter"

var (
	mu     sync.Mutex
	nodes  = map[string]*goroslib.Node{}
	logger = logging.NewLogger("viamrosnode")
)

// GetInstance returns the node registered with the master at primaryURI,
// creating it on first use.
func GetInstance(primaryURI string) (*goroslib.Node, error) {
	if strings.TrimSpace(primaryURI) == "" {
		return nil, errors.New("ROS primary uri must be set to hostname:port")
	}
	addr := ros.NormalizeMasterAddress(primaryURI)

	mu.Lock()
	defer mu.Unlock()
	if n, ok := nodes[addr]; ok {
		return n, nil
	}

	n, err := ros.NewNode(ros.NodeConf{
		MasterAddress: addr,
		Name:          nodeName,
		LogLevel:      logging.INFO,
	}, logger)
	if err != nil {
		return nil, err
	}
	nodes[addr] = n
	return n, nil
}

// Shutdown closes every node handed out by GetInstance.
func Shutdown() {
	mu.Lock()
	defer mu.Unlock()
	for addr, n := range nodes {
		n.Close()
		delete(nodes, addr)
	}
}
