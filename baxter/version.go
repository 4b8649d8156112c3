package baxter

import (
	"github.com/pkg/errors"
	"strings"
)

// SDKVersion is the Baxter SDK release these bindings follow.
const SDKVersion = "1.2.0"

const versionParam = "/rethink/software_version"

// robot software versions each SDK release can talk to.
var sdkToRobotVersions = map[string][]string{
	"1.2.0": {"1.2.0"},
}

// ErrVersionMismatch is returned when the robot runs software the SDK does not support.
var ErrVersionMismatch = errors.New("robot software version not supported by SDK")

// normalizeRobotVersion drops the build number from a version like 1.2.0.201506231418.
func normalizeRobotVersion(v string) string {
	v = strings.TrimSpace(v)
	if strings.Count(v, ".") > 2 {
		return v[:strings.LastIndex(v, ".")]
	}
	return v
}

func checkVersion(robotVersion string) error {
	rv := normalizeRobotVersion(robotVersion)
	for _, supported := range sdkToRobotVersions[SDKVersion] {
		if rv == supported {
			return nil
		}
	}
	return errors.Wrapf(ErrVersionMismatch, "robot %s, sdk %s", rv, SDKVersion)
}

// CheckVersion verifies the robot's software version against SDKVersion.
func (r *Robot) CheckVersion() error {
	robotVersion, err := r.node.ParamGetString(versionParam)
	if err != nil {
		return errors.Wrapf(err, "failed to retrieve robot version from %s, verify robot state and connectivity (i.e. ROS_MASTER_URI)", versionParam)
	}
	return checkVersion(robotVersion)
}
