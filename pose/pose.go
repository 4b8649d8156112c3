// Package pose holds the joint configuration the robot is sent to before an
// experiment session.
package pose

import (
	"github.com/pkg/errors"
	"sort"
)

// Initial maps every Baxter joint to its starting angle in radians.
var Initial = map[string]float64{
	"head_pan":                 1.9175123711079323e-09,
	"l_gripper_l_finger_joint": 3.0089229734974557e-05,
	"l_gripper_r_finger_joint": 1.1656136997545379e-08,
	"left_e0":                  -1.5557922490972862,
	"left_e1":                  1.4869254432037105,
	"left_s0":                  0.2966753816741825,
	"left_s1":                  -0.043254170670461,
	"left_w0":                  1.4459875320633593,
	"left_w1":                  1.4934273103021356,
	"left_w2":                  -0.5197388002153112,
	"r_gripper_l_finger_joint": 0.020833031933134405,
	"r_gripper_r_finger_joint": 3.920833833842966e-08,
	"right_e0":                 1.1897546738059388,
	"right_e1":                 1.9397502577790355,
	"right_s0":                 -1.25925592718432,
	"right_s1":                 -0.9998100343641312,
	"right_w0":                 -0.6698868022939237,
	"right_w1":                 1.029853661574463,
	"right_w2":                 0.4999199143249742,
}

// ErrUnknownJoint is returned when a joint has no entry in the pose table.
var ErrUnknownJoint = errors.New("joint not in pose table")

// ForJoints projects table onto names, e.g. the joints of a single limb.
func ForJoints(table map[string]float64, names []string) (map[string]float64, error) {
	out := make(map[string]float64, len(names))
	for _, name := range names {
		pos, ok := table[name]
		if !ok {
			return nil, errors.Wrap(ErrUnknownJoint, name)
		}
		out[name] = pos
	}
	return out, nil
}

// JointNames returns the table's joint names in sorted order.
func JointNames(table map[string]float64) []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
