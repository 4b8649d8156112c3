package baxter_core_msgs

import (
	"github.com/bluenviron/goroslib/v2/pkg/msgproc"
	"github.com/bluenviron/goroslib/v2/pkg/serviceproc"
	"go.viam.com/test"
	"testing"
)

// Hashes published by the robot for baxter_core_msgs. A mismatch makes
// the robot refuse the topic or service connection.
func TestMessageMD5(t *testing.T) {
	for _, tc := range []struct {
		name string
		msg  interface{}
		md5  string
	}{
		{"AssemblyState", &AssemblyState{}, "356d9dd237ce73b2667da9235f541933"},
		{"JointCommand", &JointCommand{}, "19bfec8434dd568ab3c633d187c36f2e"},
		{"EndEffectorCommand", &EndEffectorCommand{}, "c003234e90416f2ca02ac7837c42cbb7"},
		{"EndEffectorState", &EndEffectorState{}, "ade777f069d738595bc19e246b8ec7a0"},
		{"HeadPanCommand", &HeadPanCommand{}, "23b8a3f4b7ee9de7099d029e57660a8c"},
		{"HeadState", &HeadState{}, "71c43b264307205358e7e49be5601348"},
		{"CameraControl", &CameraControl{}, "01e38dd67dfb36af457f0915248629d1"},
		{"CameraSettings", &CameraSettings{}, "d133bef4a3bd9a6e490a5dc91d20f429"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sum, err := msgproc.MD5(tc.msg)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, sum, test.ShouldEqual, tc.md5)
		})
	}
}

func TestServiceMD5(t *testing.T) {
	for _, tc := range []struct {
		name string
		srv  interface{}
		md5  string
	}{
		{"OpenCamera", &OpenCamera{}, "73eacff63d5f9cca2d986614515a5c8c"},
		{"CloseCamera", &CloseCamera{}, "1067b4a7f008fe1ff4bd9668312773fd"},
		{"ListCameras", &ListCameras{}, "855b31192ab61744e7deb992d94db7ff"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			sum, err := serviceproc.MD5(tc.srv)
			test.That(t, err, test.ShouldBeNil)
			test.That(t, sum, test.ShouldEqual, tc.md5)
		})
	}
}
