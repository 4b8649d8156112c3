package baxter_core_msgs

import (
	"github.com/bluenviron/goroslib/v2/pkg/msg"
)

const (
	CameraControl_CAMERA_CONTROL_EXPOSURE        int32 = 100
	CameraControl_CAMERA_CONTROL_GAIN            int32 = 101
	CameraControl_CAMERA_CONTROL_WHITE_BALANCE_R int32 = 102
	CameraControl_CAMERA_CONTROL_WHITE_BALANCE_G int32 = 103
	CameraControl_CAMERA_CONTROL_WHITE_BALANCE_B int32 = 104
	CameraControl_CAMERA_CONTROL_WINDOW_X        int32 = 105
	CameraControl_CAMERA_CONTROL_WINDOW_Y        int32 = 106
	CameraControl_CAMERA_CONTROL_FLIP            int32 = 107
	CameraControl_CAMERA_CONTROL_MIRROR          int32 = 108
	CameraControl_CAMERA_CONTROL_RESOLUTION_HALF int32 = 109
)

type CameraControl struct {
	msg.Package     `ros:"baxter_core_msgs"`
	msg.Definitions `ros:"int32 CAMERA_CONTROL_EXPOSURE=100,int32 CAMERA_CONTROL_GAIN=101,int32 CAMERA_CONTROL_WHITE_BALANCE_R=102,int32 CAMERA_CONTROL_WHITE_BALANCE_G=103,int32 CAMERA_CONTROL_WHITE_BALANCE_B=104,int32 CAMERA_CONTROL_WINDOW_X=105,int32 CAMERA_CONTROL_WINDOW_Y=106,int32 CAMERA_CONTROL_FLIP=107,int32 CAMERA_CONTROL_MIRROR=108,int32 CAMERA_CONTROL_RESOLUTION_HALF=109"`
	Id              int32
	Value           int32
}

type CameraSettings struct {
	msg.Package `ros:"baxter_core_msgs"`
	Width       int32
	Height      int32
	Fps         float32
	Controls    []CameraControl
}

type OpenCameraReq struct {
	Name     string
	Settings CameraSettings
}

type OpenCameraRes struct {
	Err int32
}

// OpenCamera is served on /cameras/open.
type OpenCamera struct {
	msg.Package `ros:"baxter_core_msgs"`
	OpenCameraReq
	OpenCameraRes
}

type CloseCameraReq struct {
	Name string
}

type CloseCameraRes struct {
	Err int32
}

// CloseCamera is served on /cameras/close.
type CloseCamera struct {
	msg.Package `ros:"baxter_core_msgs"`
	CloseCameraReq
	CloseCameraRes
}

type ListCamerasReq struct{}

type ListCamerasRes struct {
	Cameras []string
}

// ListCameras is served on /cameras/list.
type ListCameras struct {
	msg.Package `ros:"baxter_core_msgs"`
	ListCamerasReq
	ListCamerasRes
}
