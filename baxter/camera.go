package baxter

import (
	"context"
	"fmt"
	"github.com/bluenviron/goroslib/v2"
	"github.com/brokenrobotz/baxter-ros/pkg/msgs/baxter_core_msgs"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/rdk/logging"
	"sync"
)

// Resolution is a camera mode in pixels.
type Resolution struct {
	Width  int
	Height int
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// CameraModes are the resolutions Baxter's cameras can stream at.
var CameraModes = []Resolution{
	{1280, 800},
	{960, 600},
	{640, 400},
	{480, 300},
	{384, 240},
	{320, 200},
}

// ValidateResolution rejects resolutions the cameras do not support.
func ValidateResolution(res Resolution) error {
	for _, mode := range CameraModes {
		if mode == res {
			return nil
		}
	}
	return errors.Errorf("invalid camera resolution %s", res)
}

// CameraController configures one of the robot's cameras through the camera services.
type CameraController struct {
	name string

	mu       sync.Mutex
	settings baxter_core_msgs.CameraSettings
	open     bool

	openSrv  *goroslib.ServiceClient
	closeSrv *goroslib.ServiceClient
	logger   logging.Logger
}

// ListCameras returns the names of the cameras the robot exposes.
func (r *Robot) ListCameras(ctx context.Context) ([]string, error) {
	sc, err := goroslib.NewServiceClient(goroslib.ServiceClientConf{
		Node: r.node,
		Name: listCamerasSrv,
		Srv:  &baxter_core_msgs.ListCameras{},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "unable to reach %s", listCamerasSrv)
	}
	defer sc.Close()

	var res baxter_core_msgs.ListCamerasRes
	if err := sc.Call(&baxter_core_msgs.ListCamerasReq{}, &res); err != nil {
		return nil, errors.Wrapf(err, "calling %s", listCamerasSrv)
	}
	return res.Cameras, nil
}

// Camera returns a controller for the named camera, which must be listed by the robot.
func (r *Robot) Camera(ctx context.Context, name string) (*CameraController, error) {
	cameras, err := r.ListCameras(ctx)
	if err != nil {
		return nil, err
	}
	found := false
	for _, c := range cameras {
		if c == name {
			found = true
			break
		}
	}
	if !found {
		return nil, errors.Errorf("cannot locate a service for camera name %q, valid camera names are %v", name, cameras)
	}

	c := newCameraController(name, r.logger.Sublogger(name))
	if c.openSrv, err = goroslib.NewServiceClient(goroslib.ServiceClientConf{
		Node: r.node,
		Name: openCameraSrv,
		Srv:  &baxter_core_msgs.OpenCamera{},
	}); err != nil {
		return nil, errors.Wrapf(err, "unable to reach %s", openCameraSrv)
	}
	if c.closeSrv, err = goroslib.NewServiceClient(goroslib.ServiceClientConf{
		Node: r.node,
		Name: closeCameraSrv,
		Srv:  &baxter_core_msgs.CloseCamera{},
	}); err != nil {
		return nil, multierr.Combine(errors.Wrapf(err, "unable to reach %s", closeCameraSrv), c.Release())
	}
	return c, nil
}

func newCameraController(name string, logger logging.Logger) *CameraController {
	return &CameraController{
		name: name,
		settings: baxter_core_msgs.CameraSettings{
			Width:  320,
			Height: 200,
			Fps:    20,
		},
		logger: logger,
	}
}

// Name is the camera's name, e.g. head_camera.
func (c *CameraController) Name() string {
	return c.name
}

// Resolution returns the configured resolution.
func (c *CameraController) Resolution() Resolution {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Resolution{int(c.settings.Width), int(c.settings.Height)}
}

// FPS returns the configured frame rate.
func (c *CameraController) FPS() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return float64(c.settings.Fps)
}

// SetResolution changes the resolution, reopening the camera if it is streaming.
func (c *CameraController) SetResolution(res Resolution) error {
	if err := ValidateResolution(res); err != nil {
		return err
	}
	c.mu.Lock()
	c.settings.Width = int32(res.Width)
	c.settings.Height = int32(res.Height)
	c.mu.Unlock()
	return c.reload()
}

// SetFPS changes the frame rate, reopening the camera if it is streaming.
func (c *CameraController) SetFPS(fps float64) error {
	if fps <= 0 {
		return errors.Errorf("invalid camera fps %v", fps)
	}
	c.mu.Lock()
	c.settings.Fps = float32(fps)
	c.mu.Unlock()
	return c.reload()
}

func (c *CameraController) reload() error {
	c.mu.Lock()
	open := c.open
	c.mu.Unlock()
	if !open {
		return nil
	}
	return c.Open()
}

// Open starts streaming with the current settings.
func (c *CameraController) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var res baxter_core_msgs.OpenCameraRes
	if err := c.openSrv.Call(&baxter_core_msgs.OpenCameraReq{
		Name:     c.name,
		Settings: c.settings,
	}, &res); err != nil {
		return errors.Wrapf(err, "opening %s", c.name)
	}
	if res.Err != 0 {
		return errors.Errorf("failed to open camera %s: error %d", c.name, res.Err)
	}
	c.open = true
	c.logger.Infow("camera open", "resolution", Resolution{int(c.settings.Width), int(c.settings.Height)}.String(), "fps", c.settings.Fps)
	return nil
}

// CloseStream stops streaming.
func (c *CameraController) CloseStream() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var res baxter_core_msgs.CloseCameraRes
	if err := c.closeSrv.Call(&baxter_core_msgs.CloseCameraReq{Name: c.name}, &res); err != nil {
		return errors.Wrapf(err, "closing %s", c.name)
	}
	if res.Err != 0 {
		return errors.Errorf("failed to close camera %s: error %d", c.name, res.Err)
	}
	c.open = false
	return nil
}

// Release frees the service clients without touching the stream.
func (c *CameraController) Release() error {
	if c.openSrv != nil {
		c.openSrv.Close()
	}
	if c.closeSrv != nil {
		c.closeSrv.Close()
	}
	return nil
}
