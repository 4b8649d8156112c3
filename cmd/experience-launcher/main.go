// Package main enables Baxter and runs one babbling data-collection session.
package main

import (
	"context"
	"github.com/brokenrobotz/baxter-ros/baxter"
	"github.com/brokenrobotz/baxter-ros/experiment"
	"github.com/brokenrobotz/baxter-ros/ros"
	"github.com/pkg/errors"
	"go.viam.com/rdk/logging"
	"go.viam.com/utils"
	"time"
)

func main() {
	utils.ContextualMain(mainWithArgs, logging.NewLogger("experience_launcher"))
}

// Arguments for the command.
type Arguments struct {
	Master   string `flag:"master,usage=ROS master host:port, defaults to ROS_MASTER_URI"`
	NodeName string `flag:"node-name,default=Experience_launcher,usage=ROS node name"`
	DataRoot string `flag:"data-root,usage=directory sessions are written under"`
	Rate     int    `flag:"rate,usage=recording rate in Hz"`
	FPS      int    `flag:"fps,usage=camera frames per second"`
	Launcher string `flag:"launcher,usage=executable that starts ROS nodes"`
	Debug    bool   `flag:"debug"`
}

func (a Arguments) config() experiment.Config {
	cfg := experiment.DefaultConfig()
	if a.DataRoot != "" {
		cfg.DataRoot = a.DataRoot
	}
	if a.Rate != 0 {
		cfg.RecordingRate = a.Rate
	}
	if a.FPS != 0 {
		cfg.CameraFPS = float64(a.FPS)
	}
	if a.Launcher != "" {
		cfg.Launcher = a.Launcher
	}
	return cfg
}

func mainWithArgs(ctx context.Context, args []string, logger logging.Logger) error {
	var argsParsed Arguments
	if err := utils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}
	if argsParsed.Debug {
		logger.SetLevel(logging.DEBUG)
	}

	cfg := argsParsed.config()
	if err := cfg.Validate(); err != nil {
		return err
	}
	folder, err := experiment.CreateSessionFolder(cfg.DataRoot, time.Now())
	if err != nil {
		return err
	}
	logger.Infow("session folder created", "folder", folder)

	master := ros.MasterAddressFromEnv()
	if argsParsed.Master != "" {
		master = ros.NormalizeMasterAddress(argsParsed.Master)
	}

	logger.Info("initializing node...")
	node, err := ros.NewNode(ros.NodeConf{
		MasterAddress: master,
		Name:          argsParsed.NodeName,
		LogLevel:      nodeLogLevel(argsParsed.Debug),
	}, logger)
	if err != nil {
		return err
	}
	defer node.Close()

	if err := node.ParamSetString("/"+argsParsed.NodeName+"/image_transport", cfg.ImageTransport); err != nil {
		logger.Warnw("unable to set image transport parameter", "error", err)
	}

	robot := baxter.New(node, argsParsed.NodeName, logger)
	realRobot, err := robot.IsReal(ctx)
	if err != nil {
		return err
	}
	if realRobot {
		logger.Info("you're using the robot")
	} else {
		logger.Info("you're using the simulator")
	}

	logger.Info("getting robot state...")
	enabler, err := robot.Enabler(ctx, true)
	if err != nil {
		return err
	}
	defer utils.UncheckedErrorFunc(enabler.Close)
	logger.Info("enabling robot...")
	if err := enabler.Enable(ctx); err != nil {
		return err
	}
	logger.Info("running, ctrl-c to quit")

	if realRobot {
		if err := setCameras(ctx, robot, cfg); err != nil {
			return err
		}
	}

	launcher, err := experiment.NewLauncher(cfg, folder, realRobot, logger.Sublogger("session"))
	if err != nil {
		return err
	}
	return launcher.Run(ctx)
}

// setCameras applies the session's resolution and frame rate to every recorded camera.
func setCameras(ctx context.Context, robot *baxter.Robot, cfg experiment.Config) error {
	for _, topic := range cfg.CameraTopics {
		name := experiment.CameraName(topic)
		cam, err := robot.Camera(ctx, name)
		if err != nil {
			return err
		}
		err = configureCamera(cam, cfg)
		utils.UncheckedError(cam.Release())
		if err != nil {
			return errors.Wrapf(err, "configuring %s", name)
		}
	}
	return nil
}

func configureCamera(cam *baxter.CameraController, cfg experiment.Config) error {
	if err := cam.SetResolution(cfg.CameraResolution); err != nil {
		return err
	}
	if err := cam.SetFPS(cfg.CameraFPS); err != nil {
		return err
	}
	return cam.Open()
}

func nodeLogLevel(debug bool) logging.Level {
	if debug {
		return logging.DEBUG
	}
	return logging.INFO
}
