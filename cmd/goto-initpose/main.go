// Package main moves Baxter to the pose experiment sessions start from.
package main

import (
	"context"
	"github.com/brokenrobotz/baxter-ros/baxter"
	"github.com/brokenrobotz/baxter-ros/pose"
	"github.com/brokenrobotz/baxter-ros/ros"
	"github.com/pkg/errors"
	"go.viam.com/rdk/logging"
	"go.viam.com/utils"
)

func main() {
	utils.ContextualMain(mainWithArgs, logging.NewLogger("goto_initpose"))
}

// Arguments for the command.
type Arguments struct {
	Master    string `flag:"master,usage=ROS master host:port, defaults to ROS_MASTER_URI"`
	NodeName  string `flag:"node-name,default=goto_initpose,usage=ROS node name"`
	NoSimWait bool   `flag:"no-sim-wait,usage=do not wait for the simulator to report it has started"`
	Debug     bool   `flag:"debug"`
}

func mainWithArgs(ctx context.Context, args []string, logger logging.Logger) error {
	var argsParsed Arguments
	if err := utils.ParseFlags(args, &argsParsed); err != nil {
		return err
	}
	if argsParsed.Debug {
		logger.SetLevel(logging.DEBUG)
	}

	return ignoreInterrupt(run(ctx, argsParsed, logger))
}

func run(ctx context.Context, args Arguments, logger logging.Logger) error {
	master := ros.MasterAddressFromEnv()
	if args.Master != "" {
		master = ros.NormalizeMasterAddress(args.Master)
	}

	logger.Info("initializing node...")
	node, err := ros.NewNode(ros.NodeConf{
		MasterAddress: master,
		Name:          args.NodeName,
		LogLevel:      nodeLogLevel(args.Debug),
	}, logger)
	if err != nil {
		return err
	}
	defer node.Close()

	robot := baxter.New(node, args.NodeName, logger)
	if !args.NoSimWait {
		logger.Info("waiting for simulator ready...")
		if err := robot.WaitForSimulator(ctx); err != nil {
			return err
		}
	}

	logger.Info("enabling robot...")
	enabler, err := robot.Enabler(ctx, true)
	if err != nil {
		return err
	}
	defer utils.UncheckedErrorFunc(enabler.Close)
	if err := enabler.Enable(ctx); err != nil {
		return err
	}

	logger.Info("moving to initial pose...")
	if err := gotoInitPose(ctx, robot, logger); err != nil {
		return err
	}
	logger.Info("done")
	return nil
}

// gotoInitPose moves both arms, closes the left gripper and centres the head.
func gotoInitPose(ctx context.Context, robot *baxter.Robot, logger logging.Logger) error {
	head, err := robot.Head(ctx)
	if err != nil {
		return err
	}
	defer utils.UncheckedErrorFunc(head.Close)

	for _, side := range []baxter.Side{baxter.Left, baxter.Right} {
		if err := moveLimb(ctx, robot, side); err != nil {
			return err
		}
	}

	grip, err := robot.Gripper(ctx, baxter.Left)
	if err != nil {
		return err
	}
	defer utils.UncheckedErrorFunc(grip.Close)
	if err := grip.CloseFingers(ctx, false); err != nil {
		if !errors.Is(err, baxter.ErrNotCalibrated) {
			return err
		}
		logger.Warnw("skipping gripper close", "error", err)
	}

	return head.SetPan(ctx, 0, baxter.PanOptions{})
}

func moveLimb(ctx context.Context, robot *baxter.Robot, side baxter.Side) error {
	limb, err := robot.Limb(ctx, side)
	if err != nil {
		return err
	}
	defer utils.UncheckedErrorFunc(limb.Close)

	positions, err := pose.ForJoints(pose.Initial, limb.JointNames())
	if err != nil {
		return err
	}
	return limb.MoveToJointPositions(ctx, positions, baxter.MoveOptions{})
}

// ignoreInterrupt treats a Ctrl-C during the sequence as a normal exit.
func ignoreInterrupt(err error) error {
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func nodeLogLevel(debug bool) logging.Level {
	if debug {
		return logging.DEBUG
	}
	return logging.INFO
}
