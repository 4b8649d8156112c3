// Package main serves the Baxter ROS sensors as a viam module.
package main

import (
	"context"
	"github.com/brokenrobotz/baxter-ros/sensors"
	"github.com/brokenrobotz/baxter-ros/sensors/gripper"
	"github.com/brokenrobotz/baxter-ros/viamrosnode"
	"go.viam.com/rdk/components/sensor"
	"go.viam.com/rdk/logging"
	"go.viam.com/rdk/module"
	"go.viam.com/rdk/resource"
	"go.viam.com/utils"
)

func main() {
	utils.ContextualMain(mainWithArgs, module.NewLoggerFromArgs("baxter-ros"))
}

func mainWithArgs(ctx context.Context, args []string, logger logging.Logger) error {
	mod, err := module.NewModuleFromArgs(ctx)
	if err != nil {
		return err
	}
	defer viamrosnode.Shutdown()

	for _, model := range []resource.Model{
		sensors.JointStatesModel,
		sensors.AssemblyStateModel,
		sensors.DiagnosticsModel,
		gripper.StateModel,
	} {
		if err := mod.AddModelFromRegistry(ctx, sensor.API, model); err != nil {
			return err
		}
	}

	if err := mod.Start(ctx); err != nil {
		return err
	}
	defer mod.Close(ctx)

	logger.Info("baxter sensors module started")
	<-ctx.Done()
	return nil
}
