package experiment

import (
	"go.viam.com/utils/pexec"
	"strconv"
)

const (
	babblerID  = "babbler"
	recorderID = "recorder"
)

// RepublisherProcesses relays every camera topic to its republished name.
func (c Config) RepublisherProcesses() []pexec.ProcessConfig {
	procs := make([]pexec.ProcessConfig, 0, len(c.CameraTopics))
	for _, topic := range c.CameraTopics {
		procs = append(procs, pexec.ProcessConfig{
			ID:   "republish_" + CameraName(topic),
			Name: c.Launcher,
			Args: []string{
				c.RepublishPackage, c.RepublishExecutable,
				"raw", "in:=" + topic, "out:=" + RepublishedName(topic),
			},
			Log: true,
		})
	}
	return procs
}

// BabblerProcess drives the motor babbling. On the real robot the babbler is
// told so with -ph.
func (c Config) BabblerProcess(realRobot bool) pexec.ProcessConfig {
	args := []string{c.BabblerPackage, c.BabblerExecutable}
	if realRobot {
		args = append(args, "-ph")
	}
	return pexec.ProcessConfig{
		ID:   babblerID,
		Name: c.Launcher,
		Args: args,
		Log:  true,
	}
}

// RecorderProcess records TopicsToRecord into folder at RecordingRate.
func (c Config) RecorderProcess(folder string) pexec.ProcessConfig {
	args := []string{
		c.RecorderPackage, c.RecorderExecutable,
		"-r", strconv.Itoa(c.RecordingRate),
		"-p", folder,
		"-t",
	}
	args = append(args, c.TopicsToRecord()...)
	return pexec.ProcessConfig{
		ID:   recorderID,
		Name: c.Launcher,
		Args: args,
		Log:  true,
	}
}
