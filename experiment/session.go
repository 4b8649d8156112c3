package experiment

import (
	"github.com/pkg/errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SessionFolderName names a session after its start time, e.g. Fri_Oct_16_14:03:05_2026.
func SessionFolderName(t time.Time) string {
	return strings.Join(strings.Fields(t.Format(time.ANSIC)), "_")
}

// CreateSessionFolder makes a fresh folder for a session started at t under
// root. An existing folder is an error so sessions never overwrite each other.
func CreateSessionFolder(root string, t time.Time) (string, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating data root %s", root)
	}
	folder := filepath.Join(root, SessionFolderName(t))
	if err := os.Mkdir(folder, 0o755); err != nil {
		return "", errors.Wrapf(err, "creating session folder %s", folder)
	}
	return folder, nil
}

// RepublishedName is the topic a camera stream is relayed to.
func RepublishedName(topic string) string {
	return topic + "/republished"
}

// TopicsToRecord lists the compressed republished camera topics followed by joint states.
func (c Config) TopicsToRecord() []string {
	topics := make([]string, 0, len(c.CameraTopics)+1)
	for _, topic := range c.CameraTopics {
		topics = append(topics, RepublishedName(topic)+"/"+c.ImageTransport)
	}
	return append(topics, c.JointStatesTopic)
}
