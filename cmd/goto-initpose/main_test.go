package main

import (
	"context"
	"github.com/pkg/errors"
	"go.viam.com/rdk/logging"
	"go.viam.com/test"
	"testing"
)

func TestIgnoreInterrupt(t *testing.T) {
	test.That(t, ignoreInterrupt(nil), test.ShouldBeNil)
	test.That(t, ignoreInterrupt(context.Canceled), test.ShouldBeNil)
	test.That(t, ignoreInterrupt(errors.Wrap(context.Canceled, "waiting for simulator")), test.ShouldBeNil)

	other := errors.New("failed to enable robot")
	test.That(t, ignoreInterrupt(other), test.ShouldEqual, other)
}

func TestMainWithArgsRejectsUnknownFlag(t *testing.T) {
	err := mainWithArgs(context.Background(), []string{"main", "--unknown"}, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestRunRequiresNodeName(t *testing.T) {
	err := run(context.Background(), Arguments{Master: "localhost:11311"}, logging.NewTestLogger(t))
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "node name")
}
