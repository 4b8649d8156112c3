package experiment

import (
	"context"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/rdk/logging"
	"go.viam.com/utils/pexec"
)

type process interface {
	Start(ctx context.Context) error
	Stop() error
}

func newManagedProcess(cfg pexec.ProcessConfig, logger logging.Logger) process {
	return pexec.NewManagedProcess(cfg, logger)
}

// Launcher runs one session: republishers, babbler and recorder.
type Launcher struct {
	cfg       Config
	folder    string
	realRobot bool
	logger    logging.Logger

	newProcess func(pexec.ProcessConfig, logging.Logger) process
}

// NewLauncher prepares a session writing into folder.
func NewLauncher(cfg Config, folder string, realRobot bool, logger logging.Logger) (*Launcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid experiment config")
	}
	if folder == "" {
		return nil, errors.New("session folder must be set")
	}
	return &Launcher{
		cfg:        cfg,
		folder:     folder,
		realRobot:  realRobot,
		logger:     logger,
		newProcess: newManagedProcess,
	}, nil
}

type running struct {
	id   string
	proc process
}

// Run starts every node, waits for the babbler to finish or ctx to end, then
// stops the recorder and republishers. Stop failures are logged only.
func (l *Launcher) Run(ctx context.Context) error {
	var republishers []running
	teardown := func(others ...running) {
		l.teardown(append(others, republishers...))
	}

	for _, cfg := range l.cfg.RepublisherProcesses() {
		r, err := l.start(ctx, cfg)
		if err != nil {
			teardown()
			return err
		}
		republishers = append(republishers, r)
	}

	babblerDone := make(chan int, 1)
	babblerCfg := l.cfg.BabblerProcess(l.realRobot)
	babblerCfg.OnUnexpectedExit = func(exitCode int) bool {
		select {
		case babblerDone <- exitCode:
		default:
		}
		return false
	}
	babbler, err := l.start(ctx, babblerCfg)
	if err != nil {
		teardown()
		return err
	}

	recorder, err := l.start(ctx, l.cfg.RecorderProcess(l.folder))
	if err != nil {
		teardown(babbler)
		return err
	}

	// the babbler may already be gone by the time the recorder is up
	select {
	case code := <-babblerDone:
		l.babblerFinished(code)
	default:
		l.logger.Info("babbling has started")
		select {
		case code := <-babblerDone:
			l.babblerFinished(code)
		case <-ctx.Done():
			l.logger.Info("interrupted, stopping session")
		}
	}
	teardown(recorder, babbler)
	l.logger.Infow("session data written", "folder", l.folder)
	return nil
}

func (l *Launcher) babblerFinished(code int) {
	if code != 0 {
		l.logger.Warnw("babbler exited with error", "exit_code", code)
	}
	l.logger.Info("babbling has finished")
}

func (l *Launcher) start(ctx context.Context, cfg pexec.ProcessConfig) (running, error) {
	if cfg.OnUnexpectedExit == nil {
		id := cfg.ID
		cfg.OnUnexpectedExit = func(exitCode int) bool {
			l.logger.Warnw("process exited unexpectedly", "process", id, "exit_code", exitCode)
			return false
		}
	}
	l.logger.Debugw("starting process", "process", cfg.ID, "args", cfg.Args)
	proc := l.newProcess(cfg, l.logger.Sublogger(cfg.ID))
	if err := proc.Start(ctx); err != nil {
		return running{}, errors.Wrapf(err, "starting %s", cfg.ID)
	}
	return running{id: cfg.ID, proc: proc}, nil
}

func (l *Launcher) teardown(procs []running) {
	var err error
	for _, r := range procs {
		if stopErr := r.proc.Stop(); stopErr != nil {
			err = multierr.Combine(err, errors.Wrapf(stopErr, "stopping %s", r.id))
		}
	}
	if err != nil {
		l.logger.Warnw("errors while stopping session processes", "error", err)
	}
}
