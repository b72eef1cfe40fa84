package notify

import (
	"log/slog"
	"os/exec"

	"mlb-score-watcher/internal/domain"
	"mlb-score-watcher/internal/logging"
)

const notifyCommand = "notify-send"

// CommandRunner executes a desktop notification command. Split out so tests
// can observe invocations without a display server.
type CommandRunner func(name string, args ...string) error

func execRunner(name string, args ...string) error {
	return exec.Command(name, args...).Run()
}

// CommandNotifier shows desktop notifications by shelling out to notify-send.
// It consults the current settings on every delivery, so toggling
// notifications off takes effect immediately.
type CommandNotifier struct {
	settings func() domain.Settings
	runner   CommandRunner
	logger   *slog.Logger
}

// NewCommandNotifier builds a desktop notifier. settings must return the
// current document; runner may be nil to use the real command.
func NewCommandNotifier(settings func() domain.Settings, runner CommandRunner, logger *slog.Logger) *CommandNotifier {
	if runner == nil {
		runner = execRunner
	}
	return &CommandNotifier{settings: settings, runner: runner, logger: logger}
}

// Notify shows the entry as a desktop notification, honoring the
// notificationsEnabled and soundEnabled settings.
func (n *CommandNotifier) Notify(entry domain.NotificationEntry) {
	prefs := n.settings()
	if !prefs.NotificationsEnabled {
		logging.Info(n.logger, "notifications disabled, skipping desktop notification",
			logging.FieldTeam, entry.TeamName,
		)
		return
	}

	args := []string{"--app-name", "MLB Score Watcher"}
	if prefs.SoundEnabled {
		args = append(args, "--hint", "string:sound-name:message-new-instant")
	}
	args = append(args, entry.Title, entry.Body)

	if err := n.runner(notifyCommand, args...); err != nil {
		logging.Error(n.logger, "failed to show desktop notification", err,
			logging.FieldTeam, entry.TeamName,
			logging.FieldGamePk, entry.GamePk,
		)
	}
}

// LogNotifier records notifications to the service log. Used as a fallback
// sink and in headless deployments.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier builds a log-backed sink.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify writes the entry to the log.
func (n *LogNotifier) Notify(entry domain.NotificationEntry) {
	logging.Info(n.logger, "score notification",
		logging.FieldTeam, entry.TeamName,
		logging.FieldGamePk, entry.GamePk,
		"title", entry.Title,
		"body", entry.Body,
	)
}
