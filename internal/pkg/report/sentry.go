package report

import (
	"os"
	"runtime"
	"time"

	"github.com/getsentry/sentry-go"
)

// SetupSentry initializes the global Sentry hub. An empty DSN leaves the client
// disabled, which turns every capture into a no-op.
func SetupSentry(dsn, env, release string) error {
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      env,
		Release:          release,
		EnableTracing:    false,
		AttachStacktrace: true,
	}); err != nil {
		return err
	}

	sentry.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("go_version", runtime.Version())
		scope.SetContext("host_info", map[string]interface{}{
			"hostname": getHostname(),
		})
	})
	return nil
}

func FlushSentry() {
	sentry.Flush(2 * time.Second)
}

func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
