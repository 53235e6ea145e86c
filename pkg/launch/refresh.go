package launch

import (
	"context"
	"os/exec"
	"time"

	"golang.org/x/time/rate"
)

// DatabaseRefresher runs update-desktop-database so new entries show
// up in application menus. Calls are rate limited because a burst of
// entry writes only needs one refresh.
type DatabaseRefresher struct {
	limiter *rate.Limiter
	Log     Logger
}

func NewDatabaseRefresher(logger Logger) *DatabaseRefresher {
	if logger == nil {
		logger = DefaultLogger
	}
	return &DatabaseRefresher{
		limiter: rate.NewLimiter(rate.Every(10*time.Second), 1),
		Log:     logger,
	}
}

// Refresh invokes update-desktop-database on dir. The tool being
// absent or failing is not an error; the entry still works, the menu
// just updates later.
func (r *DatabaseRefresher) Refresh(ctx context.Context, dir string) {
	if !r.limiter.Allow() {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, "update-desktop-database", dir)
	if err := cmd.Run(); err != nil {
		r.Log.Warnf("update-desktop-database: %v", err)
		return
	}
	r.Log.Infof("Refreshed desktop database: %s", dir)
}
