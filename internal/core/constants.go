package core

import (
	"os"
	"time"
)

const (
	// PermOwnerRW is used for files jsrgen writes (rw-r--r--).
	PermOwnerRW os.FileMode = 0o644

	// TimeoutGit bounds the tag lookup subprocess.
	TimeoutGit = 30 * time.Second
)
