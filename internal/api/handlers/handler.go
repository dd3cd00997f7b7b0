package handlers

import (
	"github.com/rohandas-dev/cabinet/internal/blobstore"
	"github.com/rohandas-dev/cabinet/internal/repositories"
)

// Pinger reports backing-store reachability for the status endpoint.
type Pinger func() bool

// Handler bundles every dependency the HTTP layer needs. All state is
// injected here; there are no package-level store handles.
type Handler struct {
	Users    repositories.UserRepository
	Files    repositories.FileRepository
	Sessions repositories.SessionStore
	Queue    repositories.JobQueue
	Blobs    blobstore.Store

	DBAlive    Pinger
	CacheAlive Pinger
}
