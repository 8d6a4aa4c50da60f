package services

import (
	"log"
	"sync"
	"time"

	"jobfit-assistant/internal/repositories"
)

// Janitor expires idle sessions in the background. An expired session
// loses its summaries and its staged upload files; there is nothing to
// recover afterwards.
type Janitor interface {
	Start()
	Stop()
}

type janitor struct {
	sessions repositories.SessionRepository
	storage  StorageService
	ttl      time.Duration
	interval time.Duration
	wg       sync.WaitGroup
	stopChan chan struct{}
}

func NewJanitor(
	sessions repositories.SessionRepository,
	storage StorageService,
	ttl time.Duration,
	interval time.Duration,
) Janitor {
	return &janitor{
		sessions: sessions,
		storage:  storage,
		ttl:      ttl,
		interval: interval,
		stopChan: make(chan struct{}),
	}
}

// Start implements Janitor.
func (j *janitor) Start() {
	log.Printf("🧹 Starting session janitor (ttl=%s, sweep every %s)\n", j.ttl, j.interval)

	j.wg.Add(1)
	go j.sweepLoop()
}

// Stop implements Janitor.
func (j *janitor) Stop() {
	log.Println("🛑 Stopping session janitor...")
	close(j.stopChan)
	j.wg.Wait()
	log.Println("✅ Session janitor stopped")
}

func (j *janitor) sweepLoop() {
	defer j.wg.Done()
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stopChan:
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *janitor) sweep() {
	cutoff := time.Now().Add(-j.ttl)
	expired := j.sessions.IdleSince(cutoff)

	for _, id := range expired {
		if err := j.storage.RemoveSessionFiles(id); err != nil {
			log.Printf("⚠️  Failed to remove files for session %s: %v\n", id, err)
		}
		j.sessions.Delete(id)
		log.Printf("🧹 Expired session %s\n", id)
	}
}
