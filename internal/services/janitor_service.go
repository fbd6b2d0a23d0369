package services

import (
	"Stowed/internal/config"
	"Stowed/internal/repository"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// orphanGracePeriod keeps the janitor away from files whose upload may
// still be in flight (the file lands on disk before the row does).
const orphanGracePeriod = time.Hour

// Janitor sweeps the upload directory on a cron schedule and removes image
// files no database row references. Orphans appear when a delete crashes
// between file and row cleanup.
type Janitor struct {
	containerRepo repository.ContainerRepository
	itemRepo      repository.ItemRepository
	imageService  ImageService
	logService    LogService
	configuration *config.Configuration
	cleaning      bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewJanitorService(
	containerRepo repository.ContainerRepository,
	itemRepo repository.ItemRepository,
	imageService ImageService,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		containerRepo: containerRepo,
		itemRepo:      itemRepo,
		imageService:  imageService,
		logService:    logService,
		configuration: configuration,
		cron:          cron.New(),
	}
}

// StartCleanCycle schedules the sweep. An empty schedule disables the
// janitor entirely.
func (j *Janitor) StartCleanCycle() {
	cronSchedule := j.configuration.Server.CleanConfig.Schedule
	if cronSchedule == "" {
		return
	}
	j.logService.Log.Debug("starting cleaning job")

	_, err := j.cron.AddFunc(cronSchedule, func() {
		if err := j.runGuarded(); err != nil {
			j.logService.Log.Debug("skipping clean cycle, already running")
		}
	})
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("Failed to start cleaning job")
		return
	}
	j.cron.Start()
}

// ForceStartCleanCycle runs one sweep immediately, refusing overlap.
func (j *Janitor) ForceStartCleanCycle() error {
	return j.runGuarded()
}

func (j *Janitor) StopCleanCycle() {
	j.cron.Stop()
}

func (j *Janitor) runGuarded() error {
	j.mutex.Lock()
	if j.cleaning {
		j.mutex.Unlock()
		return errors.New("cleaning is in progress")
	}
	j.cleaning = true
	j.mutex.Unlock()

	defer func() {
		j.mutex.Lock()
		j.cleaning = false
		j.mutex.Unlock()
	}()
	return j.sweep()
}

func (j *Janitor) sweep() error {
	referenced, err := j.referencedPaths()
	if err != nil {
		j.logService.Log.Errorf("clean cycle aborted: %v", err)
		return err
	}

	uploadDir := j.imageService.UploadPath()
	entries, err := os.ReadDir(uploadDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		j.logService.Log.Errorf("clean cycle aborted: %v", err)
		return err
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(uploadDir, entry.Name())
		if referenced[path] {
			continue
		}
		info, err := entry.Info()
		if err != nil || time.Since(info.ModTime()) < orphanGracePeriod {
			continue
		}
		j.imageService.Remove(path)
		removed++
	}
	if removed > 0 {
		j.logService.Log.WithField("removed", removed).Info("removed orphaned images")
	}
	return nil
}

func (j *Janitor) referencedPaths() (map[string]bool, error) {
	containerPaths, err := j.containerRepo.AllImagePaths()
	if err != nil {
		return nil, err
	}
	itemPaths, err := j.itemRepo.AllImagePaths()
	if err != nil {
		return nil, err
	}

	referenced := make(map[string]bool, len(containerPaths)+len(itemPaths))
	for _, path := range containerPaths {
		referenced[path] = true
	}
	for _, path := range itemPaths {
		referenced[path] = true
	}
	return referenced, nil
}
