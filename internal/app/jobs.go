package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@hourly", func() {
		a.authn.SweepExpired()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@daily", func() {
		a.SchedCatalogBackupTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedCatalogBackupTask writes a dated catalog snapshot into the backup
// directory. Snapshots are a manual-recovery aid only.
func (a *Application) SchedCatalogBackupTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	if a.appConfig.System.Workdir == "" {
		return
	}
	dir := a.appConfig.GetBackupDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		zap.L().Error("backup dir create failed", zap.Error(err))
		return
	}

	name := fmt.Sprintf("products-%s.json", time.Now().Format("20060102"))
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		zap.L().Error("backup file create failed", zap.Error(err))
		return
	}
	defer f.Close()

	if err := a.catalog.Export(f); err != nil {
		zap.L().Error("catalog backup failed", zap.Error(err))
		return
	}
	zap.L().Info("catalog backup written", zap.String("file", name))
}
