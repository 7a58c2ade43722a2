package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/agencyflow/agency-manager-api/infrastructure/database/jsonfile"
	"github.com/agencyflow/agency-manager-api/internal/config"
)

// SnapshotConfig representa a configuração do agendador de snapshots do
// arquivo de dados
type SnapshotConfig struct {
	CronSchedule string
	Enabled      bool
	Dir          string
	Keep         int
}

// SnapshotService agenda cópias periódicas do arquivo de dados e remove as
// cópias mais antigas
type SnapshotService struct {
	scheduler       *gocron.Scheduler
	config          SnapshotConfig
	db              *jsonfile.Database
	running         bool
	runMutex        sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
}

// NewSnapshotService cria uma nova instância do serviço de snapshots
func NewSnapshotService(db *jsonfile.Database, appConfig *config.Config) *SnapshotService {
	snapshotConfig := SnapshotConfig{
		CronSchedule: appConfig.Snapshot.CronSchedule,
		Enabled:      appConfig.Snapshot.Enabled,
		Dir:          appConfig.Snapshot.Dir,
		Keep:         appConfig.Snapshot.Keep,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"enabled":       snapshotConfig.Enabled,
		"dir":           snapshotConfig.Dir,
		"keep":          snapshotConfig.Keep,
	}).Info("Configuração do agendador de snapshots carregada")

	return &SnapshotService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    snapshotConfig,
		db:        db,
	}
}

// Start inicia o agendador
func (s *SnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Snapshots do arquivo de dados desabilitados por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunOnce()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot do arquivo de dados: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

// RunOnce executa um snapshot imediatamente. Execuções concorrentes são
// ignoradas.
func (s *SnapshotService) RunOnce() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Snapshot já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.lastCompletedAt = time.Now()
		s.runMutex.Unlock()
	}()

	path, err := s.db.Snapshot(s.config.Dir)
	if err != nil {
		logrus.WithError(err).Error("Erro ao gravar snapshot do arquivo de dados")
		return
	}

	logrus.WithField("path", path).Info("Snapshot do arquivo de dados gravado")

	if err := s.prune(); err != nil {
		logrus.WithError(err).Warn("Erro ao remover snapshots antigos")
	}
}

// prune mantém apenas os Keep snapshots mais recentes no diretório
func (s *SnapshotService) prune() error {
	if s.config.Keep <= 0 {
		return nil
	}

	entries, err := os.ReadDir(s.config.Dir)
	if err != nil {
		return err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		names = append(names, entry.Name())
	}

	if len(names) <= s.config.Keep {
		return nil
	}

	// O nome carrega o timestamp, então a ordem lexicográfica é a cronológica
	sort.Strings(names)

	for _, name := range names[:len(names)-s.config.Keep] {
		if err := os.Remove(filepath.Join(s.config.Dir, name)); err != nil {
			return err
		}
	}

	return nil
}
