package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sync-api/internal/config"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"github.com/vfg2006/ads-sync-api/internal/usecases/syncing"
)

// RunState representa o estado de uma execução de sincronização
type RunState string

const (
	RunStateRunning   RunState = "running"
	RunStateCompleted RunState = "completed"
	RunStateFailed    RunState = "failed"
)

// RunStatus é o registro em memória de uma execução, exposto pela API
// de status. O token de acesso nunca aparece aqui
type RunStatus struct {
	WorkspaceID       string              `json:"workspace_id"`
	AccountExternalID string              `json:"account_external_id"`
	State             RunState            `json:"state"`
	StartedAt         time.Time           `json:"started_at"`
	CompletedAt       *time.Time          `json:"completed_at,omitempty"`
	Error             string              `json:"error,omitempty"`
	Summary           *domain.SyncSummary `json:"summary,omitempty"`
}

// PlatformSyncConfig representa a configuração do agendador de sincronização
type PlatformSyncConfig struct {
	CronSchedule      string
	MaxConcurrentJobs int
	SyncEnabled       bool
}

// PlatformSyncService gerencia o agendamento e a execução das
// sincronizações de contas. Disparos manuais entram pela API; o cron
// re-sincroniza periodicamente as contas já disparadas neste processo.
// As credenciais ficam apenas em memória, nunca no banco
type PlatformSyncService struct {
	scheduler *gocron.Scheduler
	config    PlatformSyncConfig
	syncer    syncing.Syncer
	semaphore chan struct{}

	syncMutex sync.Mutex
	runs      map[string]*RunStatus
	requests  map[string]*domain.SyncRequest
}

// NewPlatformSyncService cria uma nova instância do serviço de sincronização
func NewPlatformSyncService(syncer syncing.Syncer, appConfig *config.Config) *PlatformSyncService {
	syncConfig := PlatformSyncConfig{
		CronSchedule:      appConfig.Sync.CronSchedule,
		MaxConcurrentJobs: appConfig.Sync.CreativeWorkers,
		SyncEnabled:       appConfig.Sync.Enabled,
	}

	if syncConfig.MaxConcurrentJobs <= 0 {
		syncConfig.MaxConcurrentJobs = 1
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
	}).Info("Configuração do agendador de sincronização carregada")

	return &PlatformSyncService{
		scheduler: gocron.NewScheduler(time.UTC),
		config:    syncConfig,
		syncer:    syncer,
		semaphore: make(chan struct{}, syncConfig.MaxConcurrentJobs),
		runs:      make(map[string]*RunStatus),
		requests:  make(map[string]*domain.SyncRequest),
	}
}

// Start inicia o agendador
func (s *PlatformSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Sincronização agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllKnownAccounts(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerSync dispara uma sincronização assíncrona para a conta. Se já
// houver uma execução em andamento para o mesmo par (workspace, conta),
// o disparo é rejeitado
func (s *PlatformSyncService) TriggerSync(ctx context.Context, req *domain.SyncRequest) (*RunStatus, error) {
	if req == nil || req.WorkspaceID == "" || req.AccountExternalID == "" {
		return nil, fmt.Errorf("workspace_id e account_external_id são obrigatórios")
	}

	key := runKey(req.WorkspaceID, req.AccountExternalID)

	s.syncMutex.Lock()
	if current, ok := s.runs[key]; ok && current.State == RunStateRunning {
		s.syncMutex.Unlock()
		return nil, fmt.Errorf("sincronização já em andamento para a conta %s", req.AccountExternalID)
	}

	status := &RunStatus{
		WorkspaceID:       req.WorkspaceID,
		AccountExternalID: req.AccountExternalID,
		State:             RunStateRunning,
		StartedAt:         time.Now().UTC(),
	}
	s.runs[key] = status
	s.requests[key] = req
	s.syncMutex.Unlock()

	// A execução sobrevive à requisição HTTP que a disparou: o net/http
	// cancela r.Context() assim que o handler responde o 202. Valores do
	// contexto (correlação) são preservados, só o cancelamento é desligado
	go s.runSync(context.WithoutCancel(ctx), req)

	return status, nil
}

// GetStatus devolve uma cópia do registro de execuções conhecidas
func (s *PlatformSyncService) GetStatus() []*RunStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	statuses := make([]*RunStatus, 0, len(s.runs))
	for _, status := range s.runs {
		copied := *status
		statuses = append(statuses, &copied)
	}

	return statuses
}

func (s *PlatformSyncService) runSync(ctx context.Context, req *domain.SyncRequest) {
	s.semaphore <- struct{}{}
	defer func() { <-s.semaphore }()

	logger := logrus.WithFields(logrus.Fields{
		"workspace_id": req.WorkspaceID,
		"account_id":   req.AccountExternalID,
	})

	summary, err := s.syncer.Sync(ctx, req)

	key := runKey(req.WorkspaceID, req.AccountExternalID)
	completedAt := time.Now().UTC()

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status, ok := s.runs[key]
	if !ok {
		return
	}

	status.CompletedAt = &completedAt

	if err != nil {
		status.State = RunStateFailed
		status.Error = err.Error()
		logger.WithError(err).Error("Sincronização da conta falhou")
		return
	}

	status.State = RunStateCompleted
	status.Summary = summary

	if len(summary.Warnings) > 0 {
		logger.WithField("warnings", len(summary.Warnings)).Warn("Sincronização concluída com warnings")
	}
}

// syncAllKnownAccounts re-sincroniza as contas já disparadas neste
// processo, respeitando o limite de workers concorrentes
func (s *PlatformSyncService) syncAllKnownAccounts(ctx context.Context) {
	s.syncMutex.Lock()
	pending := make([]*domain.SyncRequest, 0, len(s.requests))
	for key, req := range s.requests {
		if current, ok := s.runs[key]; ok && current.State == RunStateRunning {
			continue
		}
		s.runs[key] = &RunStatus{
			WorkspaceID:       req.WorkspaceID,
			AccountExternalID: req.AccountExternalID,
			State:             RunStateRunning,
			StartedAt:         time.Now().UTC(),
		}
		pending = append(pending, req)
	}
	s.syncMutex.Unlock()

	if len(pending) == 0 {
		logrus.Info("Nenhuma conta conhecida para sincronização agendada")
		return
	}

	logrus.WithField("accounts", len(pending)).Info("Iniciando sincronização agendada das contas conhecidas")

	var wg sync.WaitGroup
	for _, req := range pending {
		wg.Add(1)
		go func(r *domain.SyncRequest) {
			defer wg.Done()
			s.runSync(ctx, r)
		}(req)
	}
	wg.Wait()

	logrus.Info("Sincronização agendada concluída")
}

func runKey(workspaceID, accountExternalID string) string {
	return workspaceID + ":" + accountExternalID
}
