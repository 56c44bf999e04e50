package handler

import (
	"net/http"

	"github.com/vfg2006/ads-sync-api/infrastructure/repository"
	"github.com/vfg2006/ads-sync-api/internal/api/handler/router"
	"github.com/vfg2006/ads-sync-api/internal/scheduler"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sync(syncService *scheduler.PlatformSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sync",
			Method:  http.MethodPost,
			Handler: TriggerSync(syncService),
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(syncService),
		},
	}
}

func Accounts(accountRepo repository.AccountRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:external_id",
			Method:  http.MethodGet,
			Handler: GetAccount(accountRepo),
		},
	}
}
