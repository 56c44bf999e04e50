package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-sync-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-sync-api/internal/api/handler/router"
	"github.com/vfg2006/ads-sync-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestGetAccountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockAccountRepository(ctrl)
	rt := router.New(router.WithRoutes(Accounts(repo)...))

	t.Run("sem workspace_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/accounts/act_123", nil)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("conta ainda não sincronizada", func(t *testing.T) {
		repo.EXPECT().GetByExternalID("ws_01", "act_999").Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/accounts/act_999?workspace_id=ws_01", nil)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("conta encontrada", func(t *testing.T) {
		repo.EXPECT().GetByExternalID("ws_01", "act_123").Return(&domain.PlatformAccount{
			ID:         "acc_01",
			ExternalID: "act_123",
			Name:       "Conta Principal",
			Status:     domain.StatusActive,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/accounts/act_123?workspace_id=ws_01", nil)
		rec := httptest.NewRecorder()

		rt.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"name":"Conta Principal"`)
	})
}
