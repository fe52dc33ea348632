package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/smartstore-sales-api/pkg/apiErrors"
)

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualCheck() { f.triggered++ }

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"session_healthy": true, "triggered": f.triggered}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name          string
		cronType      string
		wantStatus    int
		wantTriggered int
	}{
		{name: "verificação de sessão", cronType: CronJobTypeSessionCheck, wantStatus: http.StatusAccepted, wantTriggered: 1},
		{name: "todas", cronType: CronJobTypeAll, wantStatus: http.StatusAccepted, wantTriggered: 1},
		{name: "tipo desconhecido", cronType: "meta", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &fakeCronJob{}
			routes := CronJobs(CronJobServices{SessionCheckService: job})

			rec := serve(routes, adminClaims, http.MethodPost, "/v1/cron/"+tt.cronType+"/run", "")

			assertStatus(t, rec, tt.wantStatus)
			assert.Equal(t, tt.wantTriggered, job.triggered)
		})
	}
}

func TestRunCronJob_NonAdmin(t *testing.T) {
	job := &fakeCronJob{}

	rec := serve(CronJobs(CronJobServices{SessionCheckService: job}), userClaims, http.MethodPost, "/v1/cron/session-check/run", "")

	assertStatus(t, rec, http.StatusForbidden)
	assert.Equal(t, apiErrors.ErrInsufficientPrivilege, decodeAPIError(t, rec).Code)
	assert.Zero(t, job.triggered)
}

func TestRunCronJob_ServiceUnavailable(t *testing.T) {
	rec := serve(CronJobs(CronJobServices{}), adminClaims, http.MethodPost, "/v1/cron/session-check/run", "")

	assertStatus(t, rec, http.StatusInternalServerError)
}

func TestGetCronStatus(t *testing.T) {
	rec := serve(CronJobs(CronJobServices{SessionCheckService: &fakeCronJob{}}), adminClaims, http.MethodGet, "/v1/cron/status", "")

	assertStatus(t, rec, http.StatusOK)

	var status map[string]map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &status))
	assert.Equal(t, true, status[CronJobTypeSessionCheck]["session_healthy"])
}
